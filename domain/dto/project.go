package dto

import (
	"time"
)

// ProjectResponse embeds the whole board: every task and every user, the
// way the original client consumes it in one fetch.
type ProjectResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedBy   string         `json:"createdBy"`
	CreatedAt   time.Time      `json:"createdAt"`
	Tasks       []TaskResponse `json:"tasks"`
	Members     []UserResponse `json:"members"`
}
