package dto

import (
	"time"
)

type ActivityFilterRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=200"`
}

type ActivityResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	TaskID    *string   `json:"taskId,omitempty"`
	ProjectID *string   `json:"projectId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
