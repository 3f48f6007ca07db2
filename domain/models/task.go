package models

import (
	"time"
)

// Task statuses. Flat enum: every transition between the three states is
// allowed, there is no workflow graph.
const (
	StatusTodo       = "todo"
	StatusInProgress = "inProgress"
	StatusDone       = "done"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type Task struct {
	ID          string     `gorm:"primaryKey;size:64" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	Status      string     `gorm:"size:20;default:'todo';index" json:"status"`
	Priority    string     `gorm:"size:10;default:'medium'" json:"priority"`
	Labels      []string   `gorm:"serializer:json;type:jsonb" json:"labels"`
	AssigneeID  *string    `gorm:"size:64;index" json:"assigneeId"`
	CreatedBy   string     `gorm:"size:64" json:"createdBy"`
	DueDate     *time.Time `json:"dueDate"`
	Comments    []Comment  `gorm:"serializer:json;type:jsonb" json:"comments"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Task) TableName() string {
	return "tasks"
}

// Comment lives inside its parent task's comments column. It has no table
// of its own, so deleting the task takes the comments with it.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatusLabel maps a status value to its board column heading, the form
// used in activity messages.
func StatusLabel(status string) string {
	switch status {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusDone:
		return "Done"
	}
	return status
}
