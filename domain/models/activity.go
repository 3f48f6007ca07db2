package models

import (
	"time"
)

// Activity is an immutable audit entry. The system only ever inserts and
// reads these rows; there is no update or delete path.
//
// Action is a human-readable sentence built at write time. TaskID is empty
// for deletions (the task row is already gone).
type Activity struct {
	ID        string    `gorm:"primaryKey;size:64" json:"id"`
	UserID    string    `gorm:"size:64" json:"userId"`
	Action    string    `gorm:"not null" json:"action"`
	TaskID    *string   `gorm:"size:64" json:"taskId,omitempty"`
	ProjectID *string   `gorm:"size:64" json:"projectId,omitempty"`
	CreatedAt time.Time `gorm:"index:idx_activities_created_at,sort:desc" json:"createdAt"`
}

func (Activity) TableName() string {
	return "activities"
}
