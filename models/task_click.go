package models

import (
	"time"
)

// TaskClick records one user clicking one promotional task (telegram, x,
// instagram_story, ...). Append-only; repeat clicks are all kept.
type TaskClick struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"column:user_id;not null" json:"user_id"` // wallet address, not validated against registrations
	Platform  string    `gorm:"not null" json:"platform"`
	Handle    *string   `json:"handle"`
	ClickedAt time.Time `gorm:"autoCreateTime" json:"clicked_at"`
}

// TaskClickRequest is the task-click request body.
type TaskClickRequest struct {
	Wallet   string  `json:"wallet"`
	Platform string  `json:"platform"`
	Handle   *string `json:"handle"`
}
