package models

import (
	"time"
)

// StatusCheck is a diagnostic ping record, not part of the giveaway domain.
type StatusCheck struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	ClientName string    `gorm:"not null" json:"client_name"`
	Timestamp  time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

// StatusCheckRequest is the create-status request body.
type StatusCheckRequest struct {
	ClientName string `json:"client_name"`
}
