package models

import (
	"time"
)

// Registration is one wallet's giveaway ticket. A wallet registers at most once;
// the unique index on Wallet is what enforces that.
type Registration struct {
	ID      string `gorm:"primaryKey" json:"id"`
	Wallet  string `gorm:"uniqueIndex;not null" json:"wallet"`
	TxHash  string `gorm:"column:tx_hash;not null" json:"tx_hash"`
	Index   int64  `gorm:"column:index;not null" json:"index"` // lottery index chosen on-chain
	Seed    string `gorm:"not null" json:"seed"`
	Ticket  string `gorm:"not null" json:"ticket"`
	Reward  string `gorm:"not null" json:"reward"`

	// Client-supplied epoch millis from the signing flow, kept verbatim.
	Timestamp int64 `gorm:"not null" json:"timestamp"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// RegistrationRequest is the save-ticket request body. Field names match the
// frontend payload (txHash, not tx_hash).
type RegistrationRequest struct {
	Wallet    string `json:"wallet"`
	TxHash    string `json:"txHash"`
	Index     int64  `json:"index"`
	Seed      string `json:"seed"`
	Ticket    string `json:"ticket"`
	Reward    string `json:"reward"`
	Timestamp int64  `json:"timestamp"`
}
