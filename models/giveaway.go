package models

import (
	"time"
)

// GiveawaySettingsID is the fixed key of the singleton settings row.
const GiveawaySettingsID = "main"

// GiveawaySettings is a single-row table holding the countdown state. The row
// is absent until an admin starts the giveaway, then updated in place.
type GiveawaySettings struct {
	ID        string     `gorm:"primaryKey" json:"id"`
	Started   bool       `gorm:"default:false" json:"started"`
	StartTime *time.Time `gorm:"column:start_time" json:"start_time"`
}
