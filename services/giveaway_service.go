package services

import (
	"errors"
	"time"

	"payu-draw-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GiveawayService struct {
	DB *gorm.DB
}

func NewGiveawayService(db *gorm.DB) *GiveawayService {
	return &GiveawayService{DB: db}
}

func (s *GiveawayService) Available() bool {
	return s.DB != nil
}

// Start upserts the singleton settings row. Calling it again moves start_time
// forward to the new call; there is never more than one row.
func (s *GiveawayService) Start(now time.Time) (*models.GiveawaySettings, error) {
	setting := models.GiveawaySettings{
		ID:        models.GiveawaySettingsID,
		Started:   true,
		StartTime: &now,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"started", "start_time"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

// Status returns (nil, nil) when the giveaway was never started.
func (s *GiveawayService) Status() (*models.GiveawaySettings, error) {
	var setting models.GiveawaySettings
	err := s.DB.First(&setting, "id = ?", models.GiveawaySettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}
