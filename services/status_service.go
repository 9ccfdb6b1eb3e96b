package services

import (
	"payu-draw-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// statusListCap bounds the diagnostic listing; nobody pages status checks.
const statusListCap = 1000

type StatusService struct {
	DB *gorm.DB
}

func NewStatusService(db *gorm.DB) *StatusService {
	return &StatusService{DB: db}
}

func (s *StatusService) Available() bool {
	return s.DB != nil
}

func (s *StatusService) Create(clientName string) (*models.StatusCheck, error) {
	check := models.StatusCheck{
		ID:         uuid.NewString(),
		ClientName: clientName,
	}
	if err := s.DB.Create(&check).Error; err != nil {
		return nil, err
	}
	return &check, nil
}

func (s *StatusService) List() ([]models.StatusCheck, error) {
	checks := []models.StatusCheck{}
	if err := s.DB.Order("timestamp DESC").Limit(statusListCap).Find(&checks).Error; err != nil {
		return nil, err
	}
	return checks, nil
}
