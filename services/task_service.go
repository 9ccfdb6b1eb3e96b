package services

import (
	"payu-draw-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskService struct {
	DB *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{DB: db}
}

func (s *TaskService) Available() bool {
	return s.DB != nil
}

// LogClick appends one click row. No dedup: a user clicking the same platform
// twice is two rows.
func (s *TaskService) LogClick(req models.TaskClickRequest) (*models.TaskClick, error) {
	click := models.TaskClick{
		ID:       uuid.NewString(),
		UserID:   req.Wallet,
		Platform: req.Platform,
		Handle:   req.Handle,
	}
	if err := s.DB.Create(&click).Error; err != nil {
		return nil, err
	}
	return &click, nil
}

func (s *TaskService) HistoryByWallet(wallet string) ([]models.TaskClick, error) {
	clicks := []models.TaskClick{}
	if err := s.DB.Where("user_id = ?", wallet).Find(&clicks).Error; err != nil {
		return nil, err
	}
	return clicks, nil
}

func (s *TaskService) ListAll() ([]models.TaskClick, error) {
	clicks := []models.TaskClick{}
	if err := s.DB.Order("clicked_at DESC").Find(&clicks).Error; err != nil {
		return nil, err
	}
	return clicks, nil
}

func (s *TaskService) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.TaskClick{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
