package services

import (
	"errors"

	"payu-draw-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RegistrationService struct {
	DB *gorm.DB
}

// NewRegistrationService accepts a nil db; the service then reports
// unavailability instead of panicking (degraded mode without a database URL).
func NewRegistrationService(db *gorm.DB) *RegistrationService {
	return &RegistrationService{DB: db}
}

func (s *RegistrationService) Available() bool {
	return s.DB != nil
}

// SaveTicket stores a wallet's ticket exactly once. The second return value is
// false when the wallet was already registered and the existing row is returned
// instead. Two concurrent first-time calls can both miss the existence check;
// the loser's insert hits the unique index on wallet and is converted back into
// the "already registered" path by re-reading the winner's row.
func (s *RegistrationService) SaveTicket(req models.RegistrationRequest) (*models.Registration, bool, error) {
	var existing models.Registration
	err := s.DB.Where("wallet = ?", req.Wallet).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	reg := models.Registration{
		ID:        uuid.NewString(),
		Wallet:    req.Wallet,
		TxHash:    req.TxHash,
		Index:     req.Index,
		Seed:      req.Seed,
		Ticket:    req.Ticket,
		Reward:    req.Reward,
		Timestamp: req.Timestamp,
	}
	if err := s.DB.Create(&reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := s.DB.Where("wallet = ?", req.Wallet).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}

	// Re-read so the response carries the stored row, server times included.
	var saved models.Registration
	if err := s.DB.First(&saved, "id = ?", reg.ID).Error; err != nil {
		return nil, false, err
	}
	return &saved, true, nil
}

// GetByWallet returns gorm.ErrRecordNotFound when the wallet never registered.
func (s *RegistrationService) GetByWallet(wallet string) (*models.Registration, error) {
	var reg models.Registration
	if err := s.DB.Where("wallet = ?", wallet).First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (s *RegistrationService) ListAll() ([]models.Registration, error) {
	regs := []models.Registration{}
	if err := s.DB.Order("created_at DESC").Find(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (s *RegistrationService) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Registration{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
