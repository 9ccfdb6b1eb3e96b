package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"payu-draw-api/models"
	"payu-draw-api/utils"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// ExportService snapshots all registrations into a CSV on R2 so the team can
// pull the participant list without direct database access.
type ExportService struct {
	DB    *gorm.DB
	Label string
}

func NewExportService(db *gorm.DB) *ExportService {
	label := os.Getenv("EXPORT_LABEL")
	if label == "" {
		label = "payu draw"
	}
	return &ExportService{DB: db, Label: label}
}

func (s *ExportService) Available() bool {
	return s.DB != nil && utils.R2Enabled()
}

// ExportRegistrations writes every registration (newest first) to a CSV object
// and returns its public URL and the row count.
func (s *ExportService) ExportRegistrations() (string, int, error) {
	regs := []models.Registration{}
	if err := s.DB.Order("created_at DESC").Find(&regs).Error; err != nil {
		return "", 0, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "wallet", "tx_hash", "index", "seed", "ticket", "reward", "timestamp", "created_at"}); err != nil {
		return "", 0, err
	}
	for _, reg := range regs {
		row := []string{
			reg.ID,
			reg.Wallet,
			reg.TxHash,
			strconv.FormatInt(reg.Index, 10),
			reg.Seed,
			reg.Ticket,
			reg.Reward,
			strconv.FormatInt(reg.Timestamp, 10),
			reg.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return "", 0, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", 0, err
	}

	key := fmt.Sprintf("exports/%s-%s.csv", slug.Make(s.Label), time.Now().UTC().Format("20060102-150405"))
	url, err := utils.UploadBytesToR2(key, "text/csv", buf.Bytes())
	if err != nil {
		return "", 0, err
	}
	return url, len(regs), nil
}
