package repository

import (
	"omr_exam_backend/internal/model"

	"gorm.io/gorm"
)

type ExportRecordRepository struct {
	DB *gorm.DB
}

func NewExportRecordRepository(db *gorm.DB) *ExportRecordRepository {
	return &ExportRecordRepository{DB: db}
}

func (r *ExportRecordRepository) Create(record *model.ExportRecord) error {
	return r.DB.Create(record).Error
}

func (r *ExportRecordRepository) FindByID(id string) (*model.ExportRecord, error) {
	var rec model.ExportRecord
	if err := r.DB.Where("id = ?", id).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *ExportRecordRepository) FindByAttempt(attemptID uint) ([]model.ExportRecord, error) {
	var records []model.ExportRecord
	err := r.DB.Where("attempt_id = ?", attemptID).Order("created_at desc").Find(&records).Error
	return records, err
}
