package repository

import (
	"omr_exam_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// CreateWithNumber 在同一事务内计算序号并插入，
// 序号 = 该 (chapter_id, student_name) 已有记录数 + 1。
// 并发竞争由 uniq_attempt_seq 唯一索引兜底，冲突时返回 gorm.ErrDuplicatedKey。
func (r *AttemptRepository) CreateWithNumber(attempt *model.Attempt) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Attempt{}).
			Where("chapter_id = ? AND student_name = ?", attempt.ChapterID, attempt.StudentName).
			Count(&count).Error; err != nil {
			return err
		}
		attempt.AttemptNumber = int(count) + 1
		return tx.Create(attempt).Error
	})
}

func (r *AttemptRepository) FindByID(id uint) (*model.Attempt, error) {
	var a model.Attempt
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByChapter 返回章节下的答题记录，可按学生过滤，按序号升序
func (r *AttemptRepository) FindByChapter(chapterID uint, studentName string) ([]model.Attempt, error) {
	query := r.DB.Where("chapter_id = ?", chapterID)
	if studentName != "" {
		query = query.Where("student_name = ?", studentName)
	}
	var attempts []model.Attempt
	err := query.Order("attempt_number asc").Find(&attempts).Error
	return attempts, err
}

// FindByChapterName 按章节名取答题记录，最近提交在前
func (r *AttemptRepository) FindByChapterName(name string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Joins("JOIN chapters ON chapters.id = attempts.chapter_id").
		Where("chapters.name = ?", name).
		Order("attempts.submitted_at desc, attempts.id desc").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindAll() ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Order("submitted_at desc, id desc").Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) CountByChapterAndStudent(chapterID uint, studentName string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).
		Where("chapter_id = ? AND student_name = ?", chapterID, studentName).
		Count(&count).Error
	return count, err
}

func (r *AttemptRepository) CountByChapter(chapterID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).Where("chapter_id = ?", chapterID).Count(&count).Error
	return count, err
}
