package repository

import (
	"omr_exam_backend/internal/model"

	"gorm.io/gorm"
)

type ChapterRepository struct {
	DB *gorm.DB
}

func NewChapterRepository(db *gorm.DB) *ChapterRepository {
	return &ChapterRepository{DB: db}
}

func (r *ChapterRepository) Create(chapter *model.Chapter) error {
	return r.DB.Create(chapter).Error
}

func (r *ChapterRepository) FindByID(id uint) (*model.Chapter, error) {
	var c model.Chapter
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChapterRepository) FindByName(name string) (*model.Chapter, error) {
	var c model.Chapter
	if err := r.DB.Where("name = ?", name).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ChapterRepository) FindAll() ([]model.Chapter, error) {
	var chapters []model.Chapter
	err := r.DB.Order("created_at asc, id asc").Find(&chapters).Error
	return chapters, err
}

func (r *ChapterRepository) Update(chapter *model.Chapter) error {
	return r.DB.Save(chapter).Error
}

// Delete 删除章节并级联清理其答题记录与导出记录，单事务完成
func (r *ChapterRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var attemptIDs []uint
		if err := tx.Model(&model.Attempt{}).Where("chapter_id = ?", id).Pluck("id", &attemptIDs).Error; err != nil {
			return err
		}
		if len(attemptIDs) > 0 {
			if err := tx.Where("attempt_id IN ?", attemptIDs).Delete(&model.ExportRecord{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&model.Attempt{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Chapter{}, id).Error
	})
}

func (r *ChapterRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Chapter{}).Count(&count).Error
	return count, err
}
