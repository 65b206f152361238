package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"omr_exam_backend/internal/model"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/internal/util"

	"gorm.io/gorm"
)

type ChapterService struct {
	Repo      *repository.ChapterRepository
	Analytics *AnalyticsService
	Exports   *ExportService
}

func NewChapterService(repo *repository.ChapterRepository, analytics *AnalyticsService, exports *ExportService) *ChapterService {
	return &ChapterService{Repo: repo, Analytics: analytics, Exports: exports}
}

type CreateChapterRequest struct {
	Name          string   `json:"name" binding:"required"`
	QuestionCount int      `json:"questionCount" binding:"required,min=1"`
	OptionCount   int      `json:"optionCount" binding:"required,min=2"`
	AnswerKey     []string `json:"answerKey" binding:"required"`
}

type UpdateChapterRequest struct {
	Name      string   `json:"name"`
	AnswerKey []string `json:"answerKey"`
}

// ValidateChapter 校验章节定义，返回指明具体字段的校验错误。
// answerKey 应当已经统一为大写。
func ValidateChapter(name string, questionCount, optionCount int, answerKey []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name must not be empty", util.ErrValidation)
	}
	if questionCount < 1 {
		return fmt.Errorf("%w: question count must be at least 1", util.ErrValidation)
	}
	if optionCount < model.MinOptionCount || optionCount > model.MaxOptionCount {
		return fmt.Errorf("%w: option count must be between %d and %d",
			util.ErrValidation, model.MinOptionCount, model.MaxOptionCount)
	}
	if len(answerKey) != questionCount {
		return fmt.Errorf("%w: answer key has %d entries, chapter has %d questions",
			util.ErrValidation, len(answerKey), questionCount)
	}
	for i, letter := range answerKey {
		if !model.IsValidLetter(letter, optionCount) {
			return fmt.Errorf("%w: answer %d is %q, valid options are %s",
				util.ErrValidation, i+1, letter, strings.Join(model.LettersFor(optionCount), "/"))
		}
	}
	return nil
}

func (s *ChapterService) CreateChapter(req CreateChapterRequest) (*model.Chapter, error) {
	key := NormalizeAnswers(req.AnswerKey)
	if err := ValidateChapter(req.Name, req.QuestionCount, req.OptionCount, key); err != nil {
		return nil, err
	}

	chapter := &model.Chapter{
		Name:          req.Name,
		QuestionCount: req.QuestionCount,
		OptionCount:   req.OptionCount,
		AnswerKey:     key,
	}
	if err := s.Repo.Create(chapter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrDuplicateChapterName
		}
		return nil, err
	}

	s.invalidateAnalytics()
	return chapter, nil
}

func (s *ChapterService) GetChapter(id uint) (*model.Chapter, error) {
	chapter, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	return chapter, nil
}

func (s *ChapterService) GetChapterByName(name string) (*model.Chapter, error) {
	chapter, err := s.Repo.FindByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	return chapter, nil
}

func (s *ChapterService) ListChapters() ([]model.Chapter, error) {
	return s.Repo.FindAll()
}

// UpdateChapter 支持改名与替换答案（长度必须保持不变）。
// 题目数与选项数创建后不可修改，历史成绩不会按新答案重算。
func (s *ChapterService) UpdateChapter(id uint, req UpdateChapterRequest) (*model.Chapter, error) {
	chapter, err := s.GetChapter(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		if strings.TrimSpace(req.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", util.ErrValidation)
		}
		chapter.Name = req.Name
	}

	if len(req.AnswerKey) > 0 {
		key := NormalizeAnswers(req.AnswerKey)
		if len(key) != chapter.QuestionCount {
			return nil, fmt.Errorf("%w: answer key has %d entries, chapter has %d questions",
				util.ErrValidation, len(key), chapter.QuestionCount)
		}
		for i, letter := range key {
			if !model.IsValidLetter(letter, chapter.OptionCount) {
				return nil, fmt.Errorf("%w: answer %d is %q, valid options are %s",
					util.ErrValidation, i+1, letter, strings.Join(model.LettersFor(chapter.OptionCount), "/"))
			}
		}
		chapter.AnswerKey = key
	}

	if err := s.Repo.Update(chapter); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrDuplicateChapterName
		}
		return nil, err
	}

	s.invalidateAnalytics()
	return chapter, nil
}

// DeleteChapter 删除章节并级联清除其下全部答题记录与归档报表
func (s *ChapterService) DeleteChapter(ctx context.Context, id uint) error {
	if _, err := s.GetChapter(id); err != nil {
		return err
	}
	if s.Exports != nil {
		s.Exports.CleanupChapter(ctx, id)
	}
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	s.invalidateAnalytics()
	return nil
}

func (s *ChapterService) invalidateAnalytics() {
	if s.Analytics != nil {
		s.Analytics.InvalidateCache()
	}
}
