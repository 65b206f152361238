package service

import (
	"errors"
	"fmt"
	"strings"

	"omr_exam_backend/internal/model"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/internal/util"
	"omr_exam_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type AttemptService struct {
	Repo        *repository.AttemptRepository
	ChapterRepo *repository.ChapterRepository
	Analytics   *AnalyticsService
}

func NewAttemptService(repo *repository.AttemptRepository, chapterRepo *repository.ChapterRepository, analytics *AnalyticsService) *AttemptService {
	return &AttemptService{Repo: repo, ChapterRepo: chapterRepo, Analytics: analytics}
}

type SubmitExamRequest struct {
	ChapterID        uint     `json:"chapterId" binding:"required"`
	StudentName      string   `json:"studentName" binding:"required"`
	SubmittedAnswers []string `json:"submittedAnswers" binding:"required"`
	TimeTaken        int      `json:"timeTaken"`
}

type SubmitExamResponse struct {
	AttemptID      uint             `json:"attemptId"`
	Score          int              `json:"score"`
	Total          int              `json:"total"`
	Percentage     float64          `json:"percentage"`
	Grade          string           `json:"grade"`
	Passed         bool             `json:"passed"`
	TimeTaken      int              `json:"timeTaken"`
	AttemptNumber  int              `json:"attemptNumber"`
	CorrectAnswers model.AnswerList `json:"correctAnswers"`
	PerQuestion    []bool           `json:"perQuestion"`
}

// AttemptResult 带评分上下文的答题记录，用于成绩列表
type AttemptResult struct {
	model.Attempt
	ChapterName    string           `json:"chapterName"`
	CorrectAnswers model.AnswerList `json:"correctAnswers"`
	Percentage     float64          `json:"percentage"`
	Grade          string           `json:"grade"`
	Passed         bool             `json:"passed"`
}

// AnswerComparisonRow 单题的提交与答案对照
type AnswerComparisonRow struct {
	Question      int    `json:"question"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

// SubmitAttempt 对提交评分并持久化。
// 学生姓名按原样保存与比较，不做大小写或空白归一化，
// "Alice" 与 "alice" 是两条独立的序号序列。
func (s *AttemptService) SubmitAttempt(req SubmitExamRequest) (*SubmitExamResponse, error) {
	if strings.TrimSpace(req.StudentName) == "" {
		return nil, fmt.Errorf("%w: student name must not be empty", util.ErrValidation)
	}

	chapter, err := s.ChapterRepo.FindByID(req.ChapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}

	answers := NormalizeAnswers(req.SubmittedAnswers)
	if err := ValidateSubmittedAnswers(answers, chapter.QuestionCount, chapter.OptionCount); err != nil {
		return nil, err
	}
	padded := PadAnswers(answers, chapter.QuestionCount)

	score, perQuestion := Score(padded, chapter.AnswerKey)

	attempt := &model.Attempt{
		ChapterID:        chapter.ID,
		StudentName:      req.StudentName,
		SubmittedAnswers: padded,
		Score:            score,
		TotalQuestions:   chapter.QuestionCount,
		TimeTaken:        req.TimeTaken,
	}

	// 唯一索引冲突说明撞上了并发提交的序号，透明重试一次
	if err := s.Repo.CreateWithNumber(attempt); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		attempt.ID = 0
		if err := s.Repo.CreateWithNumber(attempt); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, util.ErrConcurrencyConflict
			}
			return nil, err
		}
	}

	percentage := attempt.Percentage()
	passed := percentage >= PassPercentage
	monitoring.RecordSubmission(passed, score, chapter.QuestionCount)

	if s.Analytics != nil {
		s.Analytics.InvalidateCache()
	}

	return &SubmitExamResponse{
		AttemptID:      attempt.ID,
		Score:          score,
		Total:          chapter.QuestionCount,
		Percentage:     percentage,
		Grade:          GradeFor(percentage),
		Passed:         passed,
		TimeTaken:      attempt.TimeTaken,
		AttemptNumber:  attempt.AttemptNumber,
		CorrectAnswers: chapter.AnswerKey,
		PerQuestion:    perQuestion,
	}, nil
}

func (s *AttemptService) GetAttempt(id uint) (*model.Attempt, error) {
	attempt, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return attempt, nil
}

// GetAttempts 返回章节下的答题记录，可按学生过滤，按序号升序
func (s *AttemptService) GetAttempts(chapterID uint, studentName string) ([]model.Attempt, error) {
	if _, err := s.ChapterRepo.FindByID(chapterID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}
	return s.Repo.FindByChapter(chapterID, studentName)
}

func (s *AttemptService) ListAllAttempts() ([]model.Attempt, error) {
	return s.Repo.FindAll()
}

// ResultsForChapter 按章节名返回全部成绩，最近提交在前
func (s *AttemptService) ResultsForChapter(chapterName string) ([]AttemptResult, error) {
	chapter, err := s.ChapterRepo.FindByName(chapterName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}

	attempts, err := s.Repo.FindByChapterName(chapterName)
	if err != nil {
		return nil, err
	}

	results := make([]AttemptResult, len(attempts))
	for i, a := range attempts {
		pct := a.Percentage()
		results[i] = AttemptResult{
			Attempt:        a,
			ChapterName:    chapter.Name,
			CorrectAnswers: chapter.AnswerKey,
			Percentage:     pct,
			Grade:          GradeFor(pct),
			Passed:         pct >= PassPercentage,
		}
	}
	return results, nil
}

// AnswerComparison 单次提交的逐题对照
func (s *AttemptService) AnswerComparison(attemptID uint) ([]AnswerComparisonRow, error) {
	attempt, err := s.GetAttempt(attemptID)
	if err != nil {
		return nil, err
	}
	chapter, err := s.ChapterRepo.FindByID(attempt.ChapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}

	rows := make([]AnswerComparisonRow, len(chapter.AnswerKey))
	for i, correct := range chapter.AnswerKey {
		submitted := ""
		if i < len(attempt.SubmittedAnswers) {
			submitted = attempt.SubmittedAnswers[i]
		}
		rows[i] = AnswerComparisonRow{
			Question:      i + 1,
			YourAnswer:    submitted,
			CorrectAnswer: correct,
			IsCorrect:     submitted != "" && submitted == correct,
		}
	}
	return rows, nil
}
