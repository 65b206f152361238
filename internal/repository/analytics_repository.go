package repository

import (
	"omr_exam_backend/internal/model"

	"gorm.io/gorm"
)

type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// OverallStatistics 全局统计，student 非空时只统计该学生的提交。
// 百分比口径是各次提交百分比的简单平均，乘以 100.0 避免整数除法。
func (r *AnalyticsRepository) OverallStatistics(student string) (*model.OverallStatistics, error) {
	stats := &model.OverallStatistics{}

	if err := r.DB.Model(&model.Chapter{}).Count(&stats.TotalChapters).Error; err != nil {
		return nil, err
	}

	attempts := r.DB.Model(&model.Attempt{})
	if student != "" {
		attempts = attempts.Where("student_name = ?", student)
	}
	if err := attempts.Count(&stats.TotalAttempts).Error; err != nil {
		return nil, err
	}

	students := r.DB.Model(&model.Attempt{}).Distinct("student_name")
	if student != "" {
		students = students.Where("student_name = ?", student)
	}
	if err := students.Count(&stats.UniqueStudents).Error; err != nil {
		return nil, err
	}

	var agg struct {
		AvgPercentage  float64
		AvgAccuracy    float64
		BestPercentage float64
		BestScore      int
	}
	query := r.DB.Model(&model.Attempt{}).Select(
		"COALESCE(AVG(score * 100.0 / total_questions), 0) AS avg_percentage, " +
			"COALESCE(AVG(score * 1.0 / total_questions), 0) AS avg_accuracy, " +
			"COALESCE(MAX(score * 100.0 / total_questions), 0) AS best_percentage, " +
			"COALESCE(MAX(score), 0) AS best_score")
	if student != "" {
		query = query.Where("student_name = ?", student)
	}
	if err := query.Scan(&agg).Error; err != nil {
		return nil, err
	}

	stats.AveragePercentage = agg.AvgPercentage
	stats.AverageAccuracy = agg.AvgAccuracy * 100
	stats.BestPercentage = agg.BestPercentage
	stats.BestScore = agg.BestScore
	return stats, nil
}

// ChapterStatistics 章节维度统计，只包含至少有一次提交的章节，按提交数降序
func (r *AnalyticsRepository) ChapterStatistics() ([]model.ChapterStatistics, error) {
	var rows []struct {
		ChapterID     uint
		ChapterName   string
		TotalAttempts int64
		BestScore     int
		AvgPercentage float64
		AvgAccuracy   float64
		UniqueCount   int64
	}
	err := r.DB.Model(&model.Attempt{}).
		Select("chapters.id AS chapter_id, " +
			"chapters.name AS chapter_name, " +
			"COUNT(attempts.id) AS total_attempts, " +
			"COALESCE(MAX(attempts.score), 0) AS best_score, " +
			"COALESCE(AVG(attempts.score * 100.0 / attempts.total_questions), 0) AS avg_percentage, " +
			"COALESCE(AVG(attempts.score * 1.0 / attempts.total_questions), 0) AS avg_accuracy, " +
			"COUNT(DISTINCT attempts.student_name) AS unique_count").
		Joins("JOIN chapters ON chapters.id = attempts.chapter_id").
		Group("chapters.id, chapters.name").
		Order("total_attempts DESC, chapters.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := make([]model.ChapterStatistics, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, model.ChapterStatistics{
			ChapterID:         row.ChapterID,
			ChapterName:       row.ChapterName,
			TotalAttempts:     row.TotalAttempts,
			BestScore:         row.BestScore,
			AveragePercentage: row.AvgPercentage,
			AverageAccuracy:   row.AvgAccuracy * 100,
			UniqueStudents:    row.UniqueCount,
		})
	}
	return stats, nil
}

// TopPerformers 按单次提交百分比降序，平手按提交时间先后，再按主键
func (r *AnalyticsRepository) TopPerformers(limit int) ([]model.TopPerformer, error) {
	var performers []model.TopPerformer
	err := r.DB.Model(&model.Attempt{}).
		Select("attempts.student_name, " +
			"chapters.name AS chapter_name, " +
			"attempts.score, " +
			"attempts.total_questions, " +
			"attempts.score * 100.0 / attempts.total_questions AS percentage, " +
			"attempts.submitted_at").
		Joins("JOIN chapters ON chapters.id = attempts.chapter_id").
		Order("percentage DESC, attempts.submitted_at ASC, attempts.id ASC").
		Limit(limit).
		Scan(&performers).Error
	return performers, err
}

// StudentLeaderboard 学生累计排行：总得分 / 总题数 的合并百分比
func (r *AnalyticsRepository) StudentLeaderboard(limit int) ([]model.LeaderboardEntry, error) {
	var entries []model.LeaderboardEntry
	err := r.DB.Model(&model.Attempt{}).
		Select("student_name, " +
			"COUNT(*) AS attempts, " +
			"SUM(score) AS total_score, " +
			"SUM(total_questions) AS total_questions, " +
			"ROUND(SUM(score) * 100.0 / SUM(total_questions), 2) AS percentage").
		Group("student_name").
		Order("percentage DESC, student_name ASC").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

// AttemptDetails 带章节名的全部答题明细，最近提交在前
func (r *AnalyticsRepository) AttemptDetails(student string) ([]model.AttemptDetail, error) {
	query := r.DB.Model(&model.Attempt{}).
		Select("attempts.id, " +
			"attempts.student_name, " +
			"attempts.attempt_number, " +
			"attempts.chapter_id, " +
			"chapters.name AS chapter_name, " +
			"attempts.score, " +
			"attempts.total_questions, " +
			"attempts.score * 100.0 / attempts.total_questions AS percentage, " +
			"attempts.time_taken, " +
			"attempts.submitted_at").
		Joins("JOIN chapters ON chapters.id = attempts.chapter_id").
		Order("attempts.submitted_at DESC, attempts.id DESC")
	if student != "" {
		query = query.Where("attempts.student_name = ?", student)
	}
	var details []model.AttemptDetail
	err := query.Scan(&details).Error
	return details, err
}

// ChapterSummary 单章节汇总
func (r *AnalyticsRepository) ChapterSummary(chapterID uint) (*model.ChapterSummary, error) {
	var row struct {
		TotalAttempts int64
		AvgScore      float64
		AvgTotal      float64
		AvgPercentage float64
		UniqueCount   int64
	}
	err := r.DB.Model(&model.Attempt{}).
		Select("COUNT(*) AS total_attempts, "+
			"COALESCE(AVG(score * 1.0), 0) AS avg_score, "+
			"COALESCE(AVG(total_questions * 1.0), 0) AS avg_total, "+
			"COALESCE(AVG(score * 100.0 / total_questions), 0) AS avg_percentage, "+
			"COUNT(DISTINCT student_name) AS unique_count").
		Where("chapter_id = ?", chapterID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &model.ChapterSummary{
		TotalAttempts:     row.TotalAttempts,
		AverageScore:      row.AvgScore,
		AverageTotal:      row.AvgTotal,
		AveragePercentage: row.AvgPercentage,
		UniqueStudents:    row.UniqueCount,
	}, nil
}
