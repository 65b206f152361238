package model

import "time"

// OverallStatistics 全局统计。AveragePercentage 是各次提交百分比的简单平均，
// 不是总得分除以总题数，章节题量不同时两者会有差异。
type OverallStatistics struct {
	TotalChapters     int64   `json:"totalChapters"`
	TotalAttempts     int64   `json:"totalAttempts"`
	UniqueStudents    int64   `json:"uniqueStudents"`
	AveragePercentage float64 `json:"averagePercentage"`
	AverageAccuracy   float64 `json:"averageAccuracy"`
	BestScore         int     `json:"bestScore"`
	BestPercentage    float64 `json:"bestPercentage"`
}

// ChapterStatistics 章节维度统计
type ChapterStatistics struct {
	ChapterID         uint    `json:"chapterId"`
	ChapterName       string  `json:"chapterName"`
	TotalAttempts     int64   `json:"totalAttempts"`
	BestScore         int     `json:"bestScore"`
	AveragePercentage float64 `json:"averagePercentage"`
	AverageAccuracy   float64 `json:"averageAccuracy"`
	UniqueStudents    int64   `json:"uniqueStudents"`
}

// TopPerformer 单次提交维度的最佳成绩条目
type TopPerformer struct {
	Rank           int       `json:"rank"`
	StudentName    string    `json:"studentName"`
	ChapterName    string    `json:"chapterName"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     float64   `json:"percentage"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// LeaderboardEntry 学生累计维度排行条目。Percentage 按总得分/总题数合并计算，
// 与 OverallStatistics 的简单平均口径不同。
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	StudentName    string  `json:"studentName"`
	Attempts       int64   `json:"attempts"`
	TotalScore     int64   `json:"totalScore"`
	TotalQuestions int64   `json:"totalQuestions"`
	Percentage     float64 `json:"percentage"`
}

// ChapterSummary 单章节汇总
type ChapterSummary struct {
	TotalAttempts     int64   `json:"totalAttempts"`
	AverageScore      float64 `json:"averageScore"`
	AverageTotal      float64 `json:"averageTotal"`
	AveragePercentage float64 `json:"averagePercentage"`
	UniqueStudents    int64   `json:"uniqueStudents"`
}

// AttemptDetail 带章节名的答题记录明细，用于总览与图表
type AttemptDetail struct {
	ID             uint      `json:"id"`
	StudentName    string    `json:"studentName"`
	AttemptNumber  int       `json:"attemptNumber"`
	ChapterID      uint      `json:"chapterId"`
	ChapterName    string    `json:"chapterName"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     float64   `json:"percentage"`
	TimeTaken      int       `json:"timeTaken"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
