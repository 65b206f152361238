package model

import "time"

// Attempt 一次已评分的提交，创建后不再修改。
// (chapter_id, student_name, attempt_number) 的唯一索引保证
// 同一学生在同一章节下的序号不会重复。
//
// swagger:model Attempt
type Attempt struct {
	ID               uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	ChapterID        uint       `gorm:"not null;uniqueIndex:uniq_attempt_seq,priority:1" json:"chapterId"`
	StudentName      string     `gorm:"size:255;not null;uniqueIndex:uniq_attempt_seq,priority:2" json:"studentName"`
	SubmittedAnswers AnswerList `gorm:"type:json;not null" json:"submittedAnswers"`
	Score            int        `gorm:"not null" json:"score"`
	TotalQuestions   int        `gorm:"not null" json:"totalQuestions"`
	AttemptNumber    int        `gorm:"not null;uniqueIndex:uniq_attempt_seq,priority:3" json:"attemptNumber"`
	TimeTaken        int        `gorm:"default:0" json:"timeTaken"` // 秒
	SubmittedAt      time.Time  `gorm:"autoCreateTime;index" json:"submittedAt"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// Percentage 返回该次提交的百分比成绩
func (a *Attempt) Percentage() float64 {
	if a.TotalQuestions == 0 {
		return 0
	}
	return float64(a.Score) / float64(a.TotalQuestions) * 100
}
