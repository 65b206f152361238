package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// AnswerList 以 JSON 数组形式持久化的选项字母序列，如 ["A","B","C"]。
// 空字符串元素表示未作答。
type AnswerList []string

func (l AnswerList) Value() (driver.Value, error) {
	if l == nil {
		l = AnswerList{}
	}
	return json.Marshal(l)
}

func (l *AnswerList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into AnswerList", value)
	}
}

// swagger:model Chapter
type Chapter struct {
	BaseModel
	Name          string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	QuestionCount int        `gorm:"not null" json:"questionCount"`
	OptionCount   int        `gorm:"not null" json:"optionCount"`
	AnswerKey     AnswerList `gorm:"type:json;not null" json:"answerKey"`
	Attempts      []Attempt  `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Chapter) TableName() string {
	return "chapters"
}
