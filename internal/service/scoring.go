package service

import (
	"fmt"
	"strings"

	"omr_exam_backend/internal/model"
	"omr_exam_backend/internal/util"
)

// PassPercentage 及格线
const PassPercentage = 50.0

// NormalizeAnswers 将字母统一为大写并去除首尾空白，空串表示未作答
func NormalizeAnswers(answers []string) model.AnswerList {
	normalized := make(model.AnswerList, len(answers))
	for i, a := range answers {
		normalized[i] = strings.ToUpper(strings.TrimSpace(a))
	}
	return normalized
}

// ValidateSubmittedAnswers 校验提交的答案序列。
// 允许提交少于题目数量（缺项按未作答计），多于题目数量或
// 出现超出选项范围的字母则返回校验错误。
func ValidateSubmittedAnswers(answers []string, questionCount, optionCount int) error {
	if len(answers) > questionCount {
		return fmt.Errorf("%w: got %d answers, chapter has %d questions", util.ErrValidation, len(answers), questionCount)
	}
	for i, a := range answers {
		if a == "" {
			continue
		}
		if !model.IsValidLetter(a, optionCount) {
			return fmt.Errorf("%w: answer %d is %q, valid options are %s",
				util.ErrValidation, i+1, a, strings.Join(model.LettersFor(optionCount), "/"))
		}
	}
	return nil
}

// PadAnswers 将提交补齐到题目数量，缺项置为空串
func PadAnswers(answers []string, questionCount int) model.AnswerList {
	padded := make(model.AnswerList, questionCount)
	copy(padded, answers)
	return padded
}

// Score 逐题精确比较提交与答案，未作答永远判错。
// 返回得分与每题对错，无部分得分也无倒扣。
func Score(submitted, key []string) (int, []bool) {
	perQuestion := make([]bool, len(key))
	score := 0
	for i := range key {
		if i < len(submitted) && submitted[i] != "" && submitted[i] == key[i] {
			perQuestion[i] = true
			score++
		}
	}
	return score, perQuestion
}

// GradeFor 按百分比评定等级
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	case percentage >= 50:
		return "E"
	default:
		return "F"
	}
}
