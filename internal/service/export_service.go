package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"omr_exam_backend/internal/model"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/internal/util"
	"omr_exam_backend/pkg/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// 报表头部底色沿用默认主题的主色
const reportHeaderColor = "#6366f1"

type ExportService struct {
	Records  *repository.ExportRecordRepository
	Attempts *repository.AttemptRepository
	Chapters *repository.ChapterRepository
	Storage  *StorageService
}

func NewExportService(records *repository.ExportRecordRepository, attempts *repository.AttemptRepository, chapters *repository.ChapterRepository, storage *StorageService) *ExportService {
	return &ExportService{Records: records, Attempts: attempts, Chapters: chapters, Storage: storage}
}

// ExportAttempt 生成某次提交的 Excel 报表并归档到存储
func (s *ExportService) ExportAttempt(ctx context.Context, attemptID uint) (*model.ExportRecord, error) {
	attempt, err := s.Attempts.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	chapter, err := s.Chapters.FindByID(attempt.ChapterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrChapterNotFound
		}
		return nil, err
	}

	buf, err := BuildAttemptWorkbook(attempt, chapter)
	if err != nil {
		return nil, err
	}

	key := exportFileName(attempt.StudentName, chapter.Name, attempt.AttemptNumber, time.Now())
	size := int64(buf.Len())
	url, err := s.Storage.Upload(ctx, key, buf, size, util.MimeXLSX)
	if err != nil {
		return nil, err
	}

	record := &model.ExportRecord{
		AttemptID: attempt.ID,
		ObjectKey: key,
		URL:       url,
		Size:      size,
	}
	if err := s.Records.Create(record); err != nil {
		return nil, err
	}
	return record, nil
}

// DownloadExport 流式返回某次提交最近归档的报表，没有归档时先生成一份
func (s *ExportService) DownloadExport(ctx context.Context, attemptID uint) (*model.ExportRecord, io.ReadCloser, error) {
	records, err := s.Records.FindByAttempt(attemptID)
	if err != nil {
		return nil, nil, err
	}

	var record *model.ExportRecord
	if len(records) == 0 {
		record, err = s.ExportAttempt(ctx, attemptID)
		if err != nil {
			return nil, nil, err
		}
	} else {
		record = &records[0]
	}

	reader, err := s.Storage.Download(ctx, record.ObjectKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, util.ErrExportNotFound
		}
		return nil, nil, err
	}
	return record, reader, nil
}

// ListExports 返回某次提交的全部归档记录，最近的在前
func (s *ExportService) ListExports(attemptID uint) ([]model.ExportRecord, error) {
	if _, err := s.Attempts.FindByID(attemptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	return s.Records.FindByAttempt(attemptID)
}

// CleanupChapter 在章节删除前尽力清掉其下提交的已归档报表文件。
// 失败只记日志不阻断删除，报表可以随时重新生成。
func (s *ExportService) CleanupChapter(ctx context.Context, chapterID uint) {
	attempts, err := s.Attempts.FindByChapter(chapterID, "")
	if err != nil {
		logger.Log.Warn("查询章节提交失败，跳过报表清理", zap.Uint("chapterId", chapterID), zap.Error(err))
		return
	}
	for _, attempt := range attempts {
		records, err := s.Records.FindByAttempt(attempt.ID)
		if err != nil {
			logger.Log.Warn("查询归档记录失败", zap.Uint("attemptId", attempt.ID), zap.Error(err))
			continue
		}
		for _, record := range records {
			if err := s.Storage.Delete(ctx, record.ObjectKey); err != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Log.Warn("删除报表文件失败", zap.String("objectKey", record.ObjectKey), zap.Error(err))
			}
		}
	}
}

func exportFileName(student, chapter string, attemptNumber int, at time.Time) string {
	return fmt.Sprintf("exam_report_%s_%s_attempt%d_%s.xlsx",
		sanitizeFilePart(student), sanitizeFilePart(chapter), attemptNumber, at.Format(util.FileTimeFormat))
}

func sanitizeFilePart(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, s)
}

type workbookStyles struct {
	header    int
	cell      int
	summary   int
	correct   int
	incorrect int
}

func newWorkbookStyles(f *excelize.File) (*workbookStyles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "#000000", Style: 1},
		{Type: "top", Color: "#000000", Style: 1},
		{Type: "right", Color: "#000000", Style: 1},
		{Type: "bottom", Color: "#000000", Style: 1},
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{reportHeaderColor}},
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	cell, err := f.NewStyle(&excelize.Style{
		Border:    border,
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	summary, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: border,
	})
	if err != nil {
		return nil, err
	}
	correct, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#d4edda"}},
		Border: border,
	})
	if err != nil {
		return nil, err
	}
	incorrect, err := f.NewStyle(&excelize.Style{
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#f8d7da"}},
		Border: border,
	})
	if err != nil {
		return nil, err
	}

	return &workbookStyles{header: header, cell: cell, summary: summary, correct: correct, incorrect: incorrect}, nil
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			continue
		}
		f.SetCellValue(sheet, cell, v)
	}
}

// BuildAttemptWorkbook 生成四个工作表的成绩报表：
// 概要、逐题对照、成绩分析、题目明细。
func BuildAttemptWorkbook(attempt *model.Attempt, chapter *model.Chapter) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}

	for _, build := range []struct {
		name string
		fn   func(*excelize.File, string, *workbookStyles, *model.Attempt, *model.Chapter)
	}{
		{"Exam Summary", buildSummarySheet},
		{"Answer Comparison", buildComparisonSheet},
		{"Performance Analysis", buildAnalysisSheet},
		{"Question Details", buildDetailSheet},
	} {
		if _, err := f.NewSheet(build.name); err != nil {
			return nil, err
		}
		build.fn(f, build.name, styles, attempt, chapter)
	}

	// 删掉默认工作表后索引会移动，激活页要重新查
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}
	idx, err := f.GetSheetIndex("Exam Summary")
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)

	return f.WriteToBuffer()
}

func buildSummarySheet(f *excelize.File, sheet string, styles *workbookStyles, attempt *model.Attempt, chapter *model.Chapter) {
	f.SetColWidth(sheet, "A", "A", 20)
	f.SetColWidth(sheet, "B", "B", 30)

	setRow(f, sheet, 1, "Field", "Value")
	rows := [][2]interface{}{
		{"Student Name", attempt.StudentName},
		{"Chapter Name", chapter.Name},
		{"Date & Time", attempt.SubmittedAt.Format(util.TimeFormat)},
		{"Score", fmt.Sprintf("%d/%d", attempt.Score, attempt.TotalQuestions)},
		{"Total Questions", attempt.TotalQuestions},
		{"Percentage", fmt.Sprintf("%.2f%%", attempt.Percentage())},
		{"Attempt Number", attempt.AttemptNumber},
		{"Chapter Created", chapter.CreatedAt.Format(util.DateFormat)},
	}
	for i, r := range rows {
		setRow(f, sheet, i+2, r[0], r[1])
	}

	f.SetCellStyle(sheet, "A1", "B1", styles.header)
	f.SetCellStyle(sheet, "A2", fmt.Sprintf("B%d", len(rows)+1), styles.cell)
}

func buildComparisonSheet(f *excelize.File, sheet string, styles *workbookStyles, attempt *model.Attempt, chapter *model.Chapter) {
	f.SetColWidth(sheet, "A", "C", 15)
	f.SetColWidth(sheet, "D", "D", 12)
	f.SetColWidth(sheet, "E", "E", 10)

	setRow(f, sheet, 1, "Question No.", "Your Answer", "Correct Answer", "Status", "Remarks")
	f.SetCellStyle(sheet, "A1", "E1", styles.header)

	for i, correct := range chapter.AnswerKey {
		submitted := ""
		if i < len(attempt.SubmittedAnswers) {
			submitted = attempt.SubmittedAnswers[i]
		}
		isCorrect := submitted != "" && submitted == correct

		yourAnswer := submitted
		if yourAnswer == "" {
			yourAnswer = "Not Answered"
		}
		status, remark := "Incorrect", "✗"
		if isCorrect {
			status, remark = "Correct", "✓"
		}

		row := i + 2
		setRow(f, sheet, row, i+1, yourAnswer, correct, status, remark)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), styles.cell)
		mark := styles.incorrect
		if isCorrect {
			mark = styles.correct
		}
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), mark)
	}
}

func buildAnalysisSheet(f *excelize.File, sheet string, styles *workbookStyles, attempt *model.Attempt, chapter *model.Chapter) {
	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 20)

	notAnswered := 0
	for _, a := range attempt.SubmittedAnswers {
		if a == "" {
			notAnswered++
		}
	}

	setRow(f, sheet, 1, "Metric", "Value")
	rows := [][2]interface{}{
		{"Total Questions", attempt.TotalQuestions},
		{"Correct Answers", attempt.Score},
		{"Incorrect Answers", attempt.TotalQuestions - attempt.Score},
		{"Not Answered", notAnswered},
		{"Score", fmt.Sprintf("%d/%d", attempt.Score, attempt.TotalQuestions)},
		{"Percentage", fmt.Sprintf("%.2f%%", attempt.Percentage())},
		{"Accuracy Rate", fmt.Sprintf("%.2f%%", attempt.Percentage())},
	}
	for i, r := range rows {
		setRow(f, sheet, i+2, r[0], r[1])
	}

	f.SetCellStyle(sheet, "A1", "B1", styles.header)
	f.SetCellStyle(sheet, "A2", fmt.Sprintf("A%d", len(rows)+1), styles.summary)
	f.SetCellStyle(sheet, "B2", fmt.Sprintf("B%d", len(rows)+1), styles.cell)
}

func buildDetailSheet(f *excelize.File, sheet string, styles *workbookStyles, attempt *model.Attempt, chapter *model.Chapter) {
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "C", 12)
	f.SetColWidth(sheet, "D", "D", 10)
	f.SetColWidth(sheet, "E", "E", 8)
	f.SetColWidth(sheet, "F", "F", 25)

	setRow(f, sheet, 1, "Q.No", "Your Answer", "Correct Answer", "Is Correct", "Points", "Feedback")
	f.SetCellStyle(sheet, "A1", "F1", styles.header)

	for i, correct := range chapter.AnswerKey {
		submitted := ""
		if i < len(attempt.SubmittedAnswers) {
			submitted = attempt.SubmittedAnswers[i]
		}
		isCorrect := submitted != "" && submitted == correct

		yourAnswer := submitted
		if yourAnswer == "" {
			yourAnswer = "N/A"
		}
		isCorrectText, points, feedback := "No", 0, "Review this topic"
		if isCorrect {
			isCorrectText, points, feedback = "Yes", 1, "Well done!"
		}

		row := i + 2
		setRow(f, sheet, row, i+1, yourAnswer, correct, isCorrectText, points, feedback)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("C%d", row), styles.cell)
		mark := styles.incorrect
		if isCorrect {
			mark = styles.correct
		}
		f.SetCellStyle(sheet, fmt.Sprintf("D%d", row), fmt.Sprintf("E%d", row), mark)
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), styles.cell)
	}
}
