package service

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"omr_exam_backend/internal/config"
	"omr_exam_backend/internal/model"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/pkg/database"
	"omr_exam_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

// newTestDB 每个测试一个独立的内存库，表结构与生产迁移一致
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// testEnv 完整服务栈：无 Redis，报表落在测试临时目录
type testEnv struct {
	db         *gorm.DB
	storageDir string

	chapterRepo *repository.ChapterRepository
	attemptRepo *repository.AttemptRepository
	recordRepo  *repository.ExportRecordRepository

	chapters  *ChapterService
	attempts  *AttemptService
	analytics *AnalyticsService
	exports   *ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	chapterRepo := repository.NewChapterRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	recordRepo := repository.NewExportRecordRepository(db)

	dir := t.TempDir()
	storage := &StorageService{Provider: &LocalStorageProvider{
		Config: &config.StorageConfig{Type: "local", LocalPath: dir},
	}}

	analytics := NewAnalyticsService(analyticsRepo, chapterRepo, nil, time.Minute, 10)
	exports := NewExportService(recordRepo, attemptRepo, chapterRepo, storage)

	return &testEnv{
		db:          db,
		storageDir:  dir,
		chapterRepo: chapterRepo,
		attemptRepo: attemptRepo,
		recordRepo:  recordRepo,
		chapters:    NewChapterService(chapterRepo, analytics, exports),
		attempts:    NewAttemptService(attemptRepo, chapterRepo, analytics),
		analytics:   analytics,
		exports:     exports,
	}
}

func (e *testEnv) createChapter(t *testing.T, name string, key ...string) *model.Chapter {
	t.Helper()
	chapter, err := e.chapters.CreateChapter(CreateChapterRequest{
		Name:          name,
		QuestionCount: len(key),
		OptionCount:   4,
		AnswerKey:     key,
	})
	require.NoError(t, err)
	return chapter
}

func (e *testEnv) submit(t *testing.T, chapterID uint, student string, answers ...string) *SubmitExamResponse {
	t.Helper()
	resp, err := e.attempts.SubmitAttempt(SubmitExamRequest{
		ChapterID:        chapterID,
		StudentName:      student,
		SubmittedAnswers: answers,
	})
	require.NoError(t, err)
	return resp
}

// seedMathChapter 铺设验收场景数据：
// Alice 4/5、Alice 5/5、Bob 2/5，共三次提交
func (e *testEnv) seedMathChapter(t *testing.T) *model.Chapter {
	t.Helper()
	chapter := e.createChapter(t, "Math-1", "A", "B", "C", "D", "A")
	e.submit(t, chapter.ID, "Alice", "A", "B", "C", "D", "B")
	e.submit(t, chapter.ID, "Alice", "A", "B", "C", "D", "A")
	e.submit(t, chapter.ID, "Bob", "A", "A", "A", "A", "A")
	return chapter
}
