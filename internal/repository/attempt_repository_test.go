package repository

import (
	"fmt"
	"strings"
	"testing"

	"omr_exam_backend/internal/model"
	"omr_exam_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func createTestChapter(t *testing.T, db *gorm.DB, name string) *model.Chapter {
	t.Helper()
	chapter := &model.Chapter{
		Name:          name,
		QuestionCount: 2,
		OptionCount:   4,
		AnswerKey:     model.AnswerList{"A", "B"},
	}
	require.NoError(t, db.Create(chapter).Error)
	return chapter
}

func newAttempt(chapterID uint, student string) *model.Attempt {
	return &model.Attempt{
		ChapterID:        chapterID,
		StudentName:      student,
		SubmittedAnswers: model.AnswerList{"A", "B"},
		Score:            2,
		TotalQuestions:   2,
	}
}

func TestCreateWithNumberSequence(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttemptRepository(db)
	chapter := createTestChapter(t, db, "Math-1")

	for want := 1; want <= 3; want++ {
		attempt := newAttempt(chapter.ID, "Alice")
		require.NoError(t, repo.CreateWithNumber(attempt))
		assert.Equal(t, want, attempt.AttemptNumber)
	}

	// 其他学生从 1 重新计数
	bob := newAttempt(chapter.ID, "Bob")
	require.NoError(t, repo.CreateWithNumber(bob))
	assert.Equal(t, 1, bob.AttemptNumber)
}

// 唯一索引兜底并发场景：抢占序号的插入必须报唯一键冲突
func TestAttemptNumberUniqueIndex(t *testing.T) {
	db := newTestDB(t)
	chapter := createTestChapter(t, db, "Math-1")

	first := newAttempt(chapter.ID, "Alice")
	first.AttemptNumber = 1
	require.NoError(t, db.Create(first).Error)

	dup := newAttempt(chapter.ID, "Alice")
	dup.AttemptNumber = 1
	err := db.Create(dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	// 不同章节的相同序号互不影响
	other := createTestChapter(t, db, "Physics-1")
	ok := newAttempt(other.ID, "Alice")
	ok.AttemptNumber = 1
	assert.NoError(t, db.Create(ok).Error)
}

func TestFindByChapterName(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttemptRepository(db)
	math := createTestChapter(t, db, "Math-1")
	physics := createTestChapter(t, db, "Physics-1")

	require.NoError(t, repo.CreateWithNumber(newAttempt(math.ID, "Alice")))
	require.NoError(t, repo.CreateWithNumber(newAttempt(physics.ID, "Alice")))
	require.NoError(t, repo.CreateWithNumber(newAttempt(math.ID, "Bob")))

	attempts, err := repo.FindByChapterName("Math-1")
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	// 最近提交在前
	assert.Equal(t, "Bob", attempts[0].StudentName)
	assert.Equal(t, "Alice", attempts[1].StudentName)

	empty, err := repo.FindByChapterName("missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestFindByChapterFiltersAndOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewAttemptRepository(db)
	chapter := createTestChapter(t, db, "Math-1")

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.CreateWithNumber(newAttempt(chapter.ID, "Alice")))
	}
	require.NoError(t, repo.CreateWithNumber(newAttempt(chapter.ID, "Bob")))

	all, err := repo.FindByChapter(chapter.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	alice, err := repo.FindByChapter(chapter.ID, "Alice")
	require.NoError(t, err)
	require.Len(t, alice, 2)
	assert.Equal(t, 1, alice[0].AttemptNumber)
	assert.Equal(t, 2, alice[1].AttemptNumber)

	count, err := repo.CountByChapterAndStudent(chapter.ID, "Alice")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	total, err := repo.CountByChapter(chapter.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}
