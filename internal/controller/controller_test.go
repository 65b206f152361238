package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"omr_exam_backend/internal/config"
	"omr_exam_backend/internal/model"
	"omr_exam_backend/internal/repository"
	"omr_exam_backend/internal/service"
	"omr_exam_backend/pkg/database"
	"omr_exam_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

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

type testServer struct {
	router   *gin.Engine
	chapters *service.ChapterService
	attempts *service.AttemptService
}

// newTestServer 按主路由的注册方式拼出 /api 路由组，中间件与 swagger 不参与测试。
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := newTestDB(t)

	chapterRepo := repository.NewChapterRepository(db)
	attemptRepo := repository.NewAttemptRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	recordRepo := repository.NewExportRecordRepository(db)

	storage := &service.StorageService{Provider: &service.LocalStorageProvider{
		Config: &config.StorageConfig{Type: "local", LocalPath: t.TempDir()},
	}}
	analyticsService := service.NewAnalyticsService(analyticsRepo, chapterRepo, nil, time.Minute, 10)
	exportService := service.NewExportService(recordRepo, attemptRepo, chapterRepo, storage)
	chapterService := service.NewChapterService(chapterRepo, analyticsService, exportService)
	attemptService := service.NewAttemptService(attemptRepo, chapterRepo, analyticsService)
	themeService := service.NewThemeService()

	health := NewHealthController(db, nil)
	chapter := NewChapterController(chapterService, attemptService, analyticsService)
	exam := NewExamController(attemptService)
	export := NewExportController(exportService)
	analytics := NewAnalyticsController(analyticsService)
	theme := NewThemeController(themeService)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/health", health.HealthCheck)

		api.POST("/chapters", chapter.CreateChapter)
		api.GET("/chapters", chapter.ListChapters)
		api.GET("/chapters/:id", chapter.GetChapter)
		api.PUT("/chapters/:id", chapter.UpdateChapter)
		api.DELETE("/chapters/:id", chapter.DeleteChapter)
		api.GET("/chapters/:id/attempts", chapter.GetChapterAttempts)
		api.GET("/chapters/:id/summary", chapter.GetChapterSummary)

		api.POST("/exams/submit", exam.SubmitExam)
		api.GET("/results/:name", exam.GetResults)
		api.GET("/attempts", exam.ListAttempts)
		api.GET("/attempts/:id", exam.GetAttempt)

		api.POST("/attempts/:id/export", export.ExportAttempt)
		api.GET("/attempts/:id/export/download", export.DownloadExport)
		api.GET("/attempts/:id/exports", export.ListExports)

		api.GET("/analytics", analytics.GetOverview)
		api.GET("/analytics/overall", analytics.GetOverallStatistics)
		api.GET("/analytics/chapters", analytics.GetChapterStatistics)
		api.GET("/analytics/top-performers", analytics.GetTopPerformers)
		api.GET("/analytics/leaderboard", analytics.GetLeaderboard)

		api.GET("/themes", theme.ListThemes)
		api.GET("/themes/:name", theme.GetTheme)
		api.GET("/themes/:name/css", theme.GetThemeCSS)
	}

	return &testServer{router: router, chapters: chapterService, attempts: attemptService}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func (s *testServer) mustCreateChapter(t *testing.T, name string, key ...string) *model.Chapter {
	t.Helper()

	chapter, err := s.chapters.CreateChapter(service.CreateChapterRequest{
		Name:          name,
		QuestionCount: len(key),
		OptionCount:   4,
		AnswerKey:     key,
	})
	require.NoError(t, err)
	return chapter
}

func (s *testServer) mustSubmit(t *testing.T, chapterID uint, student string, answers ...string) *service.SubmitExamResponse {
	t.Helper()

	result, err := s.attempts.SubmitAttempt(service.SubmitExamRequest{
		ChapterID:        chapterID,
		StudentName:      student,
		SubmittedAnswers: answers,
	})
	require.NoError(t, err)
	return result
}

func TestCreateChapterEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/chapters",
		`{"name":"Math-1","questionCount":3,"optionCount":4,"answerKey":["a","B","c"]}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.Equal(t, "created", env.Message)

	var chapter model.Chapter
	require.NoError(t, json.Unmarshal(env.Data, &chapter))
	assert.Equal(t, "Math-1", chapter.Name)
	assert.Equal(t, model.AnswerList{"A", "B", "C"}, chapter.AnswerKey)
}

func TestCreateChapterEndpointRejectsBadPayload(t *testing.T) {
	s := newTestServer(t)

	// 缺少必填字段，binding 直接拦下
	w := s.do(t, http.MethodPost, "/api/chapters", `{"questionCount":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 格式合法但答案键长度不符
	w = s.do(t, http.MethodPost, "/api/chapters",
		`{"name":"Math-1","questionCount":3,"optionCount":4,"answerKey":["A","B"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 非法 JSON
	w = s.do(t, http.MethodPost, "/api/chapters", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateChapterEndpointDuplicateName(t *testing.T) {
	s := newTestServer(t)
	s.mustCreateChapter(t, "Math-1", "A", "B", "C")

	w := s.do(t, http.MethodPost, "/api/chapters",
		`{"name":"Math-1","questionCount":3,"optionCount":4,"answerKey":["A","B","C"]}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "章节名称已存在", decodeEnvelope(t, w).Message)
}

func TestGetChapterEndpoint(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C")

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/chapters/%d", chapter.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var got model.Chapter
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &got))
	assert.Equal(t, chapter.ID, got.ID)
	assert.Equal(t, "Math-1", got.Name)

	w = s.do(t, http.MethodGet, "/api/chapters/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid id", decodeEnvelope(t, w).Message)

	w = s.do(t, http.MethodGet, "/api/chapters/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "章节不存在", decodeEnvelope(t, w).Message)
}

func TestListChaptersEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.mustCreateChapter(t, "Math-1", "A", "B")
	s.mustCreateChapter(t, "Physics-1", "C", "D")

	w := s.do(t, http.MethodGet, "/api/chapters", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var chapters []model.Chapter
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &chapters))
	require.Len(t, chapters, 2)
	assert.Equal(t, "Math-1", chapters[0].Name)
	assert.Equal(t, "Physics-1", chapters[1].Name)
}

func TestUpdateChapterEndpoint(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C")

	w := s.do(t, http.MethodPut, fmt.Sprintf("/api/chapters/%d", chapter.ID),
		`{"name":"Math-1R","answerKey":["d","c","b"]}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var got model.Chapter
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &got))
	assert.Equal(t, "Math-1R", got.Name)
	assert.Equal(t, model.AnswerList{"D", "C", "B"}, got.AnswerKey)

	w = s.do(t, http.MethodPut, "/api/chapters/99", `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteChapterEndpoint(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C")
	s.mustSubmit(t, chapter.ID, "Alice", "A", "B", "C")

	w := s.do(t, http.MethodDelete, fmt.Sprintf("/api/chapters/%d", chapter.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var deleted struct {
		Deleted uint `json:"deleted"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &deleted))
	assert.Equal(t, chapter.ID, deleted.Deleted)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/chapters/%d", chapter.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodDelete, "/api/chapters/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitExamEndpoint(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C", "D", "A")

	w := s.do(t, http.MethodPost, "/api/exams/submit",
		fmt.Sprintf(`{"chapterId":%d,"studentName":"Alice","submittedAnswers":["a","B","C","D","B"],"timeTaken":412}`, chapter.ID))
	assert.Equal(t, http.StatusCreated, w.Code)

	var result service.SubmitExamResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
	assert.Equal(t, 4, result.Score)
	assert.Equal(t, 5, result.Total)
	assert.InDelta(t, 80.0, result.Percentage, 0.001)
	assert.Equal(t, "B", result.Grade)
	assert.True(t, result.Passed)
	assert.Equal(t, 1, result.AttemptNumber)

	// 同一学生再次提交，序号递增
	w = s.do(t, http.MethodPost, "/api/exams/submit",
		fmt.Sprintf(`{"chapterId":%d,"studentName":"Alice","submittedAnswers":["A","B","C","D","A"]}`, chapter.ID))
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &result))
	assert.Equal(t, 2, result.AttemptNumber)
	assert.Equal(t, 5, result.Score)
}

func TestSubmitExamEndpointErrors(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C")

	// 不存在的章节
	w := s.do(t, http.MethodPost, "/api/exams/submit",
		`{"chapterId":99,"studentName":"Alice","submittedAnswers":["A"]}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "章节不存在", decodeEnvelope(t, w).Message)

	// 选项字母超出范围
	w = s.do(t, http.MethodPost, "/api/exams/submit",
		fmt.Sprintf(`{"chapterId":%d,"studentName":"Alice","submittedAnswers":["E","A","B"]}`, chapter.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 缺少必填字段
	w = s.do(t, http.MethodPost, "/api/exams/submit", `{"studentName":"Alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetResultsEndpoint(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C", "D", "A")
	s.mustSubmit(t, chapter.ID, "Alice", "A", "B", "C", "D", "B")
	s.mustSubmit(t, chapter.ID, "Bob", "A", "A", "A", "A", "A")

	w := s.do(t, http.MethodGet, "/api/results/Math-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var results []service.AttemptResult
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &results))
	require.Len(t, results, 2)
	// 最近的提交在前
	assert.Equal(t, "Bob", results[0].StudentName)
	assert.Equal(t, 2, results[0].Score)
	assert.Equal(t, "Alice", results[1].StudentName)
	assert.Equal(t, "Math-1", results[1].ChapterName)

	w = s.do(t, http.MethodGet, "/api/results/Unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAttemptEndpoint(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C")
	submitted := s.mustSubmit(t, chapter.ID, "Alice", "A", "D", "C")

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/attempts/%d", submitted.AttemptID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	var detail struct {
		Attempt    model.Attempt                 `json:"attempt"`
		Comparison []service.AnswerComparisonRow `json:"comparison"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &detail))
	assert.Equal(t, "Alice", detail.Attempt.StudentName)
	assert.Equal(t, 2, detail.Attempt.Score)
	require.Len(t, detail.Comparison, 3)
	assert.False(t, detail.Comparison[1].IsCorrect)
	assert.Equal(t, "D", detail.Comparison[1].YourAnswer)

	w = s.do(t, http.MethodGet, "/api/attempts/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "答题记录不存在", decodeEnvelope(t, w).Message)
}

func TestChapterAttemptsAndSummaryEndpoints(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C", "D", "A")
	s.mustSubmit(t, chapter.ID, "Alice", "A", "B", "C", "D", "B")
	s.mustSubmit(t, chapter.ID, "Alice", "A", "B", "C", "D", "A")
	s.mustSubmit(t, chapter.ID, "Bob", "A", "A", "A", "A", "A")

	w := s.do(t, http.MethodGet, fmt.Sprintf("/api/chapters/%d/attempts?student=Alice", chapter.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	var attempts []model.Attempt
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &attempts))
	require.Len(t, attempts, 2)
	assert.Equal(t, 1, attempts[0].AttemptNumber)
	assert.Equal(t, 2, attempts[1].AttemptNumber)

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/chapters/%d/summary", chapter.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	var summary model.ChapterSummary
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &summary))
	assert.Equal(t, int64(3), summary.TotalAttempts)
	assert.Equal(t, int64(2), summary.UniqueStudents)

	w = s.do(t, http.MethodGet, "/api/chapters/99/summary", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportEndpoints(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C")
	submitted := s.mustSubmit(t, chapter.ID, "Alice", "A", "B", "D")

	w := s.do(t, http.MethodPost, fmt.Sprintf("/api/attempts/%d/export", submitted.AttemptID), "")
	assert.Equal(t, http.StatusCreated, w.Code)

	var record model.ExportRecord
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &record))
	assert.Contains(t, record.ObjectKey, "exam_report_Alice_Math-1_attempt1_")
	assert.Greater(t, record.Size, int64(0))

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/attempts/%d/export/download", submitted.AttemptID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, int(record.Size), w.Body.Len())

	w = s.do(t, http.MethodGet, fmt.Sprintf("/api/attempts/%d/exports", submitted.AttemptID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	var records []model.ExportRecord
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &records))
	assert.Len(t, records, 1)

	w = s.do(t, http.MethodPost, "/api/attempts/999/export", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "答题记录不存在", decodeEnvelope(t, w).Message)
}

func TestAnalyticsEndpoints(t *testing.T) {
	s := newTestServer(t)
	chapter := s.mustCreateChapter(t, "Math-1", "A", "B", "C", "D", "A")
	s.mustSubmit(t, chapter.ID, "Alice", "A", "B", "C", "D", "B")
	s.mustSubmit(t, chapter.ID, "Alice", "A", "B", "C", "D", "A")
	s.mustSubmit(t, chapter.ID, "Bob", "A", "A", "A", "A", "A")

	w := s.do(t, http.MethodGet, "/api/analytics/overall", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var overall model.OverallStatistics
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &overall))
	assert.Equal(t, int64(3), overall.TotalAttempts)
	assert.Equal(t, int64(2), overall.UniqueStudents)

	w = s.do(t, http.MethodGet, "/api/analytics/overall?student=Bob", "")
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &overall))
	assert.Equal(t, int64(1), overall.TotalAttempts)

	w = s.do(t, http.MethodGet, "/api/analytics/top-performers?limit=1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var performers []model.TopPerformer
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &performers))
	require.Len(t, performers, 1)
	assert.Equal(t, 1, performers[0].Rank)
	assert.Equal(t, "Alice", performers[0].StudentName)

	w = s.do(t, http.MethodGet, "/api/analytics/leaderboard", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var entries []model.LeaderboardEntry
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "Alice", entries[0].StudentName)

	w = s.do(t, http.MethodGet, "/api/analytics/chapters", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var chapterStats []model.ChapterStatistics
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &chapterStats))
	require.Len(t, chapterStats, 1)
	assert.Equal(t, "Math-1", chapterStats[0].ChapterName)

	w = s.do(t, http.MethodGet, "/api/analytics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var overview service.OverviewResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &overview))
	assert.Equal(t, int64(3), overview.Overall.TotalAttempts)
	require.NotEmpty(t, overview.Attempts)
	assert.Equal(t, "Bob", overview.Attempts[0].StudentName)
}

func TestThemeEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/themes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var themes []service.ThemePalette
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &themes))
	assert.Len(t, themes, 7)

	w = s.do(t, http.MethodGet, "/api/themes/ocean", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var theme service.ThemePalette
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &theme))
	assert.Equal(t, "ocean", theme.Name)

	// 未知主题回落到默认值
	w = s.do(t, http.MethodGet, "/api/themes/neon", "")
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &theme))
	assert.Equal(t, "indigo", theme.Name)

	w = s.do(t, http.MethodGet, "/api/themes/sunset/css", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/css; charset=utf-8", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "/* Theme: sunset */"))
	assert.Contains(t, w.Body.String(), "--primary: #ea580c;")
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var health struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "up", health.Components["database"])
	assert.Equal(t, "disabled", health.Components["redis"])
}
