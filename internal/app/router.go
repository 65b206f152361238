package app

import (
	"omr_exam_backend/docs"
	"omr_exam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 章节管理
		api.POST("/chapters", c.chapter.CreateChapter)
		api.GET("/chapters", c.chapter.ListChapters)
		api.GET("/chapters/:id", c.chapter.GetChapter)
		api.PUT("/chapters/:id", c.chapter.UpdateChapter)
		api.DELETE("/chapters/:id", c.chapter.DeleteChapter)
		api.GET("/chapters/:id/attempts", c.chapter.GetChapterAttempts)
		api.GET("/chapters/:id/summary", c.chapter.GetChapterSummary)

		// 考试提交与成绩
		api.POST("/exams/submit", c.exam.SubmitExam)
		api.GET("/results/:name", c.exam.GetResults)
		api.GET("/attempts", c.exam.ListAttempts)
		api.GET("/attempts/:id", c.exam.GetAttempt)

		// 报表导出
		api.POST("/attempts/:id/export", c.export.ExportAttempt)
		api.GET("/attempts/:id/export/download", c.export.DownloadExport)
		api.GET("/attempts/:id/exports", c.export.ListExports)

		// 统计分析
		api.GET("/analytics", c.analytics.GetOverview)
		api.GET("/analytics/overall", c.analytics.GetOverallStatistics)
		api.GET("/analytics/chapters", c.analytics.GetChapterStatistics)
		api.GET("/analytics/top-performers", c.analytics.GetTopPerformers)
		api.GET("/analytics/leaderboard", c.analytics.GetLeaderboard)

		// 前端主题
		api.GET("/themes", c.theme.ListThemes)
		api.GET("/themes/:name", c.theme.GetTheme)
		api.GET("/themes/:name/css", c.theme.GetThemeCSS)
	}
}
