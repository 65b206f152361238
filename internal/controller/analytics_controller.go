package controller

import (
	"omr_exam_backend/internal/service"
	"omr_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 排行榜单次请求的上限，防止无界查询
const maxLeaderboardLimit = 100

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// @Summary 统计概览
// @Description 一次返回全局统计、章节统计、最佳成绩榜与答题明细
// @Tags 统计
// @Produce json
// @Param student query string false "按学生过滤"
// @Success 200 {object} util.Response
// @Router /api/analytics [get]
func (c *AnalyticsController) GetOverview(ctx *gin.Context) {
	overview, err := c.AnalyticsService.Overview(ctx.Query("student"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary 全局统计
// @Tags 统计
// @Produce json
// @Param student query string false "按学生过滤"
// @Success 200 {object} util.Response
// @Router /api/analytics/overall [get]
func (c *AnalyticsController) GetOverallStatistics(ctx *gin.Context) {
	stats, err := c.AnalyticsService.OverallStatistics(ctx.Query("student"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 章节统计
// @Description 各章节的答题次数、参与学生数与平均成绩
// @Tags 统计
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/analytics/chapters [get]
func (c *AnalyticsController) GetChapterStatistics(ctx *gin.Context) {
	stats, err := c.AnalyticsService.ChapterStatistics()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 最佳成绩榜
// @Description 按单次最佳成绩排名
// @Tags 统计
// @Produce json
// @Param limit query int false "数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/analytics/top-performers [get]
func (c *AnalyticsController) GetTopPerformers(ctx *gin.Context) {
	limit := util.ParseLimit(ctx.Query("limit"), 0, maxLeaderboardLimit)

	performers, err := c.AnalyticsService.TopPerformers(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, performers)
}

// @Summary 学生排行榜
// @Description 按学生累计得分率排名
// @Tags 统计
// @Produce json
// @Param limit query int false "数量" default(10)
// @Success 200 {object} util.Response
// @Router /api/analytics/leaderboard [get]
func (c *AnalyticsController) GetLeaderboard(ctx *gin.Context) {
	limit := util.ParseLimit(ctx.Query("limit"), 0, maxLeaderboardLimit)

	entries, err := c.AnalyticsService.StudentLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}
