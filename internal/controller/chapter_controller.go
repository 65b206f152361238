package controller

import (
	"errors"
	"strconv"

	"omr_exam_backend/internal/service"
	"omr_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChapterController struct {
	ChapterService   *service.ChapterService
	AttemptService   *service.AttemptService
	AnalyticsService *service.AnalyticsService
}

func NewChapterController(chapterService *service.ChapterService, attemptService *service.AttemptService, analyticsService *service.AnalyticsService) *ChapterController {
	return &ChapterController{
		ChapterService:   chapterService,
		AttemptService:   attemptService,
		AnalyticsService: analyticsService,
	}
}

// @Summary 创建章节
// @Description 创建带答案的章节定义
// @Tags 章节
// @Accept json
// @Produce json
// @Param chapter body service.CreateChapterRequest true "章节定义"
// @Success 201 {object} util.Response
// @Router /api/chapters [post]
func (c *ChapterController) CreateChapter(ctx *gin.Context) {
	var req service.CreateChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ChapterService.CreateChapter(req)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
		} else if errors.Is(err, util.ErrDuplicateChapterName) {
			util.Conflict(ctx, "章节名称已存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, chapter)
}

// @Summary 章节列表
// @Description 按创建时间顺序返回全部章节
// @Tags 章节
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/chapters [get]
func (c *ChapterController) ListChapters(ctx *gin.Context) {
	chapters, err := c.ChapterService.ListChapters()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, chapters)
}

// @Summary 章节详情
// @Tags 章节
// @Produce json
// @Param id path int true "章节ID"
// @Success 200 {object} util.Response
// @Router /api/chapters/{id} [get]
func (c *ChapterController) GetChapter(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	chapter, err := c.ChapterService.GetChapter(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, chapter)
}

// @Summary 更新章节
// @Description 重命名章节或替换同长度的答案
// @Tags 章节
// @Accept json
// @Produce json
// @Param id path int true "章节ID"
// @Param chapter body service.UpdateChapterRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/chapters/{id} [put]
func (c *ChapterController) UpdateChapter(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	var req service.UpdateChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	chapter, err := c.ChapterService.UpdateChapter(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
		} else if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else if errors.Is(err, util.ErrDuplicateChapterName) {
			util.Conflict(ctx, "章节名称已存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, chapter)
}

// @Summary 删除章节
// @Description 删除章节并级联清除其下全部答题记录
// @Tags 章节
// @Produce json
// @Param id path int true "章节ID"
// @Success 200 {object} util.Response
// @Router /api/chapters/{id} [delete]
func (c *ChapterController) DeleteChapter(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.ChapterService.DeleteChapter(ctx.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"deleted": id})
}

// @Summary 章节答题记录
// @Description 返回章节下的答题记录，可按学生过滤，按序号升序
// @Tags 章节
// @Produce json
// @Param id path int true "章节ID"
// @Param student query string false "学生姓名"
// @Success 200 {object} util.Response
// @Router /api/chapters/{id}/attempts [get]
func (c *ChapterController) GetChapterAttempts(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	attempts, err := c.AttemptService.GetAttempts(uint(id), ctx.Query("student"))
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, attempts)
}

// @Summary 章节统计摘要
// @Tags 章节
// @Produce json
// @Param id path int true "章节ID"
// @Success 200 {object} util.Response
// @Router /api/chapters/{id}/summary [get]
func (c *ChapterController) GetChapterSummary(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	summary, err := c.AnalyticsService.ChapterSummary(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, summary)
}
