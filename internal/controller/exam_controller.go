package controller

import (
	"errors"
	"strconv"

	"omr_exam_backend/internal/service"
	"omr_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExamController struct {
	AttemptService *service.AttemptService
}

func NewExamController(attemptService *service.AttemptService) *ExamController {
	return &ExamController{AttemptService: attemptService}
}

// @Summary 提交答题
// @Description 校验并评分一次提交，分配该学生在该章节下的连续尝试序号
// @Tags 考试
// @Accept json
// @Produce json
// @Param submission body service.SubmitExamRequest true "答题内容"
// @Success 201 {object} util.Response
// @Router /api/exams/submit [post]
func (c *ExamController) SubmitExam(ctx *gin.Context) {
	var req service.SubmitExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AttemptService.SubmitAttempt(req)
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
		} else if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else if errors.Is(err, util.ErrConcurrencyConflict) {
			util.Conflict(ctx, "并发提交冲突，请重试")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// @Summary 章节成绩
// @Description 按章节名称返回全部成绩，最近提交在前
// @Tags 考试
// @Produce json
// @Param name path string true "章节名称"
// @Success 200 {object} util.Response
// @Router /api/results/{name} [get]
func (c *ExamController) GetResults(ctx *gin.Context) {
	results, err := c.AttemptService.ResultsForChapter(ctx.Param("name"))
	if err != nil {
		if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, results)
}

// @Summary 答题记录列表
// @Description 返回全部答题记录，最近提交在前
// @Tags 考试
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/attempts [get]
func (c *ExamController) ListAttempts(ctx *gin.Context) {
	attempts, err := c.AttemptService.ListAllAttempts()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// @Summary 答题详情
// @Description 返回单次提交及逐题对照
// @Tags 考试
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id} [get]
func (c *ExamController) GetAttempt(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	attempt, err := c.AttemptService.GetAttempt(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx, "答题记录不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	comparison, err := c.AttemptService.AnswerComparison(attempt.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"attempt":    attempt,
		"comparison": comparison,
	})
}
