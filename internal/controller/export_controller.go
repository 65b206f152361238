package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"omr_exam_backend/internal/service"
	"omr_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	ExportService *service.ExportService
}

func NewExportController(exportService *service.ExportService) *ExportController {
	return &ExportController{ExportService: exportService}
}

// @Summary 导出成绩报表
// @Description 生成某次提交的 Excel 报表并归档，返回下载地址
// @Tags 导出
// @Produce json
// @Param id path int true "记录ID"
// @Success 201 {object} util.Response
// @Router /api/attempts/{id}/export [post]
func (c *ExportController) ExportAttempt(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	record, err := c.ExportService.ExportAttempt(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx, "答题记录不存在")
		} else if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, record)
}

// @Summary 下载成绩报表
// @Description 下载某次提交最近归档的 Excel 报表，没有归档时先生成
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path int true "记录ID"
// @Success 200 {file} binary
// @Router /api/attempts/{id}/export/download [get]
func (c *ExportController) DownloadExport(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	record, reader, err := c.ExportService.DownloadExport(ctx.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx, "答题记录不存在")
		} else if errors.Is(err, util.ErrChapterNotFound) {
			util.NotFound(ctx, "章节不存在")
		} else if errors.Is(err, util.ErrExportNotFound) {
			util.NotFound(ctx, "报表文件不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	defer reader.Close()

	extraHeaders := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", record.ObjectKey),
	}
	ctx.DataFromReader(http.StatusOK, record.Size, util.MimeXLSX, reader, extraHeaders)
}

// @Summary 报表归档记录
// @Description 返回某次提交的全部报表归档，最近的在前
// @Tags 导出
// @Produce json
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/attempts/{id}/exports [get]
func (c *ExportController) ListExports(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	records, err := c.ExportService.ListExports(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrAttemptNotFound) {
			util.NotFound(ctx, "答题记录不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, records)
}
