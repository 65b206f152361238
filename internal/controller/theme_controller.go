package controller

import (
	"net/http"

	"omr_exam_backend/internal/service"
	"omr_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ThemeController struct {
	ThemeService *service.ThemeService
}

func NewThemeController(themeService *service.ThemeService) *ThemeController {
	return &ThemeController{ThemeService: themeService}
}

// @Summary 主题列表
// @Description 返回全部内置主题配色
// @Tags 主题
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/themes [get]
func (c *ThemeController) ListThemes(ctx *gin.Context) {
	util.Success(ctx, c.ThemeService.ListThemes())
}

// @Summary 主题配色
// @Description 按名称返回主题配色，未知名称回落到默认主题
// @Tags 主题
// @Produce json
// @Param name path string true "主题名称"
// @Success 200 {object} util.Response
// @Router /api/themes/{name} [get]
func (c *ThemeController) GetTheme(ctx *gin.Context) {
	util.Success(ctx, c.ThemeService.GetTheme(ctx.Param("name")))
}

// @Summary 主题样式
// @Description 返回主题的 CSS 变量块
// @Tags 主题
// @Produce text/css
// @Param name path string true "主题名称"
// @Success 200 {string} string
// @Router /api/themes/{name}/css [get]
func (c *ThemeController) GetThemeCSS(ctx *gin.Context) {
	css := c.ThemeService.CSS(ctx.Param("name"))
	ctx.Data(http.StatusOK, util.MimeCSS, []byte(css))
}
