package controller

import (
	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Service *service.CatalogService
}

func NewCatalogController(svc *service.CatalogService) *CatalogController {
	return &CatalogController{Service: svc}
}

// @Summary 搜索在线课程目录
// @Tags 课程目录
// @Produce json
// @Security ApiKeyAuth
// @Param subject query string true "课程主题"
// @Success 200 {object} util.Response
// @Router /api/courses [get]
func (c *CatalogController) Search(ctx *gin.Context) {
	subject := ctx.Query("subject")
	if subject == "" {
		util.BadRequest(ctx, "subject is required")
		return
	}

	courses := c.Service.FetchCourses(ctx.Request.Context(), subject)
	util.Success(ctx, courses)
}
