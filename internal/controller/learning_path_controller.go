package controller

import (
	"errors"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningPathController struct {
	Service         *service.LearningPathService
	ProgressService *service.ProgressService
	Recommend       *service.RecommendService
}

func NewLearningPathController(
	svc *service.LearningPathService,
	progress *service.ProgressService,
	recommend *service.RecommendService,
) *LearningPathController {
	return &LearningPathController{
		Service:         svc,
		ProgressService: progress,
		Recommend:       recommend,
	}
}

// @Summary 获取学习路径列表
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param subject query string false "按主题过滤"
// @Param recommended query bool false "仅返回推荐路径"
// @Success 200 {object} util.Response
// @Router /api/learning-paths [get]
func (c *LearningPathController) List(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if ctx.Query("recommended") == "true" {
		recs, err := c.Recommend.Recommend(user.UserID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, recs)
		return
	}

	paths, err := c.Service.List(user.UserID, ctx.Query("subject"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, paths)
}

// @Summary 获取学习路径详情
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Success 200 {object} util.Response
// @Router /api/learning-paths/{id} [get]
func (c *LearningPathController) Get(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	path, err := c.Service.Get(user.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, path)
}

// @Summary 开始学习路径
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Success 201 {object} util.Response
// @Router /api/learning-paths/{id}/progress [post]
func (c *LearningPathController) StartProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.ProgressService.EnsureProgress(user.UserID, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrPathNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, progress)
}

type CompleteTopicRequest struct {
	TopicIndex *int    `json:"topicIndex" binding:"required"`
	TimeSpent  float64 `json:"timeSpentMinutes"`
}

// @Summary 完成路径中的一个知识点
// @Tags 学习路径
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "路径ID"
// @Param body body CompleteTopicRequest true "知识点序号与用时"
// @Success 200 {object} util.Response
// @Router /api/learning-paths/{id}/progress [patch]
func (c *LearningPathController) CompleteTopic(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CompleteTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.ProgressService.CompleteTopic(user.UserID, ctx.Param("id"), *req.TopicIndex, req.TimeSpent)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrPathNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidTopicIndex):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, progress)
}

// @Summary 从课程目录导入学习路径
// @Tags 学习路径
// @Produce json
// @Security ApiKeyAuth
// @Param subject query string true "课程主题"
// @Success 200 {object} util.Response
// @Router /api/admin/learning-paths/import [post]
func (c *LearningPathController) ImportFromCatalog(ctx *gin.Context) {
	subject := ctx.Query("subject")
	if subject == "" {
		util.BadRequest(ctx, "subject is required")
		return
	}

	created, err := c.Service.ImportFromCatalog(ctx.Request.Context(), subject)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"imported": created})
}
