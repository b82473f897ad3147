package controller

import (
	"ai_tutor_backend/internal/repository"
	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress    *service.ProgressService
	Dashboard   *service.DashboardService
	Recommend   *service.RecommendService
	HistoryRepo *repository.SubjectHistoryRepository
}

func NewProgressController(
	progress *service.ProgressService,
	dashboard *service.DashboardService,
	recommend *service.RecommendService,
	historyRepo *repository.SubjectHistoryRepository,
) *ProgressController {
	return &ProgressController{
		Progress:    progress,
		Dashboard:   dashboard,
		Recommend:   recommend,
		HistoryRepo: historyRepo,
	}
}

// @Summary 获取某主题的学习进度
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Param subject path string true "学习主题"
// @Success 200 {object} util.Response
// @Router /api/progress/{subject} [get]
func (c *ProgressController) GetSubjectProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.Progress.GetSubjectProgress(user.UserID, ctx.Param("subject"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 获取个性化路径推荐
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/recommendations [get]
func (c *ProgressController) GetRecommendations(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	recs, err := c.Recommend.Recommend(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, recs)
}

// @Summary 获取最近学习过的主题
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/recent-subjects [get]
func (c *ProgressController) GetRecentSubjects(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	subjects, err := c.HistoryRepo.RecentDistinct(user.UserID, 10)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subjects)
}

// @Summary 获取学习看板
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *ProgressController) GetDashboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	dashboard, err := c.Dashboard.GetDashboard(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}
