package controller

import (
	"errors"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Service *service.QuizService
}

func NewQuizController(svc *service.QuizService) *QuizController {
	return &QuizController{Service: svc}
}

// @Summary 生成测验题
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param subject path string true "学习主题"
// @Success 200 {object} util.Response
// @Router /api/quiz/{subject} [get]
func (c *QuizController) GenerateQuestion(ctx *gin.Context) {
	subject := ctx.Param("subject")
	if subject == "" {
		util.BadRequest(ctx, "subject is required")
		return
	}

	question, err := c.Service.GenerateQuestion(subject)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, question)
}

// @Summary 提交答案并批改
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CheckAnswerRequest true "答案"
// @Success 200 {object} util.Response
// @Router /api/quiz/check [post]
func (c *QuizController) CheckAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CheckAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Service.CheckAnswer(user.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
