package controller

import (
	"errors"

	"ai_tutor_backend/internal/service"
	"ai_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorController struct {
	Service *service.TutorService
}

func NewTutorController(svc *service.TutorService) *TutorController {
	return &TutorController{Service: svc}
}

// @Summary 获取最近的辅导会话
// @Tags 辅导
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/session [get]
func (c *TutorController) GetSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.Service.GetSession(user.UserID)
	if err != nil {
		if errors.Is(err, util.ErrSessionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, session)
}

type CreateSessionRequest struct {
	Subject string `json:"subject" binding:"required"`
}

// @Summary 创建辅导会话
// @Tags 辅导
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body CreateSessionRequest true "会话主题"
// @Success 201 {object} util.Response
// @Router /api/session [post]
func (c *TutorController) CreateSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.Service.CreateSession(user.UserID, req.Subject)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, session)
}

// @Summary 获取某主题下的对话记录
// @Tags 辅导
// @Produce json
// @Security ApiKeyAuth
// @Param subject path string true "学习主题"
// @Success 200 {object} util.Response
// @Router /api/messages/{subject} [get]
func (c *TutorController) GetMessages(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	msgs, err := c.Service.GetMessages(user.UserID, ctx.Param("subject"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, msgs)
}

// @Summary 发送消息并获取AI讲解
// @Tags 辅导
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.SendMessageRequest true "消息内容"
// @Success 200 {object} util.Response
// @Router /api/messages [post]
func (c *TutorController) SendMessage(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.Service.SendMessage(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reply)
}
