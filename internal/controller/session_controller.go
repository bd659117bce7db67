package controller

import (
	"lab_backend/internal/service"
	"lab_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	sessions *service.SessionService
}

func NewSessionController(sessions *service.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// ListSessions godoc
// @Summary List the caller's practice/focus sessions
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/sessions [get]
func (c *SessionController) ListSessions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sessions, err := c.sessions.List(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"sessions": sessions})
}

// StartSession godoc
// @Summary Start a timed practice or focus session
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StartSessionInput true "session fields"
// @Success 201 {object} util.Response{data=map[string]interface{}}
// @Router /api/sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.StartSessionInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.sessions.Start(user.UserID, req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, gin.H{"session": session})
}

type FinishSessionRequest struct {
	Duration int    `json:"duration"`
	Note     string `json:"note"`
}

// FinishSession godoc
// @Summary Finish a session, recording the client-measured duration
// @Tags sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "session id"
// @Param body body FinishSessionRequest true "duration in seconds"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/sessions/{id}/finish [put]
func (c *SessionController) FinishSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req FinishSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.sessions.Finish(user.UserID, ctx.Param("id"), req.Duration, req.Note)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"session": session})
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "session id"
// @Success 200 {object} util.Response
// @Router /api/sessions/{id} [delete]
func (c *SessionController) DeleteSession(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.sessions.Delete(user.UserID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
