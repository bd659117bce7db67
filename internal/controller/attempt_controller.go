package controller

import (
	"lab_backend/internal/service"
	"lab_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	attempts *service.AttemptService
	sheet    *service.SheetService
}

func NewAttemptController(attempts *service.AttemptService, sheet *service.SheetService) *AttemptController {
	return &AttemptController{attempts: attempts, sheet: sheet}
}

// ListAttempts godoc
// @Summary List the caller's attempts for one problem
// @Tags attempts
// @Produce json
// @Security ApiKeyAuth
// @Param problemId query string true "problem slug"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	problemID := ctx.Query("problemId")
	if problemID == "" {
		util.BadRequest(ctx, "problemId is required")
		return
	}

	attempts, err := c.attempts.ListByProblem(user.UserID, problemID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"attempts": attempts})
}

// CreateAttempt godoc
// @Summary Create a new attempt in the attempting state
// @Tags attempts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateAttemptInput true "attempt fields"
// @Success 201 {object} util.Response{data=map[string]interface{}}
// @Router /api/attempts [post]
func (c *AttemptController) CreateAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CreateAttemptInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.attempts.CreateAttempt(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	c.sheet.InvalidateExtensions(user.UserID)
	util.Created(ctx, gin.H{"attempt": attempt})
}

// ResolveAttempt godoc
// @Summary Move an attempt to a terminal state, with optional reflection
// @Tags attempts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.ResolveInput true "terminal transition"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/attempts [put]
func (c *AttemptController) ResolveAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ResolveInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.attempts.Resolve(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	c.sheet.InvalidateExtensions(user.UserID)
	util.Success(ctx, gin.H{"attempt": attempt})
}

// DeleteAttempt godoc
// @Summary Hard-delete an attempt and its discussion thread
// @Tags attempts
// @Produce json
// @Security ApiKeyAuth
// @Param attemptId query string true "attempt id"
// @Success 200 {object} util.Response
// @Router /api/attempts [delete]
func (c *AttemptController) DeleteAttempt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	attemptID := ctx.Query("attemptId")
	if attemptID == "" {
		util.BadRequest(ctx, "attemptId is required")
		return
	}

	if err := c.attempts.DeleteAttempt(user.UserID, attemptID); err != nil {
		respondError(ctx, err)
		return
	}

	c.sheet.InvalidateExtensions(user.UserID)
	util.Success(ctx, nil)
}

// GetDiscussions godoc
// @Summary List the discussion thread of an attempt
// @Tags attempts
// @Produce json
// @Security ApiKeyAuth
// @Param attemptId query string true "attempt id"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/attempts/discussions [get]
func (c *AttemptController) GetDiscussions(ctx *gin.Context) {
	attemptID := ctx.Query("attemptId")
	if attemptID == "" {
		util.BadRequest(ctx, "attemptId is required")
		return
	}

	discussions, err := c.attempts.GetDiscussions(attemptID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"discussions": discussions})
}

type AddDiscussionRequest struct {
	AttemptID string `json:"attemptId" binding:"required"`
	Content   string `json:"content" binding:"required"`
}

// AddDiscussion godoc
// @Summary Append a comment to an attempt's discussion thread
// @Tags attempts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AddDiscussionRequest true "comment"
// @Success 201 {object} util.Response{data=map[string]interface{}}
// @Router /api/attempts/discussions [post]
func (c *AttemptController) AddDiscussion(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AddDiscussionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	discussion, err := c.attempts.AddDiscussion(req.AttemptID, user.Email, req.Content)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"discussion": discussion})
}
