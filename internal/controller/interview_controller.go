package controller

import (
	"lab_backend/internal/service"
	"lab_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InterviewController struct {
	interviews *service.InterviewService
}

func NewInterviewController(interviews *service.InterviewService) *InterviewController {
	return &InterviewController{interviews: interviews}
}

// StartInterview godoc
// @Summary Start a mock interview in the intro phase
// @Tags interviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.StartInterviewInput true "interview fields"
// @Success 201 {object} util.Response{data=map[string]interface{}}
// @Router /api/interviews [post]
func (c *InterviewController) StartInterview(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.StartInterviewInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	iv, err := c.interviews.Start(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"interview": iv})
}

// ListInterviews godoc
// @Summary List the caller's mock interviews
// @Tags interviews
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/interviews [get]
func (c *InterviewController) ListInterviews(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	interviews, err := c.interviews.List(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"interviews": interviews})
}

// GetInterview godoc
// @Summary Interview detail
// @Tags interviews
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "interview id"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/interviews/{id} [get]
func (c *InterviewController) GetInterview(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	iv, err := c.interviews.Get(user.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"interview": iv})
}

// AdvanceInterview godoc
// @Summary Advance the interview to its next phase
// @Tags interviews
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "interview id"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/interviews/{id}/advance [post]
func (c *InterviewController) AdvanceInterview(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	iv, err := c.interviews.Advance(user.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"interview": iv})
}

type InterviewFeedbackRequest struct {
	SelfRating   int    `json:"selfRating"`
	FeedbackNote string `json:"feedbackNote"`
}

// RecordFeedback godoc
// @Summary Record the self-assessment for an interview
// @Tags interviews
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "interview id"
// @Param body body InterviewFeedbackRequest true "feedback"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/interviews/{id}/feedback [post]
func (c *InterviewController) RecordFeedback(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req InterviewFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	iv, err := c.interviews.RecordFeedback(user.UserID, ctx.Param("id"), req.SelfRating, req.FeedbackNote)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"interview": iv})
}
