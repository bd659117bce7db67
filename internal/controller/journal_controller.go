package controller

import (
	"lab_backend/internal/model"
	"lab_backend/internal/service"
	"lab_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	journal *service.JournalService
}

func NewJournalController(journal *service.JournalService) *JournalController {
	return &JournalController{journal: journal}
}

// ListEntries godoc
// @Summary List journal entries, optionally by kind
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Param kind query string false "note | experiment | hackathon | job"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/journal [get]
func (c *JournalController) ListEntries(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.journal.List(user.UserID, model.JournalKind(ctx.Query("kind")))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"entries": entries})
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.JournalEntryInput true "entry"
// @Success 201 {object} util.Response{data=map[string]interface{}}
// @Router /api/journal [post]
func (c *JournalController) CreateEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.JournalEntryInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.journal.Create(user.UserID, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"entry": entry})
}

// GetEntry godoc
// @Summary Journal entry detail
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "entry id"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/journal/{id} [get]
func (c *JournalController) GetEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	entry, err := c.journal.Get(user.UserID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"entry": entry})
}

// UpdateEntry godoc
// @Summary Update a journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "entry id"
// @Param body body service.JournalEntryInput true "entry"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/journal/{id} [put]
func (c *JournalController) UpdateEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.JournalEntryInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.journal.Update(user.UserID, ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"entry": entry})
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Tags journal
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "entry id"
// @Success 200 {object} util.Response
// @Router /api/journal/{id} [delete]
func (c *JournalController) DeleteEntry(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.journal.Delete(user.UserID, ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
