package controller

import (
	"errors"
	"lab_backend/internal/service"
	"lab_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SheetController struct {
	sheet *service.SheetService
}

func NewSheetController(sheet *service.SheetService) *SheetController {
	return &SheetController{sheet: sheet}
}

// GetSheet godoc
// @Summary Full problem sheet with the caller's marks and annotations
// @Tags sheet
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/sheet [get]
func (c *SheetController) GetSheet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sheet, err := c.sheet.Sheet(user.UserID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"topics": sheet})
}

// FilterSheet godoc
// @Summary Filtered, sorted view of the problem sheet
// @Tags sheet
// @Produce json
// @Security ApiKeyAuth
// @Param search query string false "title/slug substring"
// @Param status query string false "All | Saved | Completed | Unresolved | Due for Review | Never Attempted"
// @Param difficulty query string false "Easy | Medium | Hard"
// @Param platform query string false "platform name"
// @Param sort query string false "difficulty | staleness | attempts"
// @Param sortDesc query bool false "descending order"
// @Success 200 {object} util.Response{data=map[string]interface{}}
// @Router /api/sheet/filter [get]
func (c *SheetController) FilterSheet(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var opts service.FilterOptions
	if err := ctx.ShouldBindQuery(&opts); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	sheet, err := c.sheet.Filtered(user.UserID, opts)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"topics": sheet})
}

type MarkRequest struct {
	Saved     bool `json:"saved"`
	Completed bool `json:"completed"`
}

// MarkProblem godoc
// @Summary Set the caller's saved/completed flags for one problem
// @Tags sheet
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "problem slug"
// @Param body body MarkRequest true "flags"
// @Success 200 {object} util.Response
// @Router /api/sheet/problems/{id}/mark [put]
func (c *SheetController) MarkProblem(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req MarkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	err := c.sheet.Mark(user.UserID, ctx.Param("id"), req.Saved, req.Completed)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		respondError(ctx, err)
		return
	}

	util.Success(ctx, nil)
}
