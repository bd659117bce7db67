package controller

import (
	"errors"
	"lab_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the flat HTTP taxonomy:
// validation → 400, ownership → 403, unknown id → 404, illegal state
// transition → 409, everything else → 500.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrEmptyAttempt),
		errors.Is(err, util.ErrInvalidStatus),
		errors.Is(err, util.ErrInvalidReason),
		errors.Is(err, util.ErrInvalidLanguage),
		errors.Is(err, util.ErrInvalidDifficulty),
		errors.Is(err, util.ErrInvalidRating),
		errors.Is(err, util.ErrEmptyComment),
		errors.Is(err, util.ErrInvalidJournalKind),
		errors.Is(err, util.ErrInvalidJournalStatus),
		errors.Is(err, util.ErrEmptyTitle):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAttemptNotFound),
		errors.Is(err, util.ErrSessionNotFound),
		errors.Is(err, util.ErrInterviewNotFound),
		errors.Is(err, util.ErrEntryNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrAttemptTerminal),
		errors.Is(err, util.ErrSessionFinished),
		errors.Is(err, util.ErrInterviewComplete):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
