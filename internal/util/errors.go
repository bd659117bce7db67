package util

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailRegistered      = errors.New("email already registered")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrAttemptNotFound      = errors.New("attempt not found")
	ErrAttemptTerminal      = errors.New("attempt already resolved")
	ErrEmptyAttempt         = errors.New("content or code is required")
	ErrInvalidStatus        = errors.New("invalid attempt status")
	ErrInvalidReason        = errors.New("failure reason is required and must be one of the known reasons")
	ErrInvalidLanguage      = errors.New("unknown language")
	ErrInvalidDifficulty    = errors.New("felt difficulty must be between 0 and 5")
	ErrEmptyComment         = errors.New("comment content is required")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionFinished      = errors.New("session already finished")
	ErrInterviewNotFound    = errors.New("interview not found")
	ErrInterviewComplete    = errors.New("interview already complete")
	ErrInvalidRating        = errors.New("rating must be between 0 and 5")
	ErrEntryNotFound        = errors.New("journal entry not found")
	ErrInvalidJournalKind   = errors.New("unknown journal kind")
	ErrInvalidJournalStatus = errors.New("invalid status for entry kind")
	ErrEmptyTitle           = errors.New("title is required")
)
