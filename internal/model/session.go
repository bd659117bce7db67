package model

import "time"

type SessionKind string

const (
	PracticeKind SessionKind = "practice"
	FocusKind    SessionKind = "focus"
)

func (k SessionKind) Valid() bool {
	return k == PracticeKind || k == FocusKind
}

// PracticeSession records one timed practice or focus block. Duration is
// measured client-side and stored verbatim; the server never recomputes it.
// swagger:model PracticeSession
type PracticeSession struct {
	UUIDBase

	OwnerID   uint        `gorm:"index;type:bigint unsigned" json:"ownerId"`
	Kind      SessionKind `gorm:"size:20;default:'practice'" json:"kind"`
	ProblemID string      `gorm:"size:100" json:"problemId,omitempty"`
	Duration  int         `json:"duration"`
	StartedAt time.Time   `json:"startedAt"`
	EndedAt   *time.Time  `json:"endedAt,omitempty"`
	Note      string      `gorm:"type:text" json:"note"`
}

func (PracticeSession) TableName() string {
	return "practice_sessions"
}
