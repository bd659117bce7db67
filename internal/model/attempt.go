package model

import "time"

type AttemptStatus string

const (
	Attempting     AttemptStatus = "attempting"
	Resolved       AttemptStatus = "resolved"
	SolvedWithHelp AttemptStatus = "solved_with_help"
	GaveUp         AttemptStatus = "gave_up"
)

// Terminal reports whether no further transition is defined for s.
func (s AttemptStatus) Terminal() bool {
	switch s {
	case Resolved, SolvedWithHelp, GaveUp:
		return true
	}
	return false
}

func (s AttemptStatus) Valid() bool {
	return s == Attempting || s.Terminal()
}

// FailureReasons is the closed set accepted for gave_up transitions.
var FailureReasons = []string{
	"Misunderstood the problem",
	"Wrong approach / algorithm",
	"Off-by-one / boundary error",
	"Right approach, buggy code",
	"Knew the approach, ran out of time",
	"Right answer, wrong complexity (TLE)",
	"Completely stuck",
}

func ValidFailureReason(reason string) bool {
	for _, r := range FailureReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// Languages accepted on attempts; empty means unspecified.
var Languages = []string{
	"go", "python", "java", "cpp", "c", "javascript", "typescript", "rust",
}

func ValidLanguage(lang string) bool {
	if lang == "" {
		return true
	}
	for _, l := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// swagger:model Attempt
type Attempt struct {
	UUIDBase

	ProblemID string `gorm:"index;size:100" json:"problemId"`
	OwnerID   uint   `gorm:"index;type:bigint unsigned" json:"ownerId"`

	Content         string        `gorm:"type:text" json:"content"`
	Code            string        `gorm:"type:text" json:"code"`
	Language        string        `gorm:"size:20" json:"language"`
	TimeComplexity  string        `gorm:"size:100" json:"timeComplexity"`
	SpaceComplexity string        `gorm:"size:100" json:"spaceComplexity"`
	FeltDifficulty  int           `gorm:"default:0" json:"feltDifficulty"`
	Duration        int           `json:"duration"` // client-measured seconds, not authoritative
	SubmissionCount int           `gorm:"default:0" json:"submissionCount"`
	Status          AttemptStatus `gorm:"size:20;default:'attempting'" json:"status"`
	FailureReason   string        `gorm:"size:100" json:"failureReason,omitempty"`
	FailureNote     string        `gorm:"type:text" json:"failureNote,omitempty"`
	Notes           string        `gorm:"type:text" json:"notes"`

	// Reflection, captured at the terminal transition.
	SolveMethod string `gorm:"size:100" json:"solveMethod,omitempty"`
	KeyInsight  string `gorm:"type:text" json:"keyInsight,omitempty"`
	Confidence  int    `gorm:"default:0" json:"confidence,omitempty"`

	ResolvedAt *time.Time `json:"resolvedAt,omitempty"`
}

func (Attempt) TableName() string {
	return "attempts"
}

// swagger:model Discussion
type Discussion struct {
	UUIDBase

	AttemptID string `gorm:"index;size:36" json:"attemptId"`
	Username  string `gorm:"size:100" json:"username"`
	Content   string `gorm:"type:text" json:"content"`
}

func (Discussion) TableName() string {
	return "attempt_discussions"
}
