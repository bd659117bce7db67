package model

import "time"

type InterviewPhase string

const (
	PhaseIntro     InterviewPhase = "intro"
	PhaseCoding    InterviewPhase = "coding"
	PhaseQuestions InterviewPhase = "questions"
	PhaseFeedback  InterviewPhase = "feedback"
	PhaseComplete  InterviewPhase = "complete"
)

// InterviewPhases is the linear flow; advancing moves to the next entry only.
var InterviewPhases = []InterviewPhase{
	PhaseIntro, PhaseCoding, PhaseQuestions, PhaseFeedback, PhaseComplete,
}

// Next returns the following phase, or empty when p is complete or unknown.
func (p InterviewPhase) Next() InterviewPhase {
	for i, phase := range InterviewPhases {
		if phase == p && i+1 < len(InterviewPhases) {
			return InterviewPhases[i+1]
		}
	}
	return ""
}

// swagger:model Interview
type Interview struct {
	UUIDBase

	OwnerID      uint           `gorm:"index;type:bigint unsigned" json:"ownerId"`
	ProblemID    string         `gorm:"size:100" json:"problemId"`
	Phase        InterviewPhase `gorm:"size:20;default:'intro'" json:"phase"`
	Difficulty   Difficulty     `gorm:"size:10" json:"difficulty"`
	StartedAt    time.Time      `json:"startedAt"`
	CompletedAt  *time.Time     `json:"completedAt,omitempty"`
	SelfRating   int            `gorm:"default:0" json:"selfRating"`
	FeedbackNote string         `gorm:"type:text" json:"feedbackNote"`
}

func (Interview) TableName() string {
	return "interviews"
}
