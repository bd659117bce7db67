package service

import (
	"errors"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// InterviewService drives the mock interview phase flow. The flow is
// strictly linear: intro → coding → questions → feedback → complete.
type InterviewService struct {
	interviews *repository.InterviewRepository
}

func NewInterviewService(interviews *repository.InterviewRepository) *InterviewService {
	return &InterviewService{interviews: interviews}
}

type StartInterviewInput struct {
	ProblemID  string           `json:"problemId" binding:"required"`
	Difficulty model.Difficulty `json:"difficulty"`
}

func (s *InterviewService) Start(ownerID uint, in StartInterviewInput) (*model.Interview, error) {
	iv := &model.Interview{
		OwnerID:    ownerID,
		ProblemID:  in.ProblemID,
		Phase:      model.PhaseIntro,
		Difficulty: in.Difficulty,
		StartedAt:  time.Now(),
	}
	if err := s.interviews.Create(iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Advance moves the interview to the next phase. Advancing a completed
// interview is a conflict. CompletedAt is set exactly once, on entering
// the complete phase.
func (s *InterviewService) Advance(ownerID uint, interviewID string) (*model.Interview, error) {
	iv, err := s.find(ownerID, interviewID)
	if err != nil {
		return nil, err
	}
	if iv.Phase == model.PhaseComplete {
		return nil, util.ErrInterviewComplete
	}

	next := iv.Phase.Next()
	if next == "" {
		return nil, util.ErrInterviewComplete
	}
	iv.Phase = next
	if next == model.PhaseComplete && iv.CompletedAt == nil {
		now := time.Now()
		iv.CompletedAt = &now
	}

	if err := s.interviews.Update(iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// RecordFeedback stores the self-assessment captured in the feedback phase.
func (s *InterviewService) RecordFeedback(ownerID uint, interviewID string, selfRating int, note string) (*model.Interview, error) {
	if selfRating < 0 || selfRating > 5 {
		return nil, util.ErrInvalidRating
	}
	iv, err := s.find(ownerID, interviewID)
	if err != nil {
		return nil, err
	}

	iv.SelfRating = selfRating
	iv.FeedbackNote = note
	if err := s.interviews.Update(iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (s *InterviewService) Get(ownerID uint, interviewID string) (*model.Interview, error) {
	return s.find(ownerID, interviewID)
}

func (s *InterviewService) List(ownerID uint) ([]model.Interview, error) {
	return s.interviews.FindByOwner(ownerID)
}

func (s *InterviewService) find(ownerID uint, interviewID string) (*model.Interview, error) {
	iv, err := s.interviews.FindByID(interviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInterviewNotFound
		}
		return nil, err
	}
	if iv.OwnerID != ownerID {
		return nil, util.ErrPermissionDenied
	}
	return iv, nil
}
