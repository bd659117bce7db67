package service

import (
	"errors"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"
	"lab_backend/pkg/monitoring"
	"strings"
	"time"

	"gorm.io/gorm"
)

// AttemptService owns the attempt lifecycle: attempts are created in
// attempting and move to exactly one terminal state via Resolve. Once
// terminal, no code path reverts the status; delete-and-recreate is the
// only undo.
type AttemptService struct {
	attempts    *repository.AttemptRepository
	discussions *repository.DiscussionRepository
}

func NewAttemptService(attempts *repository.AttemptRepository, discussions *repository.DiscussionRepository) *AttemptService {
	return &AttemptService{attempts: attempts, discussions: discussions}
}

type CreateAttemptInput struct {
	ProblemID       string `json:"problemId" binding:"required"`
	Content         string `json:"content"`
	Code            string `json:"code"`
	Language        string `json:"language"`
	TimeComplexity  string `json:"timeComplexity"`
	SpaceComplexity string `json:"spaceComplexity"`
	FeltDifficulty  int    `json:"feltDifficulty"`
	Duration        int    `json:"duration"`
	SubmissionCount int    `json:"submissionCount"`
	Notes           string `json:"notes"`
}

// ResolveInput carries the terminal transition plus optional reflection.
type ResolveInput struct {
	AttemptID     string              `json:"attemptId" binding:"required"`
	Status        model.AttemptStatus `json:"status" binding:"required"`
	FailureReason string              `json:"failureReason"`
	FailureNote   string              `json:"failureNote"`
	SolveMethod   string              `json:"solveMethod"`
	KeyInsight    string              `json:"keyInsight"`
	Confidence    int                 `json:"confidence"`
}

func (s *AttemptService) CreateAttempt(ownerID uint, in CreateAttemptInput) (*model.Attempt, error) {
	if strings.TrimSpace(in.Content) == "" && strings.TrimSpace(in.Code) == "" {
		return nil, util.ErrEmptyAttempt
	}
	if !model.ValidLanguage(in.Language) {
		return nil, util.ErrInvalidLanguage
	}
	if in.FeltDifficulty < 0 || in.FeltDifficulty > 5 {
		return nil, util.ErrInvalidDifficulty
	}

	attempt := &model.Attempt{
		ProblemID:       in.ProblemID,
		OwnerID:         ownerID,
		Content:         in.Content,
		Code:            in.Code,
		Language:        in.Language,
		TimeComplexity:  in.TimeComplexity,
		SpaceComplexity: in.SpaceComplexity,
		FeltDifficulty:  in.FeltDifficulty,
		Duration:        in.Duration,
		SubmissionCount: in.SubmissionCount,
		Status:          model.Attempting,
		Notes:           in.Notes,
	}

	if err := s.attempts.Create(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Resolve performs the single terminal transition. Re-resolving an already
// terminal attempt is rejected as a conflict.
func (s *AttemptService) Resolve(ownerID uint, in ResolveInput) (*model.Attempt, error) {
	if !in.Status.Terminal() {
		return nil, util.ErrInvalidStatus
	}

	if in.Status == model.GaveUp {
		if !model.ValidFailureReason(in.FailureReason) {
			return nil, util.ErrInvalidReason
		}
	} else if in.FailureReason != "" || in.FailureNote != "" {
		// failureReason/failureNote are populated iff the outcome is gave_up
		return nil, util.ErrInvalidReason
	}

	attempt, err := s.attempts.FindByID(in.AttemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.OwnerID != ownerID {
		return nil, util.ErrPermissionDenied
	}
	if attempt.Status != model.Attempting {
		return nil, util.ErrAttemptTerminal
	}

	now := time.Now()
	attempt.Status = in.Status
	attempt.ResolvedAt = &now
	if in.Status == model.GaveUp {
		attempt.FailureReason = in.FailureReason
		attempt.FailureNote = in.FailureNote
	} else {
		attempt.SolveMethod = in.SolveMethod
		attempt.KeyInsight = in.KeyInsight
		attempt.Confidence = in.Confidence
	}

	if err := s.attempts.Update(attempt); err != nil {
		return nil, err
	}

	monitoring.AttemptTransitions.WithLabelValues(string(in.Status)).Inc()
	return attempt, nil
}

func (s *AttemptService) ListByProblem(ownerID uint, problemID string) ([]model.Attempt, error) {
	return s.attempts.FindByOwnerAndProblem(ownerID, problemID)
}

func (s *AttemptService) DeleteAttempt(ownerID uint, attemptID string) error {
	attempt, err := s.attempts.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrAttemptNotFound
		}
		return err
	}
	if attempt.OwnerID != ownerID {
		return util.ErrPermissionDenied
	}
	return s.attempts.Delete(attemptID)
}

// AddDiscussion appends one comment; lifecycle state is no precondition.
func (s *AttemptService) AddDiscussion(attemptID, username, content string) (*model.Discussion, error) {
	if strings.TrimSpace(content) == "" {
		return nil, util.ErrEmptyComment
	}
	if _, err := s.attempts.FindByID(attemptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}

	d := &model.Discussion{
		AttemptID: attemptID,
		Username:  username,
		Content:   content,
	}
	if err := s.discussions.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *AttemptService) GetDiscussions(attemptID string) ([]model.Discussion, error) {
	return s.discussions.FindByAttempt(attemptID)
}
