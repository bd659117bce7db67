package service

import (
	"errors"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// SessionService records timed practice/focus blocks. The duration is
// client-measured and stored verbatim; cancellation is simply never calling
// Finish, and no server-side cleanup runs for abandoned sessions.
type SessionService struct {
	sessions *repository.SessionRepository
}

func NewSessionService(sessions *repository.SessionRepository) *SessionService {
	return &SessionService{sessions: sessions}
}

type StartSessionInput struct {
	Kind      model.SessionKind `json:"kind"`
	ProblemID string            `json:"problemId"`
	Note      string            `json:"note"`
}

func (s *SessionService) Start(ownerID uint, in StartSessionInput) (*model.PracticeSession, error) {
	kind := in.Kind
	if kind == "" {
		kind = model.PracticeKind
	}
	if !kind.Valid() {
		return nil, errors.New("unknown session kind")
	}

	session := &model.PracticeSession{
		OwnerID:   ownerID,
		Kind:      kind,
		ProblemID: in.ProblemID,
		StartedAt: time.Now(),
		Note:      in.Note,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Finish(ownerID uint, sessionID string, duration int, note string) (*model.PracticeSession, error) {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}
	if session.OwnerID != ownerID {
		return nil, util.ErrPermissionDenied
	}
	if session.EndedAt != nil {
		return nil, util.ErrSessionFinished
	}

	now := time.Now()
	session.EndedAt = &now
	session.Duration = duration
	if note != "" {
		session.Note = note
	}
	if err := s.sessions.Update(session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) List(ownerID uint) ([]model.PracticeSession, error) {
	return s.sessions.FindByOwner(ownerID)
}

func (s *SessionService) Delete(ownerID uint, sessionID string) error {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSessionNotFound
		}
		return err
	}
	if session.OwnerID != ownerID {
		return util.ErrPermissionDenied
	}
	return s.sessions.Delete(sessionID)
}
