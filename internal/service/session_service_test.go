package service

import (
	"testing"

	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(repository.NewSessionRepository(db))
	user := createTestUser(t, db, "session@lab.dev")

	session, err := svc.Start(user.ID, StartSessionInput{ProblemID: "two-sum"})
	require.NoError(t, err)
	assert.Equal(t, model.PracticeKind, session.Kind, "kind defaults to practice")
	assert.Nil(t, session.EndedAt)

	finished, err := svc.Finish(user.ID, session.ID, 1500, "good run")
	require.NoError(t, err)
	require.NotNil(t, finished.EndedAt)
	assert.Equal(t, 1500, finished.Duration, "client duration stored verbatim")
	assert.Equal(t, "good run", finished.Note)

	_, err = svc.Finish(user.ID, session.ID, 9999, "")
	assert.ErrorIs(t, err, util.ErrSessionFinished)
}

func TestSessionKinds(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(repository.NewSessionRepository(db))
	user := createTestUser(t, db, "kinds@lab.dev")

	focus, err := svc.Start(user.ID, StartSessionInput{Kind: model.FocusKind})
	require.NoError(t, err)
	assert.Equal(t, model.FocusKind, focus.Kind)

	_, err = svc.Start(user.ID, StartSessionInput{Kind: "pomodoro"})
	assert.Error(t, err)
}

func TestSessionOwnershipAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewSessionService(repository.NewSessionRepository(db))
	owner := createTestUser(t, db, "sess-owner@lab.dev")
	other := createTestUser(t, db, "sess-other@lab.dev")

	session, err := svc.Start(owner.ID, StartSessionInput{})
	require.NoError(t, err)

	_, err = svc.Finish(other.ID, session.ID, 60, "")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)

	assert.ErrorIs(t, svc.Delete(other.ID, session.ID), util.ErrPermissionDenied)
	require.NoError(t, svc.Delete(owner.ID, session.ID))

	_, err = svc.Finish(owner.ID, session.ID, 60, "")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	sessions, err := svc.List(owner.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
