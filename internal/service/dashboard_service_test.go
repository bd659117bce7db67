package service

import (
	"testing"
	"time"

	"lab_backend/internal/model"
	"lab_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveStreak(t *testing.T) {
	now := time.Date(2026, 8, 28, 15, 0, 0, 0, time.UTC)

	resolvedOn := func(daysAgo int) model.Attempt {
		ts := now.AddDate(0, 0, -daysAgo)
		return model.Attempt{Status: model.Resolved, ResolvedAt: &ts}
	}

	t.Run("empty history", func(t *testing.T) {
		assert.Equal(t, 0, solveStreak(nil, now))
	})

	t.Run("streak ends today", func(t *testing.T) {
		attempts := []model.Attempt{resolvedOn(0), resolvedOn(1), resolvedOn(2)}
		assert.Equal(t, 3, solveStreak(attempts, now))
	})

	t.Run("streak survives nothing-yet-today", func(t *testing.T) {
		attempts := []model.Attempt{resolvedOn(1), resolvedOn(2)}
		assert.Equal(t, 2, solveStreak(attempts, now))
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		attempts := []model.Attempt{resolvedOn(0), resolvedOn(2), resolvedOn(3)}
		assert.Equal(t, 1, solveStreak(attempts, now))
	})

	t.Run("stale history", func(t *testing.T) {
		attempts := []model.Attempt{resolvedOn(5)}
		assert.Equal(t, 0, solveStreak(attempts, now))
	})

	t.Run("gave up does not count", func(t *testing.T) {
		ts := now
		attempts := []model.Attempt{{Status: model.GaveUp, ResolvedAt: &ts}}
		assert.Equal(t, 0, solveStreak(attempts, now))
	})
}

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	attemptRepo := repository.NewAttemptRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	svc := NewDashboardService(attemptRepo, sessionRepo, nil)
	user := createTestUser(t, db, "dash@lab.dev")
	other := createTestUser(t, db, "dash-other@lab.dev")

	now := time.Now()
	createTestAttempt(t, db, &model.Attempt{ProblemID: "two-sum", OwnerID: user.ID, Status: model.Resolved, ResolvedAt: &now})
	createTestAttempt(t, db, &model.Attempt{ProblemID: "binary-search", OwnerID: user.ID, Status: model.Resolved, ResolvedAt: &now})
	createTestAttempt(t, db, &model.Attempt{ProblemID: "group-anagrams", OwnerID: user.ID, Status: model.SolvedWithHelp, ResolvedAt: &now})
	createTestAttempt(t, db, &model.Attempt{ProblemID: "climbing-stairs", OwnerID: user.ID, Status: model.GaveUp, ResolvedAt: &now})
	createTestAttempt(t, db, &model.Attempt{ProblemID: "valid-palindrome", OwnerID: user.ID})
	createTestAttempt(t, db, &model.Attempt{ProblemID: "two-sum", OwnerID: other.ID})

	ended := now
	session := &model.PracticeSession{
		OwnerID:   user.ID,
		Kind:      model.PracticeKind,
		Duration:  1800,
		StartedAt: now.Add(-time.Hour),
		EndedAt:   &ended,
	}
	require.NoError(t, db.Create(session).Error)

	// sessions outside the week window or never finished do not count
	old := &model.PracticeSession{
		OwnerID:   user.ID,
		Kind:      model.PracticeKind,
		Duration:  3600,
		StartedAt: now.AddDate(0, 0, -10),
		EndedAt:   &ended,
	}
	require.NoError(t, db.Create(old).Error)
	open := &model.PracticeSession{
		OwnerID:   user.ID,
		Kind:      model.FocusKind,
		StartedAt: now,
	}
	require.NoError(t, db.Create(open).Error)

	stats, err := svc.Stats(user.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Attempting)
	assert.Equal(t, int64(2), stats.Resolved)
	assert.Equal(t, int64(1), stats.SolvedWithHelp)
	assert.Equal(t, int64(1), stats.GaveUp)
	assert.Equal(t, 1, stats.SolveStreak)
	assert.Equal(t, int64(30), stats.WeekMinutes)
}
