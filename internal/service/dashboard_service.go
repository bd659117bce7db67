package service

import (
	"context"
	"encoding/json"
	"fmt"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"time"

	"github.com/go-redis/redis/v8"
)

// DashboardStats is the aggregate view shown on the landing page.
type DashboardStats struct {
	Attempting     int64 `json:"attempting"`
	Resolved       int64 `json:"resolved"`
	SolvedWithHelp int64 `json:"solvedWithHelp"`
	GaveUp         int64 `json:"gaveUp"`
	SolveStreak    int   `json:"solveStreak"`
	WeekMinutes    int64 `json:"weekMinutes"`
}

type DashboardService struct {
	attempts *repository.AttemptRepository
	sessions *repository.SessionRepository
	rdb      *redis.Client
}

func NewDashboardService(attempts *repository.AttemptRepository, sessions *repository.SessionRepository, rdb *redis.Client) *DashboardService {
	return &DashboardService{attempts: attempts, sessions: sessions, rdb: rdb}
}

const dashboardTTL = 5 * time.Minute

func (s *DashboardService) Stats(userID uint) (*DashboardStats, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("dashboard:%d", userID)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached DashboardStats
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	stats := &DashboardStats{}
	counts := []struct {
		status model.AttemptStatus
		dst    *int64
	}{
		{model.Attempting, &stats.Attempting},
		{model.Resolved, &stats.Resolved},
		{model.SolvedWithHelp, &stats.SolvedWithHelp},
		{model.GaveUp, &stats.GaveUp},
	}
	for _, c := range counts {
		n, err := s.attempts.CountByOwnerAndStatus(userID, c.status)
		if err != nil {
			return nil, err
		}
		*c.dst = n
	}

	attempts, err := s.attempts.FindByOwner(userID)
	if err != nil {
		return nil, err
	}
	stats.SolveStreak = solveStreak(attempts, time.Now())

	weekStart := time.Now().AddDate(0, 0, -7)
	seconds, err := s.sessions.SumDurationSince(userID, weekStart)
	if err != nil {
		return nil, err
	}
	stats.WeekMinutes = seconds / 60

	if s.rdb != nil {
		if raw, err := json.Marshal(stats); err == nil {
			s.rdb.Set(ctx, cacheKey, raw, dashboardTTL)
		}
	}
	return stats, nil
}

// solveStreak counts consecutive days, ending today or yesterday, with at
// least one successfully resolved attempt.
func solveStreak(attempts []model.Attempt, now time.Time) int {
	days := make(map[string]bool)
	for _, a := range attempts {
		if (a.Status == model.Resolved || a.Status == model.SolvedWithHelp) && a.ResolvedAt != nil {
			days[a.ResolvedAt.Format("2006-01-02")] = true
		}
	}

	day := now
	if !days[day.Format("2006-01-02")] {
		day = day.AddDate(0, 0, -1)
	}

	streak := 0
	for days[day.Format("2006-01-02")] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
