package service

import (
	"context"
	"encoding/json"
	"fmt"
	"lab_backend/internal/config"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"sort"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// Sheet filter statuses.
const (
	StatusAll            = "All"
	StatusSaved          = "Saved"
	StatusCompleted      = "Completed"
	StatusUnresolved     = "Unresolved"
	StatusDueForReview   = "Due for Review"
	StatusNeverAttempted = "Never Attempted"
)

// Extension carries the per-problem annotations derived from attempt
// history. This replaces the old hard-coded lookup: reviewDue and stuck are
// computed from real attempts.
type Extension struct {
	ReviewDue     bool       `json:"reviewDue"`
	Stuck         bool       `json:"stuck"`
	AttemptCount  int        `json:"attemptCount"`
	LastAttemptAt *time.Time `json:"lastAttemptAt,omitempty"`
}

// ProblemView is one sheet row annotated for a specific user.
type ProblemView struct {
	model.Problem
	Saved     bool `json:"saved"`
	Completed bool `json:"completed"`
	Extension
}

type TopicView struct {
	ID       uint          `json:"id"`
	Name     string        `json:"name"`
	Order    int           `json:"order"`
	Problems []ProblemView `json:"problems"`
}

type FilterOptions struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	Difficulty string `form:"difficulty"`
	Platform   string `form:"platform"`
	Sort       string `form:"sort"`
	SortDesc   bool   `form:"sortDesc"`
}

type SheetService struct {
	problems *repository.ProblemRepository
	attempts *repository.AttemptRepository
	rdb      *redis.Client
	cfg      *config.Config
}

func NewSheetService(problems *repository.ProblemRepository, attempts *repository.AttemptRepository, rdb *redis.Client, cfg *config.Config) *SheetService {
	return &SheetService{problems: problems, attempts: attempts, rdb: rdb, cfg: cfg}
}

// Sheet returns the full annotated sheet for one user.
func (s *SheetService) Sheet(userID uint) ([]TopicView, error) {
	topics, err := s.problems.Sheet()
	if err != nil {
		return nil, err
	}

	marks, err := s.problems.MarksByUser(userID)
	if err != nil {
		return nil, err
	}
	saved := make(map[string]bool)
	completed := make(map[string]bool)
	for _, m := range marks {
		if m.Saved {
			saved[m.ProblemID] = true
		}
		if m.Completed {
			completed[m.ProblemID] = true
		}
	}

	extensions, err := s.Extensions(userID)
	if err != nil {
		return nil, err
	}

	views := make([]TopicView, 0, len(topics))
	for _, t := range topics {
		tv := TopicView{ID: t.ID, Name: t.Name, Order: t.Order}
		for _, p := range t.Problems {
			tv.Problems = append(tv.Problems, ProblemView{
				Problem:   p,
				Saved:     saved[p.Slug],
				Completed: completed[p.Slug],
				Extension: extensions[p.Slug],
			})
		}
		views = append(views, tv)
	}
	return views, nil
}

// Filtered returns the filtered, sorted view.
func (s *SheetService) Filtered(userID uint, opts FilterOptions) ([]TopicView, error) {
	sheet, err := s.Sheet(userID)
	if err != nil {
		return nil, err
	}
	return FilterSheet(sheet, opts), nil
}

const extensionsTTL = time.Minute

// Extensions derives the reviewDue/stuck annotations from the user's attempt
// history, cached briefly in redis since the sheet is re-fetched on every
// filter change.
func (s *SheetService) Extensions(userID uint) (map[string]Extension, error) {
	ctx := context.Background()
	cacheKey := fmt.Sprintf("sheet:ext:%d", userID)

	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached map[string]Extension
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	attempts, err := s.attempts.FindByOwner(userID)
	if err != nil {
		return nil, err
	}

	reviewInterval := time.Duration(s.cfg.Sheet.ReviewIntervalDays) * 24 * time.Hour
	extensions := deriveExtensions(attempts, reviewInterval, time.Now())

	if s.rdb != nil {
		if raw, err := json.Marshal(extensions); err == nil {
			s.rdb.Set(ctx, cacheKey, raw, extensionsTTL)
		}
	}
	return extensions, nil
}

// InvalidateExtensions drops the cached annotations after a mutation.
func (s *SheetService) InvalidateExtensions(userID uint) {
	if s.rdb != nil {
		s.rdb.Del(context.Background(), fmt.Sprintf("sheet:ext:%d", userID))
	}
}

// deriveExtensions is the pure derivation:
//   - stuck: the latest attempt for the problem is gave_up (so no later
//     resolved attempt exists)
//   - reviewDue: a resolved attempt exists and the newest resolvedAt is
//     older than the review interval
func deriveExtensions(attempts []model.Attempt, reviewInterval time.Duration, now time.Time) map[string]Extension {
	type history struct {
		latest         *model.Attempt
		lastResolvedAt *time.Time
		count          int
	}
	byProblem := make(map[string]*history)

	for i := range attempts {
		a := &attempts[i]
		h := byProblem[a.ProblemID]
		if h == nil {
			h = &history{}
			byProblem[a.ProblemID] = h
		}
		h.count++
		if h.latest == nil || a.CreatedAt.After(h.latest.CreatedAt) {
			h.latest = a
		}
		if (a.Status == model.Resolved || a.Status == model.SolvedWithHelp) && a.ResolvedAt != nil {
			if h.lastResolvedAt == nil || a.ResolvedAt.After(*h.lastResolvedAt) {
				h.lastResolvedAt = a.ResolvedAt
			}
		}
	}

	extensions := make(map[string]Extension, len(byProblem))
	for problemID, h := range byProblem {
		ext := Extension{AttemptCount: h.count}
		if h.latest != nil {
			t := h.latest.CreatedAt
			ext.LastAttemptAt = &t
			ext.Stuck = h.latest.Status == model.GaveUp
		}
		if h.lastResolvedAt != nil && now.Sub(*h.lastResolvedAt) > reviewInterval {
			ext.ReviewDue = true
		}
		extensions[problemID] = ext
	}
	return extensions
}

// FilterSheet is the pure filter/sort pipeline: predicates drop rows, empty
// topics are dropped, and ordering is stable w.r.t. insertion order when no
// sort is selected.
func FilterSheet(sheet []TopicView, opts FilterOptions) []TopicView {
	out := make([]TopicView, 0, len(sheet))
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	for _, topic := range sheet {
		filtered := TopicView{ID: topic.ID, Name: topic.Name, Order: topic.Order}
		for _, p := range topic.Problems {
			if !matchesStatus(p, opts.Status) {
				continue
			}
			if opts.Difficulty != "" && string(p.Difficulty) != opts.Difficulty {
				continue
			}
			if opts.Platform != "" && p.Platform != opts.Platform {
				continue
			}
			if search != "" &&
				!strings.Contains(strings.ToLower(p.Title), search) &&
				!strings.Contains(strings.ToLower(p.Slug), search) {
				continue
			}
			filtered.Problems = append(filtered.Problems, p)
		}
		if len(filtered.Problems) == 0 {
			continue
		}
		sortProblems(filtered.Problems, opts.Sort, opts.SortDesc)
		out = append(out, filtered)
	}
	return out
}

func matchesStatus(p ProblemView, status string) bool {
	switch status {
	case "", StatusAll:
		return true
	case StatusSaved:
		return p.Saved
	case StatusCompleted:
		return p.Completed
	case StatusUnresolved:
		return p.AttemptCount > 0 && !p.Completed
	case StatusDueForReview:
		return p.ReviewDue
	case StatusNeverAttempted:
		return p.AttemptCount == 0
	}
	return false
}

var difficultyRank = map[model.Difficulty]int{
	model.Easy:   0,
	model.Medium: 1,
	model.Hard:   2,
}

func sortProblems(problems []ProblemView, key string, desc bool) {
	var less func(a, b ProblemView) bool

	switch key {
	case "difficulty":
		less = func(a, b ProblemView) bool {
			return difficultyRank[a.Difficulty] < difficultyRank[b.Difficulty]
		}
	case "staleness":
		// never-attempted problems are the most stale
		less = func(a, b ProblemView) bool {
			if a.LastAttemptAt == nil {
				return b.LastAttemptAt != nil
			}
			if b.LastAttemptAt == nil {
				return false
			}
			return a.LastAttemptAt.Before(*b.LastAttemptAt)
		}
	case "attempts":
		less = func(a, b ProblemView) bool {
			return a.AttemptCount < b.AttemptCount
		}
	default:
		return
	}

	sort.SliceStable(problems, func(i, j int) bool {
		if desc {
			return less(problems[j], problems[i])
		}
		return less(problems[i], problems[j])
	})
}

// Mark upserts the caller's saved/completed flags and invalidates the
// cached annotations.
func (s *SheetService) Mark(userID uint, problemID string, saved, completed bool) error {
	if _, err := s.problems.FindBySlug(problemID); err != nil {
		return err
	}
	err := s.problems.UpsertMark(&model.ProblemMark{
		UserID:    userID,
		ProblemID: problemID,
		Saved:     saved,
		Completed: completed,
	})
	if err != nil {
		return err
	}
	s.InvalidateExtensions(userID)
	return nil
}
