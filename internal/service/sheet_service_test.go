package service

import (
	"testing"
	"time"

	"lab_backend/internal/model"
	"lab_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSheetService(db *gorm.DB) *SheetService {
	return NewSheetService(
		repository.NewProblemRepository(db),
		repository.NewAttemptRepository(db),
		nil,
		newTestConfig(),
	)
}

func TestDeriveExtensions(t *testing.T) {
	now := time.Now()
	interval := 14 * 24 * time.Hour

	attempts := []model.Attempt{
		// two-sum: resolved 20 days ago, nothing since -> due for review
		{
			UUIDBase:   model.UUIDBase{ID: "a1", CreatedAt: now.AddDate(0, 0, -20)},
			ProblemID:  "two-sum",
			Status:     model.Resolved,
			ResolvedAt: timePtr(now.AddDate(0, 0, -20)),
		},
		// binary-search: gave up most recently -> stuck
		{
			UUIDBase:   model.UUIDBase{ID: "a2", CreatedAt: now.AddDate(0, 0, -5)},
			ProblemID:  "binary-search",
			Status:     model.Resolved,
			ResolvedAt: timePtr(now.AddDate(0, 0, -5)),
		},
		{
			UUIDBase:   model.UUIDBase{ID: "a3", CreatedAt: now.AddDate(0, 0, -2)},
			ProblemID:  "binary-search",
			Status:     model.GaveUp,
			ResolvedAt: timePtr(now.AddDate(0, 0, -2)),
		},
		// climbing-stairs: solved with help yesterday -> neither
		{
			UUIDBase:   model.UUIDBase{ID: "a4", CreatedAt: now.AddDate(0, 0, -1)},
			ProblemID:  "climbing-stairs",
			Status:     model.SolvedWithHelp,
			ResolvedAt: timePtr(now.AddDate(0, 0, -1)),
		},
		// group-anagrams: still attempting
		{
			UUIDBase:  model.UUIDBase{ID: "a5", CreatedAt: now},
			ProblemID: "group-anagrams",
			Status:    model.Attempting,
		},
	}

	ext := deriveExtensions(attempts, interval, now)

	assert.True(t, ext["two-sum"].ReviewDue)
	assert.False(t, ext["two-sum"].Stuck)
	assert.Equal(t, 1, ext["two-sum"].AttemptCount)

	assert.True(t, ext["binary-search"].Stuck, "latest attempt gave up")
	assert.False(t, ext["binary-search"].ReviewDue, "resolved 5 days ago, inside the interval")
	assert.Equal(t, 2, ext["binary-search"].AttemptCount)

	assert.False(t, ext["climbing-stairs"].ReviewDue)
	assert.False(t, ext["climbing-stairs"].Stuck)

	assert.False(t, ext["group-anagrams"].Stuck)
	assert.False(t, ext["group-anagrams"].ReviewDue)
	require.NotNil(t, ext["group-anagrams"].LastAttemptAt)

	_, seen := ext["never-attempted"]
	assert.False(t, seen, "no entry for problems with no history")
}

func TestDeriveExtensionsStuckClearedByLaterResolve(t *testing.T) {
	now := time.Now()

	attempts := []model.Attempt{
		{
			UUIDBase:   model.UUIDBase{ID: "g1", CreatedAt: now.AddDate(0, 0, -3)},
			ProblemID:  "two-sum",
			Status:     model.GaveUp,
			ResolvedAt: timePtr(now.AddDate(0, 0, -3)),
		},
		{
			UUIDBase:   model.UUIDBase{ID: "g2", CreatedAt: now.AddDate(0, 0, -1)},
			ProblemID:  "two-sum",
			Status:     model.Resolved,
			ResolvedAt: timePtr(now.AddDate(0, 0, -1)),
		},
	}

	ext := deriveExtensions(attempts, 14*24*time.Hour, now)
	assert.False(t, ext["two-sum"].Stuck, "a later resolve clears stuck")
}

func testSheet() []TopicView {
	day := func(n int) *time.Time {
		ts := time.Date(2026, 8, n, 12, 0, 0, 0, time.UTC)
		return &ts
	}
	return []TopicView{
		{
			ID: 1, Name: "Arrays & Hashing", Order: 1,
			Problems: []ProblemView{
				{
					Problem:   model.Problem{Slug: "two-sum", Title: "Two Sum", Difficulty: model.Easy, Platform: "LeetCode"},
					Completed: true,
					Extension: Extension{AttemptCount: 2, LastAttemptAt: day(1)},
				},
				{
					Problem:   model.Problem{Slug: "group-anagrams", Title: "Group Anagrams", Difficulty: model.Medium, Platform: "LeetCode"},
					Saved:     true,
					Extension: Extension{AttemptCount: 1, Stuck: true, LastAttemptAt: day(10)},
				},
			},
		},
		{
			ID: 2, Name: "Binary Search", Order: 2,
			Problems: []ProblemView{
				{
					Problem:   model.Problem{Slug: "binary-search", Title: "Binary Search", Difficulty: model.Easy, Platform: "NeetCode"},
					Completed: true,
					Extension: Extension{AttemptCount: 3, ReviewDue: true, LastAttemptAt: day(5)},
				},
				{
					Problem: model.Problem{Slug: "search-rotated-array", Title: "Search in Rotated Sorted Array", Difficulty: model.Medium, Platform: "LeetCode"},
				},
			},
		},
		{
			ID: 3, Name: "Dynamic Programming", Order: 3,
			Problems: []ProblemView{
				{
					Problem: model.Problem{Slug: "regular-expression-matching", Title: "Regular Expression Matching", Difficulty: model.Hard, Platform: "LeetCode"},
				},
			},
		},
	}
}

func slugs(topics []TopicView) map[string][]string {
	out := make(map[string][]string)
	for _, t := range topics {
		for _, p := range t.Problems {
			out[t.Name] = append(out[t.Name], p.Slug)
		}
	}
	return out
}

func TestFilterSheetStatus(t *testing.T) {
	cases := []struct {
		status string
		want   map[string][]string
	}{
		{StatusAll, map[string][]string{
			"Arrays & Hashing":    {"two-sum", "group-anagrams"},
			"Binary Search":       {"binary-search", "search-rotated-array"},
			"Dynamic Programming": {"regular-expression-matching"},
		}},
		{StatusSaved, map[string][]string{
			"Arrays & Hashing": {"group-anagrams"},
		}},
		{StatusCompleted, map[string][]string{
			"Arrays & Hashing": {"two-sum"},
			"Binary Search":    {"binary-search"},
		}},
		{StatusUnresolved, map[string][]string{
			"Arrays & Hashing": {"group-anagrams"},
		}},
		{StatusDueForReview, map[string][]string{
			"Binary Search": {"binary-search"},
		}},
		{StatusNeverAttempted, map[string][]string{
			"Binary Search":       {"search-rotated-array"},
			"Dynamic Programming": {"regular-expression-matching"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.status, func(t *testing.T) {
			got := FilterSheet(testSheet(), FilterOptions{Status: tc.status})
			assert.Equal(t, tc.want, slugs(got), "empty topics must be dropped entirely")
		})
	}
}

func TestFilterSheetSearchAndFacets(t *testing.T) {
	got := FilterSheet(testSheet(), FilterOptions{Search: "  SUM "})
	assert.Equal(t, map[string][]string{"Arrays & Hashing": {"two-sum"}}, slugs(got))

	got = FilterSheet(testSheet(), FilterOptions{Difficulty: "Medium"})
	assert.Equal(t, map[string][]string{
		"Arrays & Hashing": {"group-anagrams"},
		"Binary Search":    {"search-rotated-array"},
	}, slugs(got))

	got = FilterSheet(testSheet(), FilterOptions{Platform: "NeetCode"})
	assert.Equal(t, map[string][]string{"Binary Search": {"binary-search"}}, slugs(got))

	got = FilterSheet(testSheet(), FilterOptions{Search: "no such problem"})
	assert.Empty(t, got)
}

func TestFilterSheetSort(t *testing.T) {
	// difficulty ascending keeps Easy before Medium within each topic
	got := FilterSheet(testSheet(), FilterOptions{Sort: "difficulty"})
	assert.Equal(t, []string{"two-sum", "group-anagrams"}, slugs(got)["Arrays & Hashing"])

	// descending swaps them
	got = FilterSheet(testSheet(), FilterOptions{Sort: "difficulty", SortDesc: true})
	assert.Equal(t, []string{"group-anagrams", "two-sum"}, slugs(got)["Arrays & Hashing"])

	// staleness puts never-attempted first
	got = FilterSheet(testSheet(), FilterOptions{Sort: "staleness"})
	assert.Equal(t, []string{"search-rotated-array", "binary-search"}, slugs(got)["Binary Search"])

	// attempts descending
	got = FilterSheet(testSheet(), FilterOptions{Sort: "attempts", SortDesc: true})
	assert.Equal(t, []string{"binary-search", "search-rotated-array"}, slugs(got)["Binary Search"])

	// unknown sort key leaves insertion order untouched
	got = FilterSheet(testSheet(), FilterOptions{Sort: "bogus"})
	assert.Equal(t, []string{"two-sum", "group-anagrams"}, slugs(got)["Arrays & Hashing"])
}

func TestSheetAnnotations(t *testing.T) {
	db := newTestDB(t)
	svc := newSheetService(db)
	attempts := newAttemptService(db)
	user := createTestUser(t, db, "sheet@lab.dev")

	a, err := attempts.CreateAttempt(user.ID, CreateAttemptInput{
		ProblemID: "two-sum",
		Content:   "hash map",
	})
	require.NoError(t, err)
	_, err = attempts.Resolve(user.ID, ResolveInput{AttemptID: a.ID, Status: model.Resolved})
	require.NoError(t, err)

	require.NoError(t, svc.Mark(user.ID, "two-sum", true, true))

	sheet, err := svc.Sheet(user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, sheet)

	var twoSum *ProblemView
	for i := range sheet {
		for j := range sheet[i].Problems {
			if sheet[i].Problems[j].Slug == "two-sum" {
				twoSum = &sheet[i].Problems[j]
			}
		}
	}
	require.NotNil(t, twoSum)
	assert.True(t, twoSum.Saved)
	assert.True(t, twoSum.Completed)
	assert.Equal(t, 1, twoSum.AttemptCount)
	assert.False(t, twoSum.ReviewDue, "just resolved")
}

func TestMarkUnknownProblem(t *testing.T) {
	db := newTestDB(t)
	svc := newSheetService(db)
	user := createTestUser(t, db, "mark@lab.dev")

	assert.Error(t, svc.Mark(user.ID, "no-such-slug", true, false))

	// marking twice upserts rather than duplicating
	require.NoError(t, svc.Mark(user.ID, "two-sum", true, false))
	require.NoError(t, svc.Mark(user.ID, "two-sum", false, true))

	var marks []model.ProblemMark
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&marks).Error)
	require.Len(t, marks, 1)
	assert.False(t, marks[0].Saved)
	assert.True(t, marks[0].Completed)
}
