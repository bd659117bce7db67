package service

import (
	"testing"

	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalCreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewJournalService(repository.NewJournalRepository(db))
	user := createTestUser(t, db, "journal@lab.dev")

	_, err := svc.Create(user.ID, JournalEntryInput{Kind: "diary", Title: "x"})
	assert.ErrorIs(t, err, util.ErrInvalidJournalKind)

	_, err = svc.Create(user.ID, JournalEntryInput{Kind: model.NoteEntry, Title: "   "})
	assert.ErrorIs(t, err, util.ErrEmptyTitle)

	// statuses only exist for job and hackathon entries
	_, err = svc.Create(user.ID, JournalEntryInput{Kind: model.NoteEntry, Title: "n", Status: "applied"})
	assert.ErrorIs(t, err, util.ErrInvalidJournalStatus)

	_, err = svc.Create(user.ID, JournalEntryInput{Kind: model.JobEntry, Title: "backend role", Status: "ghosted"})
	assert.ErrorIs(t, err, util.ErrInvalidJournalStatus)

	entry, err := svc.Create(user.ID, JournalEntryInput{
		Kind:   model.JobEntry,
		Title:  "backend role at acme",
		Status: "applied",
		Tags:   "go,backend",
	})
	require.NoError(t, err)
	assert.Equal(t, "applied", entry.Status)
}

func TestJournalUpdateKeepsKind(t *testing.T) {
	db := newTestDB(t)
	svc := NewJournalService(repository.NewJournalRepository(db))
	user := createTestUser(t, db, "journal-up@lab.dev")

	entry, err := svc.Create(user.ID, JournalEntryInput{
		Kind:  model.HackathonEntry,
		Title: "city hack 2026",
	})
	require.NoError(t, err)

	updated, err := svc.Update(user.ID, entry.ID, JournalEntryInput{
		Kind:    model.NoteEntry, // ignored, kind is fixed at creation
		Title:   "city hack 2026 (48h)",
		Status:  "done",
		Content: "shipped a tiny prototype",
	})
	require.NoError(t, err)
	assert.Equal(t, model.HackathonEntry, updated.Kind)
	assert.Equal(t, "city hack 2026 (48h)", updated.Title)
	assert.Equal(t, "done", updated.Status)

	// the status list is still validated against the original kind
	_, err = svc.Update(user.ID, entry.ID, JournalEntryInput{Title: "t", Status: "applied"})
	assert.ErrorIs(t, err, util.ErrInvalidJournalStatus)
}

func TestJournalListAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewJournalService(repository.NewJournalRepository(db))
	user := createTestUser(t, db, "journal-list@lab.dev")
	other := createTestUser(t, db, "journal-other@lab.dev")

	note, err := svc.Create(user.ID, JournalEntryInput{Kind: model.NoteEntry, Title: "a note"})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, JournalEntryInput{Kind: model.ExperimentEntry, Title: "bloom filter demo"})
	require.NoError(t, err)

	all, err := svc.List(user.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	notes, err := svc.List(user.ID, model.NoteEntry)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, note.ID, notes[0].ID)

	_, err = svc.List(user.ID, "diary")
	assert.ErrorIs(t, err, util.ErrInvalidJournalKind)

	assert.ErrorIs(t, svc.Delete(other.ID, note.ID), util.ErrPermissionDenied)
	require.NoError(t, svc.Delete(user.ID, note.ID))

	_, err = svc.Get(user.ID, note.ID)
	assert.ErrorIs(t, err, util.ErrEntryNotFound)
}
