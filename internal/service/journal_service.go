package service

import (
	"errors"
	"fmt"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"
	"strings"

	"gorm.io/gorm"
)

type JournalService struct {
	entries *repository.JournalRepository
}

func NewJournalService(entries *repository.JournalRepository) *JournalService {
	return &JournalService{entries: entries}
}

type JournalEntryInput struct {
	Kind    model.JournalKind `json:"kind" binding:"required"`
	Title   string            `json:"title" binding:"required"`
	Content string            `json:"content"`
	Tags    string            `json:"tags"`
	Status  string            `json:"status"`
	LinkURL string            `json:"linkUrl"`
}

func (s *JournalService) Create(ownerID uint, in JournalEntryInput) (*model.JournalEntry, error) {
	if !in.Kind.Valid() {
		return nil, util.ErrInvalidJournalKind
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, util.ErrEmptyTitle
	}
	if !model.ValidJournalStatus(in.Kind, in.Status) {
		return nil, fmt.Errorf("%w %s", util.ErrInvalidJournalStatus, in.Kind)
	}

	entry := &model.JournalEntry{
		OwnerID: ownerID,
		Kind:    in.Kind,
		Title:   in.Title,
		Content: in.Content,
		Tags:    in.Tags,
		Status:  in.Status,
		LinkURL: in.LinkURL,
	}
	if err := s.entries.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) Update(ownerID uint, entryID string, in JournalEntryInput) (*model.JournalEntry, error) {
	entry, err := s.find(ownerID, entryID)
	if err != nil {
		return nil, err
	}

	// kind is fixed at creation; only the content fields change
	if strings.TrimSpace(in.Title) != "" {
		entry.Title = in.Title
	}
	if !model.ValidJournalStatus(entry.Kind, in.Status) {
		return nil, fmt.Errorf("%w %s", util.ErrInvalidJournalStatus, entry.Kind)
	}
	entry.Content = in.Content
	entry.Tags = in.Tags
	entry.Status = in.Status
	entry.LinkURL = in.LinkURL

	if err := s.entries.Update(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *JournalService) Get(ownerID uint, entryID string) (*model.JournalEntry, error) {
	return s.find(ownerID, entryID)
}

func (s *JournalService) List(ownerID uint, kind model.JournalKind) ([]model.JournalEntry, error) {
	if kind != "" && !kind.Valid() {
		return nil, util.ErrInvalidJournalKind
	}
	return s.entries.FindByOwner(ownerID, kind)
}

func (s *JournalService) Delete(ownerID uint, entryID string) error {
	if _, err := s.find(ownerID, entryID); err != nil {
		return err
	}
	return s.entries.Delete(entryID)
}

func (s *JournalService) find(ownerID uint, entryID string) (*model.JournalEntry, error) {
	entry, err := s.entries.FindByID(entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrEntryNotFound
		}
		return nil, err
	}
	if entry.OwnerID != ownerID {
		return nil, util.ErrPermissionDenied
	}
	return entry, nil
}
