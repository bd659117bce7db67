package repository

import (
	"lab_backend/internal/model"

	"gorm.io/gorm"
)

type JournalRepository struct {
	DB *gorm.DB
}

func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

func (r *JournalRepository) Create(e *model.JournalEntry) error {
	return r.DB.Create(e).Error
}

func (r *JournalRepository) Update(e *model.JournalEntry) error {
	return r.DB.Save(e).Error
}

func (r *JournalRepository) FindByID(id string) (*model.JournalEntry, error) {
	var e model.JournalEntry
	if err := r.DB.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *JournalRepository) FindByOwner(ownerID uint, kind model.JournalKind) ([]model.JournalEntry, error) {
	query := r.DB.Where("owner_id = ?", ownerID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	var entries []model.JournalEntry
	err := query.Order("created_at DESC").Find(&entries).Error
	return entries, err
}

func (r *JournalRepository) Delete(id string) error {
	return r.DB.Unscoped().Delete(&model.JournalEntry{}, "id = ?", id).Error
}
