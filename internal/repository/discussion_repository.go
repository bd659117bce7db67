package repository

import (
	"lab_backend/internal/model"

	"gorm.io/gorm"
)

type DiscussionRepository struct {
	DB *gorm.DB
}

func NewDiscussionRepository(db *gorm.DB) *DiscussionRepository {
	return &DiscussionRepository{DB: db}
}

func (r *DiscussionRepository) Create(d *model.Discussion) error {
	return r.DB.Create(d).Error
}

// FindByAttempt returns the thread in insertion order. Comments are
// append-only; there is no update or single delete.
func (r *DiscussionRepository) FindByAttempt(attemptID string) ([]model.Discussion, error) {
	var discussions []model.Discussion
	err := r.DB.Where("attempt_id = ?", attemptID).
		Order("created_at ASC").
		Find(&discussions).Error
	return discussions, err
}
