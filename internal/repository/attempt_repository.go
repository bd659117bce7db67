package repository

import (
	"lab_backend/internal/model"

	"gorm.io/gorm"
)

type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

func (r *AttemptRepository) Create(attempt *model.Attempt) error {
	return r.DB.Create(attempt).Error
}

func (r *AttemptRepository) Update(attempt *model.Attempt) error {
	return r.DB.Save(attempt).Error
}

func (r *AttemptRepository) FindByID(id string) (*model.Attempt, error) {
	var a model.Attempt
	if err := r.DB.First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByOwnerAndProblem returns the caller's attempts for one problem,
// newest first.
func (r *AttemptRepository) FindByOwnerAndProblem(ownerID uint, problemID string) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("owner_id = ? AND problem_id = ?", ownerID, problemID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

func (r *AttemptRepository) FindByOwner(ownerID uint) ([]model.Attempt, error) {
	var attempts []model.Attempt
	err := r.DB.Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&attempts).Error
	return attempts, err
}

// Delete hard-deletes the attempt and its discussion thread.
func (r *AttemptRepository) Delete(id string) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("attempt_id = ?", id).Delete(&model.Discussion{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.Attempt{}, "id = ?", id).Error
	})
}

func (r *AttemptRepository) CountByOwnerAndStatus(ownerID uint, status model.AttemptStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Attempt{}).
		Where("owner_id = ? AND status = ?", ownerID, status).
		Count(&count).Error
	return count, err
}
