package repository

import (
	"lab_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(s *model.PracticeSession) error {
	return r.DB.Create(s).Error
}

func (r *SessionRepository) Update(s *model.PracticeSession) error {
	return r.DB.Save(s).Error
}

func (r *SessionRepository) FindByID(id string) (*model.PracticeSession, error) {
	var s model.PracticeSession
	if err := r.DB.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) FindByOwner(ownerID uint) ([]model.PracticeSession, error) {
	var sessions []model.PracticeSession
	err := r.DB.Where("owner_id = ?", ownerID).
		Order("started_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *SessionRepository) Delete(id string) error {
	return r.DB.Unscoped().Delete(&model.PracticeSession{}, "id = ?", id).Error
}

// SumDurationSince totals finished-session seconds recorded after the cutoff.
func (r *SessionRepository) SumDurationSince(ownerID uint, since time.Time) (int64, error) {
	var total int64
	err := r.DB.Model(&model.PracticeSession{}).
		Where("owner_id = ? AND ended_at IS NOT NULL AND started_at >= ?", ownerID, since).
		Select("COALESCE(SUM(duration), 0)").
		Scan(&total).Error
	return total, err
}
