package repository

import (
	"lab_backend/internal/model"

	"gorm.io/gorm"
)

type InterviewRepository struct {
	DB *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) *InterviewRepository {
	return &InterviewRepository{DB: db}
}

func (r *InterviewRepository) Create(iv *model.Interview) error {
	return r.DB.Create(iv).Error
}

func (r *InterviewRepository) Update(iv *model.Interview) error {
	return r.DB.Save(iv).Error
}

func (r *InterviewRepository) FindByID(id string) (*model.Interview, error) {
	var iv model.Interview
	if err := r.DB.First(&iv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *InterviewRepository) FindByOwner(ownerID uint) ([]model.Interview, error) {
	var interviews []model.Interview
	err := r.DB.Where("owner_id = ?", ownerID).
		Order("started_at DESC").
		Find(&interviews).Error
	return interviews, err
}
