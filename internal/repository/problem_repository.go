package repository

import (
	"lab_backend/internal/model"

	"gorm.io/gorm"
)

type ProblemRepository struct {
	DB *gorm.DB
}

func NewProblemRepository(db *gorm.DB) *ProblemRepository {
	return &ProblemRepository{DB: db}
}

// Sheet returns all topics with their problems, both in their defined order.
func (r *ProblemRepository) Sheet() ([]model.Topic, error) {
	var topics []model.Topic
	err := r.DB.Preload("Problems", func(db *gorm.DB) *gorm.DB {
		return db.Order("problems.`order` ASC")
	}).Order("`order` ASC").Find(&topics).Error
	return topics, err
}

func (r *ProblemRepository) FindBySlug(slug string) (*model.Problem, error) {
	var p model.Problem
	if err := r.DB.First(&p, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProblemRepository) MarksByUser(userID uint) ([]model.ProblemMark, error) {
	var marks []model.ProblemMark
	err := r.DB.Where("user_id = ?", userID).Find(&marks).Error
	return marks, err
}

// UpsertMark creates or updates the caller's mark for one problem.
func (r *ProblemRepository) UpsertMark(mark *model.ProblemMark) error {
	var existing model.ProblemMark
	err := r.DB.Where("user_id = ? AND problem_id = ?", mark.UserID, mark.ProblemID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(mark).Error
	}
	if err != nil {
		return err
	}
	existing.Saved = mark.Saved
	existing.Completed = mark.Completed
	return r.DB.Save(&existing).Error
}
