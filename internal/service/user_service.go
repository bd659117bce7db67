package service

import (
	"errors"
	"lab_backend/internal/model"
	"lab_backend/internal/repository"
	"lab_backend/internal/util"

	"gorm.io/gorm"
)

type UserService struct {
	users *repository.UserRepository
}

func NewUserService(users *repository.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

type UpdateProfileInput struct {
	Name string `json:"name"`
}

func (s *UserService) UpdateProfile(id uint, in UpdateProfileInput) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateAvatar(id uint, url string) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	user.Avatar = url
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
