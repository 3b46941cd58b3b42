package service

import (
	"github.com/google/uuid"

	"github.com/appdotbuilder/mobile-attendance/internal/models"
	"github.com/appdotbuilder/mobile-attendance/internal/store"
)

type UserService struct {
	Users *store.UserStore
}

func NewUserService(users *store.UserStore) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) Create(req models.UserCreate) (models.User, error) {
	if err := req.Validate(); err != nil {
		return models.User{}, err
	}
	user := req.ToUser()
	if err := s.Users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *UserService) Update(id uuid.UUID, req models.UserUpdate) (models.User, error) {
	if err := req.Validate(); err != nil {
		return models.User{}, err
	}
	return s.Users.Update(id, req)
}

// Deactivate marks a user inactive; their submissions are refused from then
// on while history stays intact.
func (s *UserService) Deactivate(id uuid.UUID) (models.User, error) {
	active := false
	return s.Users.Update(id, models.UserUpdate{IsActive: &active})
}
