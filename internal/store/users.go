package store

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/appdotbuilder/mobile-attendance/internal/models"
)

type UserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{DB: db}
}

func (s *UserStore) Create(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *UserStore) Get(id uuid.UUID) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, "id = ?", id).Error
	return user, err
}

func (s *UserStore) GetByEmployeeID(employeeID string) (models.User, error) {
	var user models.User
	err := s.DB.First(&user, "employee_id = ?", employeeID).Error
	return user, err
}

func (s *UserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) Update(id uuid.UUID, upd models.UserUpdate) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return user, err
	}
	upd.ApplyTo(&user)
	if err := s.DB.Save(&user).Error; err != nil {
		return user, err
	}
	return user, nil
}
