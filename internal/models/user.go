package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID string    `gorm:"uniqueIndex;size:50;not null" json:"employeeId"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Department string    `gorm:"size:100;not null" json:"department"`
	IsActive   bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type UserCreate struct {
	EmployeeID string `json:"employeeId" validate:"required,max=50"`
	Name       string `json:"name" validate:"required,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Department string `json:"department" validate:"required,max=100"`
}

func (r UserCreate) Validate() error { return validate.Struct(r) }

func (r UserCreate) ToUser() User {
	return User{
		EmployeeID: r.EmployeeID,
		Name:       r.Name,
		Email:      r.Email,
		Department: r.Department,
		IsActive:   true,
	}
}

type UserUpdate struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Department *string `json:"department,omitempty" validate:"omitempty,max=100"`
	IsActive   *bool   `json:"isActive,omitempty"`
}

func (r UserUpdate) Validate() error { return validate.Struct(r) }

func (r UserUpdate) ApplyTo(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Department != nil {
		u.Department = *r.Department
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}
