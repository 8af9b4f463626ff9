package model

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Email       string         `json:"email" gorm:"not null;uniqueIndex"`
	Password    string         `json:"-" gorm:"not null"`
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	TargetRole  string         `json:"target_role,omitempty"`
	Role        UserRole       `json:"role" gorm:"default:'USER'"`
	ResumeText  string         `json:"resume_text,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
