package model

import (
	"time"
)

const (
	RoleAdmin   = "Admin"
	RoleTeacher = "Teacher"
	RoleStudent = "Student"
)

type Role struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FirstName    string     `gorm:"size:100;not null" json:"first_name"`
	LastName     string     `gorm:"size:100;not null" json:"last_name"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	RoleID       *uint      `json:"role_id"`
	Role         Role       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"role"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// RoleName is safe to call on a user without a preloaded role.
func (u *User) RoleName() string {
	if u.RoleID == nil {
		return ""
	}
	return u.Role.Name
}
