package dto

import "time"

type CreateUserInput struct {
	Username  string     `json:"username" binding:"required,min=3,max=50"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name" binding:"required"`
	BirthDate *time.Time `json:"birth_date"`
	Role      *string    `json:"role"`
}

type UpdateUserInput struct {
	Email     *string    `json:"email" binding:"omitempty,email"`
	Password  *string    `json:"password" binding:"omitempty,min=8"`
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	BirthDate *time.Time `json:"birth_date"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required"`
}
