package dto

import "ratehub/internal/httpapi/models"

type CreateUserDTO struct {
	Username  string  `json:"username" binding:"required,max=150"`
	Email     string  `json:"email" binding:"required,email,max=254"`
	Role      *string `json:"role" binding:"omitempty,oneof=user moderator admin"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

type UpdateUserDTO struct {
	Username  *string `json:"username" binding:"omitempty,max=150"`
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	Role      *string `json:"role" binding:"omitempty,oneof=user moderator admin"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Password  *string `json:"password" binding:"omitempty,min=8"`
}

// UpdateSelfDTO deliberately has no role field: a subject cannot raise
// its own standing.
type UpdateSelfDTO struct {
	Username  *string `json:"username" binding:"omitempty,max=150"`
	Email     *string `json:"email" binding:"omitempty,email,max=254"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Bio       *string `json:"bio"`
}

type UserResponse struct {
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

func UserFromModel(m models.User) UserResponse {
	return UserResponse{
		Username:  m.Username,
		Email:     m.Email,
		Role:      m.Role,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Bio:       m.Bio,
	}
}
