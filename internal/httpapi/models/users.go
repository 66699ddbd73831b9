package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        string  `gorm:"primaryKey;type:uuid" json:"id"`
	Username  string  `gorm:"uniqueIndex;not null;size:150" json:"username"`
	Email     string  `gorm:"uniqueIndex;not null;size:254" json:"email"`
	Role      string  `gorm:"default:'user';not null;size:20" json:"role"`
	FirstName *string `gorm:"size:150" json:"first_name,omitempty"`
	LastName  *string `gorm:"size:150" json:"last_name,omitempty"`
	Bio       *string `gorm:"type:text" json:"bio,omitempty"`
	// Set only for accounts provisioned through the admin endpoints.
	PasswordHash *string    `gorm:"column:password_hash" json:"-"`
	IsStaff      bool       `gorm:"default:false" json:"-"`
	IsSuperuser  bool       `gorm:"default:false" json:"-"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.Role == "" {
		user.Role = RoleUser
	}
	return
}

// IsAdmin reports effective admin standing: the admin role, or the
// elevated staff/superuser flags carried over from account provisioning.
func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin || user.IsStaff || user.IsSuperuser
}

func (user *User) IsModerator() bool {
	return user.Role == RoleModerator
}

func (User) TableName() string {
	return "users"
}
