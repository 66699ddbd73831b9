package service

import (
	"errors"

	"ratehub/internal/auth"
	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"
)

// UserInput carries a create or partial-update of a user record. Nil
// pointer fields are left untouched on update.
type UserInput struct {
	Username  *string
	Email     *string
	Role      *string
	FirstName *string
	LastName  *string
	Bio       *string
	// Password is only honored on the admin endpoints; accounts created
	// through signup authenticate with confirmation codes instead.
	Password *string
}

type UserService interface {
	List(search string, limit, offset int) ([]models.User, int64, error)
	GetByUsername(username string) (*models.User, error)
	Create(in UserInput) (*models.User, error)
	Update(username string, in UserInput) (*models.User, error)
	Delete(username string) error
	// UpdateSelf applies a profile edit with the role field ignored;
	// only admins reassign roles.
	UpdateSelf(user *models.User, in UserInput) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) List(search string, limit, offset int) ([]models.User, int64, error) {
	return s.userRepo.List(search, limit, offset)
}

func (s *userService) GetByUsername(username string) (*models.User, error) {
	return s.userRepo.FindByUsername(username)
}

func (s *userService) Create(in UserInput) (*models.User, error) {
	if in.Username == nil || *in.Username == "" {
		return nil, validationErr("username", "username is required")
	}
	if in.Email == nil || *in.Email == "" {
		return nil, validationErr("email", "email is required")
	}
	if *in.Username == ReservedUsername {
		return nil, validationErr("username", `"me" is a reserved username`)
	}

	user := &models.User{
		Username:  *in.Username,
		Email:     *in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       in.Bio,
	}
	if in.Role != nil {
		if !models.ValidRole(*in.Role) {
			return nil, validationErr("role", "unknown role")
		}
		user.Role = *in.Role
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameInUse
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) Update(username string, in UserInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	if err := s.applyProfile(user, in); err != nil {
		return nil, err
	}
	if in.Role != nil {
		if !models.ValidRole(*in.Role) {
			return nil, validationErr("role", "unknown role")
		}
		user.Role = *in.Role
	}
	if in.Password != nil && *in.Password != "" {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = &hash
	}
	return s.save(user)
}

func (s *userService) Delete(username string) error {
	return s.userRepo.DeleteByUsername(username)
}

func (s *userService) UpdateSelf(user *models.User, in UserInput) (*models.User, error) {
	if err := s.applyProfile(user, in); err != nil {
		return nil, err
	}
	return s.save(user)
}

func (s *userService) applyProfile(user *models.User, in UserInput) error {
	if in.Username != nil {
		if *in.Username == ReservedUsername {
			return validationErr("username", `"me" is a reserved username`)
		}
		user.Username = *in.Username
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = in.FirstName
	}
	if in.LastName != nil {
		user.LastName = in.LastName
	}
	if in.Bio != nil {
		user.Bio = in.Bio
	}
	return nil
}

func (s *userService) save(user *models.User) (*models.User, error) {
	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameInUse
		}
		return nil, err
	}
	return user, nil
}
