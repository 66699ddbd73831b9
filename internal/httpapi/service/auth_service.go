package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ratehub/internal/auth"
	"ratehub/internal/config"
	"ratehub/internal/httpapi/models"
	"ratehub/internal/httpapi/repository"
	"ratehub/internal/notify"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// ReservedUsername can never be registered or adopted through a profile
// edit; it addresses the caller's own record in the user routes.
const ReservedUsername = "me"

// Claims is the bearer token payload: identity plus a role snapshot.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// SignUp creates the user (or finds the existing identical identity)
	// and mails a fresh confirmation code. Re-signup with the same
	// (username, email) pair is idempotent.
	SignUp(username, email string) (*models.User, error)
	// IssueToken exchanges a verified confirmation code for a bearer token.
	IssueToken(username, code string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	signer    *auth.CodeSigner
	notifier  notify.Notifier
	logger    *slog.Logger
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(
	userRepo repository.UserRepository,
	signer *auth.CodeSigner,
	notifier notify.Notifier,
	logger *slog.Logger,
	cfg *config.Config,
) AuthService {
	return &authService{
		userRepo:  userRepo,
		signer:    signer,
		notifier:  notifier,
		logger:    logger,
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  cfg.TokenTTL,
	}
}

func (s *authService) SignUp(username, email string) (*models.User, error) {
	if username == ReservedUsername {
		return nil, validationErr("username", `"me" is a reserved username`)
	}

	user, err := s.userRepo.FindByUsername(username)
	switch {
	case err == nil:
		if user.Email != email {
			return nil, ErrUsernameInUse
		}
		// Identical identity: idempotent re-issue, no new record.
	case errors.Is(err, gorm.ErrRecordNotFound):
		if _, emailErr := s.userRepo.FindByEmail(email); emailErr == nil {
			return nil, ErrEmailInUse
		} else if !errors.Is(emailErr, gorm.ErrRecordNotFound) {
			return nil, emailErr
		}
		user = &models.User{Username: username, Email: email}
		if createErr := s.userRepo.Create(user); createErr != nil {
			// A concurrent signup can win the race past the lookups; the
			// unique constraints are the authority.
			if errors.Is(createErr, repository.ErrDuplicate) {
				return nil, ErrUsernameInUse
			}
			return nil, createErr
		}
	default:
		return nil, err
	}

	s.sendConfirmationCode(user)
	return user, nil
}

// sendConfirmationCode hands the code to the notifier. Delivery failure is
// logged, never surfaced: the user record is already committed and the
// caller can simply sign up again for a resend.
func (s *authService) sendConfirmationCode(user *models.User) {
	code := s.signer.Issue(user)
	err := s.notifier.Send(
		user.Email,
		"ratehub confirmation code",
		fmt.Sprintf("Your confirmation code: %s", code),
	)
	if err != nil {
		s.logger.Warn("confirmation code delivery failed",
			"username", user.Username,
			"error", err,
		)
	}
}

func (s *authService) IssueToken(username, code string) (string, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown username collapses into the same failure as a bad
			// code so the endpoint can't enumerate accounts.
			return "", ErrInvalidCredentials
		}
		// Store trouble is a server fault, not a credential failure.
		return "", err
	}
	if !s.signer.Verify(user, code) {
		return "", ErrInvalidCredentials
	}
	// Recording the login moves the state the code was derived from, so
	// a used code stops verifying; signing up again mints a fresh one.
	if err := s.userRepo.SetLastLogin(user.ID, time.Now()); err != nil {
		s.logger.Warn("failed to record login",
			"username", user.Username,
			"error", err,
		)
	}
	return s.generateToken(user)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
