package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"fmt"
	"strings"

	"ratehub/internal/httpapi/models"
)

// codeEncoding keeps confirmation codes short and copy-paste friendly.
var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

const codeLength = 24

// CodeSigner derives and checks confirmation codes without storing them.
// A code is an HMAC over the user's identity and a mutable state marker
// (last login and password hash), so it stops verifying the moment that
// state changes.
type CodeSigner struct {
	secret []byte
}

func NewCodeSigner(secret string) *CodeSigner {
	return &CodeSigner{secret: []byte(secret)}
}

// Issue derives the confirmation code for the user's current state.
func (s *CodeSigner) Issue(user *models.User) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(s.stateOf(user)))
	code := codeEncoding.EncodeToString(mac.Sum(nil))
	return strings.ToLower(code[:codeLength])
}

// Verify recomputes the code for the user's current state and compares.
func (s *CodeSigner) Verify(user *models.User, code string) bool {
	want := s.Issue(user)
	return hmac.Equal([]byte(want), []byte(code))
}

func (s *CodeSigner) stateOf(user *models.User) string {
	lastLogin := "never"
	if user.LastLogin != nil {
		lastLogin = fmt.Sprintf("%d", user.LastLogin.UnixNano())
	}
	passwordHash := ""
	if user.PasswordHash != nil {
		passwordHash = *user.PasswordHash
	}
	return strings.Join([]string{user.ID, user.Username, user.Email, lastLogin, passwordHash}, "\x1f")
}
