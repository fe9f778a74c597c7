package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"speakerdirectory/internal/domain"
)

type adminService struct {
	username     string
	passwordHash string
	issuer       domain.TokenIssuer
	tokenTTL     time.Duration
}

// NewAdminService creates the single-admin login service. username and
// passwordHash (bcrypt) come from configuration; when either is empty the
// login is disabled and every attempt fails.
func NewAdminService(username, passwordHash string, issuer domain.TokenIssuer, tokenTTL time.Duration) domain.AdminService {
	return &adminService{
		username:     username,
		passwordHash: passwordHash,
		issuer:       issuer,
		tokenTTL:     tokenTTL,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, error) {
	if s.username == "" || s.passwordHash == "" {
		return "", fmt.Errorf("%w: admin login not configured", domain.ErrUnauthorized)
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
	if !userOK || passErr != nil {
		return "", fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
	}

	token, err := s.issuer.Issue(s.username, s.tokenTTL)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
