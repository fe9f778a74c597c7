package domain

import (
	"context"
	"time"
)

// TokenIssuer issues tokens (e.g. JWT) for the authenticated admin.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// AdminService authenticates the single configured admin. There is no user
// account model; a successful login returns a bearer token for the admin
// routes.
type AdminService interface {
	Login(ctx context.Context, username, password string) (token string, err error)
}
