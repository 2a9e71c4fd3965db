package ports

import (
	"context"

	"github.com/govargas/bada/internal/core/domain/auth"
	"github.com/govargas/bada/internal/core/domain/user"
)

// AuthService issues and verifies bearer tokens. Verification yields the
// {sub, email} identity every favorites operation is keyed by.
type AuthService interface {
	Register(ctx context.Context, creds *user.Credentials) error
	Login(ctx context.Context, creds *user.Credentials) (*auth.Token, error)
	ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error)
}
