package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/govargas/bada/internal/core/domain/user"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
