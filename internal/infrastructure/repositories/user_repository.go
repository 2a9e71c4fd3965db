package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/govargas/bada/internal/core/domain/user"
	"github.com/govargas/bada/internal/core/ports"
	"github.com/govargas/bada/internal/infrastructure/db"
)

// UserRepository implements the user repository interface
type UserRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.Database, logger *logrus.Logger) ports.UserRepository {
	return &UserRepository{
		db:     database,
		logger: logger,
	}
}

// Create creates a new user. A duplicate email surfaces as user.ErrEmailInUse.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.DB.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return user.ErrEmailInUse
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"email": u.Email}).WithError(err).Error("db: failed to create user")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("db: user created")
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1`

	err := r.db.DB.GetContext(ctx, &u, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user with ID %s not found", id)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": id}).WithError(err).Error("db: failed to get user by ID")
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`

	err := r.db.DB.GetContext(ctx, &u, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			if r.logger != nil {
				r.logger.WithFields(logrus.Fields{"email": email}).Debug("db: user not found by email")
			}
			return nil, fmt.Errorf("user with email %s not found", email)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"email": email}).WithError(err).Error("db: failed to get user by email")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}
