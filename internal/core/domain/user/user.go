package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailInUse         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Credentials is the register/login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Validate checks the payload and returns field-level detail on failure.
func (c *Credentials) Validate() map[string]string {
	details := make(map[string]string)
	if !strings.Contains(c.Email, "@") || strings.HasPrefix(c.Email, "@") || strings.HasSuffix(c.Email, "@") {
		details["email"] = "a valid email address is required"
	}
	if len(c.Password) < 8 {
		details["password"] = "password must be at least 8 characters"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
