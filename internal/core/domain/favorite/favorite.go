package favorite

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNoteLength bounds the optional free-text note, counted in characters,
// not bytes.
const MaxNoteLength = 500

var (
	// ErrAlreadyFavorited signals a duplicate (userId, beachId) pair. Callers
	// are expected to treat this as recoverable, not exceptional.
	ErrAlreadyFavorited = errors.New("beach is already favorited")

	// ErrNotFound covers both a nonexistent favorite and one owned by a
	// different user; the two are intentionally indistinguishable.
	ErrNotFound = errors.New("favorite not found")
)

// Favorite is one saved beach for one user. Order is only meaningful
// within a single user's list and defaults to 0 until the first reorder.
type Favorite struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"userId" db:"user_id"`
	BeachID   string    `json:"beachId" db:"beach_id"`
	Note      string    `json:"note" db:"note"`
	Order     int       `json:"order" db:"order_index"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateFavoriteRequest is the add-favorite payload.
type CreateFavoriteRequest struct {
	BeachID string `json:"beachId" validate:"required"`
	Note    string `json:"note,omitempty" validate:"max=500"`
}

// Validate checks the payload; it returns a field→message map usable as
// structured detail in an InvalidBody response.
func (r *CreateFavoriteRequest) Validate() map[string]string {
	details := make(map[string]string)
	if r.BeachID == "" {
		details["beachId"] = "beachId is required"
	}
	if utf8.RuneCountInString(r.Note) > MaxNoteLength {
		details["note"] = "note must be at most 500 characters"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// ReorderRequest carries the desired display order as beach IDs.
type ReorderRequest struct {
	Order []string `json:"order" validate:"required"`
}
