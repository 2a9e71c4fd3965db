package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/govargas/bada/internal/core/domain/favorite"
)

// FavoriteRepository defines the persistence contract for favorites.
// Every operation is scoped by userID; ownership is enforced by the filter,
// never by trusting client-supplied identity fields.
type FavoriteRepository interface {
	Create(ctx context.Context, f *favorite.Favorite) error
	// ListByUser returns the caller's favorites sorted by
	// (order ascending, createdAt descending).
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error)
	DeleteByID(ctx context.Context, userID, id uuid.UUID) error
	DeleteByBeachID(ctx context.Context, userID uuid.UUID, beachID string) error
	// UpdatePositions persists order=index for each beach ID, in the order
	// given, as a single bulk write. The whole batch succeeds or fails as one.
	UpdatePositions(ctx context.Context, userID uuid.UUID, beachIDs []string) error
}

// FavoriteService is the ordering engine consumed by the HTTP layer.
type FavoriteService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error)
	Add(ctx context.Context, userID uuid.UUID, req *favorite.CreateFavoriteRequest) (*favorite.Favorite, error)
	RemoveByID(ctx context.Context, userID, id uuid.UUID) error
	RemoveByBeachID(ctx context.Context, userID uuid.UUID, beachID string) error
	// Reorder applies the desired display order: duplicates collapse to the
	// first occurrence, unowned IDs are dropped, and favorites absent from
	// the request are appended in their pre-existing relative order.
	Reorder(ctx context.Context, userID uuid.UUID, beachIDs []string) error
}
