package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/govargas/bada/internal/core/domain/favorite"
	"github.com/govargas/bada/internal/core/ports"
	"github.com/govargas/bada/internal/infrastructure/db"
)

// uniqueViolation is the Postgres error code raised by the compound unique
// index on (user_id, beach_id); the index is the actual enforcement
// mechanism for the one-favorite-per-beach-per-user invariant.
const uniqueViolation = "23505"

// FavoriteRepository implements the favorite repository interface
type FavoriteRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(database *db.Database, logger *logrus.Logger) ports.FavoriteRepository {
	return &FavoriteRepository{
		db:     database,
		logger: logger,
	}
}

// Create inserts a new favorite. A duplicate (user_id, beach_id) pair is
// reported as favorite.ErrAlreadyFavorited.
func (r *FavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	query := `
		INSERT INTO favorites (id, user_id, beach_id, note, order_index, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.DB.ExecContext(ctx, query,
		f.ID, f.UserID, f.BeachID, f.Note, f.Order, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			if r.logger != nil {
				r.logger.WithFields(logrus.Fields{"user_id": f.UserID, "beach_id": f.BeachID}).Debug("db: favorite already exists")
			}
			return favorite.ErrAlreadyFavorited
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": f.UserID, "beach_id": f.BeachID}).WithError(err).Error("db: failed to create favorite")
		}
		return fmt.Errorf("failed to create favorite: %w", err)
	}

	return nil
}

// ListByUser returns all of one user's favorites sorted by
// (order_index ascending, created_at descending).
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	favorites := []*favorite.Favorite{}
	query := `
		SELECT id, user_id, beach_id, note, order_index, created_at, updated_at
		FROM favorites
		WHERE user_id = $1
		ORDER BY order_index ASC, created_at DESC`

	err := r.db.DB.SelectContext(ctx, &favorites, query, userID)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": userID}).WithError(err).Error("db: failed to list favorites")
		}
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return favorites, nil
}

// DeleteByID deletes the favorite matching both id and user_id. A zero-row
// result is favorite.ErrNotFound, covering nonexistent ids and ids owned by
// a different user alike.
func (r *FavoriteRepository) DeleteByID(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM favorites WHERE id = $1 AND user_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"favorite_id": id, "user_id": userID}).WithError(err).Error("db: failed to delete favorite")
		}
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return favorite.ErrNotFound
	}

	return nil
}

// DeleteByBeachID deletes the favorite matching both beach_id and user_id.
func (r *FavoriteRepository) DeleteByBeachID(ctx context.Context, userID uuid.UUID, beachID string) error {
	query := `DELETE FROM favorites WHERE beach_id = $1 AND user_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, beachID, userID)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"beach_id": beachID, "user_id": userID}).WithError(err).Error("db: failed to delete favorite by beach")
		}
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return favorite.ErrNotFound
	}

	return nil
}

// UpdatePositions assigns order_index = position-in-slice to each beach ID,
// scoped to the owning user, as one statement. A single UPDATE keeps the
// batch atomic; the whole write succeeds or fails as one error.
func (r *FavoriteRepository) UpdatePositions(ctx context.Context, userID uuid.UUID, beachIDs []string) error {
	if len(beachIDs) == 0 {
		return nil
	}

	positions := make([]int64, len(beachIDs))
	for i := range beachIDs {
		positions[i] = int64(i)
	}

	query := `
		UPDATE favorites AS f
		SET order_index = v.order_index, updated_at = NOW()
		FROM (SELECT unnest($1::text[]) AS beach_id, unnest($2::bigint[]) AS order_index) AS v
		WHERE f.user_id = $3 AND f.beach_id = v.beach_id`

	_, err := r.db.DB.ExecContext(ctx, query, pq.Array(beachIDs), pq.Array(positions), userID)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": userID, "count": len(beachIDs)}).WithError(err).Error("db: failed to update favorite positions")
		}
		return fmt.Errorf("failed to update favorite positions: %w", err)
	}

	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": userID, "count": len(beachIDs)}).Debug("db: favorite positions updated")
	}

	return nil
}
