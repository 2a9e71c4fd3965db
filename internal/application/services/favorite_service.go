package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/govargas/bada/internal/core/domain/favorite"
	"github.com/govargas/bada/internal/core/ports"
)

// FavoriteService maintains each user's saved-beach list with its explicit,
// persisted display order. It talks straight to the record store, no cache:
// correctness of user-owned data takes priority over latency here. The
// userID parameter always comes from verified identity, never from payloads.
type FavoriteService struct {
	repo   ports.FavoriteRepository
	logger *logrus.Logger
}

func NewFavoriteService(repo ports.FavoriteRepository, logger *logrus.Logger) ports.FavoriteService {
	return &FavoriteService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the caller's favorites in display order.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add inserts a new favorite with order 0. The compound unique index in the
// store enforces uniqueness; the duplicate signal passes through untouched
// so callers can tell the one expected conflict apart from real failures.
func (s *FavoriteService) Add(ctx context.Context, userID uuid.UUID, req *favorite.CreateFavoriteRequest) (*favorite.Favorite, error) {
	now := time.Now().UTC()
	f := &favorite.Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		BeachID:   req.BeachID,
		Note:      req.Note,
		Order:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": userID, "beach_id": req.BeachID}).Info("favorite added")
	}

	return f, nil
}

// RemoveByID deletes one of the caller's favorites by store id.
func (s *FavoriteService) RemoveByID(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteByID(ctx, userID, id)
}

// RemoveByBeachID deletes one of the caller's favorites by beach id.
func (s *FavoriteService) RemoveByBeachID(ctx context.Context, userID uuid.UUID, beachID string) error {
	return s.repo.DeleteByBeachID(ctx, userID, beachID)
}

// Reorder applies the desired display order. The request may be partial,
// stale, or hostile; sanitizing makes the operation total: every favorite
// the caller owns ends up with a well-defined position.
//
//  1. duplicates collapse to their first occurrence (stable)
//  2. IDs the caller does not own are dropped
//  3. surviving IDs get order = index
//  4. owned favorites absent from the request are appended afterwards in
//     their pre-existing relative order
//  5. everything is persisted as one bulk write
//
// Concurrent reorders by the same user are not serialized; the last bulk
// write to complete wins.
func (s *FavoriteService) Reorder(ctx context.Context, userID uuid.UUID, beachIDs []string) error {
	current, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to load current favorites: %w", err)
	}

	owned := make(map[string]bool, len(current))
	for _, f := range current {
		owned[f.BeachID] = true
	}

	seen := make(map[string]bool, len(beachIDs))
	ordered := make([]string, 0, len(current))
	for _, id := range beachIDs {
		if seen[id] || !owned[id] {
			continue
		}
		seen[id] = true
		ordered = append(ordered, id)
	}

	// Favorites the request left out keep their relative order, after the
	// requested ones.
	for _, f := range current {
		if !seen[f.BeachID] {
			seen[f.BeachID] = true
			ordered = append(ordered, f.BeachID)
		}
	}

	if err := s.repo.UpdatePositions(ctx, userID, ordered); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": userID, "requested": len(beachIDs), "applied": len(ordered)}).Debug("favorites reordered")
	}

	return nil
}
