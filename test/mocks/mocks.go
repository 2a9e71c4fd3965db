package mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/govargas/bada/internal/core/domain/auth"
	"github.com/govargas/bada/internal/core/domain/beach"
	"github.com/govargas/bada/internal/core/domain/favorite"
	"github.com/govargas/bada/internal/core/domain/user"
)

// CacheMock is a lightweight mock for ports.Cache
type CacheMock struct {
	GetFn    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn func(ctx context.Context, key string) error
}

func (m *CacheMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	return nil, false, nil
}
func (m *CacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}
	return nil
}
func (m *CacheMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	return nil
}

// BathingWaterClientMock is a lightweight mock for ports.BathingWaterClient
type BathingWaterClientMock struct {
	ListFn    func(ctx context.Context) (json.RawMessage, error)
	DetailFn  func(ctx context.Context, id string) (json.RawMessage, error)
	ResultsFn func(ctx context.Context, id string) ([]beach.MonitoringResult, error)
}

func (m *BathingWaterClientMock) ListBathingWaters(ctx context.Context) (json.RawMessage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *BathingWaterClientMock) GetBathingWater(ctx context.Context, id string) (json.RawMessage, error) {
	if m.DetailFn != nil {
		return m.DetailFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *BathingWaterClientMock) GetMonitoringResults(ctx context.Context, id string) ([]beach.MonitoringResult, error) {
	if m.ResultsFn != nil {
		return m.ResultsFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

// FavoriteRepositoryMock is a lightweight mock for ports.FavoriteRepository
type FavoriteRepositoryMock struct {
	CreateFn          func(ctx context.Context, f *favorite.Favorite) error
	ListByUserFn      func(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error)
	DeleteByIDFn      func(ctx context.Context, userID, id uuid.UUID) error
	DeleteByBeachIDFn func(ctx context.Context, userID uuid.UUID, beachID string) error
	UpdatePositionsFn func(ctx context.Context, userID uuid.UUID, beachIDs []string) error
}

func (m *FavoriteRepositoryMock) Create(ctx context.Context, f *favorite.Favorite) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, f)
	}
	return nil
}
func (m *FavoriteRepositoryMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return nil, nil
}
func (m *FavoriteRepositoryMock) DeleteByID(ctx context.Context, userID, id uuid.UUID) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, userID, id)
	}
	return nil
}
func (m *FavoriteRepositoryMock) DeleteByBeachID(ctx context.Context, userID uuid.UUID, beachID string) error {
	if m.DeleteByBeachIDFn != nil {
		return m.DeleteByBeachIDFn(ctx, userID, beachID)
	}
	return nil
}
func (m *FavoriteRepositoryMock) UpdatePositions(ctx context.Context, userID uuid.UUID, beachIDs []string) error {
	if m.UpdatePositionsFn != nil {
		return m.UpdatePositionsFn(ctx, userID, beachIDs)
	}
	return nil
}

// UserRepositoryMock is a lightweight mock for ports.UserRepository
type UserRepositoryMock struct {
	CreateFn     func(ctx context.Context, u *user.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
}

func (m *UserRepositoryMock) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, fmt.Errorf("not found")
}
func (m *UserRepositoryMock) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, fmt.Errorf("not found")
}

// AuthServiceMock is a lightweight mock for ports.AuthService
type AuthServiceMock struct {
	RegisterFn      func(ctx context.Context, creds *user.Credentials) error
	LoginFn         func(ctx context.Context, creds *user.Credentials) (*auth.Token, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

func (m *AuthServiceMock) Register(ctx context.Context, creds *user.Credentials) error {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, creds)
	}
	return nil
}
func (m *AuthServiceMock) Login(ctx context.Context, creds *user.Credentials) (*auth.Token, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, creds)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *AuthServiceMock) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, tokenString)
	}
	return nil, fmt.Errorf("invalid token")
}

// BeachServiceMock is a lightweight mock for ports.BeachService
type BeachServiceMock struct {
	ListBeachesFn func(ctx context.Context) (json.RawMessage, error)
	GetBeachFn    func(ctx context.Context, id string) (*beach.Detail, error)
}

func (m *BeachServiceMock) ListBeaches(ctx context.Context) (json.RawMessage, error) {
	if m.ListBeachesFn != nil {
		return m.ListBeachesFn(ctx)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *BeachServiceMock) GetBeach(ctx context.Context, id string) (*beach.Detail, error) {
	if m.GetBeachFn != nil {
		return m.GetBeachFn(ctx, id)
	}
	return nil, fmt.Errorf("not implemented")
}

// FavoriteServiceMock is a lightweight mock for ports.FavoriteService
type FavoriteServiceMock struct {
	ListFn            func(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error)
	AddFn             func(ctx context.Context, userID uuid.UUID, req *favorite.CreateFavoriteRequest) (*favorite.Favorite, error)
	RemoveByIDFn      func(ctx context.Context, userID, id uuid.UUID) error
	RemoveByBeachIDFn func(ctx context.Context, userID uuid.UUID, beachID string) error
	ReorderFn         func(ctx context.Context, userID uuid.UUID, beachIDs []string) error
}

func (m *FavoriteServiceMock) List(ctx context.Context, userID uuid.UUID) ([]*favorite.Favorite, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, userID)
	}
	return nil, nil
}
func (m *FavoriteServiceMock) Add(ctx context.Context, userID uuid.UUID, req *favorite.CreateFavoriteRequest) (*favorite.Favorite, error) {
	if m.AddFn != nil {
		return m.AddFn(ctx, userID, req)
	}
	return nil, fmt.Errorf("not implemented")
}
func (m *FavoriteServiceMock) RemoveByID(ctx context.Context, userID, id uuid.UUID) error {
	if m.RemoveByIDFn != nil {
		return m.RemoveByIDFn(ctx, userID, id)
	}
	return nil
}
func (m *FavoriteServiceMock) RemoveByBeachID(ctx context.Context, userID uuid.UUID, beachID string) error {
	if m.RemoveByBeachIDFn != nil {
		return m.RemoveByBeachIDFn(ctx, userID, beachID)
	}
	return nil
}
func (m *FavoriteServiceMock) Reorder(ctx context.Context, userID uuid.UUID, beachIDs []string) error {
	if m.ReorderFn != nil {
		return m.ReorderFn(ctx, userID, beachIDs)
	}
	return nil
}
