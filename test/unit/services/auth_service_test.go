package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	config "github.com/govargas/bada/configs"
	impl "github.com/govargas/bada/internal/application/services"
	"github.com/govargas/bada/internal/core/domain/user"
	"github.com/govargas/bada/internal/core/ports"
	"github.com/govargas/bada/test/mocks"
)

func newAuthService(repo *mocks.UserRepositoryMock) ports.AuthService {
	return impl.NewAuthService(repo, &config.JWTConfig{
		Secret:   "test-secret",
		TokenTTL: time.Hour,
	}, logrus.New())
}

func TestRegister_HashesPasswordAndLowercasesEmail(t *testing.T) {
	var created *user.User
	repo := &mocks.UserRepositoryMock{
		CreateFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	svc := newAuthService(repo)

	err := svc.Register(context.Background(), &user.Credentials{Email: "Swimmer@Example.COM", Password: "hunter2hunter2"})
	require.NoError(t, err)
	require.NotNil(t, created)
	require.Equal(t, "swimmer@example.com", created.Email)
	require.NotEqual(t, "hunter2hunter2", created.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("hunter2hunter2")))
}

func TestRegister_DuplicateEmailPassesThrough(t *testing.T) {
	repo := &mocks.UserRepositoryMock{
		CreateFn: func(ctx context.Context, u *user.User) error {
			return user.ErrEmailInUse
		},
	}
	svc := newAuthService(repo)

	err := svc.Register(context.Background(), &user.Credentials{Email: "taken@example.com", Password: "hunter2hunter2"})
	require.ErrorIs(t, err, user.ErrEmailInUse)
}

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			require.Equal(t, "swimmer@example.com", email)
			return &user.User{ID: userID, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := newAuthService(repo)

	token, err := svc.Login(context.Background(), &user.Credentials{Email: "Swimmer@example.com", Password: "hunter2hunter2"})
	require.NoError(t, err)
	require.NotEmpty(t, token.Token)

	claims, err := svc.ValidateToken(context.Background(), token.Token)
	require.NoError(t, err)
	require.Equal(t, userID.String(), claims.Subject)
	require.Equal(t, "swimmer@example.com", claims.Email)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email == "known@example.com" {
				return &user.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}, nil
			}
			return nil, user.ErrInvalidCredentials
		},
	}
	svc := newAuthService(repo)

	_, wrongPass := svc.Login(context.Background(), &user.Credentials{Email: "known@example.com", Password: "wrong"})
	_, unknown := svc.Login(context.Background(), &user.Credentials{Email: "nobody@example.com", Password: "whatever"})

	require.ErrorIs(t, wrongPass, user.ErrInvalidCredentials)
	require.ErrorIs(t, unknown, user.ErrInvalidCredentials)
	require.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestValidateToken_RejectsGarbageAndWrongSecret(t *testing.T) {
	svc := newAuthService(&mocks.UserRepositoryMock{})

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)

	other := impl.NewAuthService(&mocks.UserRepositoryMock{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			hash, _ := bcrypt.GenerateFromPassword([]byte("pw888888"), bcrypt.MinCost)
			return &user.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}, nil
		},
	}, &config.JWTConfig{Secret: "different-secret", TokenTTL: time.Hour}, logrus.New())

	token, err := other.Login(context.Background(), &user.Credentials{Email: "a@b.se", Password: "pw888888"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(context.Background(), token.Token)
	require.Error(t, err)
}
