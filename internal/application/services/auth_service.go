package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	config "github.com/govargas/bada/configs"
	"github.com/govargas/bada/internal/core/domain/auth"
	"github.com/govargas/bada/internal/core/domain/user"
	"github.com/govargas/bada/internal/core/ports"
)

const bcryptCost = 12

// AuthService issues and verifies the bearer tokens that gate the
// favorites surface.
type AuthService struct {
	userRepo  ports.UserRepository
	jwtConfig *config.JWTConfig
	logger    *logrus.Logger
}

func NewAuthService(userRepo ports.UserRepository, jwtConfig *config.JWTConfig, logger *logrus.Logger) ports.AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtConfig: jwtConfig,
		logger:    logger,
	}
}

// Register creates a new account. A taken email surfaces as
// user.ErrEmailInUse.
func (s *AuthService) Register(ctx context.Context, creds *user.Credentials) error {
	now := time.Now().UTC()
	u := &user.User{
		ID:        uuid.New(),
		Email:     strings.ToLower(creds.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)

	return s.userRepo.Create(ctx, u)
}

// Login verifies credentials and returns a signed token. Unknown email and
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, creds *user.Credentials) (*auth.Token, error) {
	foundUser, err := s.userRepo.GetByEmail(ctx, strings.ToLower(creds.Email))
	if err != nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	now := time.Now()
	claims := &auth.Claims{
		Email: foundUser.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   foundUser.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"user_id": foundUser.ID}).Info("user logged in")
	}

	return &auth.Token{Token: signed}, nil
}

// ValidateToken parses and verifies a bearer token and returns its claims.
func (s *AuthService) ValidateToken(_ context.Context, tokenString string) (*auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}

	return claims, nil
}
