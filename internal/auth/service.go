package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service implements the credential store and the token issuer/verifier
type Service struct {
	config Config

	users *badgerUserRepository

	logger *zap.Logger
}

// NewService creates a new auth Service
func NewService(config Config, users *badgerUserRepository, logger *zap.Logger) *Service {
	return &Service{
		config: config,

		users: users,

		logger: logger,
	}
}

// Register creates a new user and returns it with a freshly issued token
func (s *Service) Register(ctx context.Context, draft UserDraft) (*User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	// Roles are never taken from registration input.
	draft.Role = UserRoleUser

	user, err := s.users.Create(ctx, draft, string(hash))
	if err != nil {
		return nil, "", err
	}

	s.logger.Info("user registered", zap.String("id", user.ID.String()))

	token, err := s.GenerateJWT(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates a user by email and password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateJWT(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// GetByID retrieves a user by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

// GenerateJWT generates a JWT token for a user
func (s *Service) GenerateJWT(_ context.Context, user *User) (string, error) {
	claims := NewJWTClaims(user.ID.String(), user.Role, s.config.Issuer, time.Now().Add(s.config.TokenTTL))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.config.SecretKey)
}

// ValidateJWT validates a JWT token and returns the claims
func (s *Service) ValidateJWT(_ context.Context, tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.config.SecretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired(), jwt.WithIssuer(s.config.Issuer), jwt.WithIssuedAt())

	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}

	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
