package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tasklist/internal/config"
	"tasklist/internal/models"
	"tasklist/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Claims is the payload of an access token. Subject holds the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// UserID decodes the subject claim.
func (c *Claims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}
	return uint(id), nil
}

// AuthService handles registration, login, password hashing and tokens.
type AuthService struct {
	userRepo   repositories.UserRepository
	events     EventPublisher
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService. events may be nil.
func NewAuthService(userRepo repositories.UserRepository, cfg config.AuthConfig, events EventPublisher) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		events:     events,
		jwtSecret:  []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a user with a hashed password and returns it with a
// fresh token.
func (s *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.User, string, error) {
	email := models.NormalizeEmail(in.Email)

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", ErrEmailInUse
	}
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.HashPassword(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		Password:     hash,
		ProfileImage: in.ProfileImage,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, "", ErrEmailInUse
		}
		return nil, "", fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}

	publish(s.events, "user.registered", user.ID, user.ID)
	return user, token, nil
}

// Login authenticates a user and returns a token if successful. Unknown
// email and wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, models.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if !s.VerifyPassword(user.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// HashPassword hashes a plain-text password with bcrypt.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a password with a stored hash in constant time.
func (s *AuthService) VerifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs an HS256 token for the user.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: user.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// ValidateToken parses and validates a token, returning the claims if valid.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return claims, nil
}
