package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"tasklist/internal/config"
	"tasklist/internal/models"
	"tasklist/internal/repositories"
	"tasklist/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "test_jwt_secret"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:  testJWTSecret,
		TokenTTL:   7 * 24 * time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	publisher := new(MockPublisher)
	authService := services.NewAuthService(mockRepo, testAuthConfig(), publisher)

	input := models.RegisterInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "  Ada@Example.com ",
		Password:  "password123",
	}

	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).
		Run(func(args mock.Arguments) { args.Get(1).(*models.User).ID = 42 }).
		Return(nil).Once()
	publisher.On("PublishEvent", eventOfType("user.registered")).Return(nil).Once()

	user, token, err := authService.Register(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(42), user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, authService.VerifyPassword(user.Password, "password123"))
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)

	// Email already registered
	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&models.User{ID: 1}, nil).Once()
	_, _, err = authService.Register(ctx, input)
	assert.ErrorIs(t, err, services.ErrEmailInUse)

	// Lost a race on the unique index
	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(repositories.ErrDuplicateKey).Once()
	_, _, err = authService.Register(ctx, input)
	assert.ErrorIs(t, err, services.ErrEmailInUse)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Register_PublishFailureIsIgnored(t *testing.T) {
	mockRepo := new(MockUserRepository)
	publisher := new(MockPublisher)
	authService := services.NewAuthService(mockRepo, testAuthConfig(), publisher)

	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, repositories.ErrNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil).Once()
	publisher.On("PublishEvent", mock.Anything).Return(errors.New("broker down")).Once()

	_, _, err := authService.Register(context.Background(), models.RegisterInput{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Password: "password123",
	})
	assert.NoError(t, err)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockUserRepository)
	authService := services.NewAuthService(mockRepo, testAuthConfig(), nil)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{ID: 7, Email: "ada@example.com", Password: string(hashedPassword)}

	// Successful login
	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil).Once()
	got, token, err := authService.Login(ctx, "ADA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "7", claims["sub"])
	assert.Equal(t, "ada@example.com", claims["email"])

	// Wrong password
	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(user, nil).Once()
	_, _, err = authService.Login(ctx, "ada@example.com", "wrongpassword")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Unknown email gives the same error
	mockRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, repositories.ErrNotFound).Once()
	_, _, err = authService.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	// Storage failures are not credentials failures
	mockRepo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, errors.New("connection refused")).Once()
	_, _, err = authService.Login(ctx, "ada@example.com", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := services.NewAuthService(new(MockUserRepository), testAuthConfig(), nil)

	// Round trip
	token, err := authService.IssueToken(&models.User{ID: 12, Email: "ada@example.com"})
	require.NoError(t, err)
	claims, err := authService.ValidateToken(token)
	require.NoError(t, err)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(12), userID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.InDelta(t, time.Now().Add(7*24*time.Hour).Unix(), claims.ExpiresAt, 5)

	// Garbage
	_, err = authService.ValidateToken("invalid.token.string")
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Wrong secret
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "12",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other_secret"))
	require.NoError(t, err)
	_, err = authService.ValidateToken(forged)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Expired
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   "12",
		ExpiresAt: time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = authService.ValidateToken(expired)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	// Valid signature but no usable subject
	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = authService.ValidateToken(noSubject)
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}
