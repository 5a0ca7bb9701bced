package service

import (
	"context"
	"testing"

	"praisy_backend/internal/model"
	"praisy_backend/internal/repository"
	"praisy_backend/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	repo := new(mockUserRepo)
	jwtUtil := utils.NewJWTUtil("secret", 24)
	svc := NewAuthService(repo, jwtUtil)

	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

	user, token, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
		Role:     "USER",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("password123", user.PasswordHash))

	_, err = uuid.Parse(user.ID)
	assert.NoError(t, err)

	// The issued token's subject must match the created record's id
	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, model.RoleUser, claims.Role)

	repo.AssertExpectations(t)
}

func TestAuthService_Register_RoleCoercion(t *testing.T) {
	tests := []struct {
		name string
		role string
		want model.Role
	}{
		{"admin role kept", "ADMIN", model.RoleAdmin},
		{"empty role defaults to user", "", model.RoleUser},
		{"unknown role defaults to user", "superuser", model.RoleUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockUserRepo)
			svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

			repo.On("FindByEmail", mock.Anything, "x@example.com").Return(nil, nil)
			repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)

			user, _, err := svc.Register(context.Background(), model.RegisterRequest{
				Name:     "X",
				Email:    "x@example.com",
				Password: "password123",
				Role:     tt.role,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.want, user.Role)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	existing := &model.User{ID: "existing", Email: "alice@example.com"}
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthService_Register_ConcurrentDuplicate(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	// Pre-check passes, but the unique constraint rejects the insert
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(repository.ErrDuplicateEmail)

	_, _, err := svc.Register(context.Background(), model.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	repo := new(mockUserRepo)
	jwtUtil := utils.NewJWTUtil("secret", 24)
	svc := NewAuthService(repo, jwtUtil)

	hash, _ := utils.HashPassword("password123")
	stored := &model.User{
		ID:           "11111111-1111-4111-8111-111111111111",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Role:         model.RoleUser,
	}
	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

	user, token, err := svc.Login(context.Background(), "alice@example.com", "password123")

	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)

	claims, err := jwtUtil.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
}

func TestAuthService_Login_UnifiedFailureMessage(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	hash, _ := utils.HashPassword("password123")
	stored := &model.User{ID: "id", Email: "alice@example.com", PasswordHash: hash}

	repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)
	repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	_, _, wrongPassErr := svc.Login(context.Background(), "alice@example.com", "wrongpassword")
	_, _, unknownEmailErr := svc.Login(context.Background(), "nobody@example.com", "password123")

	// Both failures must be indistinguishable to the caller
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmailErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), unknownEmailErr.Error())
}

func TestAuthService_GetMe(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	stored := &model.User{ID: "id-1", Name: "Alice", Email: "alice@example.com", Role: model.RoleUser}
	repo.On("FindByID", mock.Anything, "id-1").Return(stored, nil)

	user, err := svc.GetMe(context.Background(), "id-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestAuthService_GetMe_Deleted(t *testing.T) {
	repo := new(mockUserRepo)
	svc := NewAuthService(repo, utils.NewJWTUtil("secret", 24))

	repo.On("FindByID", mock.Anything, "gone").Return(nil, nil)

	_, err := svc.GetMe(context.Background(), "gone")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
