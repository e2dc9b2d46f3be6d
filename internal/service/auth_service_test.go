package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogr/internal/auth"
	"blogr/internal/model"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		username      string
		password      string
		setupMocks    func(*MockUserRepository, *MockRoleRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "john@example.com",
			username: "john",
			password: "cat",
			setupMocks: func(u *MockUserRepository, r *MockRoleRepository) {
				u.On("FindByEmail", mock.Anything, "john@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("FindByUsername", mock.Anything, "john").Return(nil, gorm.ErrRecordNotFound)
				r.On("FindDefault", mock.Anything).Return(&model.Role{ID: 1, Name: "User", IsDefault: true}, nil)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "existing@example.com",
			username: "someone",
			password: "cat",
			setupMocks: func(u *MockUserRepository, r *MockRoleRepository) {
				u.On("FindByEmail", mock.Anything, "existing@example.com").Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:     "username already taken",
			email:    "new@example.com",
			username: "taken",
			password: "cat",
			setupMocks: func(u *MockUserRepository, r *MockRoleRepository) {
				u.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("FindByUsername", mock.Anything, "taken").Return(&model.User{Username: "taken"}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			roleRepo := new(MockRoleRepository)
			tokenStore := new(MockTokenStore)
			tt.setupMocks(userRepo, roleRepo)

			svc := NewAuthService(userRepo, roleRepo, auth.NewTokenService("test-secret"), tokenStore, nil)
			user, confirmToken, err := svc.Register(context.Background(), tt.email, tt.username, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.NotEmpty(t, confirmToken)
				assert.False(t, user.Confirmed)
				assert.Equal(t, tt.email, user.Email)
			}
			userRepo.AssertExpectations(t)
			roleRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	hashed := hashPassword(t, "cat")

	tests := []struct {
		name          string
		email         string
		password      string
		setupMocks    func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "valid credentials",
			email:    "john@example.com",
			password: "cat",
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "john@example.com").
					Return(&model.User{ID: 1, Email: "john@example.com", PasswordHash: hashed, Confirmed: true}, nil)
				u.On("TouchLastSeen", mock.Anything, uint(1)).Return(nil)
			},
		},
		{
			name:     "wrong password",
			email:    "john@example.com",
			password: "dog",
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "john@example.com").
					Return(&model.User{ID: 1, Email: "john@example.com", PasswordHash: hashed}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "ghost@example.com",
			password: "cat",
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.setupMocks(userRepo)

			svc := NewAuthService(userRepo, new(MockRoleRepository), auth.NewTokenService("test-secret"), new(MockTokenStore), nil)
			user, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, user.Email)
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed := hashPassword(t, "cat")

	userRepo := new(MockUserRepository)
	userRepo.On("FindByEmail", mock.Anything, "john@example.com").
		Return(&model.User{ID: 1, Email: "john@example.com", PasswordHash: hashed, Confirmed: true}, nil)
	userRepo.On("TouchLastSeen", mock.Anything, uint(1)).Return(nil)

	tokenStore := new(MockTokenStore)
	tokenStore.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"), uint(1), "john@example.com", auth.RefreshTokenExpiry).Return(nil)

	svc := NewAuthService(userRepo, new(MockRoleRepository), auth.NewTokenService("test-secret"), tokenStore, nil)
	accessToken, refreshToken, user, err := svc.Login(context.Background(), "john@example.com", "cat")

	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)
	assert.Equal(t, uint(1), user.ID)
	tokenStore.AssertExpectations(t)
}

func TestAuthService_AuthenticateToken(t *testing.T) {
	tokenService := auth.NewTokenService("test-secret")

	t.Run("valid access token", func(t *testing.T) {
		token, err := tokenService.GenerateAccessToken(1, "john@example.com")
		assert.NoError(t, err)

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.User{ID: 1, Email: "john@example.com", Confirmed: true}, nil)
		userRepo.On("TouchLastSeen", mock.Anything, uint(1)).Return(nil)

		svc := NewAuthService(userRepo, new(MockRoleRepository), tokenService, new(MockTokenStore), nil)
		user, err := svc.AuthenticateToken(context.Background(), token)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), user.ID)
	})

	t.Run("refresh token rejected as access token", func(t *testing.T) {
		_, refreshToken, err := tokenService.GenerateRefreshToken(1, "john@example.com")
		assert.NoError(t, err)

		svc := NewAuthService(new(MockUserRepository), new(MockRoleRepository), tokenService, new(MockTokenStore), nil)
		_, err = svc.AuthenticateToken(context.Background(), refreshToken)

		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), new(MockRoleRepository), tokenService, new(MockTokenStore), nil)
		_, err := svc.AuthenticateToken(context.Background(), "not-a-token")
		assert.ErrorIs(t, err, ErrInvalidAccessToken)
	})
}

func TestAuthService_Confirm(t *testing.T) {
	tokenService := auth.NewTokenService("test-secret")

	t.Run("valid confirmation token", func(t *testing.T) {
		token, err := tokenService.GenerateConfirmToken(1, "john@example.com")
		assert.NoError(t, err)

		userRepo := new(MockUserRepository)
		userRepo.On("FindByID", mock.Anything, uint(1)).
			Return(&model.User{ID: 1, Email: "john@example.com"}, nil)
		userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Confirmed
		})).Return(nil)

		svc := NewAuthService(userRepo, new(MockRoleRepository), tokenService, new(MockTokenStore), nil)
		user, err := svc.Confirm(context.Background(), token)

		assert.NoError(t, err)
		assert.True(t, user.Confirmed)
		userRepo.AssertExpectations(t)
	})

	t.Run("access token rejected as confirmation token", func(t *testing.T) {
		token, err := tokenService.GenerateAccessToken(1, "john@example.com")
		assert.NoError(t, err)

		svc := NewAuthService(new(MockUserRepository), new(MockRoleRepository), tokenService, new(MockTokenStore), nil)
		_, err = svc.Confirm(context.Background(), token)
		assert.ErrorIs(t, err, ErrInvalidConfirmToken)
	})
}
