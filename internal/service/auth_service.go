package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogr/internal/auth"
	"blogr/internal/cache"
	"blogr/internal/model"
	"blogr/internal/repository"
)

const bcryptCost = 10

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserAlreadyExists is returned when trying to register an existing user.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrInvalidRefreshToken is returned when refresh token is invalid or expired.
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	// ErrInvalidAccessToken is returned when an access token is invalid,
	// expired, or revoked.
	ErrInvalidAccessToken = errors.New("invalid or expired access token")
	// ErrInvalidConfirmToken is returned when a confirmation token is invalid.
	ErrInvalidConfirmToken = errors.New("invalid or expired confirmation token")
)

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (user *model.User, confirmToken string, err error)
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error)
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	AuthenticateToken(ctx context.Context, token string) (*model.User, error)
	IssueAccessToken(ctx context.Context, user *model.User) (token string, expiresIn time.Duration, err error)
	RefreshToken(ctx context.Context, refreshToken string) (accessToken string, err error)
	Logout(ctx context.Context, refreshToken string) error
	Confirm(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	userRepo     repository.UserRepository
	roleRepo     repository.RoleRepository
	tokenService *auth.TokenService
	tokenStore   auth.TokenStoreInterface
	cache        *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	tokenService *auth.TokenService,
	tokenStore auth.TokenStoreInterface,
	cacheClient *cache.Client,
) AuthService {
	return &authService{
		userRepo:     userRepo,
		roleRepo:     roleRepo,
		tokenService: tokenService,
		tokenStore:   tokenStore,
		cache:        cacheClient,
	}
}

// Register creates a new unconfirmed user with the default role and returns
// the confirmation token the account must present to activate itself.
func (s *authService) Register(ctx context.Context, email, username, password string) (*model.User, string, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, "", ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check user existence: %w", err)
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, "", ErrUserAlreadyExists
	} else if err != gorm.ErrRecordNotFound {
		return nil, "", fmt.Errorf("check username existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	role, err := s.roleRepo.FindDefault(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("find default role: %w", err)
	}

	user := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashedPassword),
		RoleID:       role.ID,
		Role:         *role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	confirmToken, err := s.tokenService.GenerateConfirmToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate confirmation token: %w", err)
	}

	return user, confirmToken, nil
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, user *model.User, err error) {
	user, err = s.Authenticate(ctx, email, password)
	if err != nil {
		return "", "", nil, err
	}

	accessToken, err = s.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate access token: %w", err)
	}

	tokenID, refreshToken, err := s.tokenService.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if err := s.tokenStore.StoreRefreshToken(ctx, tokenID, user.ID, user.Email, auth.RefreshTokenExpiry); err != nil {
		return "", "", nil, fmt.Errorf("store refresh token: %w", err)
	}

	return accessToken, refreshToken, user, nil
}

// Authenticate verifies email and password credentials, as presented by
// Basic auth or the login endpoint.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	_ = s.userRepo.TouchLastSeen(ctx, user.ID)
	return user, nil
}

// AuthenticateToken resolves a bearer access token to its user.
func (s *authService) AuthenticateToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokenService.ValidateTokenForPurpose(token, auth.PurposeAccess)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	if claims.ID != "" {
		blacklisted, _ := s.tokenStore.IsAccessTokenBlacklisted(ctx, claims.ID)
		if blacklisted {
			return nil, ErrInvalidAccessToken
		}
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidAccessToken
	}

	_ = s.userRepo.TouchLastSeen(ctx, user.ID)
	return user, nil
}

// IssueAccessToken mints an access token for an already-authenticated user.
func (s *authService) IssueAccessToken(ctx context.Context, user *model.User) (string, time.Duration, error) {
	token, err := s.tokenService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return "", 0, fmt.Errorf("generate access token: %w", err)
	}
	return token, auth.AccessTokenExpiry, nil
}

// RefreshToken validates a refresh token and returns a new access token.
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokenService.ValidateTokenForPurpose(refreshToken, auth.PurposeRefresh)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	tokenID, err := s.tokenService.ExtractTokenID(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	storedUserID, storedEmail, err := s.tokenStore.GetRefreshToken(ctx, tokenID)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	if storedUserID != claims.UserID || storedEmail != claims.Email {
		return "", ErrInvalidRefreshToken
	}

	accessToken, err := s.tokenService.GenerateAccessToken(claims.UserID, claims.Email)
	if err != nil {
		return "", fmt.Errorf("generate access token: %w", err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	tokenID, err := s.tokenService.ExtractTokenID(refreshToken)
	if err != nil {
		return ErrInvalidRefreshToken
	}
	return s.tokenStore.DeleteRefreshToken(ctx, tokenID)
}

// Confirm activates the account named by a confirmation token.
func (s *authService) Confirm(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.tokenService.ValidateTokenForPurpose(token, auth.PurposeConfirm)
	if err != nil {
		return nil, ErrInvalidConfirmToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, ErrInvalidConfirmToken
	}

	if user.Confirmed {
		return user, nil
	}

	user.Confirmed = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("confirm user: %w", err)
	}

	// GetUser caches serialized users; drop the entry so the confirmed flag
	// is visible immediately.
	_ = s.cache.Delete(ctx, userCacheKey(user.ID))
	return user, nil
}
