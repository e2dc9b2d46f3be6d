package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogr/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, username, password string) (*model.User, string, error) {
	args := m.Called(ctx, email, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(2) == nil {
		return "", "", nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*model.User), args.Error(3)
}

func (m *MockAuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) AuthenticateToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) IssueAccessToken(ctx context.Context, user *model.User) (string, time.Duration, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockAuthService) Confirm(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newTokenContext(t *testing.T, user *model.User, scheme string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tokens/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(CurrentUserKey, user)
	}
	if scheme != "" {
		c.Set(AuthSchemeKey, scheme)
	}
	return c, rec
}

func TestAuthHandler_Token(t *testing.T) {
	user := &model.User{ID: 1, Email: "john@example.com", Confirmed: true}

	t.Run("basic-authenticated caller gets a token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("IssueAccessToken", mock.Anything, user).Return("access-token", 15*time.Minute, nil)

		h := NewAuthHandler(svc)
		c, rec := newTokenContext(t, user, AuthSchemeBasic)

		err := h.Token(c)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "access-token", resp.Token)
		assert.Equal(t, int64(900), resp.Expiration)
	})

	t.Run("token-authenticated caller rejected with 401", func(t *testing.T) {
		svc := new(MockAuthService)

		h := NewAuthHandler(svc)
		c, _ := newTokenContext(t, user, AuthSchemeBearer)

		err := h.Token(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
		svc.AssertNotCalled(t, "IssueAccessToken", mock.Anything, mock.Anything)
	})

	t.Run("anonymous caller rejected with 401", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService))
		c, _ := newTokenContext(t, nil, "")

		err := h.Token(c)
		he, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}
