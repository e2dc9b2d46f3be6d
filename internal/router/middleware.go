package router

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"blogr/internal/handler"
	"blogr/internal/service"
)

const (
	basicPrefix  = "Basic "
	bearerPrefix = "Bearer "
)

// AuthMiddleware authenticates requests with either HTTP Basic credentials
// (email:password) or a bearer access token, and stores the resolved user on
// the context. Unconfirmed accounts are rejected with 403.
func AuthMiddleware(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			switch {
			case strings.HasPrefix(header, basicPrefix):
				email, password, ok := decodeBasic(header[len(basicPrefix):])
				if !ok {
					return unauthorized(c)
				}
				u, err := authService.Authenticate(c.Request().Context(), email, password)
				if err != nil {
					return unauthorized(c)
				}
				if !u.Confirmed {
					return echo.NewHTTPError(http.StatusForbidden, "unconfirmed account")
				}
				c.Set(handler.CurrentUserKey, u)
				c.Set(handler.AuthSchemeKey, handler.AuthSchemeBasic)

			case strings.HasPrefix(header, bearerPrefix):
				u, err := authService.AuthenticateToken(c.Request().Context(), header[len(bearerPrefix):])
				if err != nil {
					return unauthorized(c)
				}
				if !u.Confirmed {
					return echo.NewHTTPError(http.StatusForbidden, "unconfirmed account")
				}
				c.Set(handler.CurrentUserKey, u)
				c.Set(handler.AuthSchemeKey, handler.AuthSchemeBearer)

			default:
				return unauthorized(c)
			}

			return next(c)
		}
	}
}

// RequirePermission rejects requests whose user lacks the permission bits.
func RequirePermission(perm int) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := handler.CurrentUser(c)
			if user == nil || !user.Can(perm) {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

func decodeBasic(encoded string) (email, password string, ok bool) {
	payload, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(payload), ":")
	return email, password, ok
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Authentication Required"`)
	return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
}
