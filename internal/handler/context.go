package handler

import (
	"github.com/labstack/echo/v4"

	"blogr/internal/model"
)

// CurrentUserKey is the echo context key under which the auth middleware
// stores the authenticated user.
const CurrentUserKey = "current_user"

// AuthSchemeKey is the echo context key under which the auth middleware
// records how the request authenticated.
const AuthSchemeKey = "auth_scheme"

// Values stored under AuthSchemeKey.
const (
	AuthSchemeBasic  = "basic"
	AuthSchemeBearer = "bearer"
)

// CurrentUser returns the authenticated user for the request, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(CurrentUserKey).(*model.User)
	return user
}

// AuthScheme returns the scheme the request authenticated with, or "".
func AuthScheme(c echo.Context) string {
	scheme, _ := c.Get(AuthSchemeKey).(string)
	return scheme
}
