package router

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"blogr/internal/errors"
)

// NewHTTPErrorHandler converts every error into the `{error, message}` JSON
// envelope for API clients, or a rendered HTML page for browsers. Internal
// details never reach the response on 500.
func NewHTTPErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := "internal server error"

		switch he := err.(type) {
		case *echo.HTTPError:
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				message = m
			case errors.ErrorResponse:
				message = m.Message
			default:
				message = http.StatusText(code)
			}
		case *errors.HTTPError:
			code = he.StatusCode
			message = he.Message
		}

		if code == http.StatusInternalServerError {
			message = "internal server error"
			e.Logger.Error(err)
		}

		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Authentication Required"`)
		}

		if wantsHTML(c) {
			page := "500.html"
			if code == http.StatusNotFound {
				page = "404.html"
			}
			if renderErr := c.Render(code, page, nil); renderErr == nil {
				return
			}
		}

		_ = c.JSON(code, errors.ErrorResponse{
			Error:   errors.StatusText(code),
			Message: message,
		})
	}
}

// wantsHTML reports whether the client is a browser rather than an API
// consumer. API requests announce JSON in the Accept header or target the
// API prefix.
func wantsHTML(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return false
	}
	accept := c.Request().Header.Get("Accept")
	return strings.Contains(accept, echo.MIMETextHTML) &&
		!strings.Contains(accept, echo.MIMEApplicationJSON)
}
