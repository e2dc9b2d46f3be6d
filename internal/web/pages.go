package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the browser-facing pages.
type PageHandler struct{}

// NewPageHandler creates a page handler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Index renders the landing page.
func (h *PageHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", nil)
}

// UserGreeting renders a greeting for the named user.
func (h *PageHandler) UserGreeting(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusNotFound, "user not found")
	}
	return c.Render(http.StatusOK, "user.html", map[string]interface{}{"Name": name})
}
