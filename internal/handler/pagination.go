package handler

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

const maxPerPage = 100

// pageParams holds the validated pagination query parameters.
type pageParams struct {
	Page    int
	PerPage int
}

func (p pageParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// getPageParams parses ?page= and ?per_page=, clamping to sane bounds.
func getPageParams(c echo.Context, defaultPerPage int) pageParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return pageParams{Page: page, PerPage: perPage}
}

// paginationLinks builds the prev/next URLs for the current request, or nil
// when the edge of the collection is reached.
func paginationLinks(c echo.Context, p pageParams, total int64) (prev, next *string) {
	if p.Page > 1 {
		prev = pageURL(c, p, p.Page-1)
	}
	if int64(p.Page*p.PerPage) < total {
		next = pageURL(c, p, p.Page+1)
	}
	return prev, next
}

func pageURL(c echo.Context, p pageParams, page int) *string {
	u := *c.Request().URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	if c.QueryParam("per_page") != "" {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	u.RawQuery = q.Encode()
	s := (&url.URL{Path: u.Path, RawQuery: u.RawQuery}).String()
	return &s
}
