package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"blogr/internal/errors"
	"blogr/internal/model"
	"blogr/internal/service"
)

// PostHandler handles post endpoints.
type PostHandler struct {
	postService service.PostService
	perPage     int
}

// NewPostHandler creates a new post handler.
func NewPostHandler(postService service.PostService, perPage int) *PostHandler {
	return &PostHandler{postService: postService, perPage: perPage}
}

// PostRequest represents a post create or edit request. Only the raw body is
// accepted; the HTML rendering is always computed server-side.
type PostRequest struct {
	Body string `json:"body"`
}

// PostListResponse is the paginated post collection envelope.
type PostListResponse struct {
	Posts []PostJSON `json:"posts"`
	Prev  *string    `json:"prev"`
	Next  *string    `json:"next"`
	Count int64      `json:"count"`
}

func (h *PostHandler) serialize(c echo.Context, post *model.Post) PostJSON {
	count, _ := h.postService.CommentCount(c.Request().Context(), post.ID)
	return serializePost(post, count)
}

func (h *PostHandler) listResponse(c echo.Context, posts []model.Post, p pageParams, total int64) PostListResponse {
	items := make([]PostJSON, 0, len(posts))
	for i := range posts {
		items = append(items, h.serialize(c, &posts[i]))
	}
	prev, next := paginationLinks(c, p, total)
	return PostListResponse{Posts: items, Prev: prev, Next: next, Count: total}
}

// ListPosts godoc
// @Summary List posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} PostListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /posts/ [get]
func (h *PostHandler) ListPosts(c echo.Context) error {
	p := getPageParams(c, h.perPage)
	posts, total, err := h.postService.ListPosts(c.Request().Context(), p.Offset(), p.PerPage)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, h.listResponse(c, posts, p, total))
}

// CreatePost godoc
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PostRequest true "Post body (Markdown)"
// @Success 201 {object} PostJSON
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /posts/ [post]
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	post, err := h.postService.CreatePost(c.Request().Context(), CurrentUser(c), req.Body)
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, postURL(post.ID))
	return c.JSON(http.StatusCreated, h.serialize(c, post))
}

// GetPost godoc
// @Summary Get a post by id
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Success 200 {object} PostJSON
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [get]
func (h *PostHandler) GetPost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	post, err := h.postService.GetPost(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, h.serialize(c, post))
}

// UpdatePost godoc
// @Summary Edit a post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body PostRequest true "New post body (Markdown)"
// @Success 200 {object} PostJSON
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id} [put]
func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req PostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	post, err := h.postService.UpdatePost(c.Request().Context(), CurrentUser(c), id, req.Body)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, h.serialize(c, post))
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// mapDomainError converts service errors to the HTTP error envelope.
func mapDomainError(err error) *echo.HTTPError {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
