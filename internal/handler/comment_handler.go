package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"blogr/internal/model"
	"blogr/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
	perPage        int
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService, perPage int) *CommentHandler {
	return &CommentHandler{commentService: commentService, perPage: perPage}
}

// CommentRequest represents a comment create request.
type CommentRequest struct {
	Body string `json:"body"`
}

// ModerateRequest represents a comment moderation request.
type ModerateRequest struct {
	Disabled bool `json:"disabled"`
}

// CommentListResponse is the paginated comment collection envelope.
type CommentListResponse struct {
	Comments []CommentJSON `json:"comments"`
	Prev     *string       `json:"prev"`
	Next     *string       `json:"next"`
	Count    int64         `json:"count"`
}

func commentListResponse(c echo.Context, comments []model.Comment, p pageParams, total int64) CommentListResponse {
	items := make([]CommentJSON, 0, len(comments))
	for i := range comments {
		items = append(items, serializeComment(&comments[i]))
	}
	prev, next := paginationLinks(c, p, total)
	return CommentListResponse{Comments: items, Prev: prev, Next: next, Count: total}
}

// ListComments godoc
// @Summary List all comments
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} CommentListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /comments/ [get]
func (h *CommentHandler) ListComments(c echo.Context) error {
	p := getPageParams(c, h.perPage)
	comments, total, err := h.commentService.ListComments(c.Request().Context(), p.Offset(), p.PerPage)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, commentListResponse(c, comments, p, total))
}

// GetComment godoc
// @Summary Get a comment by id
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Success 200 {object} CommentJSON
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [get]
func (h *CommentHandler) GetComment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	comment, err := h.commentService.GetComment(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, serializeComment(comment))
}

// ListPostComments godoc
// @Summary List the comments on a post
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param page query int false "Page number"
// @Success 200 {object} CommentListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments/ [get]
func (h *CommentHandler) ListPostComments(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	p := getPageParams(c, h.perPage)
	comments, total, err := h.commentService.ListForPost(c.Request().Context(), id, p.Offset(), p.PerPage)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, commentListResponse(c, comments, p, total))
}

// CreateComment godoc
// @Summary Comment on a post
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Post ID"
// @Param request body CommentRequest true "Comment body (Markdown)"
// @Success 201 {object} CommentJSON
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /posts/{id}/comments/ [post]
func (h *CommentHandler) CreateComment(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.commentService.CreateComment(c.Request().Context(), CurrentUser(c), id, req.Body)
	if err != nil {
		return mapDomainError(err)
	}

	c.Response().Header().Set(echo.HeaderLocation, commentURL(comment.ID))
	return c.JSON(http.StatusCreated, serializeComment(comment))
}

// Moderate godoc
// @Summary Enable or disable a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Comment ID"
// @Param request body ModerateRequest true "Moderation state"
// @Success 200 {object} CommentJSON
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id}/moderate [put]
func (h *CommentHandler) Moderate(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req ModerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.commentService.Moderate(c.Request().Context(), id, req.Disabled)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, serializeComment(comment))
}
