package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"blogr/internal/model"
	"blogr/internal/service"
)

// UserHandler handles user endpoints.
type UserHandler struct {
	userService service.UserService
	postService service.PostService
	perPage     int
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService, postService service.PostService, perPage int) *UserHandler {
	return &UserHandler{userService: userService, postService: postService, perPage: perPage}
}

// ProfileRequest represents a profile edit request.
type ProfileRequest struct {
	Name     string `json:"name" validate:"max=64"`
	Location string `json:"location" validate:"max=64"`
	AboutMe  string `json:"about_me"`
}

// UserListResponse is the paginated user collection envelope.
type UserListResponse struct {
	Users []UserJSON `json:"users"`
	Prev  *string    `json:"prev"`
	Next  *string    `json:"next"`
	Count int64      `json:"count"`
}

// GetUser godoc
// @Summary Get a user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserJSON
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	user, err := h.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, serializeUser(user))
}

// ListUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Success 200 {object} UserListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/ [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	p := getPageParams(c, h.perPage)
	users, total, err := h.userService.ListUsers(c.Request().Context(), p.Offset(), p.PerPage)
	if err != nil {
		return mapDomainError(err)
	}

	items := make([]UserJSON, 0, len(users))
	for i := range users {
		items = append(items, serializeUser(&users[i]))
	}
	prev, next := paginationLinks(c, p, total)
	return c.JSON(http.StatusOK, UserListResponse{Users: items, Prev: prev, Next: next, Count: total})
}

// UpdateProfile godoc
// @Summary Edit a user profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body ProfileRequest true "Profile fields"
// @Success 200 {object} UserJSON
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	current := CurrentUser(c)
	if current.ID != id && !current.IsAdministrator() {
		return echo.NewHTTPError(http.StatusForbidden, "cannot edit another user's profile")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), id, service.ProfileUpdate{
		Name:     req.Name,
		Location: req.Location,
		AboutMe:  req.AboutMe,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, serializeUser(user))
}

// GetUserPosts godoc
// @Summary List the posts a user authored
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Success 200 {object} PostListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/posts/ [get]
func (h *UserHandler) GetUserPosts(c echo.Context) error {
	return h.postListing(c, h.postService.ListByAuthor)
}

// GetUserTimeline godoc
// @Summary List a user's timeline
// @Description Posts by the user and everyone they follow, newest first.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param page query int false "Page number"
// @Success 200 {object} PostListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/timeline/ [get]
func (h *UserHandler) GetUserTimeline(c echo.Context) error {
	return h.postListing(c, h.postService.ListTimeline)
}

type postListingFn func(ctx context.Context, userID uint, offset, limit int) ([]model.Post, int64, error)

func (h *UserHandler) postListing(c echo.Context, list postListingFn) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	p := getPageParams(c, h.perPage)
	posts, total, err := list(c.Request().Context(), id, p.Offset(), p.PerPage)
	if err != nil {
		return mapDomainError(err)
	}

	items := make([]PostJSON, 0, len(posts))
	for i := range posts {
		count, _ := h.postService.CommentCount(c.Request().Context(), posts[i].ID)
		items = append(items, serializePost(&posts[i], count))
	}
	prev, next := paginationLinks(c, p, total)
	return c.JSON(http.StatusOK, PostListResponse{Posts: items, Prev: prev, Next: next, Count: total})
}

// Follow godoc
// @Summary Follow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID to follow"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/follow [post]
func (h *UserHandler) Follow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.userService.Follow(c.Request().Context(), CurrentUser(c).ID, id); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "now following"})
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID to unfollow"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/follow [delete]
func (h *UserHandler) Unfollow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.userService.Unfollow(c.Request().Context(), CurrentUser(c).ID, id); err != nil {
		return mapDomainError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "no longer following"})
}
