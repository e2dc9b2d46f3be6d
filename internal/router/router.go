package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"blogr/internal/config"
	"blogr/internal/handler"
	"blogr/internal/model"
	"blogr/internal/service"
	"blogr/internal/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	commentHandler *handler.CommentHandler,
	pages *web.PageHandler,
) {
	// Request logging stays quiet under the testing profile.
	if !cfg.IsTesting() {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = NewHTTPErrorHandler(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Browser-facing pages
	e.GET("/", pages.Index)
	e.GET("/user/:name", pages.UserGreeting)

	api := e.Group(handler.APIPrefix)

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/confirm/:token", authHandler.Confirm)

	// Secured routes (Basic credentials or bearer token)
	secured := api.Group("", AuthMiddleware(authService))

	secured.POST("/tokens/", authHandler.Token)

	// Post routes
	secured.GET("/posts/", postHandler.ListPosts)
	secured.POST("/posts/", postHandler.CreatePost, RequirePermission(model.PermissionWrite))
	secured.GET("/posts/:id", postHandler.GetPost)
	secured.PUT("/posts/:id", postHandler.UpdatePost, RequirePermission(model.PermissionWrite))
	secured.GET("/posts/:id/comments/", commentHandler.ListPostComments)
	secured.POST("/posts/:id/comments/", commentHandler.CreateComment, RequirePermission(model.PermissionComment))

	// User routes
	secured.GET("/users/", userHandler.ListUsers)
	secured.GET("/users/:id", userHandler.GetUser)
	secured.PUT("/users/:id", userHandler.UpdateProfile)
	secured.GET("/users/:id/posts/", userHandler.GetUserPosts)
	secured.GET("/users/:id/timeline/", userHandler.GetUserTimeline)
	secured.POST("/users/:id/follow", userHandler.Follow, RequirePermission(model.PermissionFollow))
	secured.DELETE("/users/:id/follow", userHandler.Unfollow, RequirePermission(model.PermissionFollow))

	// Comment routes
	secured.GET("/comments/", commentHandler.ListComments)
	secured.GET("/comments/:id", commentHandler.GetComment)
	secured.PUT("/comments/:id/moderate", commentHandler.Moderate, RequirePermission(model.PermissionModerate))
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
