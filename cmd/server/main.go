package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "blogr/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"blogr/internal/auth"
	"blogr/internal/cache"
	"blogr/internal/config"
	"blogr/internal/db"
	"blogr/internal/handler"
	"blogr/internal/model"
	"blogr/internal/repository"
	"blogr/internal/router"
	"blogr/internal/service"
	"blogr/internal/web"
)

// @title Blogr API
// @version 1.0
// @description Blogging platform API with posts, comments, follows, and Basic/token authentication.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and an access token, or use HTTP Basic with email:password.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Debug = cfg.Env != config.EnvProduction
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Comment{},
			&model.Post{},
			&model.User{},
			&model.Role{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Seed the fixed role table
	if err := roleRepo.SeedDefaultRoles(context.Background()); err != nil {
		log.Fatalf("seed roles: %v", err)
	}

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, tokenService, tokenStore, cacheClient)
	userService := service.NewUserService(userRepo, cacheClient)
	postService := service.NewPostService(postRepo, userRepo, commentRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, postRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, postService, cfg.PostsPerPage)
	postHandler := handler.NewPostHandler(postService, cfg.PostsPerPage)
	commentHandler := handler.NewCommentHandler(commentService, cfg.PostsPerPage)

	// Template renderer for the browser-facing pages
	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("parse templates: %v", err)
	}
	e.Renderer = renderer

	// Register routes
	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		userHandler,
		postHandler,
		commentHandler,
		web.NewPageHandler(),
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
