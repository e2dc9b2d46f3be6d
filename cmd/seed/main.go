package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blogr/internal/config"
	"blogr/internal/db"
	"blogr/internal/model"
	"blogr/internal/repository"
)

// Seeds the fixed role table and, when ADMIN_EMAIL is set, a confirmed
// administrator account.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.Role{},
		&model.User{},
		&model.Post{},
		&model.Comment{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	roleRepo := repository.NewRoleRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	if err := roleRepo.SeedDefaultRoles(ctx); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}
	log.Println("Role table seeded")

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		log.Println("ADMIN_EMAIL not set, skipping administrator account")
		return
	}

	if err := seedAdmin(ctx, roleRepo, userRepo, adminEmail); err != nil {
		log.Fatalf("Failed to seed administrator: %v", err)
	}

	log.Println("Seed completed successfully!")
}

func seedAdmin(ctx context.Context, roleRepo repository.RoleRepository, userRepo repository.UserRepository, email string) error {
	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return err
	}
	if existing != nil {
		log.Printf("Administrator %s already exists, skipping", email)
		return nil
	}

	role, err := roleRepo.FindByName(ctx, "Administrator")
	if err != nil {
		return err
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
		log.Println("ADMIN_PASSWORD not set, using the default; change it immediately")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}

	admin := &model.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hashed),
		Confirmed:    true,
		RoleID:       role.ID,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Administrator %s created", email)
	return nil
}
