package repository

import (
	"context"

	"gorm.io/gorm"

	"blogr/internal/model"
)

// RoleRepository defines role persistence operations.
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*model.Role, error)
	FindDefault(ctx context.Context) (*model.Role, error)
	SeedDefaultRoles(ctx context.Context) error
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository builds a GORM-backed repository.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindByName(ctx context.Context, name string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindDefault(ctx context.Context) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).Where("is_default = ?", true).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// SeedDefaultRoles inserts or refreshes the fixed role table. Permissions of
// existing roles are updated in place so bitmask changes take effect on
// restart.
func (r *roleRepository) SeedDefaultRoles(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, role := range model.DefaultRoles() {
			var existing model.Role
			err := tx.Where("name = ?", role.Name).First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				if err := tx.Create(&role).Error; err != nil {
					return err
				}
				continue
			}
			if err != nil {
				return err
			}
			existing.Permissions = role.Permissions
			existing.IsDefault = role.IsDefault
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
