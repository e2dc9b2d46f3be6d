package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"blogr/internal/cache"
	apperrors "blogr/internal/errors"
	"blogr/internal/model"
	"blogr/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Name     string
	Location string
	AboutMe  string
}

// UserService exposes user domain operations.
type UserService interface {
	GetUser(ctx context.Context, id uint) (*model.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*model.User, error)
	Follow(ctx context.Context, followerID, followedID uint) error
	Unfollow(ctx context.Context, followerID, followedID uint) error
}

type userService struct {
	repo  repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(repo repository.UserRepository, cache *cache.Client) UserService {
	return &userService{repo: repo, cache: cache}
}

// userCacheKey names the read-cache entry for a user; every writer that
// mutates a user must delete this key.
func userCacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

func (s *userService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, userCacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, userCacheKey(id), payload, userCacheTTL)
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, offset, limit int) ([]model.User, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *userService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.Name = update.Name
	user.Location = update.Location
	user.AboutMe = update.AboutMe
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	_ = s.cache.Delete(ctx, userCacheKey(userID))
	return user, nil
}

func (s *userService) Follow(ctx context.Context, followerID, followedID uint) error {
	if followerID == followedID {
		return apperrors.ErrSelfFollow
	}
	if _, err := s.repo.FindByID(ctx, followedID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	following, err := s.repo.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if following {
		return apperrors.ErrAlreadyFollowing
	}

	return s.repo.Follow(ctx, followerID, followedID)
}

func (s *userService) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if _, err := s.repo.FindByID(ctx, followedID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	following, err := s.repo.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		return err
	}
	if !following {
		return apperrors.ErrNotFollowing
	}

	return s.repo.Unfollow(ctx, followerID, followedID)
}
