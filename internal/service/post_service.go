package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"blogr/internal/cache"
	apperrors "blogr/internal/errors"
	"blogr/internal/model"
	"blogr/internal/repository"
)

const postCacheTTL = 5 * time.Minute

// PostService exposes post domain operations.
type PostService interface {
	CreatePost(ctx context.Context, author *model.User, body string) (*model.Post, error)
	GetPost(ctx context.Context, id uint) (*model.Post, error)
	UpdatePost(ctx context.Context, editor *model.User, id uint, body string) (*model.Post, error)
	ListPosts(ctx context.Context, offset, limit int) ([]model.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]model.Post, int64, error)
	ListTimeline(ctx context.Context, userID uint, offset, limit int) ([]model.Post, int64, error)
	CommentCount(ctx context.Context, postID uint) (int64, error)
}

type postService struct {
	repo        repository.PostRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	cache       *cache.Client
}

// NewPostService builds a PostService with repositories and cache.
func NewPostService(
	repo repository.PostRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	cache *cache.Client,
) PostService {
	return &postService{
		repo:        repo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		cache:       cache,
	}
}

func (s *postService) cacheKey(id uint) string {
	return fmt.Sprintf("post:%d", id)
}

func (s *postService) CreatePost(ctx context.Context, author *model.User, body string) (*model.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.ErrEmptyBody
	}

	post := &model.Post{
		Body:     body,
		AuthorID: author.ID,
	}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return post, nil
}

func (s *postService) GetPost(ctx context.Context, id uint) (*model.Post, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Post
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(post); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, postCacheTTL)
	}
	return post, nil
}

// UpdatePost replaces the post body. Only the author or an administrator may
// edit; the HTML rendering is regenerated by the model save hook.
func (s *postService) UpdatePost(ctx context.Context, editor *model.User, id uint, body string) (*model.Post, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.ErrEmptyBody
	}

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}

	if post.AuthorID != editor.ID && !editor.IsAdministrator() {
		return nil, apperrors.ErrForbidden
	}

	post.Body = body
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, offset, limit int) ([]model.Post, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *postService) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]model.Post, int64, error) {
	if _, err := s.userRepo.FindByID(ctx, authorID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, 0, apperrors.ErrUserNotFound
		}
		return nil, 0, err
	}
	return s.repo.ListByAuthor(ctx, authorID, offset, limit)
}

func (s *postService) ListTimeline(ctx context.Context, userID uint, offset, limit int) ([]model.Post, int64, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, 0, apperrors.ErrUserNotFound
		}
		return nil, 0, err
	}
	return s.repo.ListTimeline(ctx, userID, offset, limit)
}

func (s *postService) CommentCount(ctx context.Context, postID uint) (int64, error) {
	return s.commentRepo.CountByPost(ctx, postID)
}
