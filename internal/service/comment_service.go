package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "blogr/internal/errors"
	"blogr/internal/model"
	"blogr/internal/repository"
)

// CommentService exposes comment domain operations.
type CommentService interface {
	CreateComment(ctx context.Context, author *model.User, postID uint, body string) (*model.Comment, error)
	GetComment(ctx context.Context, id uint) (*model.Comment, error)
	ListComments(ctx context.Context, offset, limit int) ([]model.Comment, int64, error)
	ListForPost(ctx context.Context, postID uint, offset, limit int) ([]model.Comment, int64, error)
	Moderate(ctx context.Context, id uint, disabled bool) (*model.Comment, error)
}

type commentService struct {
	repo     repository.CommentRepository
	postRepo repository.PostRepository
}

// NewCommentService builds a CommentService.
func NewCommentService(repo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{repo: repo, postRepo: postRepo}
}

func (s *commentService) CreateComment(ctx context.Context, author *model.User, postID uint, body string) (*model.Comment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperrors.ErrEmptyBody
	}

	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrPostNotFound
		}
		return nil, err
	}

	comment := &model.Comment{
		Body:     body,
		AuthorID: author.ID,
		PostID:   postID,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) GetComment(ctx context.Context, id uint) (*model.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) ListComments(ctx context.Context, offset, limit int) ([]model.Comment, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *commentService) ListForPost(ctx context.Context, postID uint, offset, limit int) ([]model.Comment, int64, error) {
	if _, err := s.postRepo.FindByID(ctx, postID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, 0, apperrors.ErrPostNotFound
		}
		return nil, 0, err
	}
	return s.repo.ListByPost(ctx, postID, offset, limit)
}

// Moderate flips the disabled flag. The permission check happens at the
// routing layer; this only applies the state change.
func (s *commentService) Moderate(ctx context.Context, id uint, disabled bool) (*model.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, err
	}

	comment.Disabled = disabled
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("moderate comment: %w", err)
	}
	return comment, nil
}
