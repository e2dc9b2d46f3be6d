package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "blogr/internal/errors"
	"blogr/internal/model"
)

func TestCommentService_CreateComment(t *testing.T) {
	author := &model.User{ID: 1}

	t.Run("empty body rejected", func(t *testing.T) {
		svc := NewCommentService(new(MockCommentRepository), new(MockPostRepository))
		_, err := svc.CreateComment(context.Background(), author, 1, " ")
		assert.ErrorIs(t, err, apperrors.ErrEmptyBody)
	})

	t.Run("unknown post", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewCommentService(new(MockCommentRepository), postRepo)
		_, err := svc.CreateComment(context.Background(), author, 9, "nice post")
		assert.ErrorIs(t, err, apperrors.ErrPostNotFound)
	})

	t.Run("comment created", func(t *testing.T) {
		postRepo := new(MockPostRepository)
		postRepo.On("FindByID", mock.Anything, uint(9)).Return(&model.Post{ID: 9}, nil)

		commentRepo := new(MockCommentRepository)
		commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
			return c.PostID == 9 && c.AuthorID == 1 && c.Body == "nice post"
		})).Return(nil)

		svc := NewCommentService(commentRepo, postRepo)
		comment, err := svc.CreateComment(context.Background(), author, 9, "nice post")

		assert.NoError(t, err)
		assert.Equal(t, uint(9), comment.PostID)
		commentRepo.AssertExpectations(t)
	})
}

func TestCommentService_Moderate(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	commentRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&model.Comment{ID: 3, Body: "spam", Disabled: false}, nil)
	commentRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.Disabled
	})).Return(nil)

	svc := NewCommentService(commentRepo, new(MockPostRepository))
	comment, err := svc.Moderate(context.Background(), 3, true)

	assert.NoError(t, err)
	assert.True(t, comment.Disabled)
	commentRepo.AssertExpectations(t)
}
