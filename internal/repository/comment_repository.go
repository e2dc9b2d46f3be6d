package repository

import (
	"context"

	"gorm.io/gorm"

	"blogr/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	List(ctx context.Context, offset, limit int) ([]model.Comment, int64, error)
	ListByPost(ctx context.Context, postID uint, offset, limit int) ([]model.Comment, int64, error)
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository builds a GORM-backed repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *commentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) List(ctx context.Context, offset, limit int) ([]model.Comment, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&model.Comment{}), offset, limit)
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint, offset, limit int) ([]model.Comment, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Comment{}).Where("post_id = ?", postID)
	return r.paginate(q, offset, limit)
}

func (r *commentRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (r *commentRepository) paginate(q *gorm.DB, offset, limit int) ([]model.Comment, int64, error) {
	var comments []model.Comment
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("timestamp ASC, id ASC").
		Offset(offset).Limit(limit).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}
