package repository

import (
	"context"

	"gorm.io/gorm"

	"blogr/internal/model"
)

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	FindByID(ctx context.Context, id uint) (*model.Post, error)
	List(ctx context.Context, offset, limit int) ([]model.Post, int64, error)
	ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]model.Post, int64, error)
	ListTimeline(ctx context.Context, userID uint, offset, limit int) ([]model.Post, int64, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository builds a GORM-backed repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context, offset, limit int) ([]model.Post, int64, error) {
	return r.paginate(r.db.WithContext(ctx).Model(&model.Post{}), offset, limit)
}

func (r *postRepository) ListByAuthor(ctx context.Context, authorID uint, offset, limit int) ([]model.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Post{}).Where("author_id = ?", authorID)
	return r.paginate(q, offset, limit)
}

// ListTimeline returns the user's own posts plus those of everyone they
// follow, newest first.
func (r *postRepository) ListTimeline(ctx context.Context, userID uint, offset, limit int) ([]model.Post, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ? OR author_id IN (?)",
			userID,
			r.db.Table("follows").Select("followed_id").Where("follower_id = ?", userID),
		)
	return r.paginate(q, offset, limit)
}

func (r *postRepository) paginate(q *gorm.DB, offset, limit int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("timestamp DESC, id DESC").
		Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}
