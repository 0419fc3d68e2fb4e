package gormrepo

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	m := &postModel{
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	post.ID = m.ID
	return nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id uint) (*entity.Post, error) {
	return r.findByID(r.db.WithContext(ctx), id)
}

func (r *PostRepository) GetPostIncludingDeleted(ctx context.Context, id uint) (*entity.Post, error) {
	return r.findByID(r.db.WithContext(ctx).Unscoped(), id)
}

func (r *PostRepository) findByID(db *gorm.DB, id uint) (*entity.Post, error) {
	var m postModel
	if err := db.Take(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to retrieve post: %w", err)
	}
	return m.toEntity(), nil
}

func (r *PostRepository) ListPosts(ctx context.Context, filter entity.PostFilter) ([]entity.Post, int64, error) {
	query := func() *gorm.DB {
		q := r.db.WithContext(ctx).Model(&postModel{})
		if filter.AuthorID != 0 {
			q = q.Where("author_id = ?", filter.AuthorID)
		}
		return q.Scopes(withinScope(filter.SubjectScope, postsTable, "id"))
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	q := query().Order("id DESC")
	if filter.PageSize > 0 {
		q = q.Limit(filter.PageSize)
		if filter.Page > 1 {
			q = q.Offset((filter.Page - 1) * filter.PageSize)
		}
	}
	var models []postModel
	err := q.Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]entity.Post, 0, len(models))
	for i := range models {
		posts = append(posts, *models[i].toEntity())
	}
	return posts, total, nil
}

// DeletePost soft deletes the post unless permanent is set.
func (r *PostRepository) DeletePost(ctx context.Context, id uint, permanent bool) error {
	db := r.db.WithContext(ctx)
	if permanent {
		db = db.Unscoped()
	}
	res := db.Delete(&postModel{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete post: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
