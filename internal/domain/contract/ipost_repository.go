package contract

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, id uint) (*entity.Post, error)
	// GetPostIncludingDeleted also finds soft-deleted posts.
	GetPostIncludingDeleted(ctx context.Context, id uint) (*entity.Post, error)
	// ListPosts returns a page of posts and the total number matching the filter.
	ListPosts(ctx context.Context, filter entity.PostFilter) ([]entity.Post, int64, error)
	DeletePost(ctx context.Context, id uint, permanent bool) error
}
