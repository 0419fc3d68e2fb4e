package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

type IPostUseCase interface {
	CreatePost(ctx context.Context, authorID uint, title, body string) (*entity.Post, error)
	GetPost(ctx context.Context, postID uint) (*entity.Post, error)
	// GetPostIncludingDeleted also finds soft-deleted posts, so they can still be purged.
	GetPostIncludingDeleted(ctx context.Context, postID uint) (*entity.Post, error)
	ListPosts(ctx context.Context, filter entity.PostFilter) ([]entity.Post, int64, error)
	// DeletePost clears the post's remarks before removing it when permanent is set.
	DeletePost(ctx context.Context, postID uint, permanent bool) error
}
