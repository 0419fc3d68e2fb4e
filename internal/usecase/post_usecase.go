package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PostUsecase handles posts, the main remark subject.
type PostUsecase struct {
	postRepo contract.IPostRepository
	remarks  *RemarkUsecase
	logger   usecasecontract.IAppLogger
}

func NewPostUsecase(postRepo contract.IPostRepository, remarks *RemarkUsecase, logger usecasecontract.IAppLogger) *PostUsecase {
	return &PostUsecase{
		postRepo: postRepo,
		remarks:  remarks,
		logger:   logger,
	}
}

var _ usecasecontract.IPostUseCase = (*PostUsecase)(nil)

func (uc *PostUsecase) CreatePost(ctx context.Context, authorID uint, title, body string) (*entity.Post, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.New("title is required")
	}
	post := &entity.Post{
		AuthorID:  authorID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (uc *PostUsecase) GetPost(ctx context.Context, postID uint) (*entity.Post, error) {
	return uc.postRepo.GetPostByID(ctx, postID)
}

func (uc *PostUsecase) GetPostIncludingDeleted(ctx context.Context, postID uint) (*entity.Post, error) {
	return uc.postRepo.GetPostIncludingDeleted(ctx, postID)
}

func (uc *PostUsecase) ListPosts(ctx context.Context, filter entity.PostFilter) ([]entity.Post, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}
	scope, err := uc.remarks.ResolveScope(ctx, filter.SubjectScope)
	if err != nil {
		return nil, 0, err
	}
	filter.SubjectScope = scope
	return uc.postRepo.ListPosts(ctx, filter)
}

// DeletePost removes a post. Permanent deletion clears its remarks before the row goes away.
func (uc *PostUsecase) DeletePost(ctx context.Context, postID uint, permanent bool) error {
	if permanent {
		if err := uc.remarks.ForSubject(&entity.Post{ID: postID}).ClearRemarks(ctx); err != nil {
			return fmt.Errorf("failed to clear remarks on post %d: %w", postID, err)
		}
	}
	if err := uc.postRepo.DeletePost(ctx, postID, permanent); err != nil {
		return err
	}
	uc.logger.Infof("post %d deleted (permanent=%t)", postID, permanent)
	return nil
}
