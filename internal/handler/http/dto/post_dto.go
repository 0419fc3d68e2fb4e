package dto

import (
	"time"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

type CreatePostRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body"`
}

// ListPostsQuery carries the listing filters. LikedBy, DislikedBy and RemarkedBy take "me" or a user id.
type ListPostsQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	AuthorID   uint   `form:"author_id"`
	LikedBy    string `form:"liked_by"`
	DislikedBy string `form:"disliked_by"`
	RemarkedBy string `form:"remarked_by"`
}

type PostResponse struct {
	ID        uint   `json:"id"`
	AuthorID  uint   `json:"author_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// PostDetailResponse is a post together with its remark summary.
type PostDetailResponse struct {
	PostResponse
	Remarks RemarkSummaryResponse `json:"remarks"`
}

type PostListResponse struct {
	Posts    []PostResponse `json:"posts"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

func ToPostResponse(p entity.Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

func ToPostListResponse(posts []entity.Post, total int64, page, pageSize int) PostListResponse {
	out := PostListResponse{
		Posts:    make([]PostResponse, 0, len(posts)),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
	for _, p := range posts {
		out.Posts = append(out.Posts, ToPostResponse(p))
	}
	return out
}
