package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

const defaultPageSize = 20

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
	remarks     usecasecontract.IRemarkUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase, remarks usecasecontract.IRemarkUseCase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		remarks:     remarks,
	}
}

// CreatePost handles POST /posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.postUsecase.CreatePost(c.Request.Context(), userID, req.Title, req.Body)
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToPostResponse(*post))
}

// ListPosts handles GET /posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	var q dto.ListPostsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx := c.Request.Context()
	scope, err := remarkScope(ctx, h.remarks, entity.PostRefType, q.LikedBy, q.DislikedBy, q.RemarkedBy)
	if err != nil {
		respondError(c, err)
		return
	}
	filter := entity.PostFilter{
		SubjectScope: entity.SubjectScope{RemarkedBy: scope},
		AuthorID:     q.AuthorID,
		Page:         q.Page,
		PageSize:     q.PageSize,
	}
	posts, total, err := h.postUsecase.ListPosts(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	page, pageSize := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	SuccessHandler(c, http.StatusOK, dto.ToPostListResponse(posts, total, page, pageSize))
}

// GetPost handles GET /posts/:postID
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c.Param("postID"))
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid post ID")
		return
	}
	ctx := c.Request.Context()
	post, err := h.postUsecase.GetPost(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	_, authenticated := currentUserID(c)
	summary, err := remarkSummary(ctx, h.remarks, post.RemarkSubject(), authenticated)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PostDetailResponse{PostResponse: dto.ToPostResponse(*post), Remarks: summary})
}

// DeletePost handles DELETE /posts/:postID. Only the author or an admin may delete.
func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}
	id, ok := parseID(c.Param("postID"))
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid post ID")
		return
	}
	permanent, _ := strconv.ParseBool(c.Query("permanent"))
	ctx := c.Request.Context()
	load := h.postUsecase.GetPost
	if permanent {
		// a soft-deleted post can still be purged along with its remarks
		load = h.postUsecase.GetPostIncludingDeleted
	}
	post, err := load(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if post.AuthorID != userID && !isAdmin(c) {
		ErrorHandler(c, http.StatusForbidden, "Only the author can delete this post")
		return
	}
	if err := h.postUsecase.DeletePost(ctx, id, permanent); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// LoadSubject resolves a post for the remark handler.
func (h *PostHandler) LoadSubject(ctx context.Context, id uint) (entity.Ref, error) {
	post, err := h.postUsecase.GetPost(ctx, id)
	if err != nil {
		return entity.Ref{}, err
	}
	return post.RemarkSubject(), nil
}
