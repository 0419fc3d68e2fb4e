package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

var errOneRemarkFilter = errors.New("only one of liked_by, disliked_by, remarked_by may be set")

// SubjectLoader checks that a subject exists and returns its reference.
type SubjectLoader func(ctx context.Context, id uint) (entity.Ref, error)

// RemarkHandler exposes the remark ledger over any registered subject type.
type RemarkHandler struct {
	remarks  usecasecontract.IRemarkUseCase
	subjects map[string]SubjectLoader
}

func NewRemarkHandler(remarks usecasecontract.IRemarkUseCase) *RemarkHandler {
	return &RemarkHandler{
		remarks:  remarks,
		subjects: make(map[string]SubjectLoader),
	}
}

// RegisterSubject makes subjectType addressable under /remarks/:subjectType.
func (h *RemarkHandler) RegisterSubject(subjectType string, load SubjectLoader) {
	h.subjects[subjectType] = load
}

// AddRemark handles PUT /remarks/:subjectType/:subjectID/:kind
func (h *RemarkHandler) AddRemark(c *gin.Context) {
	subject, kind, ok := h.subjectAndKind(c)
	if !ok {
		return
	}
	if err := h.remarks.Add(c.Request.Context(), subject, kind, nil); err != nil {
		respondError(c, err)
		return
	}
	h.respondSummary(c, subject)
}

// RemoveRemark handles DELETE /remarks/:subjectType/:subjectID/:kind
func (h *RemarkHandler) RemoveRemark(c *gin.Context) {
	subject, kind, ok := h.subjectAndKind(c)
	if !ok {
		return
	}
	if err := h.remarks.Remove(c.Request.Context(), subject, kind, nil); err != nil {
		respondError(c, err)
		return
	}
	h.respondSummary(c, subject)
}

// ToggleRemark handles POST /remarks/:subjectType/:subjectID/:kind/toggle
func (h *RemarkHandler) ToggleRemark(c *gin.Context) {
	subject, kind, ok := h.subjectAndKind(c)
	if !ok {
		return
	}
	active, err := h.remarks.Toggle(c.Request.Context(), subject, kind, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToggleRemarkResponse{Subject: subject, Kind: kind.String(), Active: active})
}

// GetRemarks handles GET /remarks/:subjectType/:subjectID
func (h *RemarkHandler) GetRemarks(c *gin.Context) {
	subject, ok := h.subject(c)
	if !ok {
		return
	}
	h.respondSummary(c, subject)
}

// ClearMine handles DELETE /remarks/mine
func (h *RemarkHandler) ClearMine(c *gin.Context) {
	var q dto.ClearRemarksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	kind, err := entity.ParseRemarkKind(q.Kind)
	if err != nil {
		respondError(c, err)
		return
	}
	removed, err := h.remarks.ClearByActor(c.Request.Context(), kind, nil)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ClearRemarksResponse{Removed: removed})
}

// remarkSummary counts the remarks on subject and, when the request is authenticated, reports the
// caller's own remark.
func remarkSummary(ctx context.Context, remarks usecasecontract.IRemarkUseCase, subject entity.Ref, authenticated bool) (dto.RemarkSummaryResponse, error) {
	out := dto.RemarkSummaryResponse{Subject: subject}
	var err error
	if out.Likes, err = remarks.CountBySubject(ctx, subject, entity.RemarkKindLike); err != nil {
		return out, err
	}
	if out.Dislikes, err = remarks.CountBySubject(ctx, subject, entity.RemarkKindDislike); err != nil {
		return out, err
	}
	if !authenticated {
		return out, nil
	}
	remark, err := remarks.Get(ctx, subject, nil)
	if err != nil && remarkErrorStatus(err) != http.StatusNotFound {
		return out, err
	}
	liked := remark != nil && remark.Kind == entity.RemarkKindLike
	disliked := remark != nil && remark.Kind == entity.RemarkKindDislike
	remarked := remark != nil
	out.Liked, out.Disliked, out.Remarked = &liked, &disliked, &remarked
	return out, nil
}

func (h *RemarkHandler) respondSummary(c *gin.Context, subject entity.Ref) {
	_, authenticated := currentUserID(c)
	summary, err := remarkSummary(c.Request.Context(), h.remarks, subject, authenticated)
	if err != nil {
		respondError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, summary)
}

func (h *RemarkHandler) subject(c *gin.Context) (entity.Ref, bool) {
	load, ok := h.subjects[c.Param("subjectType")]
	if !ok {
		ErrorHandler(c, http.StatusNotFound, "Unknown subject type")
		return entity.Ref{}, false
	}
	id, ok := parseID(c.Param("subjectID"))
	if !ok {
		ErrorHandler(c, http.StatusBadRequest, "Invalid subject ID")
		return entity.Ref{}, false
	}
	subject, err := load(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return entity.Ref{}, false
	}
	return subject, true
}

func (h *RemarkHandler) subjectAndKind(c *gin.Context) (entity.Ref, entity.RemarkKind, bool) {
	kind, err := entity.ParseRemarkKind(c.Param("kind"))
	if err != nil {
		respondError(c, err)
		return entity.Ref{}, 0, false
	}
	subject, ok := h.subject(c)
	if !ok {
		return entity.Ref{}, 0, false
	}
	return subject, kind, true
}

// remarkScope builds the remark filter behind liked_by, disliked_by and remarked_by query values.
// At most one of them may be set.
func remarkScope(ctx context.Context, remarks usecasecontract.IRemarkUseCase, subjectType, likedBy, dislikedBy, remarkedBy string) (*entity.RemarkFilter, error) {
	raw, kind, n := "", entity.RemarkKindAll, 0
	if likedBy != "" {
		raw, kind, n = likedBy, entity.RemarkKindLike, n+1
	}
	if dislikedBy != "" {
		raw, kind, n = dislikedBy, entity.RemarkKindDislike, n+1
	}
	if remarkedBy != "" {
		raw, kind, n = remarkedBy, entity.RemarkKindAll, n+1
	}
	switch n {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, errOneRemarkFilter
	}
	actor, err := actorParam(raw)
	if err != nil {
		return nil, err
	}
	filter, err := remarks.ScopeRemarkedBy(ctx, subjectType, kind, actor)
	if err != nil {
		return nil, err
	}
	return &filter, nil
}
