package usecase

import (
	"context"
	"time"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(userID string, role entity.UserRole) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}

// ActorResolver supplies the actor authenticated on a request context.
type ActorResolver interface {
	CurrentActor(ctx context.Context) (entity.Ref, bool)
}

// RemarkRecorder observes ledger mutations, typically for metrics.
type RemarkRecorder interface {
	ObserveRemark(operation string, kind entity.RemarkKind, affected int64, took time.Duration)
}

// RemarkedSubjectLister resolves a remark filter to subject ids. Remark stores that cannot be
// joined with subject tables implement it.
type RemarkedSubjectLister interface {
	SubjectIDs(ctx context.Context, filter entity.RemarkFilter) ([]string, error)
}

type nopRecorder struct{}

func (nopRecorder) ObserveRemark(string, entity.RemarkKind, int64, time.Duration) {}
