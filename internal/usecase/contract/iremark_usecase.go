package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// IRemarkUseCase is the remark ledger. A nil actor means the actor authenticated on ctx.
type IRemarkUseCase interface {
	Add(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) error
	Remove(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) error
	Toggle(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) (bool, error)
	Has(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) (bool, error)
	Get(ctx context.Context, subject entity.Ref, actor *entity.Ref) (*entity.Remark, error)
	ClearBySubject(ctx context.Context, subject entity.Ref, kind entity.RemarkKind) (int64, error)
	ClearByActor(ctx context.Context, kind entity.RemarkKind, actor *entity.Ref) (int64, error)
	CountBySubject(ctx context.Context, subject entity.Ref, kind entity.RemarkKind) (int64, error)
	CountByActor(ctx context.Context, kind entity.RemarkKind, actor *entity.Ref) (int64, error)
	ScopeRemarkedBy(ctx context.Context, subjectType string, kind entity.RemarkKind, actor *entity.Ref) (entity.RemarkFilter, error)
}
