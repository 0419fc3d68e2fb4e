package contract

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// IRemarkRepository is the polymorphic association layer behind the remark ledger.
// Every lookup is keyed on (type, id) references; zero-valued fields of a filter match anything.
type IRemarkRepository interface {
	// FindOne returns the first remark matching the filter or entity.ErrRemarkNotFound.
	FindOne(ctx context.Context, filter entity.RemarkFilter) (*entity.Remark, error)
	Exists(ctx context.Context, filter entity.RemarkFilter) (bool, error)
	// Create inserts the remark. A unique (subject, actor) violation is reported as entity.ErrRemarkConflict.
	Create(ctx context.Context, remark *entity.Remark) error
	// Replace removes the remark with the given id and inserts remark in its place.
	Replace(ctx context.Context, oldID string, remark *entity.Remark) error
	DeleteMany(ctx context.Context, filter entity.RemarkFilter) (int64, error)
	Count(ctx context.Context, filter entity.RemarkFilter) (int64, error)
}
