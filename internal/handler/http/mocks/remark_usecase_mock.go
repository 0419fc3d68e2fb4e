package mocks

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// MockRemarkUsecase returns Err from every call when set and otherwise canned values.
type MockRemarkUsecase struct {
	Err      error
	Active   bool
	Counts   map[entity.RemarkKind]int64
	Remark   *entity.Remark
	Removed  int64
	LastKind entity.RemarkKind
}

var _ usecasecontract.IRemarkUseCase = (*MockRemarkUsecase)(nil)

func NewMockRemarkUsecase() *MockRemarkUsecase {
	return &MockRemarkUsecase{Counts: map[entity.RemarkKind]int64{}}
}

func (m *MockRemarkUsecase) Add(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) error {
	m.LastKind = kind
	return m.Err
}

func (m *MockRemarkUsecase) Remove(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) error {
	m.LastKind = kind
	return m.Err
}

func (m *MockRemarkUsecase) Toggle(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) (bool, error) {
	m.LastKind = kind
	return m.Active, m.Err
}

func (m *MockRemarkUsecase) Has(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) (bool, error) {
	return m.Remark != nil && (kind == entity.RemarkKindAll || m.Remark.Kind == kind), m.Err
}

func (m *MockRemarkUsecase) Get(ctx context.Context, subject entity.Ref, actor *entity.Ref) (*entity.Remark, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Remark == nil {
		return nil, entity.ErrRemarkNotFound
	}
	return m.Remark, nil
}

func (m *MockRemarkUsecase) ClearBySubject(ctx context.Context, subject entity.Ref, kind entity.RemarkKind) (int64, error) {
	m.LastKind = kind
	return m.Removed, m.Err
}

func (m *MockRemarkUsecase) ClearByActor(ctx context.Context, kind entity.RemarkKind, actor *entity.Ref) (int64, error) {
	m.LastKind = kind
	return m.Removed, m.Err
}

func (m *MockRemarkUsecase) CountBySubject(ctx context.Context, subject entity.Ref, kind entity.RemarkKind) (int64, error) {
	return m.Counts[kind], m.Err
}

func (m *MockRemarkUsecase) CountByActor(ctx context.Context, kind entity.RemarkKind, actor *entity.Ref) (int64, error) {
	return m.Counts[kind], m.Err
}

func (m *MockRemarkUsecase) ScopeRemarkedBy(ctx context.Context, subjectType string, kind entity.RemarkKind, actor *entity.Ref) (entity.RemarkFilter, error) {
	if m.Err != nil {
		return entity.RemarkFilter{}, m.Err
	}
	filter := entity.RemarkFilter{Subject: entity.Ref{Type: subjectType}, Kind: kind}
	if actor != nil {
		filter.Actor = *actor
	}
	return filter, nil
}
