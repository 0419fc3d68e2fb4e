package usecase

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// SubjectRemarks exposes the ledger from the side of a record that receives remarks.
// A nil actor means the actor authenticated on ctx.
type SubjectRemarks struct {
	ledger  *RemarkUsecase
	subject entity.Ref
}

func (s *SubjectRemarks) Ref() entity.Ref { return s.subject }

func (s *SubjectRemarks) Like(ctx context.Context, actor *entity.Ref) error {
	return s.ledger.Add(ctx, s.subject, entity.RemarkKindLike, actor)
}

func (s *SubjectRemarks) Unlike(ctx context.Context, actor *entity.Ref) error {
	return s.ledger.Remove(ctx, s.subject, entity.RemarkKindLike, actor)
}

func (s *SubjectRemarks) ToggleLike(ctx context.Context, actor *entity.Ref) (bool, error) {
	return s.ledger.Toggle(ctx, s.subject, entity.RemarkKindLike, actor)
}

func (s *SubjectRemarks) Dislike(ctx context.Context, actor *entity.Ref) error {
	return s.ledger.Add(ctx, s.subject, entity.RemarkKindDislike, actor)
}

func (s *SubjectRemarks) Undislike(ctx context.Context, actor *entity.Ref) error {
	return s.ledger.Remove(ctx, s.subject, entity.RemarkKindDislike, actor)
}

func (s *SubjectRemarks) ToggleDislike(ctx context.Context, actor *entity.Ref) (bool, error) {
	return s.ledger.Toggle(ctx, s.subject, entity.RemarkKindDislike, actor)
}

func (s *SubjectRemarks) Remarked(ctx context.Context, actor *entity.Ref) (bool, error) {
	return s.ledger.Has(ctx, s.subject, entity.RemarkKindAll, actor)
}

func (s *SubjectRemarks) Liked(ctx context.Context, actor *entity.Ref) (bool, error) {
	return s.ledger.Has(ctx, s.subject, entity.RemarkKindLike, actor)
}

func (s *SubjectRemarks) Disliked(ctx context.Context, actor *entity.Ref) (bool, error) {
	return s.ledger.Has(ctx, s.subject, entity.RemarkKindDislike, actor)
}

// ClearRemarks is the cleanup hook for permanent deletion of the subject.
func (s *SubjectRemarks) ClearRemarks(ctx context.Context) error {
	_, err := s.ledger.ClearBySubject(ctx, s.subject, entity.RemarkKindAll)
	return err
}

func (s *SubjectRemarks) ClearLikes(ctx context.Context) error {
	_, err := s.ledger.ClearBySubject(ctx, s.subject, entity.RemarkKindLike)
	return err
}

func (s *SubjectRemarks) ClearDislikes(ctx context.Context) error {
	_, err := s.ledger.ClearBySubject(ctx, s.subject, entity.RemarkKindDislike)
	return err
}

func (s *SubjectRemarks) RemarksCount(ctx context.Context) (int64, error) {
	return s.ledger.CountBySubject(ctx, s.subject, entity.RemarkKindAll)
}

func (s *SubjectRemarks) LikesCount(ctx context.Context) (int64, error) {
	return s.ledger.CountBySubject(ctx, s.subject, entity.RemarkKindLike)
}

func (s *SubjectRemarks) DislikesCount(ctx context.Context) (int64, error) {
	return s.ledger.CountBySubject(ctx, s.subject, entity.RemarkKindDislike)
}

// ActorRemarks exposes the ledger from the side of a record that makes remarks.
type ActorRemarks struct {
	ledger *RemarkUsecase
	actor  entity.Ref
}

func (a *ActorRemarks) Ref() entity.Ref { return a.actor }

func (a *ActorRemarks) Like(ctx context.Context, subject entity.Subject) error {
	return a.ledger.Add(ctx, subject.RemarkSubject(), entity.RemarkKindLike, &a.actor)
}

func (a *ActorRemarks) Unlike(ctx context.Context, subject entity.Subject) error {
	return a.ledger.Remove(ctx, subject.RemarkSubject(), entity.RemarkKindLike, &a.actor)
}

func (a *ActorRemarks) ToggleLike(ctx context.Context, subject entity.Subject) (bool, error) {
	return a.ledger.Toggle(ctx, subject.RemarkSubject(), entity.RemarkKindLike, &a.actor)
}

func (a *ActorRemarks) Dislike(ctx context.Context, subject entity.Subject) error {
	return a.ledger.Add(ctx, subject.RemarkSubject(), entity.RemarkKindDislike, &a.actor)
}

func (a *ActorRemarks) Undislike(ctx context.Context, subject entity.Subject) error {
	return a.ledger.Remove(ctx, subject.RemarkSubject(), entity.RemarkKindDislike, &a.actor)
}

func (a *ActorRemarks) ToggleDislike(ctx context.Context, subject entity.Subject) (bool, error) {
	return a.ledger.Toggle(ctx, subject.RemarkSubject(), entity.RemarkKindDislike, &a.actor)
}

func (a *ActorRemarks) Remarked(ctx context.Context, subject entity.Subject) (bool, error) {
	return a.ledger.Has(ctx, subject.RemarkSubject(), entity.RemarkKindAll, &a.actor)
}

func (a *ActorRemarks) Liked(ctx context.Context, subject entity.Subject) (bool, error) {
	return a.ledger.Has(ctx, subject.RemarkSubject(), entity.RemarkKindLike, &a.actor)
}

func (a *ActorRemarks) Disliked(ctx context.Context, subject entity.Subject) (bool, error) {
	return a.ledger.Has(ctx, subject.RemarkSubject(), entity.RemarkKindDislike, &a.actor)
}

// ClearRemarks is the cleanup hook for permanent deletion of the actor.
func (a *ActorRemarks) ClearRemarks(ctx context.Context) error {
	_, err := a.ledger.ClearByActor(ctx, entity.RemarkKindAll, &a.actor)
	return err
}

func (a *ActorRemarks) ClearLikes(ctx context.Context) error {
	_, err := a.ledger.ClearByActor(ctx, entity.RemarkKindLike, &a.actor)
	return err
}

func (a *ActorRemarks) ClearDislikes(ctx context.Context) error {
	_, err := a.ledger.ClearByActor(ctx, entity.RemarkKindDislike, &a.actor)
	return err
}

func (a *ActorRemarks) RemarksCount(ctx context.Context) (int64, error) {
	return a.ledger.CountByActor(ctx, entity.RemarkKindAll, &a.actor)
}

func (a *ActorRemarks) LikesCount(ctx context.Context) (int64, error) {
	return a.ledger.CountByActor(ctx, entity.RemarkKindLike, &a.actor)
}

func (a *ActorRemarks) DislikesCount(ctx context.Context) (int64, error) {
	return a.ledger.CountByActor(ctx, entity.RemarkKindDislike, &a.actor)
}
