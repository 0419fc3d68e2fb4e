package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// RemarkUsecase is the remark ledger. It is the only writer of remark rows and keeps
// at most one remark per (subject, actor) pair.
type RemarkUsecase struct {
	remarkRepo contract.IRemarkRepository
	actors     ActorResolver
	logger     usecasecontract.IAppLogger
	recorder   RemarkRecorder
	subjects   RemarkedSubjectLister
	now        func() time.Time
}

// NewRemarkUsecase creates and returns a new RemarkUsecase instance.
func NewRemarkUsecase(remarkRepo contract.IRemarkRepository, actors ActorResolver, logger usecasecontract.IAppLogger) *RemarkUsecase {
	return &RemarkUsecase{
		remarkRepo: remarkRepo,
		actors:     actors,
		logger:     logger,
		recorder:   nopRecorder{},
		now:        time.Now,
	}
}

var _ usecasecontract.IRemarkUseCase = (*RemarkUsecase)(nil)

// SetRecorder plugs in a mutation observer.
func (u *RemarkUsecase) SetRecorder(r RemarkRecorder) {
	if r == nil {
		r = nopRecorder{}
	}
	u.recorder = r
}

// SetSubjectLister makes ResolveScope turn remark filters into subject ids. Used when remarks
// live in a different store than the subjects.
func (u *RemarkUsecase) SetSubjectLister(l RemarkedSubjectLister) {
	u.subjects = l
}

// SetClock overrides the clock used for remark creation times.
func (u *RemarkUsecase) SetClock(now func() time.Time) {
	u.now = now
}

// Add records kind on subject for the actor. An existing remark of another kind is replaced.
func (u *RemarkUsecase) Add(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) error {
	if err := checkStorableKind(kind); err != nil {
		return err
	}
	if err := checkSubject(subject); err != nil {
		return err
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return err
	}
	start := u.now()

	existing, err := u.remarkRepo.FindOne(ctx, entity.RemarkFilter{Subject: subject, Actor: who})
	if err != nil && !errors.Is(err, entity.ErrRemarkNotFound) {
		return fmt.Errorf("failed to retrieve existing remark: %w", err)
	}
	if existing != nil && existing.Kind == kind {
		return nil
	}

	createdAt := start.Unix()
	remark := &entity.Remark{
		Subject:   subject,
		Actor:     who,
		Kind:      kind,
		CreatedAt: &createdAt,
	}
	if existing != nil {
		err = u.remarkRepo.Replace(ctx, existing.ID, remark)
	} else {
		err = u.remarkRepo.Create(ctx, remark)
	}
	if errors.Is(err, entity.ErrRemarkConflict) {
		return u.settleConflict(ctx, subject, who, kind)
	}
	if err != nil {
		return fmt.Errorf("failed to add %s on %s: %w", kind, subject, err)
	}

	u.recorder.ObserveRemark("add", kind, 1, u.now().Sub(start))
	u.logger.Debugf("remark %s added on %s by %s", kind, subject, who)
	return nil
}

// settleConflict resolves a lost insert race: the winner's row counts as ours when it has the same kind.
func (u *RemarkUsecase) settleConflict(ctx context.Context, subject, who entity.Ref, kind entity.RemarkKind) error {
	stored, err := u.remarkRepo.FindOne(ctx, entity.RemarkFilter{Subject: subject, Actor: who})
	if err == nil && stored.Kind == kind {
		u.logger.Infof("concurrent remark %s on %s by %s already stored", kind, subject, who)
		return nil
	}
	u.logger.Warnf("concurrent remark write on %s by %s lost to a different kind", subject, who)
	return fmt.Errorf("%w: %s on %s", entity.ErrRemarkConflict, who, subject)
}

// Remove deletes the actor's remark of the given kind. RemarkKindAll deletes any kind.
func (u *RemarkUsecase) Remove(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) error {
	if err := checkFilterKind(kind); err != nil {
		return err
	}
	if err := checkSubject(subject); err != nil {
		return err
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return err
	}
	start := u.now()

	n, err := u.remarkRepo.DeleteMany(ctx, entity.RemarkFilter{Subject: subject, Actor: who, Kind: kind})
	if err != nil {
		return fmt.Errorf("failed to remove %s on %s: %w", kind, subject, err)
	}
	u.recorder.ObserveRemark("remove", kind, n, u.now().Sub(start))
	return nil
}

// Toggle removes the remark of the given kind when present and adds it otherwise.
// Toggling one kind over the other replaces it. It reports whether the kind is now present.
func (u *RemarkUsecase) Toggle(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) (bool, error) {
	if err := checkStorableKind(kind); err != nil {
		return false, err
	}
	if err := checkSubject(subject); err != nil {
		return false, err
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return false, err
	}

	exists, err := u.remarkRepo.Exists(ctx, entity.RemarkFilter{Subject: subject, Actor: who, Kind: kind})
	if err != nil {
		return false, fmt.Errorf("failed to check remark: %w", err)
	}
	if exists {
		return false, u.Remove(ctx, subject, kind, &who)
	}
	return true, u.Add(ctx, subject, kind, &who)
}

// Has reports whether the actor holds a remark of the given kind on subject.
func (u *RemarkUsecase) Has(ctx context.Context, subject entity.Ref, kind entity.RemarkKind, actor *entity.Ref) (bool, error) {
	if err := checkFilterKind(kind); err != nil {
		return false, err
	}
	if err := checkSubject(subject); err != nil {
		return false, err
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return false, err
	}
	exists, err := u.remarkRepo.Exists(ctx, entity.RemarkFilter{Subject: subject, Actor: who, Kind: kind})
	if err != nil {
		return false, fmt.Errorf("failed to check remark: %w", err)
	}
	return exists, nil
}

// Get returns the remark the actor holds on subject, or entity.ErrRemarkNotFound.
func (u *RemarkUsecase) Get(ctx context.Context, subject entity.Ref, actor *entity.Ref) (*entity.Remark, error) {
	if err := checkSubject(subject); err != nil {
		return nil, err
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	return u.remarkRepo.FindOne(ctx, entity.RemarkFilter{Subject: subject, Actor: who})
}

// ClearBySubject deletes every remark on subject, optionally of one kind only.
func (u *RemarkUsecase) ClearBySubject(ctx context.Context, subject entity.Ref, kind entity.RemarkKind) (int64, error) {
	if err := checkFilterKind(kind); err != nil {
		return 0, err
	}
	if err := checkSubject(subject); err != nil {
		return 0, err
	}
	start := u.now()
	n, err := u.remarkRepo.DeleteMany(ctx, entity.RemarkFilter{Subject: subject, Kind: kind})
	if err != nil {
		return 0, fmt.Errorf("failed to clear remarks on %s: %w", subject, err)
	}
	u.recorder.ObserveRemark("clear_subject", kind, n, u.now().Sub(start))
	u.logger.Infof("cleared %d %s remark(s) on %s", n, kind, subject)
	return n, nil
}

// ClearByActor deletes every remark made by the actor, optionally of one kind only.
func (u *RemarkUsecase) ClearByActor(ctx context.Context, kind entity.RemarkKind, actor *entity.Ref) (int64, error) {
	if err := checkFilterKind(kind); err != nil {
		return 0, err
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return 0, err
	}
	start := u.now()
	n, err := u.remarkRepo.DeleteMany(ctx, entity.RemarkFilter{Actor: who, Kind: kind})
	if err != nil {
		return 0, fmt.Errorf("failed to clear remarks by %s: %w", who, err)
	}
	u.recorder.ObserveRemark("clear_actor", kind, n, u.now().Sub(start))
	u.logger.Infof("cleared %d %s remark(s) by %s", n, kind, who)
	return n, nil
}

func (u *RemarkUsecase) CountBySubject(ctx context.Context, subject entity.Ref, kind entity.RemarkKind) (int64, error) {
	if err := checkFilterKind(kind); err != nil {
		return 0, err
	}
	if err := checkSubject(subject); err != nil {
		return 0, err
	}
	n, err := u.remarkRepo.Count(ctx, entity.RemarkFilter{Subject: subject, Kind: kind})
	if err != nil {
		return 0, fmt.Errorf("failed to count remarks on %s: %w", subject, err)
	}
	return n, nil
}

func (u *RemarkUsecase) CountByActor(ctx context.Context, kind entity.RemarkKind, actor *entity.Ref) (int64, error) {
	if err := checkFilterKind(kind); err != nil {
		return 0, err
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return 0, err
	}
	n, err := u.remarkRepo.Count(ctx, entity.RemarkFilter{Actor: who, Kind: kind})
	if err != nil {
		return 0, fmt.Errorf("failed to count remarks by %s: %w", who, err)
	}
	return n, nil
}

// ScopeRemarkedBy builds the filter a subject query applies to keep only records of subjectType
// that carry a matching remark from the actor. Nothing is read here.
func (u *RemarkUsecase) ScopeRemarkedBy(ctx context.Context, subjectType string, kind entity.RemarkKind, actor *entity.Ref) (entity.RemarkFilter, error) {
	if err := checkFilterKind(kind); err != nil {
		return entity.RemarkFilter{}, err
	}
	if subjectType == "" {
		return entity.RemarkFilter{}, fmt.Errorf("%w: empty subject type", entity.ErrInvalidSubject)
	}
	who, err := u.resolveActor(ctx, actor)
	if err != nil {
		return entity.RemarkFilter{}, err
	}
	return entity.RemarkFilter{
		Subject: entity.Ref{Type: subjectType},
		Actor:   who,
		Kind:    kind,
	}, nil
}

// ResolveScope prepares a subject scope for the subject store. Without a subject lister the
// remark filter is left for the store to join.
func (u *RemarkUsecase) ResolveScope(ctx context.Context, scope entity.SubjectScope) (entity.SubjectScope, error) {
	if scope.RemarkedBy == nil || u.subjects == nil {
		return scope, nil
	}
	ids, err := u.subjects.SubjectIDs(ctx, *scope.RemarkedBy)
	if err != nil {
		return scope, fmt.Errorf("failed to resolve remarked subjects: %w", err)
	}
	if scope.IDs != nil {
		ids = intersect(scope.IDs, ids)
	}
	if ids == nil {
		// nil would mean unrestricted
		ids = []string{}
	}
	return entity.SubjectScope{IDs: ids}, nil
}

// ForSubject binds the ledger to a subject.
func (u *RemarkUsecase) ForSubject(subject entity.Subject) *SubjectRemarks {
	return &SubjectRemarks{ledger: u, subject: subject.RemarkSubject()}
}

// ForActor binds the ledger to an actor.
func (u *RemarkUsecase) ForActor(actor entity.Actor) *ActorRemarks {
	return &ActorRemarks{ledger: u, actor: actor.RemarkActor()}
}

func (u *RemarkUsecase) resolveActor(ctx context.Context, actor *entity.Ref) (entity.Ref, error) {
	if actor != nil {
		if !actor.Valid() {
			return entity.Ref{}, fmt.Errorf("%w: %q", entity.ErrInvalidActor, actor.String())
		}
		return *actor, nil
	}
	if u.actors != nil {
		if current, ok := u.actors.CurrentActor(ctx); ok && current.Valid() {
			return current, nil
		}
	}
	return entity.Ref{}, entity.ErrNoActor
}

func intersect(a, b []string) []string {
	seen := make(map[string]struct{}, len(a))
	for _, v := range a {
		seen[v] = struct{}{}
	}
	out := make([]string, 0, len(b))
	for _, v := range b {
		if _, ok := seen[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

func checkStorableKind(kind entity.RemarkKind) error {
	if !kind.IsStorable() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidKind, kind)
	}
	return nil
}

func checkFilterKind(kind entity.RemarkKind) error {
	if !kind.IsFilter() {
		return fmt.Errorf("%w: %s", entity.ErrInvalidKind, kind)
	}
	return nil
}

func checkSubject(subject entity.Ref) error {
	if !subject.Valid() {
		return fmt.Errorf("%w: %q", entity.ErrInvalidSubject, subject.String())
	}
	return nil
}
