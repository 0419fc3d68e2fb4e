package auth

import (
	"context"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/usecase"
)

type actorKey struct{}

// WithActor returns a copy of ctx carrying the authenticated actor.
func WithActor(ctx context.Context, actor entity.Ref) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor stored by WithActor.
func ActorFromContext(ctx context.Context) (entity.Ref, bool) {
	actor, ok := ctx.Value(actorKey{}).(entity.Ref)
	if !ok || !actor.Valid() {
		return entity.Ref{}, false
	}
	return actor, true
}

// ContextActorResolver reads the current actor from the request context.
type ContextActorResolver struct{}

var _ usecase.ActorResolver = ContextActorResolver{}

func NewContextActorResolver() ContextActorResolver {
	return ContextActorResolver{}
}

func (ContextActorResolver) CurrentActor(ctx context.Context) (entity.Ref, bool) {
	return ActorFromContext(ctx)
}
