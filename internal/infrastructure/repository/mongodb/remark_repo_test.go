package mongodb

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/database"
	"github.com/mikiasgoitom/Remarks/internal/infrastructure/uuidgen"
)

func TestToBSON(t *testing.T) {
	post := entity.Ref{Type: "posts", ID: "1"}
	user := entity.Ref{Type: "users", ID: "7"}

	assert.Equal(t, bson.M{
		"subject.type": "posts",
		"subject.id":   "1",
		"actor.type":   "users",
		"actor.id":     "7",
	}, toBSON(entity.RemarkFilter{Subject: post, Actor: user, Kind: entity.RemarkKindAll}))

	assert.Equal(t, bson.M{
		"actor.type": "users",
		"actor.id":   "7",
		"kind":       entity.RemarkKindDislike,
	}, toBSON(entity.RemarkFilter{Actor: user, Kind: entity.RemarkKindDislike}))

	assert.Equal(t, bson.M{"subject.type": "posts"}, toBSON(entity.RemarkFilter{Subject: entity.Ref{Type: "posts"}}))
}

func newTestRepository(t *testing.T) *RemarkRepository {
	t.Helper()
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}
	client, err := database.NewMongoDBClient(uri)
	if err != nil {
		t.Skipf("mongodb unavailable: %v", err)
	}
	db := client.Client.Database("remarks_test_" + strings.ReplaceAll(uuid.NewString(), "-", ""))
	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		client.Disconnect()
	})

	repo := NewRemarkRepository(db, uuidgen.NewGenerator())
	require.NoError(t, repo.EnsureIndexes(context.Background()))
	return repo
}

func TestRemarkRepository_CreateConflictAndReplace(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	post := entity.NewRef(entity.PostRefType, 1)
	ann := entity.NewRef(entity.UserRefType, 7)

	like := &entity.Remark{Subject: post, Actor: ann, Kind: entity.RemarkKindLike}
	require.NoError(t, repo.Create(ctx, like))
	assert.NotEmpty(t, like.ID)

	dup := &entity.Remark{Subject: post, Actor: ann, Kind: entity.RemarkKindDislike}
	assert.ErrorIs(t, repo.Create(ctx, dup), entity.ErrRemarkConflict)

	require.NoError(t, repo.Replace(ctx, like.ID, dup))
	assert.NotEqual(t, like.ID, dup.ID)

	stored, err := repo.FindOne(ctx, entity.RemarkFilter{Subject: post, Actor: ann, Kind: entity.RemarkKindAll})
	require.NoError(t, err)
	assert.Equal(t, entity.RemarkKindDislike, stored.Kind)
	assert.Equal(t, dup.ID, stored.ID)

	n, err := repo.Count(ctx, entity.RemarkFilter{Subject: post, Kind: entity.RemarkKindAll})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.FindOne(ctx, entity.RemarkFilter{Subject: post, Actor: ann, Kind: entity.RemarkKindLike})
	assert.ErrorIs(t, err, entity.ErrRemarkNotFound)
}

func TestRemarkRepository_SubjectIDsAndDeleteMany(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	ann := entity.NewRef(entity.UserRefType, 7)
	bob := entity.NewRef(entity.UserRefType, 8)

	for _, r := range []entity.Remark{
		{Subject: entity.NewRef(entity.PostRefType, 1), Actor: ann, Kind: entity.RemarkKindLike},
		{Subject: entity.NewRef(entity.PostRefType, 2), Actor: ann, Kind: entity.RemarkKindDislike},
		{Subject: entity.NewRef(entity.PostRefType, 3), Actor: ann, Kind: entity.RemarkKindLike},
		{Subject: entity.NewRef(entity.UserRefType, 8), Actor: ann, Kind: entity.RemarkKindLike},
		{Subject: entity.NewRef(entity.PostRefType, 2), Actor: bob, Kind: entity.RemarkKindLike},
	} {
		r := r
		require.NoError(t, repo.Create(ctx, &r))
	}

	ids, err := repo.SubjectIDs(ctx, entity.RemarkFilter{Subject: entity.Ref{Type: entity.PostRefType}, Actor: ann, Kind: entity.RemarkKindLike})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "3"}, ids)

	ids, err = repo.SubjectIDs(ctx, entity.RemarkFilter{Subject: entity.Ref{Type: entity.PostRefType}, Actor: bob, Kind: entity.RemarkKindDislike})
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	removed, err := repo.DeleteMany(ctx, entity.RemarkFilter{Actor: ann, Kind: entity.RemarkKindLike})
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	exists, err := repo.Exists(ctx, entity.RemarkFilter{Actor: bob, Kind: entity.RemarkKindAll})
	require.NoError(t, err)
	assert.True(t, exists)
}
