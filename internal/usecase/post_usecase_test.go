package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/usecase"
	"github.com/mikiasgoitom/Remarks/internal/usecase/mocks"
)

func newPostUsecase(t *testing.T) (*usecase.PostUsecase, *usecase.RemarkUsecase, *mocks.RemarkRepository) {
	t.Helper()
	ledger, repo := newLedger(t)
	ledger.SetSubjectLister(repo)
	return usecase.NewPostUsecase(mocks.NewPostRepository(), ledger, mocks.NewLogger()), ledger, repo
}

func TestCreatePost(t *testing.T) {
	posts, _, _ := newPostUsecase(t)

	_, err := posts.CreatePost(context.Background(), 10, "   ", "body")
	assert.Error(t, err)

	post, err := posts.CreatePost(context.Background(), 10, "  Hello ", "body")
	require.NoError(t, err)
	assert.Equal(t, "Hello", post.Title)
	assert.NotZero(t, post.ID)
}

func TestListPosts_RemarkedBy(t *testing.T) {
	posts, ledger, _ := newPostUsecase(t)
	ctx := withActor(context.Background(), ann)

	var created []*entity.Post
	for _, title := range []string{"a", "b", "c"} {
		p, err := posts.CreatePost(ctx, 10, title, "")
		require.NoError(t, err)
		created = append(created, p)
	}
	require.NoError(t, ledger.ForSubject(created[0]).Like(ctx, nil))
	require.NoError(t, ledger.ForSubject(created[2]).Like(ctx, nil))
	require.NoError(t, ledger.ForSubject(created[1]).Dislike(ctx, nil))
	require.NoError(t, ledger.ForSubject(created[1]).Like(ctx, &bob))

	filter, err := ledger.ScopeRemarkedBy(ctx, entity.PostRefType, entity.RemarkKindLike, nil)
	require.NoError(t, err)
	list, total, err := posts.ListPosts(ctx, entity.PostFilter{SubjectScope: entity.SubjectScope{RemarkedBy: &filter}})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, created[2].ID, list[0].ID)
	assert.Equal(t, created[0].ID, list[1].ID)

	_, total, err = posts.ListPosts(ctx, entity.PostFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestListPosts_ClampsPaging(t *testing.T) {
	posts, _, _ := newPostUsecase(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := posts.CreatePost(ctx, 10, "p", "")
		require.NoError(t, err)
	}

	list, total, err := posts.ListPosts(ctx, entity.PostFilter{Page: -1, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, list, 3)

	list, _, err = posts.ListPosts(ctx, entity.PostFilter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeletePost_SoftKeepsRemarks(t *testing.T) {
	posts, ledger, repo := newPostUsecase(t)
	ctx := context.Background()
	p, err := posts.CreatePost(ctx, 10, "p", "")
	require.NoError(t, err)
	require.NoError(t, ledger.ForSubject(p).Like(ctx, &ann))

	require.NoError(t, posts.DeletePost(ctx, p.ID, false))
	assert.Len(t, repo.All(), 1)
	_, err = posts.GetPost(ctx, p.ID)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

// The scenario from the ledger's contract: likes, a kind swap, a second actor and a permanent delete.
func TestPostRemarks_EndToEnd(t *testing.T) {
	posts, ledger, repo := newPostUsecase(t)
	ctx := context.Background()
	p1, err := posts.CreatePost(ctx, 10, "P1", "")
	require.NoError(t, err)
	other, err := posts.CreatePost(ctx, 10, "other", "")
	require.NoError(t, err)
	subject := p1.RemarkSubject()

	require.NoError(t, ledger.Add(ctx, subject, entity.RemarkKindLike, &ann))
	liked, err := ledger.Has(ctx, subject, entity.RemarkKindLike, &ann)
	require.NoError(t, err)
	assert.True(t, liked)
	count, _ := ledger.CountBySubject(ctx, subject, entity.RemarkKindAll)
	assert.Equal(t, int64(1), count)

	require.NoError(t, ledger.Add(ctx, subject, entity.RemarkKindDislike, &ann))
	count, _ = ledger.CountBySubject(ctx, subject, entity.RemarkKindAll)
	assert.Equal(t, int64(1), count)
	remark, err := ledger.Get(ctx, subject, &ann)
	require.NoError(t, err)
	assert.Equal(t, entity.RemarkKindDislike, remark.Kind)

	require.NoError(t, ledger.Add(ctx, subject, entity.RemarkKindLike, &bob))
	count, _ = ledger.CountBySubject(ctx, subject, entity.RemarkKindAll)
	assert.Equal(t, int64(2), count)
	require.NoError(t, ledger.Add(ctx, other.RemarkSubject(), entity.RemarkKindLike, &bob))

	require.NoError(t, posts.DeletePost(ctx, p1.ID, true))
	count, _ = ledger.CountBySubject(ctx, subject, entity.RemarkKindAll)
	assert.Zero(t, count)
	assert.Len(t, repo.All(), 1, "remarks on other posts survive")
}
