package notification

import (
	"context"
	"testing"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainFixture() *fakeCommentRepo {
	return newFakeCommentRepo(
		models.Comment{ID: "c1", Type: models.RefPost, ReferenceID: "p1", PostID: "p1", UserID: "alice"},
		models.Comment{ID: "c2", Type: models.RefComment, ReferenceID: "c1", PostID: "p1", UserID: "bob"},
		models.Comment{ID: "c3", Type: models.RefComment, ReferenceID: "c2", PostID: "p1", UserID: "carol"},
		models.Comment{ID: "c4", Type: models.RefComment, ReferenceID: "c3", PostID: "p1", UserID: "dave"},
	)
}

func TestCommentChainPostLevel(t *testing.T) {
	resolver := NewResolver(chainFixture(), 0)

	chain, err := resolver.CommentChain(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, []models.ReferenceLink{{PostID: "p1"}}, chain)
}

func TestCommentChainFirstLevelReply(t *testing.T) {
	resolver := NewResolver(chainFixture(), 0)

	chain, err := resolver.CommentChain(context.Background(), "c2")
	require.NoError(t, err)

	assert.Equal(t, []models.ReferenceLink{
		{PostID: "p1"},
		{FirstCommentID: "c1"},
	}, chain)
}

func TestCommentChainSecondLevelReply(t *testing.T) {
	resolver := NewResolver(chainFixture(), 0)

	chain, err := resolver.CommentChain(context.Background(), "c3")
	require.NoError(t, err)

	assert.Equal(t, []models.ReferenceLink{
		{PostID: "p1"},
		{FirstCommentID: "c1"},
		{SecondCommentID: "c2"},
	}, chain)
}

func TestCommentChainDepthCap(t *testing.T) {
	comments := chainFixture()
	resolver := NewResolver(comments, 0)

	// c4 is three replies deep; the walk must stop after loading three
	// comments and keep only the two ancestors closest to the post.
	chain, err := resolver.CommentChain(context.Background(), "c4")
	require.NoError(t, err)

	assert.Equal(t, []models.ReferenceLink{
		{PostID: "p1"},
		{FirstCommentID: "c2"},
		{SecondCommentID: "c3"},
	}, chain)
	assert.Equal(t, DefaultMaxChainDepth, comments.lookups)
}

func TestCommentChainCustomDepth(t *testing.T) {
	resolver := NewResolver(chainFixture(), 2)

	chain, err := resolver.CommentChain(context.Background(), "c3")
	require.NoError(t, err)

	assert.Equal(t, []models.ReferenceLink{
		{PostID: "p1"},
		{FirstCommentID: "c2"},
	}, chain)
}

func TestCommentChainMissingComment(t *testing.T) {
	resolver := NewResolver(newFakeCommentRepo(), 0)

	_, err := resolver.CommentChain(context.Background(), "ghost")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestCommentChainMissingAncestor(t *testing.T) {
	comments := newFakeCommentRepo(
		models.Comment{ID: "c2", Type: models.RefComment, ReferenceID: "gone", PostID: "p1"},
	)
	resolver := NewResolver(comments, 0)

	_, err := resolver.CommentChain(context.Background(), "c2")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
