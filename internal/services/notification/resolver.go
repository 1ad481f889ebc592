package notification

import (
	"context"

	"github.com/raihankalla/myriad-backend/internal/models"
	"github.com/raihankalla/myriad-backend/internal/repositories"
)

// DefaultMaxChainDepth bounds how many comments the resolver loads while
// walking a reply chain: the starting comment plus up to two ancestors.
// Clients only deep-link two comment levels below a post.
const DefaultMaxChainDepth = 3

// Resolver walks a comment's reply chain up toward its originating post and
// flattens it into the ordered reference links a notification carries.
type Resolver struct {
	comments repositories.CommentRepository
	maxDepth int
}

// NewResolver creates a Resolver. A non-positive maxDepth falls back to
// DefaultMaxChainDepth.
func NewResolver(comments repositories.CommentRepository, maxDepth int) *Resolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxChainDepth
	}
	return &Resolver{comments: comments, maxDepth: maxDepth}
}

// CommentChain resolves the ancestor chain of a comment. A post-level comment
// yields [{postId}]; a first-level reply yields [{postId}, {firstCommentId}];
// anything deeper yields [{postId}, {firstCommentId}, {secondCommentId}].
// Chains that would exceed maxDepth are truncated: the deepest loaded ancestor
// supplies the post id without its own type being re-checked. A missing
// comment anywhere in the chain fails with ErrNotFound.
func (r *Resolver) CommentChain(ctx context.Context, commentID string) ([]models.ReferenceLink, error) {
	current, err := r.comments.GetCommentByID(ctx, commentID)
	if err != nil {
		return nil, err
	}

	ancestors := []*models.Comment{current}
	for current.Type != models.RefPost && len(ancestors) < r.maxDepth {
		current, err = r.comments.GetCommentByID(ctx, current.ReferenceID)
		if err != nil {
			return nil, err
		}
		ancestors = append(ancestors, current)
	}

	deepest := ancestors[len(ancestors)-1]
	chain := []models.ReferenceLink{{PostID: deepest.PostID}}

	// Ancestors above the starting comment, closest to the post first. The
	// starting comment itself is never part of its own chain.
	for i := len(ancestors) - 1; i >= 1; i-- {
		switch len(chain) {
		case 1:
			chain = append(chain, models.ReferenceLink{FirstCommentID: ancestors[i].ID})
		case 2:
			chain = append(chain, models.ReferenceLink{SecondCommentID: ancestors[i].ID})
		}
	}

	return chain, nil
}
