package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/policy"
	"github.com/aussiebroadwan/quill/internal/blog/query"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

// PostService applies the authorization and visibility rules around the
// post repository.
type PostService struct {
	Store store.Store

	// Now defaults to time.Now.
	Now func() time.Time
}

// Page is one page of a post listing.
type Page struct {
	Posts      []domain.Post
	Pagination query.Pagination
}

func (s *PostService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// List validates the raw parameters, forces the visibility filter for
// non-admins and returns the requested page.
func (s *PostService) List(ctx context.Context, requester *domain.Identity, params query.Params) (Page, error) {
	q, err := query.Parse(params)
	if err != nil {
		return Page{}, err
	}
	q = q.WithPublished(policy.ListVisibility(requester, q.Published))

	posts, total, err := s.Store.Posts().ListPosts(ctx, q)
	if err != nil {
		return Page{}, fromStore(err, MsgPostNotFound)
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	return Page{
		Posts:      posts,
		Pagination: query.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// Get returns one post. Reading a published post counts as a view; drafts
// never do, even for their owner.
func (s *PostService) Get(ctx context.Context, requester *domain.Identity, id string) (domain.Post, error) {
	p, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		return domain.Post{}, fromStore(err, MsgPostNotFound)
	}

	if err := policy.CanReadPost(requester, p); err != nil {
		return domain.Post{}, err
	}

	if policy.ShouldCountView(p) {
		if err := s.Store.Posts().IncrementViews(ctx, p.ID); err != nil {
			return domain.Post{}, fromStore(err, MsgPostNotFound)
		}
		p.ViewCount++
	}
	return p, nil
}

// Create stores a new post owned by the requester. Author name and owner are
// taken from the identity, never from the input.
func (s *PostService) Create(ctx context.Context, requester *domain.Identity, in domain.PostInput) (domain.Post, error) {
	ownerID, author, err := policy.AuthorOf(requester)
	if err != nil {
		return domain.Post{}, err
	}

	in, err = domain.NormalizePostInput(in)
	if err != nil {
		return domain.Post{}, err
	}

	now := s.now()
	p := domain.Post{
		ID:         idx.NewAt(now).String(),
		Title:      in.Title,
		Content:    in.Content,
		AuthorName: author,
		OwnerID:    ownerID,
		Published:  in.Published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return domain.Post{}, fromStore(err, MsgUserNotFound)
	}

	created, err := s.Store.Posts().GetPostByID(ctx, p.ID)
	if err != nil {
		return domain.Post{}, fromStore(err, MsgPostNotFound)
	}

	slogx.FromContext(ctx).Info("post created",
		slog.String("post_id", p.ID),
		slog.String("user_id", ownerID),
	)
	return created, nil
}

// Update applies a partial patch for the owner or an admin.
func (s *PostService) Update(
	ctx context.Context,
	requester *domain.Identity,
	id string,
	patch domain.PostPatch,
) (domain.Post, error) {
	if requester.IsAnonymous() {
		return domain.Post{}, domain.Unauthorized(policy.MsgAuthRequired)
	}

	var updated domain.Post
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Posts().GetPostByID(ctx, id)
		if err != nil {
			return fromStore(err, MsgPostNotFound)
		}
		if err := policy.CanModifyPost(requester, p); err != nil {
			return err
		}

		patch, err := domain.NormalizePostPatch(patch)
		if err != nil {
			return err
		}

		if patch.Empty() {
			updated = p
			return nil
		}

		now := s.now().UTC()
		if err := tx.Posts().UpdatePost(ctx, id, patch, now); err != nil {
			return fromStore(err, MsgPostNotFound)
		}
		updated = patch.Apply(p)
		updated.UpdatedAt = now
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}
	return updated, nil
}

// Delete removes a post for the owner or an admin and returns it as it was
// just before deletion.
func (s *PostService) Delete(ctx context.Context, requester *domain.Identity, id string) (domain.Post, error) {
	if requester.IsAnonymous() {
		return domain.Post{}, domain.Unauthorized(policy.MsgAuthRequired)
	}

	var snapshot domain.Post
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Posts().GetPostByID(ctx, id)
		if err != nil {
			return fromStore(err, MsgPostNotFound)
		}
		if err := policy.CanModifyPost(requester, p); err != nil {
			return err
		}
		if err := tx.Posts().DeletePost(ctx, id); err != nil {
			return fromStore(err, MsgPostNotFound)
		}
		snapshot = p
		return nil
	})
	if err != nil {
		return domain.Post{}, err
	}

	slogx.FromContext(ctx).Info("post deleted",
		slog.String("post_id", id),
		slog.String("user_id", requester.ID),
	)
	return snapshot, nil
}

// Stats reports totals across all posts and the most prolific authors.
func (s *PostService) Stats(ctx context.Context) (domain.Stats, error) {
	st, err := s.Store.Posts().Stats(ctx, domain.TopAuthorsLimit)
	if err != nil {
		return domain.Stats{}, fromStore(err, MsgPostNotFound)
	}
	if st.TopAuthors == nil {
		st.TopAuthors = []domain.AuthorStats{}
	}
	return st, nil
}
