// Package storetest is a behavioural suite every store driver must pass.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/query"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Run exercises a driver. newStore must return an empty, migrated store that
// is closed when the test ends.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("UserRoundTrip", func(t *testing.T) { testUserRoundTrip(t, newStore(t)) })
	t.Run("UniqueEmail", func(t *testing.T) { testUniqueEmail(t, newStore(t)) })
	t.Run("UpdateProfile", func(t *testing.T) { testUpdateProfile(t, newStore(t)) })
	t.Run("PostRoundTrip", func(t *testing.T) { testPostRoundTrip(t, newStore(t)) })
	t.Run("PartialUpdate", func(t *testing.T) { testPartialUpdate(t, newStore(t)) })
	t.Run("IncrementViews", func(t *testing.T) { testIncrementViews(t, newStore(t)) })
	t.Run("ListFilters", func(t *testing.T) { testListFilters(t, newStore(t)) })
	t.Run("ListFoldsNonASCII", func(t *testing.T) { testListFoldsNonASCII(t, newStore(t)) })
	t.Run("ListPagination", func(t *testing.T) { testListPagination(t, newStore(t)) })
	t.Run("Stats", func(t *testing.T) { testStats(t, newStore(t)) })
	t.Run("DeleteCascades", func(t *testing.T) { testDeleteCascades(t, newStore(t)) })
	t.Run("TxRollback", func(t *testing.T) { testTxRollback(t, newStore(t)) })
	t.Run("NotFound", func(t *testing.T) { testNotFound(t, newStore(t)) })
}

var base = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func mkUser(t *testing.T, st store.Store, name, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           idx.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: "$argon2id$fake",
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    base,
		UpdatedAt:    base,
	}
	require.NoError(t, st.Users().CreateUser(context.Background(), u))
	return u
}

func mkPost(t *testing.T, st store.Store, owner domain.User, title string, published bool, at time.Time) domain.Post {
	t.Helper()

	p := domain.Post{
		ID:         idx.NewAt(at).String(),
		Title:      title,
		Content:    "content for " + title,
		AuthorName: owner.Name,
		OwnerID:    owner.ID,
		Published:  published,
		CreatedAt:  at,
		UpdatedAt:  at,
	}
	require.NoError(t, st.Posts().CreatePost(context.Background(), p))
	return p
}

func list(t *testing.T, st store.Store, p query.Params, published *bool) ([]domain.Post, int64) {
	t.Helper()

	q, err := query.Parse(p)
	require.NoError(t, err)
	posts, total, err := st.Posts().ListPosts(context.Background(), q.WithPublished(published))
	require.NoError(t, err)
	return posts, total
}

func testUserRoundTrip(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := mkUser(t, st, "Ana", "ana@x.com")

	got, err := st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Name, got.Name)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, domain.RoleUser, got.Role)
	require.True(t, got.IsActive)
	require.Nil(t, got.LastLoginAt)
	require.True(t, base.Equal(got.CreatedAt))

	byEmail, err := st.Users().GetUserByEmail(ctx, "ana@x.com")
	require.NoError(t, err)
	require.Equal(t, u.ID, byEmail.ID)

	login := base.Add(time.Hour)
	require.NoError(t, st.Users().UpdateLastLogin(ctx, u.ID, login))
	got, err = st.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastLoginAt)
	require.True(t, login.Equal(*got.LastLoginAt))

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.False(t, empty)
}

func testUniqueEmail(t *testing.T, st store.Store) {
	ctx := context.Background()
	first := mkUser(t, st, "Ana", "ana@x.com")

	dup := domain.User{
		ID: idx.New().String(), Name: "Other", Email: "ANA@x.com", PasswordHash: "h",
		Role: domain.RoleUser, IsActive: true, CreatedAt: base, UpdatedAt: base,
	}
	require.ErrorIs(t, st.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	taken, err := st.Users().EmailTaken(ctx, "ana@x.com", "")
	require.NoError(t, err)
	require.True(t, taken)

	taken, err = st.Users().EmailTaken(ctx, "ana@x.com", first.ID)
	require.NoError(t, err)
	require.False(t, taken)
}

func testUpdateProfile(t *testing.T, st store.Store) {
	ctx := context.Background()
	a := mkUser(t, st, "Ana", "ana@x.com")
	mkUser(t, st, "Bea", "bea@x.com")

	require.NoError(t, st.Users().UpdateProfile(ctx, a.ID, "Ana Maria", "ana.maria@x.com", base.Add(time.Minute)))
	got, err := st.Users().GetUserByID(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", got.Name)
	require.Equal(t, "ana.maria@x.com", got.Email)

	err = st.Users().UpdateProfile(ctx, a.ID, "Ana", "bea@x.com", base)
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func testPostRoundTrip(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := mkUser(t, st, "Ana", "ana@x.com")
	p := mkPost(t, st, u, "Hello world", true, base)

	got, err := st.Posts().GetPostByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, p.Title, got.Title)
	require.Equal(t, p.Content, got.Content)
	require.Equal(t, "Ana", got.AuthorName)
	require.Equal(t, u.ID, got.OwnerID)
	require.True(t, got.Published)
	require.Equal(t, int64(0), got.ViewCount)
	require.NotNil(t, got.Owner)
	require.Equal(t, domain.UserSummary{ID: u.ID, Name: "Ana", Email: "ana@x.com"}, *got.Owner)
}

func testPartialUpdate(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := mkUser(t, st, "Ana", "ana@x.com")
	p := mkPost(t, st, u, "Original", false, base)

	published := true
	later := base.Add(time.Hour)
	require.NoError(t, st.Posts().UpdatePost(ctx, p.ID, domain.PostPatch{Published: &published}, later))

	got, err := st.Posts().GetPostByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Original", got.Title)
	require.Equal(t, p.Content, got.Content)
	require.True(t, got.Published)
	require.True(t, later.Equal(got.UpdatedAt))
	require.True(t, base.Equal(got.CreatedAt))
}

func testIncrementViews(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := mkUser(t, st, "Ana", "ana@x.com")
	p := mkPost(t, st, u, "Viewed", true, base)

	require.NoError(t, st.Posts().IncrementViews(ctx, p.ID))
	require.NoError(t, st.Posts().IncrementViews(ctx, p.ID))

	got, err := st.Posts().GetPostByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), got.ViewCount)
}

func testListFilters(t *testing.T, st store.Store) {
	ana := mkUser(t, st, "Ana", "ana@x.com")
	bob := mkUser(t, st, "Bob", "bob@x.com")

	mkPost(t, st, ana, "Go generics", true, base)
	mkPost(t, st, ana, "Draft about Go", false, base.Add(time.Minute))
	mkPost(t, st, bob, "Rust ownership", true, base.Add(2*time.Minute))
	mkPost(t, st, bob, "100% coverage", true, base.Add(3*time.Minute))

	yes := true

	posts, total := list(t, st, query.Params{}, &yes)
	require.Equal(t, int64(3), total)
	for _, p := range posts {
		require.True(t, p.Published)
	}

	posts, total = list(t, st, query.Params{}, nil)
	require.Equal(t, int64(4), total)
	require.Equal(t, "100% coverage", posts[0].Title, "newest first by default")

	posts, total = list(t, st, query.Params{Author: "an"}, nil)
	require.Equal(t, int64(2), total)
	for _, p := range posts {
		require.Equal(t, "Ana", p.AuthorName)
	}

	_, total = list(t, st, query.Params{Search: "GO"}, nil)
	require.Equal(t, int64(2), total)

	_, total = list(t, st, query.Params{Search: "content for rust"}, nil)
	require.Equal(t, int64(1), total, "search matches content too")

	posts, total = list(t, st, query.Params{Search: "%"}, nil)
	require.Equal(t, int64(1), total, "wildcards are literal")
	require.Equal(t, "100% coverage", posts[0].Title)

	posts, _ = list(t, st, query.Params{SortBy: "title", Order: "asc"}, &yes)
	require.Equal(t, []string{"100% coverage", "Go generics", "Rust ownership"},
		[]string{posts[0].Title, posts[1].Title, posts[2].Title})
}

func testListFoldsNonASCII(t *testing.T, st store.Store) {
	ctx := context.Background()
	joao := mkUser(t, st, "João Élan", "joao@x.com")
	bob := mkUser(t, st, "Bob", "bob@x.com")

	p := mkPost(t, st, joao, "Éclairs à Paris", true, base)
	mkPost(t, st, bob, "Plain title", true, base.Add(time.Minute))

	for _, author := range []string{"élan", "ÉLAN", "Élan", "joão", "JOÃO"} {
		posts, total := list(t, st, query.Params{Author: author}, nil)
		require.Equal(t, int64(1), total, author)
		require.Equal(t, p.ID, posts[0].ID, author)
	}

	for _, search := range []string{"éclairs", "ÉCLAIRS", "À PARIS"} {
		posts, total := list(t, st, query.Params{Search: search}, nil)
		require.Equal(t, int64(1), total, search)
		require.Equal(t, p.ID, posts[0].ID, search)
	}

	title := "Crème Brûlée"
	content := "Notes on CRÈME and ÇA"
	require.NoError(t, st.Posts().UpdatePost(ctx, p.ID, domain.PostPatch{Title: &title, Content: &content}, base.Add(time.Hour)))

	_, total := list(t, st, query.Params{Search: "éclairs"}, nil)
	require.Equal(t, int64(0), total, "folded title follows updates")

	_, total = list(t, st, query.Params{Search: "brûlée"}, nil)
	require.Equal(t, int64(1), total)

	_, total = list(t, st, query.Params{Search: "ça"}, nil)
	require.Equal(t, int64(1), total, "folded content follows updates")
}

func testListPagination(t *testing.T, st store.Store) {
	u := mkUser(t, st, "Ana", "ana@x.com")
	for i := range 7 {
		mkPost(t, st, u, fmt.Sprintf("Post %02d", i), true, base.Add(time.Duration(i)*time.Minute))
	}

	posts, total := list(t, st, query.Params{Page: "2", Limit: "3", SortBy: "createdAt", Order: "asc"}, nil)
	require.Equal(t, int64(7), total)
	require.Len(t, posts, 3)
	require.Equal(t, "Post 03", posts[0].Title)

	posts, _ = list(t, st, query.Params{Page: "3", Limit: "3", SortBy: "createdAt", Order: "asc"}, nil)
	require.Len(t, posts, 1)

	posts, total = list(t, st, query.Params{Page: "9", Limit: "3"}, nil)
	require.Empty(t, posts)
	require.Equal(t, int64(7), total)
}

func testStats(t *testing.T, st store.Store) {
	ctx := context.Background()

	s, err := st.Posts().Stats(ctx, domain.TopAuthorsLimit)
	require.NoError(t, err)
	require.Zero(t, s.TotalPosts)
	require.Zero(t, s.TotalViews)
	require.Empty(t, s.TopAuthors)

	ana := mkUser(t, st, "Ana", "ana@x.com")
	bob := mkUser(t, st, "Bob", "bob@x.com")
	p1 := mkPost(t, st, ana, "One", true, base)
	mkPost(t, st, ana, "Two", false, base)
	mkPost(t, st, bob, "Three", true, base)
	require.NoError(t, st.Posts().IncrementViews(ctx, p1.ID))
	require.NoError(t, st.Posts().IncrementViews(ctx, p1.ID))

	s, err = st.Posts().Stats(ctx, domain.TopAuthorsLimit)
	require.NoError(t, err)
	require.Equal(t, int64(3), s.TotalPosts)
	require.Equal(t, int64(2), s.PublishedPosts)
	require.Equal(t, int64(2), s.TotalViews)
	require.Equal(t, []domain.AuthorStats{
		{Author: "Ana", PostCount: 2, TotalViews: 2},
		{Author: "Bob", PostCount: 1, TotalViews: 0},
	}, s.TopAuthors)
}

func testDeleteCascades(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := mkUser(t, st, "Ana", "ana@x.com")
	p := mkPost(t, st, u, "Doomed", true, base)

	require.NoError(t, st.Users().DeleteUser(ctx, u.ID))

	_, err := st.Posts().GetPostByID(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)

	empty, err := st.Users().IsEmpty(ctx)
	require.NoError(t, err)
	require.True(t, empty)
}

func testTxRollback(t *testing.T, st store.Store) {
	ctx := context.Background()
	u := mkUser(t, st, "Ana", "ana@x.com")
	p := mkPost(t, st, u, "Kept", true, base)

	sentinel := fmt.Errorf("abort")
	err := st.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Posts().DeletePost(ctx, p.ID); err != nil {
			return err
		}
		return sentinel
	})
	require.ErrorIs(t, err, sentinel)

	_, err = st.Posts().GetPostByID(ctx, p.ID)
	require.NoError(t, err)
}

func testNotFound(t *testing.T, st store.Store) {
	ctx := context.Background()
	missing := idx.New().String()

	_, err := st.Users().GetUserByID(ctx, missing)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = st.Posts().GetPostByID(ctx, missing)
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Posts().DeletePost(ctx, missing), store.ErrNotFound)
	require.ErrorIs(t, st.Posts().IncrementViews(ctx, missing), store.ErrNotFound)
	require.ErrorIs(t, st.Posts().UpdatePost(ctx, missing, domain.PostPatch{}, base), store.ErrNotFound)
}
