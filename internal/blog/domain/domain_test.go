package domain_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestErrorMatchesByKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", domain.Forbidden("Post is not published"))

	require.ErrorIs(t, err, domain.ErrForbidden)
	require.NotErrorIs(t, err, domain.ErrNotFound)
	require.Equal(t, domain.KindForbidden, domain.KindOf(err))
	require.Equal(t, domain.KindInternal, domain.KindOf(errors.New("boom")))

	var de *domain.Error
	require.True(t, errors.As(err, &de))
	require.Equal(t, "Post is not published", de.Message)
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("disk on fire")
	err := domain.Internal("Internal server error", cause)

	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, domain.ErrInternal)
}

func TestIdentity(t *testing.T) {
	var anon *domain.Identity
	require.True(t, anon.IsAnonymous())
	require.False(t, anon.IsAdmin())
	require.False(t, anon.Owns(domain.Post{OwnerID: ""}))

	u := domain.User{ID: "u1", Name: "Ana", Email: "ana@x.com", Role: domain.RoleUser}
	id := u.Identity()
	require.False(t, id.IsAdmin())
	require.True(t, id.Owns(domain.Post{OwnerID: "u1"}))
	require.False(t, id.Owns(domain.Post{OwnerID: "u2"}))
}

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "ana@x.com", domain.NormalizeEmail("  Ana@X.com "))
}

func TestNormalizePostInput(t *testing.T) {
	t.Run("trims and accepts", func(t *testing.T) {
		in, err := domain.NormalizePostInput(domain.PostInput{Title: "  Hello  ", Content: "  Some content here "})
		require.NoError(t, err)
		require.Equal(t, "Hello", in.Title)
		require.Equal(t, "Some content here", in.Content)
	})

	t.Run("collects field messages", func(t *testing.T) {
		_, err := domain.NormalizePostInput(domain.PostInput{Title: "  a ", Content: "short"})
		require.ErrorIs(t, err, domain.ErrValidation)

		var de *domain.Error
		require.True(t, errors.As(err, &de))
		require.Equal(t, []string{
			"Title must be at least 3 characters long",
			"Content must be at least 10 characters long",
		}, de.Fields)
	})

	t.Run("rejects spam in any case", func(t *testing.T) {
		_, err := domain.NormalizePostInput(domain.PostInput{Title: "Buy SPAM now", Content: "0123456789"})
		var de *domain.Error
		require.True(t, errors.As(err, &de))
		require.Equal(t, []string{"Title contains illegal content"}, de.Fields)
	})

	t.Run("upper bounds", func(t *testing.T) {
		_, err := domain.NormalizePostInput(domain.PostInput{
			Title:   strings.Repeat("t", domain.TitleMaxLen+1),
			Content: strings.Repeat("c", domain.ContentMaxLen+1),
		})
		var de *domain.Error
		require.True(t, errors.As(err, &de))
		require.Len(t, de.Fields, 2)
	})

	t.Run("counts characters not bytes", func(t *testing.T) {
		_, err := domain.NormalizePostInput(domain.PostInput{
			Title:   strings.Repeat("é", domain.TitleMaxLen),
			Content: "conteúdo válido",
		})
		require.NoError(t, err)
	})

	t.Run("length messages", func(t *testing.T) {
		_, err := domain.NormalizePostInput(domain.PostInput{
			Title:   "   ",
			Content: strings.Repeat("ü", domain.ContentMaxLen+1),
		})
		var de *domain.Error
		require.True(t, errors.As(err, &de))
		require.Equal(t, []string{
			"Title must be at least 3 characters long",
			"Content must be less than 50000 characters long",
		}, de.Fields)

		_, err = domain.NormalizePostInput(domain.PostInput{
			Title:   "Éç",
			Content: strings.Repeat("é", domain.ContentMinLen),
		})
		require.True(t, errors.As(err, &de))
		require.Equal(t, []string{"Title must be at least 3 characters long"}, de.Fields)
	})
}

func TestNormalizeRegistrationLengths(t *testing.T) {
	_, err := domain.NormalizeRegistration(domain.Registration{Name: "", Email: "ana@x.com", Password: ""})
	var de *domain.Error
	require.True(t, errors.As(err, &de))
	require.Equal(t, []string{
		"Name must be at least 2 characters long",
		"Password must be at least 6 characters long",
	}, de.Fields)

	_, err = domain.NormalizeRegistration(domain.Registration{
		Name: strings.Repeat("ñ", domain.NameMaxLen), Email: "ana@x.com", Password: "ñññññ",
	})
	require.True(t, errors.As(err, &de))
	require.Equal(t, []string{"Password must be at least 6 characters long"}, de.Fields)

	_, err = domain.NormalizeRegistration(domain.Registration{
		Name: strings.Repeat("ñ", domain.NameMaxLen+1), Email: "ana@x.com", Password: "ññññññ",
	})
	require.True(t, errors.As(err, &de))
	require.Equal(t, []string{"Name must be less than 100 characters long"}, de.Fields)
}

func TestNormalizePostPatch(t *testing.T) {
	p, err := domain.NormalizePostPatch(domain.PostPatch{Published: ptr(true)})
	require.NoError(t, err)
	require.Nil(t, p.Title)

	p, err = domain.NormalizePostPatch(domain.PostPatch{Title: ptr("  New title ")})
	require.NoError(t, err)
	require.Equal(t, "New title", *p.Title)

	_, err = domain.NormalizePostPatch(domain.PostPatch{Content: ptr("tiny")})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestPostPatchApply(t *testing.T) {
	post := domain.Post{Title: "Old", Content: "Old content", Published: false}
	got := domain.PostPatch{Published: ptr(true)}.Apply(post)

	require.Equal(t, "Old", got.Title)
	require.Equal(t, "Old content", got.Content)
	require.True(t, got.Published)
	require.True(t, domain.PostPatch{}.Empty())
}

func TestNormalizeRegistration(t *testing.T) {
	r, err := domain.NormalizeRegistration(domain.Registration{Name: " Ana ", Email: " Ana@X.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "Ana", r.Name)
	require.Equal(t, "ana@x.com", r.Email)

	_, err = domain.NormalizeRegistration(domain.Registration{Name: "A", Email: "nope", Password: "123"})
	var de *domain.Error
	require.True(t, errors.As(err, &de))
	require.Equal(t, []string{
		"Name must be at least 2 characters long",
		"Email must be valid",
		"Password must be at least 6 characters long",
	}, de.Fields)
}

func TestNormalizeProfileUpdate(t *testing.T) {
	_, err := domain.NormalizeProfileUpdate(domain.ProfileUpdate{})
	require.ErrorIs(t, err, domain.ErrValidation)

	u, err := domain.NormalizeProfileUpdate(domain.ProfileUpdate{Email: ptr(" NEW@x.com ")})
	require.NoError(t, err)
	require.Equal(t, "new@x.com", *u.Email)
	require.Nil(t, u.Name)

	_, err = domain.NormalizeProfileUpdate(domain.ProfileUpdate{Email: ptr("not-an-email")})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateLogin(t *testing.T) {
	require.NoError(t, domain.ValidateLogin("a@b.com", "x"))
	require.ErrorIs(t, domain.ValidateLogin("", "x"), domain.ErrValidation)
	require.ErrorIs(t, domain.ValidateLogin("a@b.com", ""), domain.ErrValidation)
}
