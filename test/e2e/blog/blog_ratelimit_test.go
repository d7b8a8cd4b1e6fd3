package blog_test

import (
	"net/http"
	"testing"

	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

// TestRateLimitLogin verifies that /auth/login is rate limited.
// This endpoint has strict limits (5 req/min) to prevent brute force attacks.
func TestRateLimitLogin(t *testing.T) {
	client := blogsdk.NewClient(setupBlogContainerWithDefaultRateLimits(t))

	var lastErr error
	for i := range 6 {
		_, err := client.Login(t.Context(), "nobody@example.com", "wrongpass")
		if i < 5 {
			assertStatus(t, err, http.StatusUnauthorized, "bad credentials before the limit")
			continue
		}
		lastErr = err
	}

	assertStatus(t, lastErr, http.StatusTooManyRequests, "sixth login attempt")
}

// TestRateLimitReadsAreGenerous verifies public reads are not throttled at
// the strict profile.
func TestRateLimitReadsAreGenerous(t *testing.T) {
	client := blogsdk.NewClient(setupBlogContainerWithDefaultRateLimits(t))

	for range 20 {
		_, err := client.ListPosts(t.Context(), blogsdk.ListPostsOptions{})
		require.NoError(t, err)
	}
}
