package blogsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session performs requests as a logged-in user.
type Session struct {
	client *Client
	token  string
	user   User
}

func newSession(c *Client, data AuthData) *Session {
	return &Session{client: c, token: data.Token, user: data.User}
}

// Token returns the bearer token.
func (s *Session) Token() string { return s.token }

// User returns the account summary from register or login.
func (s *Session) User() User { return s.user }

func (s *Session) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + s.token}
}

// Me returns the session user's profile.
func (s *Session) Me(ctx context.Context) (*Profile, error) {
	var out Response[Profile]
	if err := s.client.call(ctx, http.MethodGet, "/auth/me", nil, s.headers(), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdateProfile changes the session user's name and/or email.
func (s *Session) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*Profile, error) {
	var out Response[Profile]
	if err := s.client.call(ctx, http.MethodPut, "/auth/profile", req, s.headers(), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListPosts lists posts. Admins see drafts too and may filter on published.
func (s *Session) ListPosts(ctx context.Context, opts ListPostsOptions) (*PostPage, error) {
	return s.client.listPosts(ctx, opts, s.headers())
}

// GetPost reads a post, including the session user's own drafts.
func (s *Session) GetPost(ctx context.Context, id string) (*Post, error) {
	return s.client.getPost(ctx, id, s.headers())
}

// CreatePost publishes or drafts a post owned by the session user.
func (s *Session) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	var out Response[Post]
	if err := s.client.call(ctx, http.MethodPost, "/posts", req, s.headers(), &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// UpdatePost applies a partial update to a post the session user owns (or
// any post, for admins).
func (s *Session) UpdatePost(ctx context.Context, id string, req UpdatePostRequest) (*Post, error) {
	var out Response[Post]
	if err := s.client.call(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), req, s.headers(), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// DeletePost deletes a post and returns it as it was before deletion.
func (s *Session) DeletePost(ctx context.Context, id string) (*Post, error) {
	var out Response[Post]
	if err := s.client.call(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), nil, s.headers(), &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
