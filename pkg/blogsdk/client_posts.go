package blogsdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// PostPage is one page of a listing.
type PostPage struct {
	Posts      []Post
	Pagination Pagination
}

// Encode renders the options as a query string, including the leading "?"
// when anything is set.
func (o ListPostsOptions) Encode() string {
	v := url.Values{}
	if o.Page > 0 {
		v.Set("page", strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Author != "" {
		v.Set("author", o.Author)
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	if o.Published != nil {
		v.Set("published", strconv.FormatBool(*o.Published))
	}
	if o.SortBy != "" {
		v.Set("sortBy", o.SortBy)
	}
	if o.Order != "" {
		v.Set("order", o.Order)
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) listPosts(ctx context.Context, opts ListPostsOptions, headers map[string]string) (*PostPage, error) {
	var out Response[[]Post]
	if err := c.call(ctx, http.MethodGet, "/posts"+opts.Encode(), nil, headers, &out, http.StatusOK); err != nil {
		return nil, err
	}

	page := &PostPage{Posts: out.Data}
	if out.Pagination != nil {
		page.Pagination = *out.Pagination
	}
	return page, nil
}

func (c *Client) getPost(ctx context.Context, id string, headers map[string]string) (*Post, error) {
	var out Response[Post]
	if err := c.call(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), nil, headers, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}

// ListPosts lists published posts anonymously.
func (c *Client) ListPosts(ctx context.Context, opts ListPostsOptions) (*PostPage, error) {
	return c.listPosts(ctx, opts, nil)
}

// GetPost reads a published post anonymously. Each call counts as a view.
func (c *Client) GetPost(ctx context.Context, id string) (*Post, error) {
	return c.getPost(ctx, id, nil)
}

// GetStats returns aggregate post statistics.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var out Response[Stats]
	if err := c.call(ctx, http.MethodGet, "/posts/stats", nil, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Data, nil
}
