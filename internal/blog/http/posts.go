package http

import (
	"net/http"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/query"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/aussiebroadwan/quill/pkg/httpx"
)

type PostsHandler struct {
	PostService *service.PostService
	Dev         bool
}

// HandleList returns one page of posts.
//
//	@Summary		List posts
//	@Description	Anonymous callers and non-admins only ever see published posts, whatever "published" says. Admins may filter on it freely.
//	@Tags			Posts
//	@Produce		json
//	@Param			page		query		int									false	"Page number (>= 1)"	default(1)
//	@Param			limit		query		int									false	"Page size, capped at 50"	default(10)
//	@Param			author		query		string								false	"Case-insensitive partial match on the author name"
//	@Param			search		query		string								false	"Case-insensitive partial match on title or content"
//	@Param			published	query		bool								false	"Admins only"
//	@Param			sortBy		query		string								false	"id, title, author, published, views, createdAt or updatedAt"	default(createdAt)
//	@Param			order		query		string								false	"asc or desc"	default(desc)
//	@Success		200			{object}	blogsdk.Response[[]blogsdk.Post]	"Posts and pagination"
//	@Failure		400			{object}	blogsdk.ErrorResponse				"Invalid query parameters"
//	@Router			/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	v := r.URL.Query()
	page, err := h.PostService.List(r.Context(), IdentityFromContext(r.Context()), query.Params{
		Page:      v.Get("page"),
		Limit:     v.Get("limit"),
		Author:    v.Get("author"),
		Search:    v.Get("search"),
		Published: v.Get("published"),
		SortBy:    v.Get("sortBy"),
		Order:     v.Get("order"),
	})
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}

	httpx.WritePage(w, toPosts(page.Posts), toPagination(page.Pagination))
}

// HandleGet returns a single post and counts a view when it is published.
//
//	@Summary		Get post
//	@Description	Drafts are only visible to their owner and admins. Reading a published post increments its view count.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string							true	"Post id"
//	@Success		200	{object}	blogsdk.Response[blogsdk.Post]	"Post"
//	@Failure		400	{object}	blogsdk.ErrorResponse			"Invalid id"
//	@Failure		403	{object}	blogsdk.ErrorResponse			"Post is not published"
//	@Failure		404	{object}	blogsdk.ErrorResponse			"Post not found"
//	@Router			/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.PostService.Get(r.Context(), IdentityFromContext(r.Context()), id)
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}
	httpx.WriteData(w, http.StatusOK, "", toPost(p))
}

// HandleCreate stores a new post owned by the caller.
//
//	@Summary		Create post
//	@Description	Author and owner come from the access token. Any author fields in the body are ignored.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		blogsdk.CreatePostRequest		true	"Post"
//	@Success		201		{object}	blogsdk.Response[blogsdk.Post]	"Post created"
//	@Failure		400		{object}	blogsdk.ErrorResponse			"Validation failed"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Router			/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.CreatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := domain.PostInput{Title: req.Title, Content: req.Content}
	if p := req.Published.Ptr(); p != nil {
		in.Published = *p
	}

	p, err := h.PostService.Create(r.Context(), IdentityFromContext(r.Context()), in)
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}
	httpx.WriteData(w, http.StatusCreated, "Post created successfully", toPost(p))
}

// HandleUpdate applies a partial update.
//
//	@Summary		Update post
//	@Description	Owner or admin only. Fields left out of the body are not changed.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string							true	"Post id"
//	@Param			request	body		blogsdk.UpdatePostRequest		true	"Fields to change"
//	@Success		200		{object}	blogsdk.Response[blogsdk.Post]	"Post updated"
//	@Failure		400		{object}	blogsdk.ErrorResponse			"Invalid id or validation failed"
//	@Failure		401		{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403		{object}	blogsdk.ErrorResponse			"Not the owner"
//	@Failure		404		{object}	blogsdk.ErrorResponse			"Post not found"
//	@Router			/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req blogsdk.UpdatePostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	p, err := h.PostService.Update(r.Context(), IdentityFromContext(r.Context()), id, domain.PostPatch{
		Title:     req.Title,
		Content:   req.Content,
		Published: req.Published.Ptr(),
	})
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Post updated successfully", toPost(p))
}

// HandleDelete removes a post and returns its last state.
//
//	@Summary		Delete post
//	@Tags			Posts
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Post id"
//	@Success		200	{object}	blogsdk.Response[blogsdk.Post]	"Deleted post snapshot"
//	@Failure		400	{object}	blogsdk.ErrorResponse			"Invalid id"
//	@Failure		401	{object}	blogsdk.ErrorResponse			"Missing or invalid token"
//	@Failure		403	{object}	blogsdk.ErrorResponse			"Not the owner"
//	@Failure		404	{object}	blogsdk.ErrorResponse			"Post not found"
//	@Router			/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.PostService.Delete(r.Context(), IdentityFromContext(r.Context()), id)
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Post deleted successfully", toPost(p))
}

// HandleStats reports aggregate counts.
//
//	@Summary		Post statistics
//	@Description	Totals across all posts, drafts included, and the five authors with the most posts.
//	@Tags			Posts
//	@Produce		json
//	@Success		200	{object}	blogsdk.Response[blogsdk.Stats]	"Statistics"
//	@Router			/posts/stats [get].
func (h *PostsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.PostService.Stats(r.Context())
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}
	httpx.WriteData(w, http.StatusOK, "", toStats(st))
}
