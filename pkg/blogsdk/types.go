package blogsdk

import (
	"time"

	"github.com/aussiebroadwan/quill/pkg/jwtx"
)

// ============================================================================
// Envelope
// ============================================================================

// Response is the envelope wrapped around every API response.
type Response[T any] struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       T           `json:"data,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is the envelope of a failed request.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`

	// Error and Stack are only present outside production.
	Error string `json:"error,omitempty"`
	Stack string `json:"stack,omitempty"`
}

// ============================================================================
// Auth
// ============================================================================

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"     example:"Ana"`
	Email    string `json:"email"    example:"ana@example.com"`
	Password string `json:"password" example:"secret1"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    example:"ana@example.com"`
	Password string `json:"password" example:"secret1"`
}

// UpdateProfileRequest is the body of PUT /auth/profile. Omitted fields are
// left unchanged, but at least one must be present.
type UpdateProfileRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// BootstrapRequest is the body of POST /auth/bootstrap. It describes the
// first admin account.
type BootstrapRequest struct {
	Name     string `json:"name"     example:"Administrator"`
	Email    string `json:"email"    example:"admin@example.com"`
	Password string `json:"password" example:"change-me"`
}

// User is the account summary returned by register, login and bootstrap.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"                example:"user"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

// AuthData is the payload of a successful register or login.
type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Profile is the payload of GET /auth/me and PUT /auth/profile.
type Profile struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `json:"isActive"`
	CreatedAt time.Time  `json:"createdAt"`
}

// ============================================================================
// Posts
// ============================================================================

// CreatePostRequest is the body of POST /posts. Any author or owner fields
// sent by the client are ignored.
type CreatePostRequest struct {
	Title     string     `json:"title"               example:"Hello world"`
	Content   string     `json:"content"             example:"The first post on this blog."`
	Published *LooseBool `json:"published,omitempty" swaggertype:"boolean"`
}

// UpdatePostRequest is the body of PUT /posts/{id}. Only present fields are
// changed.
type UpdatePostRequest struct {
	Title     *string    `json:"title,omitempty"`
	Content   *string    `json:"content,omitempty"`
	Published *LooseBool `json:"published,omitempty" swaggertype:"boolean"`
}

// PostOwner is the owning user embedded in a post.
type PostOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Post is a blog post as returned by the API.
type Post struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	UserID    string     `json:"userId"`
	Published bool       `json:"published"`
	Views     int64      `json:"views"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	User      *PostOwner `json:"user,omitempty"`
}

// Pagination describes where a page of posts sits in the full listing.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// ListPostsOptions are the query parameters of GET /posts. Zero values are
// omitted.
type ListPostsOptions struct {
	Page      int
	Limit     int
	Author    string
	Search    string
	Published *bool
	SortBy    string
	Order     string
}

// AuthorStats is one entry of the top authors list.
type AuthorStats struct {
	Author     string `json:"author"`
	PostCount  int64  `json:"postCount"`
	TotalViews int64  `json:"totalViews"`
}

// Stats is the payload of GET /posts/stats.
type Stats struct {
	TotalPosts     int64         `json:"totalPosts"`
	PublishedPosts int64         `json:"publishedPosts"`
	TotalViews     int64         `json:"totalViews"`
	TopAuthors     []AuthorStats `json:"topAuthors"`
}

// ============================================================================
// System
// ============================================================================

// StatusResponse is returned by GET /health.
type StatusResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	// Status is "ok" or "degraded"
	Status string `json:"status"`

	Uptime  string `json:"uptime,omitempty"`
	Version string `json:"version,omitempty"`

	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}

// NotFoundResponse is returned for unknown routes.
type NotFoundResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	AvailableRoutes []string `json:"availableRoutes"`
}

// JWKSResponse contains the public keys that verify access tokens. It is
// empty when tokens are signed with a shared secret.
type JWKSResponse jwtx.JWKS
