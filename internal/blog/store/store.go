package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/query"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Repositories hang off it so a Tx can hand out the same
// repositories bound to the transaction.
type Store interface {
	Users() Users
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// EmailTaken reports whether another user than exceptID owns email.
	// Pass an empty exceptID to check against everyone.
	EmailTaken(ctx context.Context, email, exceptID string) (bool, error)

	// CreateUser inserts a new user. A duplicate email yields ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile sets name and email and bumps updated_at.
	UpdateProfile(ctx context.Context, id, name, email string, at time.Time) error

	UpdateLastLogin(ctx context.Context, id string, at time.Time) error

	// DeleteUser cascades to the user's posts (per schema).
	DeleteUser(ctx context.Context, id string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Posts interface {
	// GetPostByID returns the post with its owner summary filled in.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns one page of posts and the total number matching the
	// query's filters.
	ListPosts(ctx context.Context, q query.ListQuery) ([]domain.Post, int64, error)

	CreatePost(ctx context.Context, p domain.Post) error

	// UpdatePost writes only the fields present in patch, plus updated_at.
	UpdatePost(ctx context.Context, id string, patch domain.PostPatch, at time.Time) error

	DeletePost(ctx context.Context, id string) error

	// IncrementViews adds one to the post's view count.
	IncrementViews(ctx context.Context, id string) error

	// Stats aggregates post counts, views and the top authors by post count.
	Stats(ctx context.Context, topAuthors int) (domain.Stats, error)
}
