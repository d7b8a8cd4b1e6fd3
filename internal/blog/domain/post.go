package domain

import "time"

type Post struct {
	ID         string
	Title      string
	Content    string
	AuthorName string // snapshot of the owner's name at creation
	OwnerID    string
	Published  bool
	ViewCount  int64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Owner is filled by reads that join the owning user.
	Owner *UserSummary
}

// PostInput is the client-controlled part of a new post. Ownership is never
// part of it.
type PostInput struct {
	Title     string
	Content   string
	Published bool
}

// PostPatch is a partial update; nil fields are left untouched.
type PostPatch struct {
	Title     *string
	Content   *string
	Published *bool
}

// Empty reports whether the patch changes nothing.
func (p PostPatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.Published == nil
}

// Apply returns a copy of post with the patch applied.
func (p PostPatch) Apply(post Post) Post {
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Published != nil {
		post.Published = *p.Published
	}
	return post
}
