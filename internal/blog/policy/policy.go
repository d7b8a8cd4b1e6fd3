// Package policy holds the authorization rules for users and posts. Every
// function is pure: it takes the requester (nil for anonymous) and the
// resource, and returns nil to allow or a domain error to deny.
package policy

import "github.com/aussiebroadwan/quill/internal/blog/domain"

const (
	MsgAuthRequired  = "Authentication required"
	MsgNotPublished  = "Post is not published"
	MsgNotPostOwner  = "You are not authorized to modify this post"
	MsgProfileDenied = "You can only access your own profile"
)

// CanReadPost allows anyone to read a published post. Drafts are visible to
// their owner and to admins only.
func CanReadPost(requester *domain.Identity, post domain.Post) error {
	if post.Published {
		return nil
	}
	if requester.Owns(post) || requester.IsAdmin() {
		return nil
	}
	return domain.Forbidden(MsgNotPublished)
}

// CanModifyPost gates update and delete.
func CanModifyPost(requester *domain.Identity, post domain.Post) error {
	if requester.IsAnonymous() {
		return domain.Unauthorized(MsgAuthRequired)
	}
	if requester.Owns(post) || requester.IsAdmin() {
		return nil
	}
	return domain.Forbidden(MsgNotPostOwner)
}

// CanCreatePost requires an authenticated requester.
func CanCreatePost(requester *domain.Identity) error {
	if requester.IsAnonymous() {
		return domain.Unauthorized(MsgAuthRequired)
	}
	return nil
}

// AuthorOf derives ownership of a new post from the requester. Client input
// never reaches this decision.
func AuthorOf(requester *domain.Identity) (ownerID, authorName string, err error) {
	if err := CanCreatePost(requester); err != nil {
		return "", "", err
	}
	return requester.ID, requester.Name, nil
}

// ListVisibility returns the published filter to apply to a list query.
// Non-admins always get published=true whatever they asked for; admins get
// exactly what they asked for, where nil means no filter.
func ListVisibility(requester *domain.Identity, requested *bool) *bool {
	if requester.IsAdmin() {
		return requested
	}
	published := true
	return &published
}

// CanReadProfile allows a user to read only their own profile.
func CanReadProfile(requester *domain.Identity, userID string) error {
	if requester.IsAnonymous() {
		return domain.Unauthorized(MsgAuthRequired)
	}
	if requester.ID != userID {
		return domain.Forbidden(MsgProfileDenied)
	}
	return nil
}

// ShouldCountView reports whether a successful read bumps the view counter.
func ShouldCountView(post domain.Post) bool {
	return post.Published
}
