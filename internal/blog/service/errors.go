package service

import (
	"errors"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store"
)

const (
	MsgInternal           = "Internal server error"
	MsgInvalidCredentials = "Invalid email or password"
	MsgEmailExists        = "Email already exists"
	MsgPostNotFound       = "Post not found"
	MsgUserNotFound       = "User not found"
	MsgUserInactive       = "User not found or inactive"
)

// fromStore translates store sentinels into the domain taxonomy. Anything
// unrecognised is an infrastructure failure.
func fromStore(err error, notFound string) error {
	var de *domain.Error
	switch {
	case errors.As(err, &de):
		return err
	case errors.Is(err, store.ErrNotFound):
		return domain.NotFound(notFound)
	case errors.Is(err, store.ErrAlreadyExists):
		return domain.Conflict(MsgEmailExists)
	default:
		return domain.Internal(MsgInternal, err)
	}
}
