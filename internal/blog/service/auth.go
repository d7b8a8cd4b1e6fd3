package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/policy"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

// PasswordHasher is the credential hasher the auth flows depend on.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, encoded string) (bool, error)
}

// AuthService owns the user lifecycle: sign-up, login and profile changes.
type AuthService struct {
	Store  store.Store
	Hasher PasswordHasher
	Tokens *TokenService

	// Now defaults to time.Now.
	Now func() time.Time
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User  domain.User
	Token string
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Register creates a user with role "user". Email comparison happens on the
// normalized address so case and whitespace variants are duplicates.
func (s *AuthService) Register(ctx context.Context, r domain.Registration) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	r, err := domain.NormalizeRegistration(r)
	if err != nil {
		return AuthResult{}, err
	}

	taken, err := s.Store.Users().EmailTaken(ctx, r.Email, "")
	if err != nil {
		return AuthResult{}, fromStore(err, MsgUserNotFound)
	}
	if taken {
		return AuthResult{}, domain.Conflict(MsgEmailExists)
	}

	hash, err := s.Hasher.Hash(r.Password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return AuthResult{}, domain.Internal(MsgInternal, err)
	}

	now := s.now()
	u := domain.User{
		ID:           idx.New().String(),
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		// A concurrent sign-up can still win the unique index.
		return AuthResult{}, fromStore(err, MsgUserNotFound)
	}

	token, err := s.Tokens.Issue(u, now)
	if err != nil {
		return AuthResult{}, err
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return AuthResult{User: u, Token: token}, nil
}

// Login checks credentials. Unknown email, inactive account and wrong
// password all produce the same Unauthorized error.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	if err := domain.ValidateLogin(email, password); err != nil {
		return AuthResult{}, err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, domain.Unauthorized(MsgInvalidCredentials)
		}
		return AuthResult{}, fromStore(err, MsgUserNotFound)
	}

	if !u.IsActive {
		l.Info("login attempt on inactive account", slog.String("user_id", u.ID))
		return AuthResult{}, domain.Unauthorized(MsgInvalidCredentials)
	}

	ok, err := s.Hasher.Verify(password, u.PasswordHash)
	if err != nil {
		l.Error("stored password hash unreadable", slog.String("user_id", u.ID), slog.Any("error", err))
	}
	if !ok {
		return AuthResult{}, domain.Unauthorized(MsgInvalidCredentials)
	}

	now := s.now()
	if err := s.Store.Users().UpdateLastLogin(ctx, u.ID, now); err != nil {
		return AuthResult{}, fromStore(err, MsgUserNotFound)
	}
	u.LastLoginAt = &now

	token, err := s.Tokens.Issue(u, now)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: u, Token: token}, nil
}

// Profile returns the requester's own user record.
func (s *AuthService) Profile(ctx context.Context, requester *domain.Identity) (domain.User, error) {
	if requester.IsAnonymous() {
		return domain.User{}, domain.Unauthorized(policy.MsgAuthRequired)
	}
	return s.profile(ctx, requester, requester.ID)
}

// ProfileOf returns userID's profile if the requester may see it.
func (s *AuthService) ProfileOf(ctx context.Context, requester *domain.Identity, userID string) (domain.User, error) {
	return s.profile(ctx, requester, userID)
}

func (s *AuthService) profile(ctx context.Context, requester *domain.Identity, userID string) (domain.User, error) {
	if err := policy.CanReadProfile(requester, userID); err != nil {
		return domain.User{}, err
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, fromStore(err, MsgUserNotFound)
	}
	return u, nil
}

// UpdateProfile changes the requester's name and/or email. A new email must
// not belong to any other user.
func (s *AuthService) UpdateProfile(
	ctx context.Context,
	requester *domain.Identity,
	upd domain.ProfileUpdate,
) (domain.User, error) {
	if requester.IsAnonymous() {
		return domain.User{}, domain.Unauthorized(policy.MsgAuthRequired)
	}

	upd, err := domain.NormalizeProfileUpdate(upd)
	if err != nil {
		return domain.User{}, err
	}

	var updated domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().GetUserByID(ctx, requester.ID)
		if err != nil {
			return fromStore(err, MsgUserNotFound)
		}

		if upd.Name != nil {
			u.Name = *upd.Name
		}
		if upd.Email != nil && *upd.Email != u.Email {
			taken, err := tx.Users().EmailTaken(ctx, *upd.Email, u.ID)
			if err != nil {
				return fromStore(err, MsgUserNotFound)
			}
			if taken {
				return domain.Conflict(MsgEmailExists)
			}
			u.Email = *upd.Email
		}

		u.UpdatedAt = s.now()
		if err := tx.Users().UpdateProfile(ctx, u.ID, u.Name, u.Email, u.UpdatedAt); err != nil {
			return fromStore(err, MsgUserNotFound)
		}
		updated = u
		return nil
	})
	if err != nil {
		return domain.User{}, err
	}
	return updated, nil
}

// ResolveIdentity maps a verified token subject to a live identity. Deleted
// or deactivated users are rejected even while their token is unexpired.
func (s *AuthService) ResolveIdentity(ctx context.Context, userID string) (*domain.Identity, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domain.Unauthorized(MsgUserInactive)
		}
		return nil, fromStore(err, MsgUserNotFound)
	}
	if !u.IsActive {
		return nil, domain.Unauthorized(MsgUserInactive)
	}
	return u.Identity(), nil
}
