package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

var (
	ErrBootstrapDisabled     = errors.New("bootstrap disabled")
	ErrBootstrapAlready      = errors.New("system already bootstrapped")
	ErrBootstrapUnauthorized = errors.New("unauthorized bootstrap attempt")
)

// BootstrapService creates the first admin account on an empty database.
type BootstrapService struct {
	Store  store.Store
	Hasher PasswordHasher

	// Token is the pre-shared bootstrap token. Empty disables bootstrap.
	Token string
}

// Enabled reports whether a bootstrap token is configured.
func (s *BootstrapService) Enabled() bool {
	return s.Token != ""
}

func (s *BootstrapService) IsBootstrapped(ctx context.Context) (bool, error) {
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return false, err
	}
	return !empty, nil
}

// Bootstrap validates the token and registration, then creates an admin.
func (s *BootstrapService) Bootstrap(ctx context.Context, token string, r domain.Registration) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if !s.Enabled() {
		return domain.User{}, ErrBootstrapDisabled
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(s.Token)) != 1 {
		l.Warn("unauthorized bootstrap attempt")
		return domain.User{}, ErrBootstrapUnauthorized
	}

	r, err := domain.NormalizeRegistration(r)
	if err != nil {
		return domain.User{}, err
	}

	hash, err := s.Hasher.Hash(r.Password)
	if err != nil {
		l.Error("failed to hash admin password", slog.Any("error", err))
		return domain.User{}, domain.Internal(MsgInternal, err)
	}

	now := time.Now().UTC()
	admin := domain.User{
		ID:           idx.NewAt(now).String(),
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// The emptiness check and insert share a transaction so two concurrent
	// bootstraps cannot both succeed on sqlite's single writer.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		empty, err := tx.Users().IsEmpty(ctx)
		if err != nil {
			return fromStore(err, MsgUserNotFound)
		}
		if !empty {
			return ErrBootstrapAlready
		}
		if err := tx.Users().CreateUser(ctx, admin); err != nil {
			return fromStore(err, MsgUserNotFound)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBootstrapAlready) {
			l.Warn("attempted bootstrap on already-bootstrapped system")
		}
		return domain.User{}, err
	}

	l.Info("successfully bootstrapped system", slog.String("admin_user_id", admin.ID))
	return admin, nil
}
