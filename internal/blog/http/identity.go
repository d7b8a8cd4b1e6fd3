package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

type identityKey struct{}

func withIdentity(ctx context.Context, id *domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the requester, or nil for anonymous.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	id, _ := ctx.Value(identityKey{}).(*domain.Identity)
	return id
}

// RequireIdentity turns verified token claims into a live identity. It runs
// after httpx.AuthnMiddleware. Users deleted or deactivated since the token
// was issued are refused.
func RequireIdentity(auth *service.AuthService, dev bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := httpx.UserIDFromContext(ctx)
			if userID == "" {
				httpx.WriteError(w, http.StatusUnauthorized, httpx.MsgTokenRequired)
				return
			}

			id, err := auth.ResolveIdentity(ctx, userID)
			if err != nil {
				writeErr(w, r, err, dev)
				return
			}

			ctx = slogx.With(ctx, "user_id", id.ID)
			next.ServeHTTP(w, r.WithContext(withIdentity(ctx, id)))
		})
	}
}

// OptionalIdentity resolves the requester when httpx.OptionalAuthn found a
// valid token. A token for a missing or inactive user degrades to anonymous.
func OptionalIdentity(auth *service.AuthService, dev bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := httpx.UserIDFromContext(ctx)
			if userID == "" {
				next.ServeHTTP(w, r)
				return
			}

			id, err := auth.ResolveIdentity(ctx, userID)
			switch {
			case err == nil:
				ctx = slogx.With(ctx, "user_id", id.ID)
				next.ServeHTTP(w, r.WithContext(withIdentity(ctx, id)))
			case errors.Is(err, domain.ErrUnauthorized):
				next.ServeHTTP(w, r)
			default:
				writeErr(w, r, err, dev)
			}
		})
	}
}
