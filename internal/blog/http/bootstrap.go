package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

type BootstrapHandler struct {
	BootstrapService *service.BootstrapService
	Dev              bool
}

// ServeHTTP handles the bootstrap endpoint for initial system setup.
//
//	@Summary		Bootstrap the first admin
//	@Description	Creates the first admin account. Only available when a bootstrap token is configured, and only while no users exist.
//	@Tags			Bootstrap
//	@Accept			json
//	@Produce		json
//	@Param			X-Bootstrap-Token	header		string							true	"Bootstrap token for authorization"
//	@Param			request				body		blogsdk.BootstrapRequest		true	"Admin account"
//	@Success		201					{object}	blogsdk.Response[blogsdk.User]	"Admin created"
//	@Failure		400					{object}	blogsdk.ErrorResponse			"Invalid request body or validation failed"
//	@Failure		401					{object}	blogsdk.ErrorResponse			"Missing or invalid bootstrap token, or system already bootstrapped"
//	@Failure		404					{object}	blogsdk.ErrorResponse			"Bootstrap not enabled (no token configured)"
//	@Router			/auth/bootstrap [post].
func (h *BootstrapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	l := slogx.FromContext(r.Context())
	l.Info("Starting to bootstrap")

	// 1. Check if enabled
	if !h.BootstrapService.Enabled() {
		httpx.WriteError(w, http.StatusNotFound, "Bootstrap endpoint is not enabled")
		return
	}

	// 2. Require bootstrap token header
	token := r.Header.Get("X-Bootstrap-Token")
	if token == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Bootstrap token is required in X-Bootstrap-Token header")
		return
	}

	// 3. Parse request body
	var req blogsdk.BootstrapRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// 4. Perform bootstrap
	admin, err := h.BootstrapService.Bootstrap(r.Context(), token, domain.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case err == nil:
	case errors.Is(err, service.ErrBootstrapAlready):
		httpx.WriteError(w, http.StatusUnauthorized, "System has already been bootstrapped")
		return
	case errors.Is(err, service.ErrBootstrapUnauthorized):
		httpx.WriteError(w, http.StatusUnauthorized, "Invalid bootstrap token")
		return
	case errors.Is(err, service.ErrBootstrapDisabled):
		httpx.WriteError(w, http.StatusNotFound, "Bootstrap endpoint is not enabled")
		return
	default:
		writeErr(w, r, err, h.Dev)
		return
	}

	httpx.NoCache(w)
	httpx.WriteData(w, http.StatusCreated, "System bootstrapped successfully", toUser(admin))
}
