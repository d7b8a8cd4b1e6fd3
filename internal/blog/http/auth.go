package http

import (
	"net/http"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/aussiebroadwan/quill/pkg/httpx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Dev         bool
}

// HandleRegister creates an account.
//
//	@Summary		Register
//	@Description	Creates a user with role "user" and returns an access token. Emails are compared case-insensitively after trimming.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.RegisterRequest						true	"New account"
//	@Success		201		{object}	blogsdk.Response[blogsdk.AuthData]			"User created"
//	@Failure		400		{object}	blogsdk.ErrorResponse						"Validation failed or email already exists"
//	@Failure		429		{object}	blogsdk.ErrorResponse						"Too many requests"
//	@Router			/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.RegisterRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AuthService.Register(r.Context(), domain.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}

	user := toUser(res.User)
	user.LastLogin = nil
	httpx.WriteData(w, http.StatusCreated, "User created successfully", blogsdk.AuthData{
		User:  user,
		Token: res.Token,
	})
}

// HandleLogin exchanges credentials for a token.
//
//	@Summary		Login
//	@Description	Verifies email and password. Unknown email, inactive account and wrong password all return the same 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.LoginRequest				true	"Credentials"
//	@Success		200		{object}	blogsdk.Response[blogsdk.AuthData]	"Logged in"
//	@Failure		400		{object}	blogsdk.ErrorResponse				"Email or password missing"
//	@Failure		401		{object}	blogsdk.ErrorResponse				"Invalid email or password"
//	@Failure		429		{object}	blogsdk.ErrorResponse				"Too many requests"
//	@Router			/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}

	httpx.NoCache(w)
	httpx.WriteData(w, http.StatusOK, "User logged in successfully", blogsdk.AuthData{
		User:  toUser(res.User),
		Token: res.Token,
	})
}

// HandleMe returns the caller's profile.
//
//	@Summary		Current user
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	blogsdk.Response[blogsdk.Profile]	"Profile"
//	@Failure		401	{object}	blogsdk.ErrorResponse				"Missing or invalid token"
//	@Router			/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.AuthService.Profile(r.Context(), IdentityFromContext(r.Context()))
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}
	httpx.WriteData(w, http.StatusOK, "", toProfile(u))
}

// HandleUpdateProfile changes the caller's name and/or email.
//
//	@Summary		Update profile
//	@Description	At least one of name and email must be present. A new email must not belong to another user.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		blogsdk.UpdateProfileRequest		true	"Fields to change"
//	@Success		200		{object}	blogsdk.Response[blogsdk.Profile]	"Profile updated"
//	@Failure		400		{object}	blogsdk.ErrorResponse				"No fields, validation failed or email already exists"
//	@Failure		401		{object}	blogsdk.ErrorResponse				"Missing or invalid token"
//	@Router			/auth/profile [put].
func (h *AuthHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.UpdateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	u, err := h.AuthService.UpdateProfile(r.Context(), IdentityFromContext(r.Context()), domain.ProfileUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeErr(w, r, err, h.Dev)
		return
	}
	httpx.WriteData(w, http.StatusOK, "Profile updated successfully", toProfile(u))
}
