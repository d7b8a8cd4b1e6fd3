package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/quill/internal/blog/domain"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/idx"
	"github.com/aussiebroadwan/quill/pkg/slogx"
)

const (
	MsgInvalidJSON      = "Invalid JSON in request body"
	MsgBodyTooLarge     = "Request body too large"
	MsgInvalidID        = "Invalid id"
	MsgInternal         = "Internal server error"
	MsgValidation       = "Validation failed"
	MsgPublishedNotBool = "Published must be a boolean"
)

// statusOf maps the error taxonomy onto HTTP. Conflicts are reported as 400
// for compatibility with existing clients.
func statusOf(k domain.Kind) int {
	switch k {
	case domain.KindValidation, domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeErr renders err as an envelope. Internal failures are logged and
// replaced by a safe message; dev mode adds the cause and a stack.
func writeErr(w http.ResponseWriter, r *http.Request, err error, dev bool) {
	var de *domain.Error
	if !errors.As(err, &de) {
		de = &domain.Error{Kind: domain.KindInternal, Message: MsgInternal, Err: err}
	}

	code := statusOf(de.Kind)
	if code < http.StatusInternalServerError {
		httpx.WriteError(w, code, de.Message, de.Fields...)
		return
	}

	slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))

	env := httpx.Envelope{Success: false, Message: MsgInternal}
	if dev {
		env.Error = err.Error()
		env.Stack = string(debug.Stack())
	}
	httpx.WriteJSON(w, code, env)
}

// decodeBody reads a JSON body into dst. An empty body decodes as {} so
// that field validation reports what is missing.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		httpx.WriteError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
	case errors.Is(err, blogsdk.ErrNotBoolean):
		httpx.WriteError(w, http.StatusBadRequest, MsgValidation, MsgPublishedNotBool)
	default:
		httpx.WriteError(w, http.StatusBadRequest, MsgInvalidJSON)
	}
	return false
}

// pathID validates the {id} path segment as a ULID.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := idx.Parse(r.PathValue("id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, MsgInvalidID)
		return "", false
	}
	return id.String(), true
}
