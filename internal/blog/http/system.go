package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/jwtx"
)

// availableRoutes is listed in 404 responses.
var availableRoutes = []string{
	"GET /health",
	"POST /auth/register",
	"POST /auth/login",
	"GET /auth/me",
	"PUT /auth/profile",
	"GET /posts",
	"GET /posts/:id",
	"POST /posts",
	"PUT /posts/:id",
	"DELETE /posts/:id",
	"GET /posts/stats",
}

// HealthHandler godoc
//
//	@Summary		Health check
//	@Description	Legacy health endpoint. Reports whether the database answers a ping.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	blogsdk.StatusResponse	"Server is running"
//	@Router			/health [get].
func HealthHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db := "connected"
		if err := st.Ping(r.Context()); err != nil {
			db = "unavailable"
		}
		httpx.WriteJSON(w, http.StatusOK, blogsdk.StatusResponse{
			Success:   true,
			Message:   "Server is running",
			Timestamp: time.Now().UTC(),
			Database:  db,
		})
	}
}

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe endpoint returning basic service health status, uptime, and version information
//	@Description	This endpoint always returns 200 OK if the service is running
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	blogsdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, blogsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		})
	}
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	blogsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	blogsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store, signer jwtx.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &blogsdk.HealthChecks{
			Database: "ok",
			Signer:   "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		if signer == nil {
			checks.Signer = "error: no signer configured"
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		} else if err := signer.Validate(); err != nil {
			checks.Signer = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		httpx.WriteJSON(w, statusCode, blogsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		})
	}
}

// JWKSHandler exposes the JSON Web Key Set for public key discovery.
//
//	@Summary		Get JWKS
//	@Description	Returns the public keys that verify access tokens. Empty when tokens are signed with HS256.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	blogsdk.JWKSResponse	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, blogsdk.JWKSResponse(keys.PublicJWKS()))
	}
}

// NotFoundHandler answers unknown routes with the list of known ones.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusNotFound, blogsdk.NotFoundResponse{
			Success:         false,
			Message:         fmt.Sprintf("route %s %s not found", r.Method, r.URL.RequestURI()),
			AvailableRoutes: availableRoutes,
		})
	}
}
