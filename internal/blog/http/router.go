package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/quill/internal/blog/service"
	"github.com/aussiebroadwan/quill/internal/blog/store"
	"github.com/aussiebroadwan/quill/pkg/httpx"
	"github.com/aussiebroadwan/quill/pkg/jwtx"
	"github.com/aussiebroadwan/quill/pkg/slogx"

	_ "github.com/aussiebroadwan/quill/api/blog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// DefaultMaxBodyBytes caps JSON request bodies.
const DefaultMaxBodyBytes = 10 << 20

// Limits are the rate limit profiles applied per route group.
type Limits struct {
	Auth   httpx.RateLimitConfig // register, login, bootstrap
	Write  httpx.RateLimitConfig // authenticated writes, per user
	Read   httpx.RateLimitConfig // public reads, per IP
	System httpx.RateLimitConfig // probes
}

// DefaultLimits uses the shared httpx profiles.
func DefaultLimits() Limits {
	return Limits{
		Auth:   httpx.StrictLimit,
		Write:  httpx.ModerateLimit,
		Read:   httpx.PublicLimit,
		System: httpx.LenientLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	signer       jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AuthService      *service.AuthService
	PostService      *service.PostService
	BootstrapService *service.BootstrapService

	Limits       Limits
	CORS         httpx.CORSConfig
	MaxBodyBytes int64

	// Dev adds error details and a stack trace to 500 responses.
	Dev bool
}

func NewRouter(
	keys *jwtx.KeySet,
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		Limits:       DefaultLimits(),
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// ApplyRoutes registers every route and builds the global middleware chain.
// Set the exported fields before calling it.
func (r *Router) ApplyRoutes() {
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORS(r.CORS),
		httpx.MaxBytes(r.MaxBodyBytes),
	}

	r.registerAuth()
	r.registerPosts()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("/", NotFoundHandler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Quill Blog API
//	@version		0.1.0
//	@description	REST backend for a blog. Anyone can read published posts; registered users write their own posts and admins moderate everything.
//	@description
//	@description				Every response is wrapped in an envelope: {success, message, data, errors, pagination}.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/quill
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authenticated verifies the bearer token and loads the live user.
func (r *Router) authenticated(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.verifier),
		RequireIdentity(r.AuthService, r.Dev),
		httpx.RateLimitByUser(limit),
	)
}

// public lets anonymous callers through but still resolves a valid token.
func (r *Router) public(h http.Handler, limit httpx.RateLimitConfig) http.Handler {
	return httpx.Chain(h,
		httpx.RateLimitByIP(limit),
		httpx.OptionalAuthn(r.verifier),
		OptionalIdentity(r.AuthService, r.Dev),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, Dev: r.Dev}

	// Credential endpoints share the strict limit, keyed by IP and email so
	// one address cannot lock everyone out of an account.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(r.Limits.Auth),
		),
	)
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.Limits.Auth, "email"),
		),
	)

	r.Mux.Handle("GET /auth/me", r.authenticated(http.HandlerFunc(h.HandleMe), r.Limits.Write))
	r.Mux.Handle("PUT /auth/profile", r.authenticated(http.HandlerFunc(h.HandleUpdateProfile), r.Limits.Write))
}

func (r *Router) registerPosts() {
	h := &PostsHandler{PostService: r.PostService, Dev: r.Dev}

	r.Mux.Handle("GET /posts", r.public(http.HandlerFunc(h.HandleList), r.Limits.Read))
	r.Mux.Handle("GET /posts/stats", r.public(http.HandlerFunc(h.HandleStats), r.Limits.Read))
	r.Mux.Handle("GET /posts/{id}", r.public(http.HandlerFunc(h.HandleGet), r.Limits.Read))

	r.Mux.Handle("POST /posts", r.authenticated(http.HandlerFunc(h.HandleCreate), r.Limits.Write))
	r.Mux.Handle("PUT /posts/{id}", r.authenticated(http.HandlerFunc(h.HandleUpdate), r.Limits.Write))
	r.Mux.Handle("DELETE /posts/{id}", r.authenticated(http.HandlerFunc(h.HandleDelete), r.Limits.Write))
}

func (r *Router) registerBootstrap() {
	// POST /auth/bootstrap - strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService, Dev: r.Dev}
	r.Mux.Handle("POST /auth/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(r.Limits.Auth),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.store),
			httpx.RateLimitByIP(r.Limits.System),
		),
	)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.Limits.System),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(r.Limits.System),
		),
	)

	// GET /jwks.json - public endpoint with high limit
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(r.Limits.Read),
		),
	)
}
