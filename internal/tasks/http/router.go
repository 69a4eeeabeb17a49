package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/service"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"

	_ "github.com/aussiebroadwan/taskboard/api/tasks" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	UserService    *service.UserService
	SessionService *service.SessionService
	TaskService    *service.TaskService
}

func NewRouter(
	signer jwtx.Signer,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerSession()
	r.registerTasks()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.Handle("GET /api-docs", http.RedirectHandler("/swagger/index.html", http.StatusMovedPermanently))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Taskboard API
//	@version		0.1.0
//	@description	Role-based task management. Members create and edit their own tasks, managers approve
//	@description	tasks for deletion and admins manage accounts.
//	@description
//	@description				Access tokens are HS256 JWTs issued by /users/login and valid for one hour.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskboard
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:7700
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

// protect wraps h with authentication, the route's role policy and a per-user
// rate limit.
func (r *Router) protect(pattern string, h http.Handler, limit httpx.RateLimitConfig) {
	mws := []httpx.Middleware{AuthnMiddleware(r.SessionService)}
	if sets := policyFor(pattern); len(sets) > 0 {
		mws = append(mws, httpx.RequireRoles(sets...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))

	r.Mux.Handle(pattern, httpx.Chain(h, mws...))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	// GET /users - public, lenient rate limit by IP
	r.Mux.Handle("GET /users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /users/register - strict rate limit by IP (public signup endpoint)
	r.Mux.Handle("POST /users/register",
		httpx.Chain(http.HandlerFunc(h.HandleRegister),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.protect("PATCH /users/disable/{id}", http.HandlerFunc(h.HandleDisable), httpx.ModerateLimit)
	r.protect("PATCH /users/enable/{id}", http.HandlerFunc(h.HandleEnable), httpx.ModerateLimit)
}

func (r *Router) registerSession() {
	h := &SessionHandler{SessionService: r.SessionService}

	// POST /users/login - strict rate limit by IP (prevent credential brute force)
	r.Mux.Handle("POST /users/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.protect("POST /users/logout", http.HandlerFunc(h.HandleLogout), httpx.ModerateLimit)
}

func (r *Router) registerTasks() {
	h := &TasksHandler{TaskService: r.TaskService}

	r.protect("GET /tasks", http.HandlerFunc(h.HandleList), httpx.LenientLimit)
	r.protect("POST /tasks/create", http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit)
	r.protect("PATCH /tasks/update/{id}", http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit)
	r.protect("PATCH /tasks/approveToDelete/{id}", http.HandlerFunc(h.HandleApprove), httpx.ModerateLimit)
	r.protect("DELETE /tasks/delete/{id}", http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", http.HandlerFunc(IndexHandler))

	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
