package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aussiebroadwan/bistro/api/bistro" // Swagger docs
	"github.com/aussiebroadwan/bistro/internal/bistro/guard"
	"github.com/aussiebroadwan/bistro/internal/bistro/service"
	"github.com/aussiebroadwan/bistro/internal/bistro/store"
	"github.com/aussiebroadwan/bistro/pkg/httpx"
	"github.com/aussiebroadwan/bistro/pkg/slogx"
)

// Banner is served at the root path.
const Banner = "BISTRO BOSS SERVER IS RUNNING"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	guard        *guard.Guard
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store          store.Store
	UserService    *service.UserService
	MenuService    *service.MenuService
	ReviewService  *service.ReviewService
	CartService    *service.CartService
	PaymentService *service.PaymentService
	StatsService   *service.StatsService
}

func NewRouter(
	g *guard.Guard,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		guard:        g,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Outermost first: panics are recovered before anything else sees them,
	// and metrics run next to the mux so the matched route pattern is visible.
	r.middlewares = []httpx.Middleware{
		handlers.RecoveryHandler(
			handlers.RecoveryLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError)),
		),
		httpx.CORS(corsOrigins),
		slogx.HTTPMiddleware(r.logger),
		MetricsMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerMenu()
	r.registerReviews()
	r.registerCarts()
	r.registerPayments()
	r.registerStats()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Bistro Boss API
//	@version		1.0.0
//	@description	Restaurant ordering API: menu, reviews, carts, payments and admin statistics.
//	@description
//	@description				Sessions are carried in an HttpOnly cookie named "token" issued by POST /jwt.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/bistro
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	CookieAuth
//	@in							cookie
//	@name						token
//	@description				HS256 session token issued by POST /jwt.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{Guard: r.guard}

	// POST /jwt - strict rate limit by IP (anyone can ask for a token)
	r.Mux.Handle("POST /jwt",
		httpx.Chain(http.HandlerFunc(h.HandleToken),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("POST /logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService, Guard: r.guard}

	// POST /users - public sign-up, strict rate limit by IP
	r.Mux.Handle("POST /users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)

	// Callers may only ask about themselves.
	r.Mux.Handle("GET /users/admin/{email}",
		httpx.Chain(http.HandlerFunc(h.HandleAdminStatus),
			r.guard.RequireAuth,
			guard.RequireSelf(guard.PathEmail("email")),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /users/admin/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGrantAdmin),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /users/admin/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRevokeAdmin),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /users/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMenu() {
	h := &MenuHandler{MenuService: r.MenuService}

	r.Mux.Handle("GET /menu",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /menuCount",
		httpx.Chain(http.HandlerFunc(h.HandleCount), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("GET /menu/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet), httpx.RateLimitByIP(httpx.PublicLimit)))

	r.Mux.Handle("POST /menu",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /menu/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /menu/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerReviews() {
	h := &ReviewsHandler{ReviewService: r.ReviewService}

	r.Mux.Handle("GET /reviews",
		httpx.Chain(http.HandlerFunc(h.HandleList), httpx.RateLimitByIP(httpx.PublicLimit)))
	r.Mux.Handle("POST /reviews",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			r.guard.RequireAuth,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerCarts() {
	h := &CartsHandler{CartService: r.CartService}

	r.Mux.Handle("GET /carts",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			r.guard.RequireAuth,
			guard.RequireSelf(guard.QueryEmail("email")),
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)

	// The body email is checked inside the handler.
	r.Mux.Handle("POST /carts",
		httpx.Chain(http.HandlerFunc(h.HandleAdd),
			r.guard.RequireAuth,
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /carts/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			r.guard.RequireAuth,
			httpx.RateLimitBySubject(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{PaymentService: r.PaymentService}

	r.Mux.Handle("POST /create-payment-intent",
		httpx.Chain(http.HandlerFunc(h.HandleCreateIntent),
			r.guard.RequireAuth,
			httpx.RateLimitBySubject(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /payments",
		httpx.Chain(http.HandlerFunc(h.HandleRecord),
			r.guard.RequireAuth,
			httpx.RateLimitBySubject(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("GET /payments/{email}",
		httpx.Chain(http.HandlerFunc(h.HandleHistory),
			r.guard.RequireAuth,
			guard.RequireSelf(guard.PathEmail("email")),
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerStats() {
	h := &StatsHandler{StatsService: r.StatsService}

	r.Mux.Handle("GET /admin-stats",
		httpx.Chain(http.HandlerFunc(h.HandleAdminStats),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /order-stats",
		httpx.Chain(http.HandlerFunc(h.HandleOrderStats),
			r.guard.RequireAdmin,
			httpx.RateLimitBySubject(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /metrics", MetricsHandler())

	r.Mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(Banner))
	})
}
