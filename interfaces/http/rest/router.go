package rest

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"infograph-backend/infrastructure/config"
	"infograph-backend/interfaces/http/rest/handlers"
	"infograph-backend/interfaces/http/rest/middleware"
	pkgerrors "infograph-backend/pkg/errors"
	"infograph-backend/pkg/observability"
)

// Handlers groups the resource handlers mounted by the router
type Handlers struct {
	Users        *handlers.UserHandler
	Sessions     *handlers.SessionHandler
	Messages     *handlers.MessageHandler
	Search       *handlers.SearchHandler
	Infographics *handlers.InfographicHandler
	Auth         *handlers.AuthHandler
	Chat         *handlers.ChatHandler
}

// Router creates and configures the HTTP router
type Router struct {
	cfg        *config.Config
	handlers   Handlers
	metrics    *observability.Collector
	errHandler *pkgerrors.ErrorHandler
	logger     *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	h Handlers,
	metrics *observability.Collector,
	errHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:        cfg,
		handlers:   h,
		metrics:    metrics,
		errHandler: errHandler,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.StripSlashes)
	router.Use(middleware.ClientID)
	router.Use(middleware.Logger(rt.logger))
	router.Use(rt.errHandler.Middleware)

	if rt.cfg.EnableTracing {
		router.Use(observability.TracingMiddleware(observability.TracerName))
	}
	if rt.cfg.EnableMetrics {
		router.Use(observability.MetricsMiddleware(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{"X-Request-ID", "X-Trace-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		rt.errHandler.Handle(w, r, pkgerrors.NewNotFoundError("route"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		err := pkgerrors.NewValidationError("method not allowed")
		err.HTTPStatus = http.StatusMethodNotAllowed
		rt.errHandler.Handle(w, r, err)
	})

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics && rt.metrics != nil {
		router.Method(http.MethodGet, "/metrics", rt.metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", rt.handlers.Users.CreateUser)
			r.Get("/", rt.handlers.Users.ListUsers)
			r.Get("/{userID}", rt.handlers.Users.GetUser)
		})

		r.Route("/sessions", func(r chi.Router) {
			h := rt.handlers.Sessions
			r.Post("/", h.CreateSession)
			r.Get("/", h.ListSessions)
			r.Get("/{sessionID}", h.GetSession)
			r.Put("/{sessionID}", h.UpdateSession)
			r.Post("/{sessionID}/run", h.RunSession)
			r.Get("/{sessionID}/sources", h.ListSources)
			r.Post("/{sessionID}/sources", h.AddSource)
			r.Get("/{sessionID}/infographic", h.GetInfographic)
			r.Post("/{sessionID}/infographic", rt.handlers.Infographics.GenerateForSession)
			r.Get("/{sessionID}/export", h.ExportSession)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", rt.handlers.Messages.CreateMessage)
			r.Get("/session/{sessionID}", rt.handlers.Messages.ListForSession)
			r.Get("/{messageID}", rt.handlers.Messages.GetMessage)
		})

		r.Route("/search", func(r chi.Router) {
			r.Get("/", rt.handlers.Search.Search)
			r.Post("/cache/clear", rt.handlers.Search.ClearCache)
		})

		r.Route("/infographics", func(r chi.Router) {
			r.Post("/generate", rt.handlers.Infographics.Generate)
			r.Get("/{infographicID}", rt.handlers.Infographics.GetInfographic)
			r.Get("/{infographicID}/image", rt.handlers.Infographics.GetImage)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Get("/health", rt.handlers.Auth.Health)
			r.Post("/login", rt.handlers.Auth.Login)
			r.Get("/callback", rt.handlers.Auth.Callback)
			r.Get("/me", rt.handlers.Auth.Me)
			r.Post("/logout", rt.handlers.Auth.Logout)
		})

		r.Post("/chat/send", rt.handlers.Chat.Send)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	rt.writeStatus(w, "healthy")
}

// readinessCheck reports ready once the router is built. All stores are
// in-process.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	rt.writeStatus(w, "ready")
}

func (rt *Router) writeStatus(w http.ResponseWriter, status string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(handlers.StatusResponse{Status: status}); err != nil {
		rt.logger.Warn("Failed to write status", zap.Error(err))
	}
}
