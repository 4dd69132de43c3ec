// Package router assembles the HTTP surface of the service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/diazdennis/monica-chatbot/internal/chat"
	"github.com/diazdennis/monica-chatbot/internal/heygen"
	httpmiddleware "github.com/diazdennis/monica-chatbot/internal/http/middleware"
	"github.com/diazdennis/monica-chatbot/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *chat.Handler
	HeyGenHandler      *heygen.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured. All API routes
// live under /api, matching the paths the widget is built against.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/chat", func(c chi.Router) {
			if cfg.RateLimitPerSecond > 0 {
				c.Use(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
			}
			c.Post("/", cfg.ChatHandler.Chat)
			c.Get("/greeting", cfg.ChatHandler.Greeting)
			c.Post("/transcript", cfg.ChatHandler.Transcript)
			c.Get("/health", cfg.ChatHandler.Health)
		})

		if cfg.HeyGenHandler != nil {
			api.Route("/heygen", func(h chi.Router) {
				h.Post("/token", cfg.HeyGenHandler.Token)
				h.Post("/session", cfg.HeyGenHandler.CreateSession)
				h.Delete("/session/{sessionID}", cfg.HeyGenHandler.CloseSession)
				h.Get("/avatars", cfg.HeyGenHandler.Avatars)
				h.Get("/voices", cfg.HeyGenHandler.Voices)
			})
		}
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
