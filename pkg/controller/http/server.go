package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/issuedigest/pkg/domain/interfaces"
)

// config holds internal HTTP server configuration
type config struct {
	addr          string
	webhookSecret string
	webhookUC     interfaces.WebhookUseCase
}

// Option is a functional option for Server configuration
type Option func(*config)

// WithAddr sets the server address
func WithAddr(addr string) Option {
	return func(c *config) {
		c.addr = addr
	}
}

// WithWebhookSecret sets the webhook secret. The webhook endpoint is mounted
// only when a secret is set.
func WithWebhookSecret(secret string) Option {
	return func(c *config) {
		c.webhookSecret = secret
	}
}

// WithWebhookUseCase sets the use case processing verified webhook events
func WithWebhookUseCase(uc interfaces.WebhookUseCase) Option {
	return func(c *config) {
		c.webhookUC = uc
	}
}

// Server represents the HTTP server
type Server struct {
	*http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	publishUC interfaces.PublishUseCase,
	refreshUC interfaces.RefreshUseCase,
	opts ...Option,
) (*Server, error) {
	// Default configuration
	cfg := &config{
		addr: ":3000",
	}

	// Apply options
	for _, opt := range opts {
		opt(cfg)
	}

	router := chi.NewRouter()

	// Global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.HandleFunc("/", NewDocumentHandler(ctx, publishUC, refreshUC).Handle)
	router.Get("/health", NewHealthHandler(publishUC).Handle)

	if cfg.webhookSecret != "" && cfg.webhookUC != nil {
		webhookHandler := NewWebhookHandler(cfg.webhookSecret, cfg.webhookUC)
		router.Post("/hooks/github", webhookHandler.Handle)
	}

	router.NotFound(handleNotFound)
	router.MethodNotAllowed(handleNotFound)

	server := &Server{
		Server: &http.Server{
			Addr:              cfg.addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
	}

	return server, nil
}

func handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("404!"))
}
