// Package server wires the HTTP surface of the SkyWrite service.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/api"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/config"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/corrector"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/enhance"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/providers"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/server/endpoints"
	"github.com/keertigurusiddanavar76-ops/skywrite/internal/svcctx"
)

// Server is the main SkyWrite HTTP server.
type Server struct {
	httpServer *http.Server
	registry   *providers.Registry
	enhancer   *enhance.Enhancer
	configMgr  *config.Manager
	logger     *slog.Logger

	// services holds all core services for context enrichment
	services *svcctx.Services

	// endpoints registry for HTTP routes
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8080)
	Port string
	// ConfigManager provides configuration with hot-reload support
	ConfigManager *config.Manager
	// Logger is the structured logger to use
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ConfigManager == nil {
		return nil, errors.New("config manager is required")
	}

	appCfg := cfg.ConfigManager.Get()
	if cfg.Host == "" {
		cfg.Host = appCfg.Server.Host
	}
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = appCfg.Server.Port
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	// Create provider registry from config and keep it in sync on reloads
	registry := providers.NewRegistry()
	registry.SetLogger(cfg.Logger)
	registry.Reload(appCfg.ToProviderRegistryConfig())
	cfg.ConfigManager.OnChange(func(c *config.Config) {
		registry.Reload(c.ToProviderRegistryConfig())
		cfg.Logger.Info("provider registry reloaded from config")
	})

	enhancer := enhance.New(enhance.Config{
		Registry:  registry,
		Provider:  appCfg.Defaults.Provider,
		Corrector: corrector.NewDefault(cfg.Logger),
		Logger:    cfg.Logger,
	})

	s := &Server{
		registry:  registry,
		enhancer:  enhancer,
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	s.services = &svcctx.Services{
		Enhancer:  enhancer,
		Registry:  registry,
		ConfigMgr: cfg.ConfigManager,
		Logger:    cfg.Logger,
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All() {
		s.endpointRegistry.Register(ep)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:      s.withServices(withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // LLM calls can run long
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// Start starts the server.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr,
			"api_configured", s.configMgr.Get().APIConfigured())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Addr returns the server's listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Registry returns the provider registry.
func (s *Server) Registry() *providers.Registry {
	return s.registry
}

// Enhancer returns the enhancement orchestrator.
func (s *Server) Enhancer() *enhance.Enhancer {
	return s.enhancer
}

// withServices wraps a handler to enrich the request context with services.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if s.services != nil {
			ctx = svcctx.WithServices(ctx, s.services)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withCORS allows the web UI to call the API from any origin and answers
// preflight requests.
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireInit is middleware that ensures the server is fully initialized.
// Returns 503 Service Unavailable if the enhancement pipeline isn't ready.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.enhancer == nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"error":"server not fully initialized"}`))
			return
		}
		next(w, r)
	}
}
