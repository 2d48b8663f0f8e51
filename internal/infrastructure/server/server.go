package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	connectcors "connectrpc.com/cors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/eslsoft/kelimo/internal/adapter/connectrpc"
	"github.com/eslsoft/kelimo/internal/adapter/mapping"
	"github.com/eslsoft/kelimo/internal/infrastructure/config"
)

// Server represents the application server
type Server struct {
	config     *config.Config
	httpServer *http.Server
	logger     *logrus.Logger
}

// NewServer mounts the Connect services behind CORS and h2c.
func NewServer(cfg *config.Config, logger *logrus.Logger, services connectrpc.Services, validator *connectrpc.Validator) *Server {
	handler := NewHandler(cfg, logger, services, validator)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &Server{
		config:     cfg,
		httpServer: httpServer,
		logger:     logger,
	}
}

// NewHandler builds the full HTTP handler chain without binding a port.
func NewHandler(cfg *config.Config, logger *logrus.Logger, services connectrpc.Services, validator *connectrpc.Validator) http.Handler {
	rpc := connectrpc.NewHandler(services,
		connect.WithInterceptors(
			Logger(logger),
			connectrpc.AuthInterceptor(cfg.Auth.JWTSecret, connectrpc.PublicProcedures...),
			validator.Interceptor(),
		),
	)
	return withCORS(h2c.NewHandler(rpc, &http2.Server{}), cfg.Server.AllowedOrigins)
}

func withCORS(next http.Handler, origins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: connectcors.AllowedMethods(),
		AllowedHeaders: append(connectcors.AllowedHeaders(), "Authorization"),
		ExposedHeaders: append(connectcors.ExposedHeaders(), mapping.HeaderRequiredWords, mapping.HeaderActualWords),
		MaxAge:         7200,
	})
	return c.Handler(next)
}

// StartHTTP starts the HTTP server
func (s *Server) StartHTTP() error {
	s.logger.Infof("HTTP server starting on %s", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to serve HTTP: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Errorf("Failed to shutdown HTTP server: %v", err)
		return err
	}

	s.logger.Info("Server shutdown complete")
	return nil
}
