package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/fahim1105/seu-matrimony/internal/config"
	"github.com/fahim1105/seu-matrimony/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer creates the stub backend server listening on cfg.Address.
func NewServer(handler http.Handler, cfg config.StubConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Str("address", cfg.Address).Msg("creating new server...")

	if cfg.Address == "" {
		return nil, fmt.Errorf("%w: %w", errNoServersAreCreated, errEmptyListenAddress)
	}
	if handler == nil {
		return nil, fmt.Errorf("%w: %w", errNoServersAreCreated, errNilHandler)
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg.Address, cfg.RequestTimeout, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.run(context.Background())
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until parent is done or a stop signal arrives.
func (s *server) run(parent context.Context) {
	ctx, stop := signal.NotifyContext(
		parent,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	idleConnectionsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}
