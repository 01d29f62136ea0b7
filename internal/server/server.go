package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/renato0307/billclock/internal/adapters/bus"
	"github.com/renato0307/billclock/internal/logging"
)

const shutdownTimeout = 30 * time.Second

// Config holds the SSH server settings
type Config struct {
	AuthorizedKeysPath string
	Channel            string
	Host               string
	HostKeyPath        string
	Port               string
}

// Server serves the timer view over SSH. Every session is a separate
// timer context; sessions converge through a shared in-process hub.
type Server struct {
	config     Config
	hub        *bus.Hub
	newEngine  EngineFactory
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config, hub *bus.Hub, newEngine EngineFactory) (*Server, error) {
	if newEngine == nil {
		return nil, errors.New("engine factory is required")
	}

	s := &Server{
		config:    cfg,
		hub:       hub,
		newEngine: newEngine,
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.Address()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			fingerprint := getKeyFingerprint(key)
			authorized := isKeyAuthorized(key, cfg.AuthorizedKeysPath)
			if authorized {
				logging.Logger.Info("SSH key authenticated",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			} else {
				logging.Logger.Warn("Unauthorized SSH key",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
			}
			return authorized
		}),
		wish.WithMiddleware(
			bubbletea.MiddlewareWithProgramHandler(s.programHandler, termenv.ANSI256),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the listen address
func (s *Server) Address() string {
	return net.JoinHostPort(s.config.Host, s.config.Port)
}

// Start runs the SSH server until ctx is done or a termination signal
// arrives, then shuts it down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.Address())
	fmt.Printf("SSH server listening on %s\n", s.Address())

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("SSH server error: %w", err)
	case <-ctx.Done():
	}
	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
