package ssh

import (
	"errors"
	"fmt"
	"net"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bts "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"

	"github.com/pfassina/tocnav/internal/config"
)

// Server wraps a Wish SSH server.
type Server struct {
	server *ssh.Server
	cfg    config.Config
	log    *log.Logger
}

// New creates a new SSH server. Each session opens its own document:
// the file named by the session command, or defaultFile.
func New(cfg config.Config, defaultFile string, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.Default()
	}
	h := &handler{cfg: cfg, defaultFile: defaultFile, log: logger}

	s, err := wish.NewServer(
		wish.WithAddress(cfg.Server.SSHListen),
		wish.WithHostKeyPath(config.ExpandHome(cfg.Server.HostKeyPath)),
		wish.WithMiddleware(
			bts.Middleware(h.handle),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("create ssh server: %w", err)
	}

	return &Server{server: s, cfg: cfg, log: logger}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// ListenAndServe starts the SSH server.
func (s *Server) ListenAndServe() error {
	s.log.Info("ssh listening", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Serve accepts sessions on an existing listener.
func (s *Server) Serve(l net.Listener) error {
	if err := s.server.Serve(l); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Close stops the SSH server.
func (s *Server) Close() error {
	return s.server.Close()
}
