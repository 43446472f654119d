package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/seeker-ball/internal/config"
	"github.com/vovakirdan/seeker-ball/internal/core"
	"github.com/vovakirdan/seeker-ball/internal/storage"
)

// shutdownGrace bounds how long Shutdown waits for open sessions.
const shutdownGrace = 10 * time.Second

// SSHServerConfig configures `seeker serve`.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath defaults to ~/.seeker/host_key. wish generates the key
	// on first start.
	HostKeyPath string

	DBPath      string        // progress database shared by every session
	IdleTimeout time.Duration // idle connections are dropped after this

	Game     config.Config
	Slope    *float64 // difficulty slope override, never persisted
	TickRate int
}

// DefaultSSHServerConfig returns the serve defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.seeker/seeker.db",
		IdleTimeout: 30 * time.Minute,
		Game:        config.DefaultConfig(),
		TickRate:    core.DefaultConfig().TickRate,
	}
}

// SSHServer serves Seeker Ball over SSH. The login name picks the progress
// profile. A profile already open in another session is not shared: the
// newcomer plays as an unsaved guest instead.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	store    *storage.Store // nil when the database could not be opened
	profiles *profileRegistry
	logger   *log.Logger
}

// NewSSHServer opens the progress database and prepares the listener.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "seeker-ssh",
	})

	keyPath, err := hostKeyFile(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("progress database unavailable, sessions will not persist", "path", cfg.DBPath, "error", err)
		store = nil
	}

	srv := &SSHServer{
		config:   cfg,
		store:    store,
		profiles: newProfileRegistry(),
		logger:   logger,
	}

	// Listed innermost first: logging wraps the profile claim, which wraps
	// the program.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(keyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.profileMiddleware,
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// hostKeyFile resolves the host key location and creates its directory.
func hostKeyFile(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot locate host key: %w", err)
		}
		path = filepath.Join(home, ".seeker", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("session without a terminal", "user", sess.User())
		wish.Fatalln(sess, "Seeker Ball needs a terminal: connect with ssh -t.")
		return nil, nil
	}

	c := sessionClaim(sess)
	logger := s.logger.With("profile", c.Profile, "session", uuid.NewString()[:8])

	model := NewModel(s.sessionOptions(c, pty.Window.Width, pty.Window.Height, logger))
	// Screenshots would land on the server's disk.
	model.shotDir = ""

	return model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// sessionOptions builds the model options for one SSH session. Only a
// persisting claim gets the shared store.
func (s *SSHServer) sessionOptions(c profileClaim, width, height int, logger *log.Logger) Options {
	opts := Options{
		Config: s.config.Game,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: s.config.TickRate,
			Seed:     time.Now().UnixNano(),
		},
		Profile: c.Profile,
		Slope:   s.config.Slope,
		Logger:  logger,
	}
	if c.Persist {
		opts.Store = s.store
	} else {
		opts.Notice = fmt.Sprintf(busyProfileNotice, c.Wanted, c.Profile)
	}
	return opts
}

func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		start := time.Now()
		logger.Info("session started")
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe serves until SIGINT or SIGTERM, then shuts down.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("listening", "address", s.config.Address)
	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.Shutdown()
	}
}

// Shutdown stops accepting sessions, waits up to shutdownGrace for open
// ones, then closes the database.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Warn("closing progress database", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
