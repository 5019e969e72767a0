// Package session owns one real OS-level PTY per terminal session, wiring
// its output into a vtcore.Terminal and its input back out to the shell.
// Grounded on amantus-ai-vibetunnel's pkg/session/manager.go: a registry
// keyed by session ID, direct-output callbacks instead of file watching,
// and a single mutex-guarded map of running sessions.
package session

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"sort"
	"sync"

	"github.com/creack/pty"
	"github.com/google/uuid"

	browserterm "github.com/B-Ingwersen/browserterm"
)

// DirectOutputCallback receives raw PTY bytes as they arrive, right after
// they have been fed into the session's Terminal.
type DirectOutputCallback func(sessionID string, data []byte)

// Manager tracks every running session and hands out fresh ones backed by a
// real PTY running the given shell command.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	callbackMu sync.RWMutex
	callbacks  map[string][]DirectOutputCallback

	logger *slog.Logger
}

// NewManager returns an empty session registry. A nil logger falls back to
// slog.Default().
func NewManager(logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		sessions:  make(map[string]*Session),
		callbacks: make(map[string][]DirectOutputCallback),
		logger:    logger,
	}
}

// Config describes the command a new session should run and the initial
// terminal geometry.
type Config struct {
	Command []string
	Rows    int
	Cols    int
	Env     []string
}

// CreateSession spawns a PTY running Config.Command and wires its output
// into a new browserterm.Terminal. The returned Session's ID is a fresh
// UUID.
func (m *Manager) CreateSession(cfg Config) (*Session, error) {
	return m.createSession(uuid.NewString(), cfg)
}

// CreateSessionWithID is CreateSession with a caller-supplied ID, for
// reconnecting to a session a client already knows about.
func (m *Manager) CreateSessionWithID(id string, cfg Config) (*Session, error) {
	return m.createSession(id, cfg)
}

func (m *Manager) createSession(id string, cfg Config) (*Session, error) {
	if len(cfg.Command) == 0 {
		return nil, fmt.Errorf("session: empty command")
	}

	cmd := exec.Command(cfg.Command[0], cfg.Command[1:]...)
	if len(cfg.Env) > 0 {
		cmd.Env = append(os.Environ(), cfg.Env...)
	}

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(cfg.Rows), Cols: uint16(cfg.Cols)})
	if err != nil {
		return nil, fmt.Errorf("session: start pty: %w", err)
	}

	s := &Session{
		ID:      id,
		manager: m,
		cmd:     cmd,
		ptmx:    ptmx,
		logger:  m.logger.With("session", id),
	}
	s.term = browserterm.New(
		browserterm.WithSize(cfg.Rows, cfg.Cols),
		browserterm.WithKeyboardOutput(s),
		browserterm.WithResizeNotifier(s),
		browserterm.WithLogger(s.logger),
	)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	s.startReadLoop()
	return s, nil
}

// GetSession returns the session with the given ID, or an error if none
// exists.
func (m *Manager) GetSession(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session: %q not found", id)
	}
	return s, nil
}

// ListSessions returns every known session, newest first.
func (m *Manager) ListSessions() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].startedAt.After(out[j].startedAt) })
	return out
}

// RemoveSession terminates and forgets a session.
func (m *Manager) RemoveSession(id string) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session: %q not found", id)
	}
	return s.Close()
}

// RegisterDirectOutputCallback subscribes to raw PTY bytes for a session,
// in addition to whatever the session's own Terminal does with them.
func (m *Manager) RegisterDirectOutputCallback(id string, cb DirectOutputCallback) {
	m.callbackMu.Lock()
	defer m.callbackMu.Unlock()
	m.callbacks[id] = append(m.callbacks[id], cb)
}

func (m *Manager) notifyDirectOutput(id string, data []byte) {
	m.callbackMu.RLock()
	cbs := m.callbacks[id]
	m.callbackMu.RUnlock()
	for _, cb := range cbs {
		cb(id, data)
	}
}
