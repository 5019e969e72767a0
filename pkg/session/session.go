package session

import (
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"

	browserterm "github.com/B-Ingwersen/browserterm"
)

// Session pairs one real PTY with the browserterm.Terminal that interprets
// its output. It implements browserterm.KeyboardOutput (replies and
// keystrokes are written back to the PTY) and browserterm.ResizeNotifier
// (the PTY's window size is kept in sync with the Terminal's).
type Session struct {
	ID string

	manager   *Manager
	cmd       *exec.Cmd
	ptmx      *os.File
	term      *browserterm.Terminal
	logger    *slog.Logger
	startedAt time.Time
}

// Terminal returns the session's emulator core.
func (s *Session) Terminal() *browserterm.Terminal { return s.term }

// Send implements browserterm.KeyboardOutput: DA/DSR replies and encoded
// keystrokes are written straight to the PTY's input side.
func (s *Session) Send(data []byte) {
	if _, err := s.ptmx.Write(data); err != nil {
		s.logger.Warn("write to pty failed", "error", err)
	}
}

// Notify implements browserterm.ResizeNotifier: tells the kernel PTY about
// the new window size so the shell's SIGWINCH handling sees it.
func (s *Session) Notify(rows, cols int) {
	if err := pty.Setsize(s.ptmx, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)}); err != nil {
		s.logger.Warn("pty resize failed", "error", err)
	}
}

// Resize resizes both the Terminal and, via Notify, the underlying PTY.
func (s *Session) Resize(rows, cols int) {
	s.term.Resize(rows, cols)
}

// startReadLoop copies PTY output into the Terminal and fans it out to any
// registered direct-output callbacks, until the PTY closes.
func (s *Session) startReadLoop() {
	s.startedAt = time.Now()
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := s.ptmx.Read(buf)
			if n > 0 {
				data := append([]byte(nil), buf[:n]...)
				s.term.Ingest(data)
				s.manager.notifyDirectOutput(s.ID, data)
			}
			if err != nil {
				s.logger.Debug("pty read loop ended", "error", err)
				return
			}
		}
	}()
}

// Close terminates the underlying process and releases the PTY.
func (s *Session) Close() error {
	if s.cmd.Process != nil {
		_ = s.cmd.Process.Kill()
	}
	return s.ptmx.Close()
}
