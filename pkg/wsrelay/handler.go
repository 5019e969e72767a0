// Package wsrelay streams a full snapshot of a browserterm.Terminal's screen
// to connected browser clients over a websocket whenever any row is dirty,
// and carries inbound keyboard bytes back
// to the session, debounced the way amantus-ai-vibetunnel's termsocket
// manager and raw websocket handler do.
package wsrelay

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/B-Ingwersen/browserterm/pkg/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 32 * 1024
	debounceDelay  = 50 * time.Millisecond
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Handler serves one websocket endpoint per terminal session: inbound
// keystrokes are written to the PTY; outbound snapshots are pushed whenever
// the session's Terminal reports a dirty row, debounced to one push per
// debounceDelay.
type Handler struct {
	manager *session.Manager
	logger  *slog.Logger
}

// NewHandler wires a wsrelay.Handler to an existing session.Manager.
func NewHandler(manager *session.Manager, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{manager: manager, logger: logger}
}

// inboundMessage is the JSON envelope browser clients send: either a raw
// keystroke payload or a resize request.
type inboundMessage struct {
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
	Rows int    `json:"rows,omitempty"`
	Cols int    `json:"cols,omitempty"`
}

// ServeHTTP upgrades the connection and relays sess's terminal until either
// side closes.
func (h *Handler) ServeHTTP(sess *session.Session, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	send := make(chan []byte, 256)
	done := make(chan struct{})
	var closeOnce sync.Once
	closeDone := func() { closeOnce.Do(func() { close(done) }) }

	go h.writer(conn, send, done)
	go h.watchDirty(sess, send, done)

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			closeDone()
			return
		}
		h.handleMessage(sess, message)
	}
}

func (h *Handler) handleMessage(sess *session.Session, message []byte) {
	var msg inboundMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		h.logger.Debug("failed to parse inbound message", "error", err)
		return
	}
	switch msg.Type {
	case "input":
		sess.Send([]byte(msg.Data))
	case "resize":
		if msg.Rows > 0 && msg.Cols > 0 {
			sess.Resize(msg.Rows, msg.Cols)
		}
	case "ping":
		// liveness only; pong is carried by the websocket control frame.
	}
}

// watchDirty polls the terminal's dirty rows at the debounce interval and
// pushes a snapshot message whenever anything changed.
func (h *Handler) watchDirty(sess *session.Session, send chan<- []byte, done <-chan struct{}) {
	ticker := time.NewTicker(debounceDelay)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if dirty := sess.Terminal().TakeDirty(); len(dirty) > 0 {
				payload, err := json.Marshal(sess.Terminal().Snapshot())
				if err != nil {
					h.logger.Warn("snapshot marshal failed", "error", err)
					continue
				}
				select {
				case send <- payload:
				default:
					h.logger.Warn("send buffer full, dropping snapshot")
				}
			}
		}
	}
}

func (h *Handler) writer(conn *websocket.Conn, send <-chan []byte, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case msg, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
