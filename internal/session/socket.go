package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/euromap/internal/viewport"
)

const outboundBuffer = 64

// Handler upgrades requests to websockets and runs one Session per
// connection.
type Handler struct {
	deps     Deps
	clock    viewport.Clock
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHandler returns a websocket handler sharing deps across sessions.
func NewHandler(deps Deps) *Handler {
	deps = deps.withDefaults()
	return &Handler{
		deps:  deps,
		clock: viewport.SystemClock,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: deps.Logger,
	}
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	id := uuid.NewString()
	logger := h.logger.With("session", id)
	logger.Info("session opened", "remote", r.RemoteAddr)

	in := make(chan Inbound, 16)
	out := make(chan Outbound, outboundBuffer)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		writeLoop(conn, out, logger)
	}()

	done := make(chan struct{})
	go readLoop(conn, in, done, logger)

	New(id, h.deps, h.clock, out).Run(r.Context(), in)

	close(done)
	close(out)
	wg.Wait()
	logger.Info("session closed")
}

// readLoop decodes client messages until the connection fails. Malformed
// messages are forwarded with an empty type and rejected by the session.
func readLoop(conn *websocket.Conn, in chan<- Inbound, done <-chan struct{}, logger *slog.Logger) {
	defer close(in)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("websocket read", "error", err)
			}
			return
		}
		var msg Inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			msg = Inbound{}
		}
		select {
		case in <- msg:
		case <-done:
			return
		}
	}
}

// writeLoop sends outbound messages. After a write error it keeps draining
// so the session never blocks, and closes the connection to stop the
// reader.
func writeLoop(conn *websocket.Conn, out <-chan Outbound, logger *slog.Logger) {
	failed := false
	for msg := range out {
		if failed {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			logger.Warn("websocket write", "error", err)
			failed = true
			conn.Close()
		}
	}
}
