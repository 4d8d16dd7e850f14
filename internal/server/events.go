package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"kanban/internal/board"
)

const (
	// Time allowed to write a message to the peer.
	wsWriteWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	wsPongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than wsPongWait.
	wsPingPeriod = (wsPongWait * 9) / 10

	wsMaxMessageSize = 4 << 10
	wsEventBuffer    = 64
)

// handleEvents upgrades to a websocket and streams store change events as JSON
// text frames until the peer goes away. Incoming frames are ignored.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an HTTP error.
		s.log().Debug("websocket upgrade failed", "error", err, "remote_addr", r.RemoteAddr)
		return
	}

	events, cancel := s.boards.Subscribe(wsEventBuffer)
	s.log().Debug("event subscriber connected", "remote_addr", r.RemoteAddr)

	done := make(chan struct{})
	go s.readPump(conn, done)
	s.writePump(conn, events, done)

	cancel()
	_ = conn.Close()
	s.log().Debug("event subscriber disconnected", "remote_addr", r.RemoteAddr)
}

// readPump drains the connection so control frames are handled, and closes done
// when the peer disconnects.
func (s *Server) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(wsMaxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log().Debug("websocket read", "error", err)
			}
			return
		}
	}
}

func (s *Server) writePump(conn *websocket.Conn, events <-chan board.Event, done <-chan struct{}) {
	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case event, ok := <-events:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				s.log().Debug("websocket write", "error", err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
