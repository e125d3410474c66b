package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// wsMessage wraps everything sent to a browser. Type is "snapshot" for the
// first message and "event" afterwards.
type wsMessage struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// handleWebSocket sends the current dashboard state, then streams every hub
// event until the client goes away or the session closes.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	// Subscribe before the snapshot so nothing between the two is lost.
	sub := s.sess.Hub.Subscribe()
	defer s.sess.Hub.Unsubscribe(sub.ID)
	log := s.logger.With(zap.String("client", sub.ID))
	log.Info("websocket client connected", zap.String("remote", c.Request.RemoteAddr))
	defer log.Info("websocket client disconnected")

	// Read pump: detect client disconnect and keep the pong deadline fresh.
	gone := make(chan struct{})
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	write := func(msg wsMessage) bool {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			log.Debug("websocket write failed", zap.Error(err))
			return false
		}
		return true
	}

	if !write(wsMessage{Type: "snapshot", Data: s.sess.Snapshot()}) {
		return
	}

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-gone:
			return
		case ev, ok := <-sub.Events:
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"))
				return
			}
			if !write(wsMessage{Type: "event", Data: ev}) {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
