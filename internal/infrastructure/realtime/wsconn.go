package realtime

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
	"github.com/lorenzobigazzi0/cassa/internal/shared/goroutine"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// WSConn is a websocket subscriber with a buffered outbound queue drained by
// its write pump.
type WSConn struct {
	id   string
	ws   *websocket.Conn
	send chan []byte
	cfg  config.RealtimeConfig

	mu     sync.RWMutex
	closed bool

	logger logger.Interface
}

var _ Conn = (*WSConn)(nil)

func NewWSConn(ws *websocket.Conn, cfg config.RealtimeConfig, log logger.Interface) *WSConn {
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 256
	}
	if cfg.WriteWait <= 0 {
		cfg.WriteWait = 10 * time.Second
	}
	if cfg.PongWait <= 0 {
		cfg.PongWait = 60 * time.Second
	}
	id := uuid.NewString()
	return &WSConn{
		id:     id,
		ws:     ws,
		send:   make(chan []byte, cfg.SendBuffer),
		cfg:    cfg,
		logger: log.With("conn_id", id),
	}
}

func (c *WSConn) ID() string { return c.id }

func (c *WSConn) Send(payload []byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrConnClosed
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// Close stops the write pump, which then closes the socket. Safe to call
// more than once.
func (c *WSConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
	return nil
}

// Serve runs the pumps and blocks until the peer goes away. The caller
// subscribes the connection first. Inbound frames only drive pong handling
// and are discarded.
func (c *WSConn) Serve(registry *Registry) {
	goroutine.SafeGo(c.logger, "realtime.writePump", c.writePump)
	c.readPump(registry)
}

func (c *WSConn) readPump(registry *Registry) {
	defer func() {
		registry.Unsubscribe(c)
		_ = c.Close()
	}()

	if c.cfg.MaxMessageSize > 0 {
		c.ws.SetReadLimit(c.cfg.MaxMessageSize)
	}
	_ = c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(c.cfg.PongWait))
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.logger.Warnw("websocket read error", "error", err)
			}
			return
		}
	}
}

func (c *WSConn) writePump() {
	ticker := time.NewTicker(c.cfg.PingPeriod())
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if !ok {
				_ = c.ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				c.logger.Warnw("failed to write to websocket", "error", err)
				_ = c.Close()
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(c.cfg.WriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}
