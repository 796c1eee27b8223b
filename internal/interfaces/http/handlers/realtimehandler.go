package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/realtime"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/middleware"
	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// RealtimeHandler upgrades floor clients to websocket subscribers.
type RealtimeHandler struct {
	registry       *realtime.Registry
	verifier       middleware.TokenVerifier
	cfg            config.RealtimeConfig
	allowedOrigins []string
	upgrader       websocket.Upgrader
	logger         logger.Interface
}

func NewRealtimeHandler(
	registry *realtime.Registry,
	verifier middleware.TokenVerifier,
	cfg config.RealtimeConfig,
	allowedOrigins []string,
	logger logger.Interface,
) *RealtimeHandler {
	h := &RealtimeHandler{
		registry:       registry,
		verifier:       verifier,
		cfg:            cfg,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return middleware.OriginAllowed(r.Header.Get("Origin"), h.allowedOrigins)
		},
	}
	return h
}

// ResolveChannel picks the channel for a connecting socket and the username
// to greet. A valid token always wins; an explicit channel is honoured for
// anonymous sockets only when allowAnonymous is set.
func ResolveChannel(verifier middleware.TokenVerifier, token, requested string, allowAnonymous bool) (events.Channel, string) {
	if token != "" {
		if claims, err := verifier.Verify(token); err == nil {
			if ch, ok := events.ChannelForRole(claims.Role); ok {
				return ch, claims.Username
			}
		}
	}

	if allowAnonymous {
		if ch, ok := events.ParseChannel(requested); ok {
			return ch, ""
		}
	}
	return events.ChannelPublic, ""
}

// Connect handles GET /ws?token=&channel=
func (h *RealtimeHandler) Connect(c *gin.Context) {
	channel, username := ResolveChannel(h.verifier, c.Query("token"), c.Query("channel"), h.cfg.AllowAnonymousChannels)

	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.logger.Warnw("websocket upgrade failed", "error", err)
		return
	}

	// Until Serve starts the write pump, closing conn does not close ws.
	conn := realtime.NewWSConn(ws, h.cfg, h.logger)

	hello, err := json.Marshal(events.NewHello(channel, username))
	if err == nil {
		err = conn.Send(hello)
	}
	if err != nil {
		h.logger.Errorw("failed to queue hello", "error", err)
		_ = conn.Close()
		_ = ws.Close()
		return
	}

	if err := h.registry.Subscribe(conn, channel); err != nil {
		if errors.Is(err, realtime.ErrRegistryClosed) {
			h.logger.Infow("refusing socket during shutdown", "channel", channel)
		} else {
			h.logger.Errorw("failed to subscribe socket", "channel", channel, "error", err)
		}
		_ = conn.Close()
		_ = ws.Close()
		return
	}

	h.logger.Infow("socket connected", "conn_id", conn.ID(), "channel", channel, "user", username)
	conn.Serve(h.registry)
}
