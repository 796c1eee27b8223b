package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/realtime"
	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

var floorTokens = tokenTable{
	"bar-token":   {UserID: 5, Username: "bar", Role: "BAR"},
	"emma-token":  {UserID: 2, Username: "emma", Role: "WAITER"},
	"marco-token": {UserID: 4, Username: "marco", Role: "CASHIER"},
	"odd-token":   {UserID: 9, Username: "odd", Role: "CHEF"},
}

func TestResolveChannel(t *testing.T) {
	tests := []struct {
		name         string
		token        string
		requested    string
		anonymous    bool
		wantChannel  events.Channel
		wantUsername string
	}{
		{"role wins over requested", "bar-token", "admin", false, events.ChannelBar, "bar"},
		{"cashier maps to cassa", "marco-token", "", false, events.ChannelCassa, "marco"},
		{"anonymous explicit channel allowed", "", "waiter", true, events.ChannelWaiter, ""},
		{"anonymous explicit channel refused", "", "waiter", false, events.ChannelPublic, ""},
		{"invalid token treated as anonymous", "garbage", "bar", true, events.ChannelBar, ""},
		{"unknown requested channel", "", "kitchen", true, events.ChannelPublic, ""},
		{"role without channel", "odd-token", "", false, events.ChannelPublic, ""},
		{"nothing at all", "", "", true, events.ChannelPublic, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, user := ResolveChannel(floorTokens, tt.token, tt.requested, tt.anonymous)
			assert.Equal(t, tt.wantChannel, ch)
			assert.Equal(t, tt.wantUsername, user)
		})
	}
}

func newRealtimeServer(t *testing.T, registry *realtime.Registry) string {
	t.Helper()
	h := NewRealtimeHandler(registry, floorTokens, config.RealtimeConfig{}, []string{"*"}, logger.NewNopLogger())

	engine := gin.New()
	engine.GET("/ws", h.Connect)
	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func readFrame(t *testing.T, ws *websocket.Conn) map[string]interface{} {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)
	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func TestRealtimeHandler_HelloThenEvents(t *testing.T) {
	registry := realtime.NewRegistry(logger.NewNopLogger())
	url := newRealtimeServer(t, registry)

	ws, _, err := websocket.DefaultDialer.Dial(url+"?token=emma-token", nil)
	require.NoError(t, err)
	defer ws.Close()

	hello := readFrame(t, ws)
	assert.Equal(t, "hello", hello["type"])
	assert.Equal(t, "waiter", hello["channel"])
	assert.Equal(t, "emma", hello["user"])

	require.Eventually(t, func() bool { return registry.Count(events.ChannelWaiter) == 1 }, 2*time.Second, 10*time.Millisecond)

	registry.Publish(events.ChannelBar, events.NewCallAcked(1))
	registry.Publish(events.ChannelWaiter, events.NewCallAcked(2))

	frame := readFrame(t, ws)
	assert.Equal(t, "call_acked", frame["type"])
	assert.Equal(t, float64(2), frame["call_id"])
}

func TestRealtimeHandler_AnonymousGoesPublic(t *testing.T) {
	registry := realtime.NewRegistry(logger.NewNopLogger())
	url := newRealtimeServer(t, registry)

	ws, _, err := websocket.DefaultDialer.Dial(url+"?channel=admin", nil)
	require.NoError(t, err)
	defer ws.Close()

	hello := readFrame(t, ws)
	assert.Equal(t, "public", hello["channel"])
	assert.Nil(t, hello["user"])

	require.NoError(t, ws.Close())
	require.Eventually(t, func() bool { return registry.Count(events.ChannelPublic) == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestRealtimeHandler_ClosedRegistryDropsSocket(t *testing.T) {
	registry := realtime.NewRegistry(logger.NewNopLogger())
	url := newRealtimeServer(t, registry)
	registry.Close()

	ws, _, err := websocket.DefaultDialer.Dial(url+"?token=emma-token", nil)
	require.NoError(t, err)
	defer ws.Close()

	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = ws.ReadMessage()
	require.Error(t, err)
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		assert.False(t, netErr.Timeout(), "socket should be dropped, not left open")
	}
	assert.Zero(t, registry.Count(events.ChannelWaiter))
}

func TestHealthHandler(t *testing.T) {
	registry := realtime.NewRegistry(logger.NewNopLogger())

	h := NewHealthHandler(func(ctx context.Context) error { return nil }, registry)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	h.Health(c)

	require.Equal(t, http.StatusOK, rec.Code)
	var body healthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "dev", body.Version)
	assert.Equal(t, map[string]int{"bar": 0, "waiter": 0, "cassa": 0, "admin": 0, "public": 0}, body.Subscribers)

	down := NewHealthHandler(func(ctx context.Context) error { return context.DeadlineExceeded }, registry)
	rec = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	down.Health(c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
}

