package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/config"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

func startWSServer(t *testing.T, r *Registry, channel events.Channel, cfg config.RealtimeConfig) *websocket.Conn {
	t.Helper()
	upgrader := websocket.Upgrader{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ws, err := upgrader.Upgrade(w, req, nil)
		if err != nil {
			return
		}
		conn := NewWSConn(ws, cfg, logger.NewNopLogger())
		if err := r.Subscribe(conn, channel); err != nil {
			_ = ws.Close()
			return
		}
		conn.Serve(r)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func waitForCount(t *testing.T, r *Registry, ch events.Channel, want int) {
	t.Helper()
	require.Eventually(t, func() bool { return r.Count(ch) == want }, 2*time.Second, 10*time.Millisecond)
}

func TestWSConn_DeliversPublishedFrames(t *testing.T) {
	r := newTestRegistry()
	client := startWSServer(t, r, events.ChannelBar, config.RealtimeConfig{SendBuffer: 8})
	waitForCount(t, r, events.ChannelBar, 1)

	r.Publish(events.ChannelBar, events.NewCallAcked(7))

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"call_acked","call_id":7}`, string(msg))
}

func TestWSConn_ClientDisconnectUnsubscribes(t *testing.T) {
	r := newTestRegistry()
	client := startWSServer(t, r, events.ChannelWaiter, config.RealtimeConfig{})
	waitForCount(t, r, events.ChannelWaiter, 1)

	require.NoError(t, client.WriteMessage(websocket.TextMessage, []byte("ignored")))
	require.NoError(t, client.Close())

	waitForCount(t, r, events.ChannelWaiter, 0)
}

func TestWSConn_RegistryCloseDisconnectsClient(t *testing.T) {
	r := newTestRegistry()
	client := startWSServer(t, r, events.ChannelAdmin, config.RealtimeConfig{})
	waitForCount(t, r, events.ChannelAdmin, 1)

	r.Close()

	require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := client.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)
}

func TestWSConn_SendAfterClose(t *testing.T) {
	c := &WSConn{id: "x", send: make(chan []byte, 1), logger: logger.NewNopLogger()}

	require.NoError(t, c.Send([]byte("a")))
	assert.ErrorIs(t, c.Send([]byte("b")), ErrSendQueueFull)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
	assert.ErrorIs(t, c.Send([]byte("c")), ErrConnClosed)
}
