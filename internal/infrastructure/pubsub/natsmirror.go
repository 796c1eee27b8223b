package pubsub

import (
	"fmt"
	"strings"

	"github.com/nats-io/nats.go"

	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// publisher is the subset of *nats.Conn the mirror needs.
type publisher interface {
	Publish(subj string, data []byte) error
}

// NATSMirror copies every realtime frame to <prefix>.<channel> for external
// consumers such as reporting or a kitchen display. Nothing is read back.
type NATSMirror struct {
	conn   publisher
	prefix string
	logger logger.Interface
	close  func()
}

func NewNATSMirror(url, prefix string, log logger.Interface) (*NATSMirror, error) {
	conn, err := nats.Connect(url,
		nats.Name("cassa"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	m := newMirror(conn, prefix, log)
	m.close = func() {
		if err := conn.Drain(); err != nil {
			conn.Close()
		}
	}
	return m, nil
}

func newMirror(conn publisher, prefix string, log logger.Interface) *NATSMirror {
	return &NATSMirror{
		conn:   conn,
		prefix: strings.TrimSuffix(prefix, "."),
		logger: log.With("component", "pubsub.nats"),
	}
}

func (m *NATSMirror) Subject(channel events.Channel) string {
	if m.prefix == "" {
		return channel.String()
	}
	return m.prefix + "." + channel.String()
}

// Mirror never fails the caller; a lost export is only logged.
func (m *NATSMirror) Mirror(channel events.Channel, payload []byte) {
	if err := m.conn.Publish(m.Subject(channel), payload); err != nil {
		m.logger.Warnw("failed to mirror event", "channel", channel, "error", err)
	}
}

func (m *NATSMirror) Close() {
	if m.close != nil {
		m.close()
	}
}
