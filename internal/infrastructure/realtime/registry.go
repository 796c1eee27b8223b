// Package realtime fans events out to the websocket subscribers of each
// floor channel.
package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

var (
	ErrConnClosed     = errors.New("connection closed")
	ErrSendQueueFull  = errors.New("send queue full")
	ErrUnknownChannel = errors.New("unknown channel")
	ErrRegistryClosed = errors.New("realtime registry closed")
)

// Conn is one live subscriber. Send must not block: a full or closed
// connection reports an error and is dropped by the registry.
type Conn interface {
	ID() string
	Send(payload []byte) error
	Close() error
}

// Mirror receives a copy of every published frame.
type Mirror interface {
	Mirror(channel events.Channel, payload []byte)
}

type channelSet struct {
	mu    sync.Mutex
	conns map[string]Conn
}

// Registry holds the subscribers of every channel. Each channel has its own
// lock; the channel table itself is fixed at construction.
type Registry struct {
	channels map[events.Channel]*channelSet
	mirror   Mirror
	logger   logger.Interface
	closed   atomic.Bool
}

var _ events.Publisher = (*Registry)(nil)

func NewRegistry(log logger.Interface) *Registry {
	all := append([]events.Channel{}, events.StaffChannels...)
	all = append(all, events.ChannelPublic)

	channels := make(map[events.Channel]*channelSet, len(all))
	for _, ch := range all {
		channels[ch] = &channelSet{conns: make(map[string]Conn)}
	}

	return &Registry{
		channels: channels,
		logger:   log.With("component", "realtime.registry"),
	}
}

// SetMirror installs an export target. It must be called before serving.
func (r *Registry) SetMirror(m Mirror) {
	r.mirror = m
}

func (r *Registry) Subscribe(conn Conn, channel events.Channel) error {
	set, ok := r.channels[channel]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}

	set.mu.Lock()
	// Checked under the channel lock so Close cannot miss a late subscriber.
	if r.closed.Load() {
		set.mu.Unlock()
		return ErrRegistryClosed
	}
	set.conns[conn.ID()] = conn
	n := len(set.conns)
	set.mu.Unlock()

	r.logger.Debugw("subscriber joined", "conn_id", conn.ID(), "channel", channel, "subscribers", n)
	return nil
}

// Unsubscribe removes conn from every channel. Unknown connections are ignored.
func (r *Registry) Unsubscribe(conn Conn) {
	for ch, set := range r.channels {
		set.mu.Lock()
		if _, ok := set.conns[conn.ID()]; ok {
			delete(set.conns, conn.ID())
			r.logger.Debugw("subscriber left", "conn_id", conn.ID(), "channel", ch)
		}
		set.mu.Unlock()
	}
}

// Publish serializes event once and hands it to every subscriber of channel.
// Subscribers whose Send fails are removed and closed; the rest still
// receive the frame.
func (r *Registry) Publish(channel events.Channel, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Errorw("failed to serialize event", "channel", channel, "error", err)
		return
	}
	r.publishRaw(channel, payload)
}

// PublishMany publishes to each channel in turn.
func (r *Registry) PublishMany(channels []events.Channel, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		r.logger.Errorw("failed to serialize event", "channels", channels, "error", err)
		return
	}
	for _, ch := range channels {
		r.publishRaw(ch, payload)
	}
}

func (r *Registry) publishRaw(channel events.Channel, payload []byte) {
	set, ok := r.channels[channel]
	if !ok {
		r.logger.Warnw("publish to unknown channel", "channel", channel)
		return
	}

	var dead []Conn
	set.mu.Lock()
	for id, conn := range set.conns {
		if err := conn.Send(payload); err != nil {
			delete(set.conns, id)
			dead = append(dead, conn)
		}
	}
	set.mu.Unlock()

	for _, conn := range dead {
		r.logger.Infow("dropping subscriber after failed delivery", "conn_id", conn.ID(), "channel", channel)
		_ = conn.Close()
	}

	if r.mirror != nil {
		r.mirror.Mirror(channel, payload)
	}
}

func (r *Registry) Count(channel events.Channel) int {
	set, ok := r.channels[channel]
	if !ok {
		return 0
	}
	set.mu.Lock()
	defer set.mu.Unlock()
	return len(set.conns)
}

// Counts reports subscribers per channel for health output.
func (r *Registry) Counts() map[string]int {
	counts := make(map[string]int, len(r.channels))
	for ch := range r.channels {
		counts[ch.String()] = r.Count(ch)
	}
	return counts
}

// Close disconnects every subscriber and refuses new ones. Publishing
// after Close is a no-op apart from the mirror.
func (r *Registry) Close() {
	r.closed.Store(true)

	total := 0
	for _, set := range r.channels {
		set.mu.Lock()
		conns := set.conns
		set.conns = make(map[string]Conn)
		set.mu.Unlock()

		for _, conn := range conns {
			_ = conn.Close()
			total++
		}
	}
	r.logger.Infow("realtime registry closed", "connections", total)
}
