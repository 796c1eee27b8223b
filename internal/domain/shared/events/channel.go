// Package events defines the realtime channels and the event payloads pushed
// to them.
package events

// Channel names a broadcast group of subscribers.
type Channel string

const (
	ChannelBar    Channel = "bar"
	ChannelWaiter Channel = "waiter"
	ChannelCassa  Channel = "cassa"
	ChannelAdmin  Channel = "admin"
	ChannelPublic Channel = "public"
)

// StaffChannels lists every role channel, in a fixed order.
var StaffChannels = []Channel{ChannelBar, ChannelWaiter, ChannelCassa, ChannelAdmin}

func (c Channel) String() string {
	return string(c)
}

// IsStaff reports whether c is one of the four role channels.
func (c Channel) IsStaff() bool {
	switch c {
	case ChannelBar, ChannelWaiter, ChannelCassa, ChannelAdmin:
		return true
	}
	return false
}

// ParseChannel accepts a role channel or "public".
func ParseChannel(s string) (Channel, bool) {
	c := Channel(s)
	if c.IsStaff() || c == ChannelPublic {
		return c, true
	}
	return "", false
}

// ChannelForRole maps a staff role to the channel its sockets join.
func ChannelForRole(role string) (Channel, bool) {
	switch role {
	case "BAR":
		return ChannelBar, true
	case "WAITER":
		return ChannelWaiter, true
	case "CASHIER":
		return ChannelCassa, true
	case "ADMIN":
		return ChannelAdmin, true
	}
	return "", false
}
