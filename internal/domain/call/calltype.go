package call

import (
	"github.com/lorenzobigazzi0/cassa/internal/domain/shared/events"
)

type CallType string

const (
	CallWaiter CallType = "CALL_WAITER"
	CallBarman CallType = "CALL_BARMAN"
)

func (t CallType) String() string { return string(t) }

func (t CallType) IsValid() bool {
	return t == CallWaiter || t == CallBarman
}

// PermissionResource is the policy object guarding creation of this call type.
func (t CallType) PermissionResource() string {
	if t == CallWaiter {
		return "call_waiter"
	}
	return "call_barman"
}

var (
	waiterCallChannels = []events.Channel{events.ChannelWaiter, events.ChannelCassa, events.ChannelAdmin}
	barCallChannels    = []events.Channel{events.ChannelBar, events.ChannelAdmin}
)

// RouteChannels returns the channels notified when a call of type t is made.
// Waiter calls reach the floor; everything else goes to the bar.
func RouteChannels(t CallType) []events.Channel {
	if t == CallWaiter {
		return append([]events.Channel(nil), waiterCallChannels...)
	}
	return append([]events.Channel(nil), barCallChannels...)
}
