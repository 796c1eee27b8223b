package events

// Publisher pushes an event to realtime subscribers. Delivery failures are
// handled by the implementation and never reported to the caller.
type Publisher interface {
	Publish(channel Channel, event any)
	PublishMany(channels []Channel, event any)
}
