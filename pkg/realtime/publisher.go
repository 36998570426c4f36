package realtime

// Publisher fans an event out to every session subscribed to a lunchbox.
// Delivery is fire-and-forget: implementations must not block the caller and
// must never return delivery failures into the ingestion path.
type Publisher interface {
	Publish(lunchboxID uint, event Event)
}

// NopPublisher drops everything. Used when no realtime transport is wired.
type NopPublisher struct{}

func (NopPublisher) Publish(lunchboxID uint, event Event) {}
