package order

// EventKind names a broadcast sent to admin observers.
type EventKind string

const (
	// EventNewOrder is emitted once by intake after an order is stored.
	EventNewOrder EventKind = "new-order"

	// EventOrderAccepted is emitted for the accept transition, on top of EventStatusUpdated.
	EventOrderAccepted EventKind = "order-accepted"

	// EventStatusUpdated is emitted for every successful transition.
	EventStatusUpdated EventKind = "order-status-updated"
)

// String returns the wire name of the event.
func (k EventKind) String() string {
	return string(k)
}
