package scheduler

// EventType identifies one kind of scheduled work. The set is closed:
// every kind a peripheral can queue has a constant here and a handler
// registered against it when the machine is wired up.
type EventType uint8

const (
	// TimerTick fires each time the timer's selected period elapses.
	TimerTick EventType = iota

	eventTypes // number of event kinds, for sizing the handler table
)

// Event is one pending callback: the kind of work to perform and the
// absolute T-cycle at which it falls due.
type Event struct {
	cycle     uint64
	eventType EventType
}
