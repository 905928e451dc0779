// Package scheduler implements the ordered event queue that paces the
// emulated hardware. A peripheral queues a callback to run a number of
// T-cycles in the future; the bus advances the clock one memory-access
// quantum at a time, and due callbacks fire in expiry order.
package scheduler

import "fmt"

// Capacity is the maximum number of events that may be pending at once.
// The peripherals of this machine never keep more in flight, so running
// out of room is a programming error rather than a runtime condition.
const Capacity = 10

// Scheduler is a binary min-heap of pending events keyed by absolute
// expiry cycle, together with the monotonic T-cycle clock the expiries
// are measured against.
//
// Step advances the clock by exactly 4 T-cycles and fires an event only
// when its expiry equals the new clock value, so every expiry must be a
// multiple of the quantum away from the cycle it was scheduled on.
type Scheduler struct {
	cycles uint64

	events [Capacity]Event
	size   int

	handlers [eventTypes]func()
}

// NewScheduler returns an empty scheduler with the clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Cycle returns the number of T-cycles elapsed since power on, or since
// the last Reset.
func (s *Scheduler) Cycle() uint64 {
	return s.cycles
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	return s.size
}

// RegisterEvent sets the function invoked when an event of the given
// type falls due. Registration is wiring, not scheduling: it survives
// Reset, and registering the same type again replaces the handler.
func (s *Scheduler) RegisterEvent(eventType EventType, fn func()) {
	s.handlers[eventType] = fn
}

// ScheduleEvent queues an event of the given type to fire once, cycles
// T-cycles from now. The relative offset is converted to an absolute
// expiry against the current clock. Panics if Capacity events are
// already pending.
func (s *Scheduler) ScheduleEvent(eventType EventType, cycles uint64) {
	if s.size == Capacity {
		panic(fmt.Sprintf("scheduler: event capacity (%d) exhausted", Capacity))
	}

	s.events[s.size] = Event{
		cycle:     s.cycles + cycles,
		eventType: eventType,
	}
	s.siftUp(s.size)
	s.size++
}

// Step advances the clock by one memory-access quantum (4 T-cycles).
// When the earliest pending event falls due on exactly the new clock
// value it is removed and its handler invoked. At most one event fires
// per call.
func (s *Scheduler) Step() {
	s.cycles += 4

	if s.size == 0 {
		return
	}

	if s.events[0].cycle == s.cycles {
		eventType := s.events[0].eventType

		s.size--
		s.events[0] = s.events[s.size]
		s.siftDown(0)

		s.handlers[eventType]()
	}
}

// Reset drops every pending event and rewinds the clock to zero.
// Handlers stay registered; a peripheral that should keep running must
// schedule itself again.
func (s *Scheduler) Reset() {
	s.cycles = 0
	s.size = 0
	s.events = [Capacity]Event{}
}

// siftUp moves the event at index i toward the root while its parent
// expires later.
func (s *Scheduler) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if s.events[parent].cycle <= s.events[i].cycle {
			return
		}
		s.events[parent], s.events[i] = s.events[i], s.events[parent]
		i = parent
	}
}

// siftDown moves the event at index i down the heap, swapping with the
// smaller child until neither child expires sooner. The left child wins
// ties.
func (s *Scheduler) siftDown(i int) {
	for {
		left := i*2 + 1
		right := i*2 + 2
		smallest := i

		if left < s.size && s.events[left].cycle < s.events[smallest].cycle {
			smallest = left
		}
		if right < s.size && s.events[right].cycle < s.events[smallest].cycle {
			smallest = right
		}
		if smallest == i {
			return
		}

		s.events[smallest], s.events[i] = s.events[i], s.events[smallest]
		i = smallest
	}
}

// String renders the pending queue in heap order, for debugging.
func (s *Scheduler) String() string {
	result := ""
	for i := 0; i < s.size; i++ {
		result += fmt.Sprintf("%d:%d->", s.events[i].eventType, s.events[i].cycle)
	}
	return result
}
