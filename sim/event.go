package sim

// EventKind identifies the type of a simulation event.
type EventKind string

const (
	EventArrival   EventKind = "Arrival"
	EventDeparture EventKind = "Departure"
)

// eventKindPriority defines ordering for simultaneous events.
// Lower values are processed first: a departure at minute t releases its
// stand before any arrival at minute t asks for one.
var eventKindPriority = map[EventKind]int{
	EventDeparture: 1,
	EventArrival:   2,
}

// Event defines the interface for all simulation events.
// Each event has a Timestamp (in simulated minutes), a Kind, a per-run
// sequence number for deterministic tie-breaking, and an Execute method that
// advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	Seq() uint64
	Kind() EventKind
	Execute(sim *Simulator) error
}

// baseEvent provides common event fields.
type baseEvent struct {
	time int64
	seq  uint64
	kind EventKind
}

func (e *baseEvent) Timestamp() int64 {
	return e.time
}

func (e *baseEvent) Seq() uint64 {
	return e.seq
}

func (e *baseEvent) Kind() EventKind {
	return e.kind
}

// ArrivalEvent fires when an aircraft reaches the apron and needs a stand.
type ArrivalEvent struct {
	baseEvent
	Aircraft *Aircraft // The flight associated with this event
}

// Execute parks the aircraft on a stand chosen by the allocation policy and
// schedules its departure.
func (e *ArrivalEvent) Execute(sim *Simulator) error {
	return sim.handleArrival(e)
}

// DepartureEvent fires when a parked aircraft leaves its stand.
type DepartureEvent struct {
	baseEvent
	Aircraft *Aircraft
}

// Execute releases the aircraft's stand back to the pool.
func (e *DepartureEvent) Execute(sim *Simulator) error {
	return sim.handleDeparture(e)
}
