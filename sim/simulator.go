// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// RunState tracks the lifecycle of a simulation run.
type RunState string

const (
	RunNotStarted RunState = "not-started"
	RunRunning    RunState = "running"
	RunCompleted  RunState = "completed"
)

// InvariantError reports a lifecycle or occupancy invariant violation.
// It always indicates a defect in event generation or allocation logic,
// never a recoverable runtime condition; the run aborts on the first one.
type InvariantError struct {
	AircraftID string
	Kind       EventKind
	Timestamp  int64
	State      AircraftState
	Detail     string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation at minute %d: %s event for aircraft %s (state %s): %s",
		e.Timestamp, e.Kind, e.AircraftID, e.State, e.Detail)
}

// Simulator is the core object that holds simulation time, system state, and
// the event loop. It owns its event queue and stand pool by composition;
// running multiple independent simulations concurrently is safe as long as
// each uses its own Simulator.
type Simulator struct {
	// Clock is the timestamp of the most recently popped event. The event
	// queue is the sole driver of time: there is no wall clock.
	Clock   int64
	Horizon int64

	eventQueue *EventHeap
	pool       *StandPool
	policy     AllocationPolicy
	sampler    *MetricsSampler

	aircraft     []*Aircraft // creation order, stable for the whole run
	aircraftByID map[string]*Aircraft

	state RunState
	seq   uint64 // per-run event sequence counter for deterministic tie-breaks
}

// NewSimulator validates the configuration and flight schedule, creates one
// aircraft record per schedule row, and seeds the event queue with one
// arrival event per aircraft. Departure events are scheduled later, when the
// matching arrival is processed and the stand class is known.
func NewSimulator(cfg Config, records []ScheduleRecord) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := ValidateSchedule(records, cfg.HorizonMinutes); err != nil {
		return nil, fmt.Errorf("invalid schedule: %w", err)
	}

	s := &Simulator{
		Clock:        0,
		Horizon:      cfg.HorizonMinutes,
		eventQueue:   NewEventHeap(),
		pool:         NewStandPool(cfg.PLBCapacity),
		policy:       GreedyPolicy{},
		sampler:      NewMetricsSampler(cfg.SamplingIntervalMinutes, cfg.HorizonMinutes),
		aircraftByID: make(map[string]*Aircraft, len(records)),
		state:        RunNotStarted,
	}

	for _, r := range records {
		ac := NewAircraft(r.ID, r.ArrivalTime, r.TurnaroundTime)
		s.aircraft = append(s.aircraft, ac)
		s.aircraftByID[ac.ID] = ac
		s.eventQueue.Schedule(&ArrivalEvent{
			baseEvent: s.newBase(ac.ArrivalTime, EventArrival),
			Aircraft:  ac,
		})
	}

	logrus.Infof("Simulator initialized: %d aircraft, %d PLB stands, horizon=%d min, sampling every %d min",
		len(records), cfg.PLBCapacity, cfg.HorizonMinutes, cfg.SamplingIntervalMinutes)
	return s, nil
}

func (s *Simulator) newBase(t int64, kind EventKind) baseEvent {
	s.seq++
	return baseEvent{time: t, seq: s.seq, kind: kind}
}

// Run drains the event queue in deterministic order until it is empty or the
// first event past the horizon is reached, whichever comes first. Events past
// the horizon are never executed, so aircraft still parked at that point stay
// parked (visible in the final occupancy counters).
func (s *Simulator) Run() error {
	if s.state != RunNotStarted {
		return fmt.Errorf("simulation already %s", s.state)
	}
	s.state = RunRunning

	for s.eventQueue.Len() > 0 {
		ev := s.eventQueue.PopNext()
		if ev.Timestamp() > s.Horizon {
			break
		}
		// Emit samples for every tick before this event so the series
		// observes state strictly between events.
		s.sampler.AdvanceBefore(ev.Timestamp(), s.pool)
		s.Clock = ev.Timestamp()
		logrus.Debugf("[min %04d] executing %s (seq %d)", s.Clock, ev.Kind(), ev.Seq())
		if err := ev.Execute(s); err != nil {
			return err
		}
	}

	s.sampler.Finish(s.pool)
	s.state = RunCompleted
	logrus.Infof("[min %04d] simulation ended: %d samples collected", s.Clock, len(s.sampler.Samples()))
	return nil
}

func (s *Simulator) handleArrival(e *ArrivalEvent) error {
	ac := e.Aircraft
	if ac.State != StateScheduled {
		return &InvariantError{
			AircraftID: ac.ID,
			Kind:       EventArrival,
			Timestamp:  e.Timestamp(),
			State:      ac.State,
			Detail:     "arrival requires the scheduled state",
		}
	}

	class, err := s.policy.Allocate(s.pool)
	if err != nil {
		return &InvariantError{
			AircraftID: ac.ID,
			Kind:       EventArrival,
			Timestamp:  e.Timestamp(),
			State:      ac.State,
			Detail:     err.Error(),
		}
	}

	ac.StandClass = class
	ac.State = StateParked
	logrus.Debugf("[min %04d] %s parked on %s stand", s.Clock, ac.ID, class)

	// The departure is scheduled now rather than at load time: its stand
	// class, needed for pool release, is only resolved here.
	s.eventQueue.Schedule(&DepartureEvent{
		baseEvent: s.newBase(ac.DepartureTime, EventDeparture),
		Aircraft:  ac,
	})
	return nil
}

func (s *Simulator) handleDeparture(e *DepartureEvent) error {
	ac := e.Aircraft
	if ac.State != StateParked {
		return &InvariantError{
			AircraftID: ac.ID,
			Kind:       EventDeparture,
			Timestamp:  e.Timestamp(),
			State:      ac.State,
			Detail:     "departure requires the parked state",
		}
	}
	if err := s.pool.release(ac.StandClass); err != nil {
		return &InvariantError{
			AircraftID: ac.ID,
			Kind:       EventDeparture,
			Timestamp:  e.Timestamp(),
			State:      ac.State,
			Detail:     err.Error(),
		}
	}
	ac.State = StateDeparted
	logrus.Debugf("[min %04d] %s departed from %s stand", s.Clock, ac.ID, ac.StandClass)
	return nil
}

// State returns the run lifecycle state.
func (s *Simulator) State() RunState {
	return s.state
}

// Aircraft returns all aircraft records in creation order. Read-only after
// the run completes.
func (s *Simulator) Aircraft() []*Aircraft {
	return s.aircraft
}

// AircraftByID looks up a single aircraft record.
func (s *Simulator) AircraftByID(id string) (*Aircraft, bool) {
	ac, ok := s.aircraftByID[id]
	return ac, ok
}

// Samples returns the occupancy time series. Read-only after the run completes.
func (s *Simulator) Samples() []MetricsSample {
	return s.sampler.Samples()
}

// Occupancy returns the current stand pool counters.
func (s *Simulator) Occupancy() Occupancy {
	return s.pool.Snapshot()
}
