// Defines the Aircraft record that models a single flight in the simulation.
// Tracks arrival and departure times, the assigned stand class, and lifecycle state.

package sim

import (
	"fmt"
)

// AircraftState represents the lifecycle state of an aircraft.
type AircraftState string

const (
	StateScheduled AircraftState = "scheduled"
	StateParked    AircraftState = "parked"
	StateDeparted  AircraftState = "departed"
)

// StandClass identifies the kind of parking stand assigned to an aircraft.
type StandClass string

const (
	// StandUnassigned is the class of an aircraft whose arrival has not been
	// processed yet.
	StandUnassigned StandClass = ""
	// StandPLB is a capacity-limited, jet-bridge-equipped stand.
	StandPLB StandClass = "PLB"
	// StandRemote is an effectively uncapacitated fallback stand.
	StandRemote StandClass = "REMOTE"
)

// Aircraft models a single flight's lifecycle in the simulation.
// Each aircraft has:
// - a scheduled arrival time and a fixed turnaround duration
// - a derived departure time (arrival + turnaround), set once at creation
// - a stand class, set exactly once when its arrival is processed
// - state tracking (scheduled, parked, departed)
//
// Aircraft are passive records: all transitions are driven by the Simulator
// processing this aircraft's arrival and departure events. The record persists
// after the run for post-run analytics.
type Aircraft struct {
	ID string // Unique identifier for the aircraft

	ArrivalTime    int64 // Minute the aircraft reaches the apron
	TurnaroundTime int64 // Minutes spent on its stand between arrival and departure
	DepartureTime  int64 // ArrivalTime + TurnaroundTime, fixed at creation

	StandClass StandClass    // Assigned when the arrival event is processed, never changed after
	State      AircraftState // scheduled, parked, departed
}

// NewAircraft creates an aircraft in the scheduled state with its departure
// time derived from arrival and turnaround.
func NewAircraft(id string, arrivalTime, turnaroundTime int64) *Aircraft {
	return &Aircraft{
		ID:             id,
		ArrivalTime:    arrivalTime,
		TurnaroundTime: turnaroundTime,
		DepartureTime:  arrivalTime + turnaroundTime,
		StandClass:     StandUnassigned,
		State:          StateScheduled,
	}
}

// This method returns a human-readable string representation of an Aircraft.
func (a Aircraft) String() string {
	return fmt.Sprintf("Aircraft: (ID: %s, State: %s, Stand: %s, Arrival: %d, Departure: %d)",
		a.ID, a.State, a.StandClass, a.ArrivalTime, a.DepartureTime)
}
