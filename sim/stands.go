// Tracks stand capacity and occupancy for the two stand classes.
// PLB stands are a fixed scarce resource; remote stands are an unbounded
// overflow area.

package sim

import "fmt"

// Occupancy is a point-in-time snapshot of apron occupancy.
type Occupancy struct {
	PLBOccupied    int
	RemoteOccupied int
	TotalParked    int
}

// StandPool tracks occupancy counters for PLB and remote stands.
// It is owned exclusively by a Simulator and mutated only while events are
// processed; other components read it through Snapshot.
type StandPool struct {
	plbCapacity    int
	plbOccupied    int
	remoteOccupied int
}

// NewStandPool creates an empty pool with the given PLB capacity.
// A capacity of zero is valid and forces every aircraft onto remote stands.
func NewStandPool(plbCapacity int) *StandPool {
	return &StandPool{plbCapacity: plbCapacity}
}

// PLBCapacity returns the fixed number of PLB stands.
func (p *StandPool) PLBCapacity() int {
	return p.plbCapacity
}

// PLBAvailable reports whether at least one PLB stand is free.
func (p *StandPool) PLBAvailable() bool {
	return p.plbOccupied < p.plbCapacity
}

// Snapshot returns the current occupancy counters.
func (p *StandPool) Snapshot() Occupancy {
	return Occupancy{
		PLBOccupied:    p.plbOccupied,
		RemoteOccupied: p.remoteOccupied,
		TotalParked:    p.plbOccupied + p.remoteOccupied,
	}
}

// occupy claims one stand of the given class.
// Exceeding PLB capacity indicates a defect in the allocation policy.
func (p *StandPool) occupy(class StandClass) error {
	switch class {
	case StandPLB:
		if p.plbOccupied >= p.plbCapacity {
			return fmt.Errorf("PLB occupancy would exceed capacity (%d/%d)", p.plbOccupied, p.plbCapacity)
		}
		p.plbOccupied++
	case StandRemote:
		p.remoteOccupied++
	default:
		return fmt.Errorf("cannot occupy stand of class %q", class)
	}
	return nil
}

// release frees one stand of the given class.
// A counter going negative indicates a defect in event generation.
func (p *StandPool) release(class StandClass) error {
	switch class {
	case StandPLB:
		if p.plbOccupied <= 0 {
			return fmt.Errorf("PLB occupancy would go negative (currently %d)", p.plbOccupied)
		}
		p.plbOccupied--
	case StandRemote:
		if p.remoteOccupied <= 0 {
			return fmt.Errorf("remote occupancy would go negative (currently %d)", p.remoteOccupied)
		}
		p.remoteOccupied--
	default:
		return fmt.Errorf("cannot release stand of class %q", class)
	}
	return nil
}
