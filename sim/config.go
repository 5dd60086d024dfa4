package sim

import "fmt"

// Config holds the parameters of a single simulation run.
type Config struct {
	PLBCapacity             int   // number of PLB stands (0 forces all-remote allocation)
	HorizonMinutes          int64 // total simulated duration
	SamplingIntervalMinutes int64 // cadence of the occupancy time series
}

// DefaultConfig returns the standard run parameters: 35 PLB stands, a
// six-hour horizon, minute-level sampling.
func DefaultConfig() Config {
	return Config{
		PLBCapacity:             35,
		HorizonMinutes:          360,
		SamplingIntervalMinutes: 1,
	}
}

// Validate checks that the run configuration is usable.
func (c Config) Validate() error {
	if c.PLBCapacity < 0 {
		return fmt.Errorf("PLBCapacity must be >= 0, got %d", c.PLBCapacity)
	}
	if c.HorizonMinutes <= 0 {
		return fmt.Errorf("HorizonMinutes must be > 0, got %d", c.HorizonMinutes)
	}
	if c.SamplingIntervalMinutes <= 0 {
		return fmt.Errorf("SamplingIntervalMinutes must be > 0, got %d", c.SamplingIntervalMinutes)
	}
	return nil
}

// ScheduleRecord is one row of input flight data. DepartureTime is derived
// by the engine, not supplied.
type ScheduleRecord struct {
	ID             string
	ArrivalTime    int64
	TurnaroundTime int64
}

// ValidateSchedule rejects malformed flight data before a run starts.
// Errors here are configuration errors: the run must not begin.
func ValidateSchedule(records []ScheduleRecord, horizonMinutes int64) error {
	seen := make(map[string]bool, len(records))
	for i, r := range records {
		if r.ID == "" {
			return fmt.Errorf("schedule row %d: empty aircraft id", i)
		}
		if seen[r.ID] {
			return fmt.Errorf("schedule row %d: duplicate aircraft id %q", i, r.ID)
		}
		seen[r.ID] = true
		if r.ArrivalTime < 0 {
			return fmt.Errorf("schedule row %d (%s): arrival time must be >= 0, got %d", i, r.ID, r.ArrivalTime)
		}
		if r.ArrivalTime > horizonMinutes {
			return fmt.Errorf("schedule row %d (%s): arrival time %d is past the horizon %d", i, r.ID, r.ArrivalTime, horizonMinutes)
		}
		if r.TurnaroundTime <= 0 {
			return fmt.Errorf("schedule row %d (%s): turnaround time must be > 0, got %d", i, r.ID, r.TurnaroundTime)
		}
	}
	return nil
}
