// Post-run aggregation. All statistics here derive from the engine's two
// read-only outputs: the final aircraft records and the occupancy time
// series. The engine itself never aggregates beyond the per-tick snapshot.

package analytics

import (
	"fmt"

	"gonum.org/v1/gonum/stat"

	"github.com/apron-sim/apron-sim/sim"
)

// GroundTimeStats summarizes the distribution of aircraft ground time.
type GroundTimeStats struct {
	Mean   float64
	StdDev float64
	Min    int64
	Max    int64
}

// Summary aggregates the operational metrics of a completed run.
type Summary struct {
	PLBCapacity   int
	TotalAircraft int
	PLBCount      int // aircraft assigned a PLB stand
	RemoteCount   int // aircraft assigned a remote stand
	DepartedCount int // aircraft that departed within the horizon

	// PLBUtilizationPct is mean PLB occupancy over the run divided by
	// capacity. Indicates how effectively the scarce PLB stands are used.
	PLBUtilizationPct float64
	// PLBAssignmentPct is the share of aircraft that got a PLB stand, a
	// proxy for passenger experience (jet bridge vs bus transfer).
	PLBAssignmentPct float64

	// PeakParked is the maximum concurrent parked aircraft and the minute
	// it first occurred, the worst-case congestion of the run.
	PeakParked       int
	PeakParkedMinute int64

	GroundTime GroundTimeStats
}

// Analyze computes the summary from a completed run's outputs.
func Analyze(aircraft []*sim.Aircraft, samples []sim.MetricsSample, plbCapacity int) Summary {
	s := Summary{
		PLBCapacity:   plbCapacity,
		TotalAircraft: len(aircraft),
	}

	groundTimes := make([]float64, 0, len(aircraft))
	for _, ac := range aircraft {
		switch ac.StandClass {
		case sim.StandPLB:
			s.PLBCount++
		case sim.StandRemote:
			s.RemoteCount++
		}
		if ac.State == sim.StateDeparted {
			s.DepartedCount++
		}
		groundTimes = append(groundTimes, float64(ac.TurnaroundTime))
	}
	if s.TotalAircraft > 0 {
		s.PLBAssignmentPct = float64(s.PLBCount) / float64(s.TotalAircraft) * 100
	}

	if len(groundTimes) > 0 {
		s.GroundTime.Mean = stat.Mean(groundTimes, nil)
		s.GroundTime.StdDev = stat.StdDev(groundTimes, nil)
		s.GroundTime.Min = aircraft[0].TurnaroundTime
		s.GroundTime.Max = aircraft[0].TurnaroundTime
		for _, ac := range aircraft[1:] {
			if ac.TurnaroundTime < s.GroundTime.Min {
				s.GroundTime.Min = ac.TurnaroundTime
			}
			if ac.TurnaroundTime > s.GroundTime.Max {
				s.GroundTime.Max = ac.TurnaroundTime
			}
		}
	}

	if len(samples) > 0 {
		plbOccupied := make([]float64, len(samples))
		for i, sample := range samples {
			plbOccupied[i] = float64(sample.PLBOccupied)
			if sample.TotalParked > s.PeakParked {
				s.PeakParked = sample.TotalParked
				s.PeakParkedMinute = sample.Time
			}
		}
		if plbCapacity > 0 {
			s.PLBUtilizationPct = stat.Mean(plbOccupied, nil) / float64(plbCapacity) * 100
		}
	}

	return s
}

// Print displays the summary at the end of a run.
func (s Summary) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Total Aircraft        : %d (%d departed within horizon)\n", s.TotalAircraft, s.DepartedCount)
	fmt.Printf("PLB Utilization       : %.2f%% of %d stands\n", s.PLBUtilizationPct, s.PLBCapacity)
	fmt.Printf("PLB Assignment Rate   : %.2f%% (PLB: %d, Remote: %d)\n", s.PLBAssignmentPct, s.PLBCount, s.RemoteCount)
	fmt.Printf("Peak Concurrent Parked: %d aircraft at minute %d\n", s.PeakParked, s.PeakParkedMinute)
	if s.TotalAircraft > 0 {
		fmt.Printf("Average Ground Time   : %.2f min (range %d-%d, stddev %.1f)\n",
			s.GroundTime.Mean, s.GroundTime.Min, s.GroundTime.Max, s.GroundTime.StdDev)
	}
}
