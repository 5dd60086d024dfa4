// Result export. Two CSV files mirror the engine's read-only outputs
// (per-aircraft records and the minute-by-minute series), plus a plain-text
// summary for quick inspection.

package analytics

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/apron-sim/apron-sim/sim"
)

// WriteAircraftCSV writes the final per-aircraft records.
func WriteAircraftCSV(path string, aircraft []*sim.Aircraft) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create aircraft results file: %w", err)
	}
	defer file.Close() //nolint:errcheck // flushed and checked via writer below

	writer := csv.NewWriter(file)
	header := []string{"aircraft_id", "arrival_time", "departure_time", "turnaround_time", "assigned_stand_type", "state"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, ac := range aircraft {
		row := []string{
			ac.ID,
			strconv.FormatInt(ac.ArrivalTime, 10),
			strconv.FormatInt(ac.DepartureTime, 10),
			strconv.FormatInt(ac.TurnaroundTime, 10),
			string(ac.StandClass),
			string(ac.State),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", ac.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSamplesCSV writes the minute-by-minute occupancy series.
func WriteSamplesCSV(path string, samples []sim.MetricsSample) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create samples file: %w", err)
	}
	defer file.Close() //nolint:errcheck // flushed and checked via writer below

	writer := csv.NewWriter(file)
	header := []string{"current_time", "plb_occupied", "remote_occupied", "total_parked"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatInt(s.Time, 10),
			strconv.Itoa(s.PLBOccupied),
			strconv.Itoa(s.RemoteOccupied),
			strconv.Itoa(s.TotalParked),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row at minute %d: %w", s.Time, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSummary writes the formatted metrics summary to a text file.
func WriteSummary(path string, s Summary) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer file.Close() //nolint:errcheck // write errors surface through Fprintf below

	_, err = fmt.Fprintf(file,
		"=== Simulation Metrics ===\n"+
			"Total Aircraft        : %d (%d departed within horizon)\n"+
			"PLB Utilization       : %.2f%% of %d stands\n"+
			"PLB Assignment Rate   : %.2f%% (PLB: %d, Remote: %d)\n"+
			"Peak Concurrent Parked: %d aircraft at minute %d\n"+
			"Average Ground Time   : %.2f min (range %d-%d, stddev %.1f)\n",
		s.TotalAircraft, s.DepartedCount,
		s.PLBUtilizationPct, s.PLBCapacity,
		s.PLBAssignmentPct, s.PLBCount, s.RemoteCount,
		s.PeakParked, s.PeakParkedMinute,
		s.GroundTime.Mean, s.GroundTime.Min, s.GroundTime.Max, s.GroundTime.StdDev)
	return err
}
