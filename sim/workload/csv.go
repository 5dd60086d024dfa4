// CSV schedule I/O. The file format matches the generator output consumed by
// the CLI: a header row followed by aircraft_id,arrival_time,turnaround_time.

package workload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apron-sim/apron-sim/sim"
)

var scheduleHeader = []string{"aircraft_id", "arrival_time", "turnaround_time"}

// LoadSchedules reads flight schedule records from a CSV file.
func LoadSchedules(path string) ([]sim.ScheduleRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schedule file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file; close error is not actionable

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var records []sim.ScheduleRecord
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv at row %d: %w", row, err)
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("csv row %d has %d columns, expected at least 3", row, len(record))
		}
		arrival, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid arrival time at row %d: %w", row, err)
		}
		turnaround, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid turnaround time at row %d: %w", row, err)
		}
		records = append(records, sim.ScheduleRecord{
			ID:             record[0],
			ArrivalTime:    arrival,
			TurnaroundTime: turnaround,
		})
		row++
	}
	return records, nil
}

// SaveSchedules writes flight schedule records to a CSV file.
func SaveSchedules(path string, records []sim.ScheduleRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create schedule file: %w", err)
	}
	defer file.Close() //nolint:errcheck // flushed and checked via writer below

	writer := csv.NewWriter(file)
	if err := writer.Write(scheduleHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.ID,
			strconv.FormatInt(r.ArrivalTime, 10),
			strconv.FormatInt(r.TurnaroundTime, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", r.ID, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
