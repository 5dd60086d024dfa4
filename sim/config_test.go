package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_FieldEquivalence(t *testing.T) {
	got := DefaultConfig()
	want := Config{
		PLBCapacity:             35,
		HorizonMinutes:          360,
		SamplingIntervalMinutes: 1,
	}
	assert.Equal(t, want, got)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"default is valid", DefaultConfig(), false},
		{"zero capacity is valid", Config{PLBCapacity: 0, HorizonMinutes: 10, SamplingIntervalMinutes: 1}, false},
		{"negative capacity", Config{PLBCapacity: -1, HorizonMinutes: 10, SamplingIntervalMinutes: 1}, true},
		{"zero horizon", Config{PLBCapacity: 1, HorizonMinutes: 0, SamplingIntervalMinutes: 1}, true},
		{"zero sampling interval", Config{PLBCapacity: 1, HorizonMinutes: 10, SamplingIntervalMinutes: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name    string
		records []ScheduleRecord
		wantErr string
	}{
		{
			name:    "valid records pass",
			records: []ScheduleRecord{{ID: "A", ArrivalTime: 0, TurnaroundTime: 5}, {ID: "B", ArrivalTime: 90, TurnaroundTime: 30}},
		},
		{
			name:    "empty id",
			records: []ScheduleRecord{{ID: "", ArrivalTime: 0, TurnaroundTime: 5}},
			wantErr: "empty aircraft id",
		},
		{
			name:    "duplicate id",
			records: []ScheduleRecord{{ID: "A", ArrivalTime: 0, TurnaroundTime: 5}, {ID: "A", ArrivalTime: 1, TurnaroundTime: 5}},
			wantErr: "duplicate aircraft id",
		},
		{
			name:    "negative arrival",
			records: []ScheduleRecord{{ID: "A", ArrivalTime: -1, TurnaroundTime: 5}},
			wantErr: "arrival time must be >= 0",
		},
		{
			name:    "arrival past horizon",
			records: []ScheduleRecord{{ID: "A", ArrivalTime: 101, TurnaroundTime: 5}},
			wantErr: "past the horizon",
		},
		{
			name:    "non-positive turnaround",
			records: []ScheduleRecord{{ID: "A", ArrivalTime: 0, TurnaroundTime: 0}},
			wantErr: "turnaround time must be > 0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchedule(tt.records, 100)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
