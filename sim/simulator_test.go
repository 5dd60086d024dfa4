package sim

import (
	"errors"
	"testing"
)

func runSim(t *testing.T, cfg Config, records []ScheduleRecord) *Simulator {
	t.Helper()
	s, err := NewSimulator(cfg, records)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return s
}

func TestSimulator_TieBreakByCreationOrderAtSameMinute(t *testing.T) {
	// GIVEN one PLB stand and two aircraft both arriving at minute 0
	cfg := Config{PLBCapacity: 1, HorizonMinutes: 30, SamplingIntervalMinutes: 1}
	records := []ScheduleRecord{
		{ID: "A", ArrivalTime: 0, TurnaroundTime: 10},
		{ID: "B", ArrivalTime: 0, TurnaroundTime: 10},
	}

	// WHEN the simulation runs
	s := runSim(t, cfg, records)

	// THEN the first-created aircraft gets the PLB stand and the second goes remote
	a, _ := s.AircraftByID("A")
	b, _ := s.AircraftByID("B")
	if a.StandClass != StandPLB {
		t.Errorf("aircraft A: got %s, want %s", a.StandClass, StandPLB)
	}
	if b.StandClass != StandRemote {
		t.Errorf("aircraft B: got %s, want %s", b.StandClass, StandRemote)
	}
}

func TestSimulator_DepartureReleasesStandBeforeSameMinuteArrival(t *testing.T) {
	// GIVEN one PLB stand, A departing at minute 5 and B arriving at minute 5
	cfg := Config{PLBCapacity: 1, HorizonMinutes: 30, SamplingIntervalMinutes: 1}
	records := []ScheduleRecord{
		{ID: "A", ArrivalTime: 0, TurnaroundTime: 5},
		{ID: "B", ArrivalTime: 5, TurnaroundTime: 5},
	}

	// WHEN the simulation runs
	s := runSim(t, cfg, records)

	// THEN B also gets the PLB stand because departures are processed first
	b, _ := s.AircraftByID("B")
	if b.StandClass != StandPLB {
		t.Errorf("aircraft B: got %s, want %s", b.StandClass, StandPLB)
	}
}

func TestSimulator_ZeroCapacity_AllRemote(t *testing.T) {
	// GIVEN zero PLB stands
	cfg := Config{PLBCapacity: 0, HorizonMinutes: 60, SamplingIntervalMinutes: 1}
	records := []ScheduleRecord{
		{ID: "A", ArrivalTime: 0, TurnaroundTime: 10},
		{ID: "B", ArrivalTime: 5, TurnaroundTime: 10},
		{ID: "C", ArrivalTime: 10, TurnaroundTime: 10},
	}

	// WHEN the simulation runs
	s := runSim(t, cfg, records)

	// THEN every aircraft is remote and PLB occupancy stays zero throughout
	for _, ac := range s.Aircraft() {
		if ac.StandClass != StandRemote {
			t.Errorf("aircraft %s: got %s, want %s", ac.ID, ac.StandClass, StandRemote)
		}
	}
	for _, sample := range s.Samples() {
		if sample.PLBOccupied != 0 {
			t.Errorf("minute %d: got PLBOccupied %d, want 0", sample.Time, sample.PLBOccupied)
		}
	}
}

func TestSimulator_DepartureTimeFixedAtCreation(t *testing.T) {
	cfg := Config{PLBCapacity: 2, HorizonMinutes: 200, SamplingIntervalMinutes: 1}
	records := []ScheduleRecord{
		{ID: "A", ArrivalTime: 0, TurnaroundTime: 45},
		{ID: "B", ArrivalTime: 17, TurnaroundTime: 120},
	}

	s := runSim(t, cfg, records)

	for _, ac := range s.Aircraft() {
		if ac.DepartureTime != ac.ArrivalTime+ac.TurnaroundTime {
			t.Errorf("aircraft %s: departure %d, want arrival %d + turnaround %d",
				ac.ID, ac.DepartureTime, ac.ArrivalTime, ac.TurnaroundTime)
		}
	}
}

func TestSimulator_PLBOccupancyWithinBoundsInEverySample(t *testing.T) {
	// GIVEN a run with demand well above PLB capacity
	cfg := Config{PLBCapacity: 2, HorizonMinutes: 120, SamplingIntervalMinutes: 1}
	records := make([]ScheduleRecord, 0, 12)
	for i := 0; i < 12; i++ {
		records = append(records, ScheduleRecord{
			ID:             string(rune('A' + i)),
			ArrivalTime:    int64(i * 5),
			TurnaroundTime: 40,
		})
	}

	// WHEN the simulation runs
	s := runSim(t, cfg, records)

	// THEN 0 <= PLBOccupied <= capacity in every sample
	for _, sample := range s.Samples() {
		if sample.PLBOccupied < 0 || sample.PLBOccupied > cfg.PLBCapacity {
			t.Errorf("minute %d: PLBOccupied %d out of [0, %d]", sample.Time, sample.PLBOccupied, cfg.PLBCapacity)
		}
	}
}

func TestSimulator_AllDeparturesWithinHorizon_EmptiesApron(t *testing.T) {
	// GIVEN every departure falling inside the horizon
	cfg := Config{PLBCapacity: 1, HorizonMinutes: 100, SamplingIntervalMinutes: 1}
	records := []ScheduleRecord{
		{ID: "A", ArrivalTime: 0, TurnaroundTime: 10},
		{ID: "B", ArrivalTime: 20, TurnaroundTime: 10},
	}

	// WHEN the simulation runs
	s := runSim(t, cfg, records)

	// THEN both counters drain to zero and every aircraft departed
	occ := s.Occupancy()
	if occ.PLBOccupied != 0 || occ.RemoteOccupied != 0 {
		t.Errorf("final occupancy: got %+v, want all zero", occ)
	}
	for _, ac := range s.Aircraft() {
		if ac.State != StateDeparted {
			t.Errorf("aircraft %s: got state %s, want %s", ac.ID, ac.State, StateDeparted)
		}
	}
}

func TestSimulator_DeparturePastHorizon_StrandsAircraft(t *testing.T) {
	// GIVEN an aircraft whose departure (minute 60) falls past the horizon
	cfg := Config{PLBCapacity: 1, HorizonMinutes: 50, SamplingIntervalMinutes: 1}
	records := []ScheduleRecord{
		{ID: "A", ArrivalTime: 40, TurnaroundTime: 20},
	}

	// WHEN the simulation runs
	s := runSim(t, cfg, records)

	// THEN the aircraft stays parked and final samples show it occupying a stand
	a, _ := s.AircraftByID("A")
	if a.State != StateParked {
		t.Errorf("aircraft A: got state %s, want %s", a.State, StateParked)
	}
	samples := s.Samples()
	last := samples[len(samples)-1]
	if last.Time != 50 {
		t.Fatalf("last sample minute: got %d, want 50", last.Time)
	}
	if last.PLBOccupied != 1 {
		t.Errorf("last sample: got PLBOccupied %d, want 1", last.PLBOccupied)
	}
}

func TestSimulator_SampleCountCoversFullHorizon(t *testing.T) {
	// GIVEN a 10-minute horizon with zero events between minutes 3 and 8
	cfg := Config{PLBCapacity: 1, HorizonMinutes: 10, SamplingIntervalMinutes: 1}
	records := []ScheduleRecord{
		{ID: "A", ArrivalTime: 1, TurnaroundTime: 2},
	}

	// WHEN the simulation runs
	s := runSim(t, cfg, records)

	// THEN exactly 11 gap-free samples exist (minutes 0..10)
	samples := s.Samples()
	if len(samples) != 11 {
		t.Fatalf("sample count: got %d, want 11", len(samples))
	}
	for i, sample := range samples {
		if sample.Time != int64(i) {
			t.Errorf("sample %d: got minute %d, want %d", i, sample.Time, i)
		}
	}
}

func TestSimulator_EmptySchedule_RunsToCompletion(t *testing.T) {
	cfg := Config{PLBCapacity: 3, HorizonMinutes: 5, SamplingIntervalMinutes: 1}

	s := runSim(t, cfg, nil)

	if s.State() != RunCompleted {
		t.Errorf("state: got %s, want %s", s.State(), RunCompleted)
	}
	if got := len(s.Samples()); got != 6 {
		t.Errorf("sample count: got %d, want 6", got)
	}
}

func TestSimulator_RejectsInvalidConfigBeforeStart(t *testing.T) {
	if _, err := NewSimulator(Config{PLBCapacity: -1, HorizonMinutes: 10, SamplingIntervalMinutes: 1}, nil); err == nil {
		t.Errorf("negative capacity: got nil error, want error")
	}
	bad := []ScheduleRecord{{ID: "A", ArrivalTime: 0, TurnaroundTime: 0}}
	if _, err := NewSimulator(DefaultConfig(), bad); err == nil {
		t.Errorf("non-positive turnaround: got nil error, want error")
	}
}

func TestSimulator_DuplicateArrival_AbortsWithInvariantError(t *testing.T) {
	// GIVEN a valid simulator with a second, defective arrival injected for
	// the same aircraft
	cfg := Config{PLBCapacity: 1, HorizonMinutes: 30, SamplingIntervalMinutes: 1}
	s, err := NewSimulator(cfg, []ScheduleRecord{{ID: "A", ArrivalTime: 0, TurnaroundTime: 10}})
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	ac, _ := s.AircraftByID("A")
	s.eventQueue.Schedule(&ArrivalEvent{baseEvent: s.newBase(2, EventArrival), Aircraft: ac})

	// WHEN the simulation runs
	err = s.Run()

	// THEN it aborts with an invariant error carrying full context
	var inv *InvariantError
	if !errors.As(err, &inv) {
		t.Fatalf("Run: got %v, want *InvariantError", err)
	}
	if inv.AircraftID != "A" || inv.Kind != EventArrival || inv.Timestamp != 2 || inv.State != StateParked {
		t.Errorf("InvariantError context: got %+v", inv)
	}
}

func TestSimulator_RunTwice_Rejected(t *testing.T) {
	s := runSim(t, Config{PLBCapacity: 1, HorizonMinutes: 5, SamplingIntervalMinutes: 1}, nil)
	if err := s.Run(); err == nil {
		t.Errorf("second Run: got nil error, want error")
	}
}
