// Package sim provides the discrete-event engine for airport stand
// allocation.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - aircraft.go: Aircraft lifecycle (scheduled → parked → departed)
//   - event.go: Arrival and departure events that drive the simulation
//   - simulator.go: The event loop, greedy allocation, and invariant checks
//
// Events are totally ordered by timestamp, then kind (departures before
// arrivals, so capacity is released before new demand is evaluated), then a
// per-run sequence number. Given identical input, two runs produce identical
// aircraft records and identical occupancy time series.
//
// Sub-packages hold the collaborators around the engine:
//   - sim/workload/: synthetic schedule generation and CSV schedule I/O
//   - sim/analytics/: post-run aggregation and result export
package sim
