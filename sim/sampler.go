// Produces the fixed-cadence occupancy time series. The sampler is advanced
// by the Simulator between events, so every sample reflects apron state after
// all events at earlier minutes have been fully processed.

package sim

// MetricsSample is one fixed-cadence snapshot of apron occupancy.
type MetricsSample struct {
	Time           int64 // sampling minute
	PLBOccupied    int
	RemoteOccupied int
	TotalParked    int
}

// MetricsSampler appends one MetricsSample per sampling tick over the full
// horizon, gap-free, regardless of how sparse or dense events are.
type MetricsSampler struct {
	interval int64
	horizon  int64
	nextTick int64
	samples  []MetricsSample
}

// NewMetricsSampler creates a sampler covering [0, horizon] at the given
// interval. The first tick is minute 0.
func NewMetricsSampler(interval, horizon int64) *MetricsSampler {
	return &MetricsSampler{
		interval: interval,
		horizon:  horizon,
		samples:  make([]MetricsSample, 0, horizon/interval+1),
	}
}

// AdvanceBefore emits a sample for every pending tick strictly below t.
// A tick that coincides with an event's timestamp is emitted only after all
// events at that minute have executed, matching the per-minute reporter
// semantics: samples never observe mid-mutation state.
func (ms *MetricsSampler) AdvanceBefore(t int64, pool *StandPool) {
	for ms.nextTick < t && ms.nextTick <= ms.horizon {
		ms.record(pool)
	}
}

// Finish emits all remaining ticks through the horizon using the final
// occupancy values. Called once after the event loop ends.
func (ms *MetricsSampler) Finish(pool *StandPool) {
	for ms.nextTick <= ms.horizon {
		ms.record(pool)
	}
}

func (ms *MetricsSampler) record(pool *StandPool) {
	occ := pool.Snapshot()
	ms.samples = append(ms.samples, MetricsSample{
		Time:           ms.nextTick,
		PLBOccupied:    occ.PLBOccupied,
		RemoteOccupied: occ.RemoteOccupied,
		TotalParked:    occ.TotalParked,
	})
	ms.nextTick += ms.interval
}

// Samples returns the collected time series in chronological order.
func (ms *MetricsSampler) Samples() []MetricsSample {
	return ms.samples
}
