// Synthetic flight schedule generation: arrival times uniform over the
// horizon, turnaround times from a clamped Gaussian. All sampling is driven
// by a single seeded RNG so the same seed reproduces the same schedule.

package workload

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/apron-sim/apron-sim/sim"
)

// TurnaroundSampler generates ground-time samples in minutes.
type TurnaroundSampler interface {
	// Sample returns a positive turnaround duration (>= 1).
	Sample(rng *rand.Rand) int64
}

// GaussianSampler produces clamped Gaussian turnaround times.
type GaussianSampler struct {
	mean, stdDev float64
	min, max     int64
}

// NewGaussianSampler builds a sampler clamped to [min, max]. The standard
// deviation is (max-min)/6 so roughly 99.7% of raw draws land inside the
// range before clamping.
func NewGaussianSampler(mean float64, min, max int64) *GaussianSampler {
	return &GaussianSampler{
		mean:   mean,
		stdDev: float64(max-min) / 6,
		min:    min,
		max:    max,
	}
}

func (s *GaussianSampler) Sample(rng *rand.Rand) int64 {
	if s.min == s.max {
		return s.min
	}
	val := rng.NormFloat64()*s.stdDev + s.mean
	clamped := math.Min(float64(s.max), math.Max(float64(s.min), val))
	result := int64(math.Round(clamped))
	if result < 1 {
		return 1
	}
	return result
}

// Generator produces synthetic flight schedules for the simulator.
type Generator struct {
	ArrivalsPerHour int     // average arrivals per hour across the horizon
	HorizonMinutes  int64   // schedule window, arrivals fall in [0, horizon)
	TurnaroundMean  float64 // mean turnaround in minutes
	TurnaroundMin   int64
	TurnaroundMax   int64
	Seed            int64
}

// Validate checks the generation parameters.
func (g Generator) Validate() error {
	if g.ArrivalsPerHour <= 0 {
		return fmt.Errorf("ArrivalsPerHour must be > 0, got %d", g.ArrivalsPerHour)
	}
	if g.HorizonMinutes <= 0 {
		return fmt.Errorf("HorizonMinutes must be > 0, got %d", g.HorizonMinutes)
	}
	if g.TurnaroundMin <= 0 {
		return fmt.Errorf("TurnaroundMin must be > 0, got %d", g.TurnaroundMin)
	}
	if g.TurnaroundMax < g.TurnaroundMin {
		return fmt.Errorf("TurnaroundMax must be >= TurnaroundMin, got %d < %d", g.TurnaroundMax, g.TurnaroundMin)
	}
	if g.TurnaroundMean < float64(g.TurnaroundMin) || g.TurnaroundMean > float64(g.TurnaroundMax) {
		return fmt.Errorf("TurnaroundMean must lie in [%d, %d], got %.1f", g.TurnaroundMin, g.TurnaroundMax, g.TurnaroundMean)
	}
	return nil
}

// Generate returns schedule records sorted by arrival time, with ids assigned
// in arrival order (AC0000, AC0001, ...).
func (g Generator) Generate() ([]sim.ScheduleRecord, error) {
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	rng := rand.New(rand.NewSource(g.Seed))
	total := int(int64(g.ArrivalsPerHour) * g.HorizonMinutes / 60)

	arrivals := make([]int64, total)
	for i := range arrivals {
		arrivals[i] = int64(rng.Float64() * float64(g.HorizonMinutes))
	}
	sort.Slice(arrivals, func(i, j int) bool { return arrivals[i] < arrivals[j] })

	sampler := NewGaussianSampler(g.TurnaroundMean, g.TurnaroundMin, g.TurnaroundMax)
	records := make([]sim.ScheduleRecord, total)
	for i := range records {
		records[i] = sim.ScheduleRecord{
			ID:             fmt.Sprintf("AC%04d", i),
			ArrivalTime:    arrivals[i],
			TurnaroundTime: sampler.Sample(rng),
		}
	}

	logrus.Infof("generated %d aircraft over %d minutes (seed %d)", total, g.HorizonMinutes, g.Seed)
	return records, nil
}
