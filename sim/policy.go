package sim

// AllocationPolicy decides the stand class for an arriving aircraft and
// claims the corresponding capacity in the pool. The decision uses only the
// pool's current occupancy: no lookahead, no backtracking.
type AllocationPolicy interface {
	Allocate(pool *StandPool) (StandClass, error)
}

// GreedyPolicy assigns PLB stands first-come-first-served while any remain
// free and falls back to remote stands otherwise. An aircraft sent to a
// remote stand is never moved back, even if a PLB stand frees up later.
type GreedyPolicy struct{}

// Allocate picks a class based on current occupancy and increments the
// matching counter.
func (GreedyPolicy) Allocate(pool *StandPool) (StandClass, error) {
	class := StandRemote
	if pool.PLBAvailable() {
		class = StandPLB
	}
	if err := pool.occupy(class); err != nil {
		return StandUnassigned, err
	}
	return class, nil
}
