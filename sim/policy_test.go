package sim

import (
	"testing"
)

func TestGreedyPolicy_PLBWhileCapacityRemains(t *testing.T) {
	// GIVEN a pool with 2 PLB stands and the greedy policy
	pool := NewStandPool(2)
	policy := GreedyPolicy{}

	// WHEN three aircraft are allocated in sequence
	want := []StandClass{StandPLB, StandPLB, StandRemote}
	for i, wantClass := range want {
		class, err := policy.Allocate(pool)
		if err != nil {
			t.Fatalf("allocate %d: unexpected error: %v", i, err)
		}
		// THEN PLB is assigned while capacity remains, remote afterwards
		if class != wantClass {
			t.Errorf("allocate %d: got %s, want %s", i, class, wantClass)
		}
	}
}

func TestGreedyPolicy_ZeroCapacity_AlwaysRemote(t *testing.T) {
	pool := NewStandPool(0)
	policy := GreedyPolicy{}

	for i := 0; i < 5; i++ {
		class, err := policy.Allocate(pool)
		if err != nil {
			t.Fatalf("allocate %d: unexpected error: %v", i, err)
		}
		if class != StandRemote {
			t.Errorf("allocate %d: got %s, want %s", i, class, StandRemote)
		}
	}
	if got := pool.Snapshot().PLBOccupied; got != 0 {
		t.Errorf("PLBOccupied with zero capacity: got %d, want 0", got)
	}
}

func TestGreedyPolicy_PLBAgainAfterRelease(t *testing.T) {
	// GIVEN a full single-stand pool
	pool := NewStandPool(1)
	policy := GreedyPolicy{}
	if _, err := policy.Allocate(pool); err != nil {
		t.Fatalf("first allocate: %v", err)
	}

	// WHEN the stand is released and a new aircraft arrives
	if err := pool.release(StandPLB); err != nil {
		t.Fatalf("release: %v", err)
	}
	class, err := policy.Allocate(pool)
	if err != nil {
		t.Fatalf("second allocate: %v", err)
	}

	// THEN the freed PLB stand is assigned again
	if class != StandPLB {
		t.Errorf("allocate after release: got %s, want %s", class, StandPLB)
	}
}
