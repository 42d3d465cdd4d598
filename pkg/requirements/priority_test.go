package requirements

import (
	"math"
	"testing"
)

func TestPrioritizeOrdering(t *testing.T) {
	features := []string{"A", "B", "C"}
	criteria := Criteria{
		Impact: map[string]float64{"A": 8, "B": 5, "C": 7},
		Effort: map[string]float64{"A": 3, "B": 2, "C": 5},
	}

	got := Prioritize(features, criteria)
	if len(got) != 3 {
		t.Fatalf("expected 3 priorities, got %d", len(got))
	}

	// A: 8/3 ≈ 2.667, B: 5/2 = 2.5, C: 7/5 = 1.4
	wantOrder := []string{"A", "B", "C"}
	for i, want := range wantOrder {
		if got[i].Feature != want {
			t.Errorf("position %d: got %s, want %s", i, got[i].Feature, want)
		}
	}
	if math.Abs(got[0].Priority-8.0/3.0) > 1e-9 {
		t.Errorf("A priority = %v, want %v", got[0].Priority, 8.0/3.0)
	}
}

func TestPrioritizeDefaults(t *testing.T) {
	criteria := Criteria{
		Impact: map[string]float64{"known": 4},
		Effort: map[string]float64{},
	}

	got := Prioritize([]string{"known", "unknown"}, criteria)

	// Missing effort defaults to 1, so priority equals impact.
	if got[0].Feature != "known" || got[0].Priority != 4 {
		t.Errorf("known feature = %+v, want priority 4", got[0])
	}
	// Missing impact defaults to 0.
	if got[1].Feature != "unknown" || got[1].Priority != 0 {
		t.Errorf("unknown feature = %+v, want priority 0", got[1])
	}
}

func TestPrioritizeZeroImpactKept(t *testing.T) {
	criteria := Criteria{
		Impact: map[string]float64{"A": 0},
		Effort: map[string]float64{"A": 2},
	}

	got := Prioritize([]string{"A"}, criteria)
	if len(got) != 1 || got[0].Priority != 0 {
		t.Errorf("zero impact should score 0, got %+v", got)
	}
}

func TestPrioritizeExplicitZeroEffort(t *testing.T) {
	criteria := Criteria{
		Impact: map[string]float64{"urgent": 3, "other": 9},
		Effort: map[string]float64{"urgent": 0, "other": 3},
	}

	got := Prioritize([]string{"other", "urgent"}, criteria)
	if got[0].Feature != "urgent" {
		t.Errorf("explicit zero effort should rank first, got %s", got[0].Feature)
	}
	if !math.IsInf(got[0].Priority, 1) {
		t.Errorf("explicit zero effort priority = %v, want +Inf", got[0].Priority)
	}
}

func TestPrioritizeZeroEffortZeroImpact(t *testing.T) {
	criteria := Criteria{
		Impact: map[string]float64{},
		Effort: map[string]float64{"A": 0},
	}

	got := Prioritize([]string{"A"}, criteria)
	if !math.IsInf(got[0].Priority, 1) {
		t.Errorf("explicit zero effort yields +Inf even with missing impact, got %v", got[0].Priority)
	}
}

func TestPrioritizeStability(t *testing.T) {
	features := []string{"first", "second", "third"}
	criteria := Criteria{
		Impact: map[string]float64{"first": 2, "second": 2, "third": 2},
		Effort: map[string]float64{"first": 1, "second": 1, "third": 1},
	}

	got := Prioritize(features, criteria)
	for i, want := range features {
		if got[i].Feature != want {
			t.Errorf("equal scores must keep input order: position %d got %s, want %s", i, got[i].Feature, want)
		}
	}
}

func TestPrioritizeDuplicates(t *testing.T) {
	criteria := Criteria{
		Impact: map[string]float64{"A": 6},
		Effort: map[string]float64{"A": 2},
	}

	got := Prioritize([]string{"A", "A"}, criteria)
	if len(got) != 2 {
		t.Fatalf("duplicates are scored per occurrence, got %d entries", len(got))
	}
	for _, p := range got {
		if p.Feature != "A" || p.Priority != 3 {
			t.Errorf("duplicate entry = %+v, want {A 3}", p)
		}
	}
}

func TestPrioritizeEmpty(t *testing.T) {
	got := Prioritize(nil, Criteria{})
	if len(got) != 0 {
		t.Errorf("no features should yield empty result, got %d", len(got))
	}
}
