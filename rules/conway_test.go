package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}

		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Fatalf("dead cell with %d neighbors: got %v, want %v", neighbors, got, wantBorn)
		}
	}
}

func TestSurvivesAndBorn(t *testing.T) {
	if !Survives(2) || !Survives(3) || Survives(1) || Survives(4) {
		t.Fatal("Survives must accept exactly 2 and 3 neighbors")
	}
	if !Born(3) || Born(2) || Born(4) {
		t.Fatal("Born must accept exactly 3 neighbors")
	}
}
