package model

import (
	"math/rand/v2"
	"testing"
)

func TestToDenseLayout(t *testing.T) {
	g := NewGrid(Dim{Width: 3, Height: 2}, C(2, 0), C(0, 1))
	want := [][]bool{
		{false, false, true},
		{true, false, false},
	}

	got := ToDense(g)
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for y := range want {
		if len(got[y]) != len(want[y]) {
			t.Fatalf("row %d: got %d columns, want %d", y, len(got[y]), len(want[y]))
		}
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("[%d][%d] = %v, want %v", y, x, got[y][x], want[y][x])
			}
		}
	}
}

func TestToDenseDropsCellsOutsideExtent(t *testing.T) {
	g := NewGrid(Dim{Width: 2, Height: 2}, C(1, 1), C(-1, 0), C(2, 0), C(0, 5))
	m := ToDense(g)
	alive := 0
	for _, row := range m {
		for _, v := range row {
			if v {
				alive++
			}
		}
	}
	if alive != 1 || !m[1][1] {
		t.Fatalf("expected only (1,1) alive, got %v", m)
	}
}

func TestToDenseEmptyExtent(t *testing.T) {
	for _, dim := range []Dim{{}, {Width: 0, Height: 4}, {Width: 4, Height: 0}} {
		if m := ToDense(NewGrid(dim, C(0, 0))); len(m) != 0 {
			t.Fatalf("dim %v: got %d rows, want 0", dim, len(m))
		}
	}
}

func TestToSparse(t *testing.T) {
	tests := []struct {
		name    string
		matrix  [][]bool
		wantDim Dim
		want    CellSet
	}{
		{"nil", nil, Dim{}, NewCellSet()},
		{"no columns", [][]bool{{}, {}}, Dim{}, NewCellSet()},
		{"single", [][]bool{{true}}, Dim{Width: 1, Height: 1}, NewCellSet(C(0, 0))},
		{"rectangular", [][]bool{
			{false, true, false},
			{false, false, true},
		}, Dim{Width: 3, Height: 2}, NewCellSet(C(1, 0), C(2, 1))},
		{"ragged", [][]bool{
			{true},
			{false, false, true},
			{},
		}, Dim{Width: 3, Height: 3}, NewCellSet(C(0, 0), C(2, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ToSparse(tt.matrix)
			if g.Dim() != tt.wantDim {
				t.Fatalf("dim %v, want %v", g.Dim(), tt.wantDim)
			}
			if !g.Cells().Equal(tt.want) {
				t.Fatalf("cells %v, want %v", g.Cells().Sorted(), tt.want.Sorted())
			}
		})
	}
}

func TestDenseSparseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 0))
	dims := []Dim{{Width: 1, Height: 1}, {Width: 7, Height: 3}, {Width: 3, Height: 7}, {Width: 16, Height: 16}}

	for _, dim := range dims {
		for _, density := range []float64{0, 0.3, 1} {
			g := NewGrid(dim)
			g.Randomize(rng, density)

			back := ToSparse(ToDense(g))
			if back.Dim() != g.Dim() {
				t.Fatalf("dim %v came back as %v", g.Dim(), back.Dim())
			}
			if !back.Cells().Equal(g.Cells()) {
				t.Fatalf("dim %v density %v: cells %v came back as %v", dim, density, g.Cells().Sorted(), back.Cells().Sorted())
			}
		}
	}
}
