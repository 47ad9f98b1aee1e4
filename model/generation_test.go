package model

import (
	"math/rand/v2"
	"testing"
)

// referenceStep is a dense golden step over the bounding box plus a one-cell margin.
func referenceStep(g *Grid) CellSet {
	next := NewCellSet()
	b, ok := g.BoundingBox()
	if !ok {
		return next
	}
	for y := b.MinY - 1; y <= b.MaxY+1; y++ {
		for x := b.MinX - 1; x <= b.MaxX+1; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if (dx != 0 || dy != 0) && g.Get(x+dx, y+dy) {
						n++
					}
				}
			}
			if n == 3 || (n == 2 && g.Get(x, y)) {
				next.Insert(C(x, y))
			}
		}
	}
	return next
}

func stepN(g *Grid, n int) *Grid {
	for range n {
		g = Step(g)
	}
	return g
}

func shifted(cells []Coord, by Coord) CellSet {
	out := NewCellSet()
	for _, c := range cells {
		out.Insert(c.Add(by))
	}
	return out
}

func TestStepEmptyStaysEmpty(t *testing.T) {
	for _, dim := range []Dim{{}, {Width: 1, Height: 1}, {Width: 100, Height: 3}} {
		next := Step(NewGrid(dim))
		if next.CountLivingCells() != 0 {
			t.Fatalf("dim %v: empty grid produced %d cells", dim, next.CountLivingCells())
		}
		if next.Dim() != dim {
			t.Fatalf("dim changed from %v to %v", dim, next.Dim())
		}
	}
}

func TestStepBlockIsStill(t *testing.T) {
	g := NewGrid(Dim{Width: 4, Height: 4}, C(0, 0), C(1, 0), C(0, 1), C(1, 1))
	next := Step(g)
	if !next.Cells().Equal(g.Cells()) {
		t.Fatalf("block changed: %v", next.Cells().Sorted())
	}
}

func TestStepBlinkerOscillates(t *testing.T) {
	horizontal := NewCellSet(C(1, 0), C(2, 0), C(3, 0))
	vertical := NewCellSet(C(2, -1), C(2, 0), C(2, 1))

	g := newGridFromSet(Dim{Width: 5, Height: 5}, horizontal.Clone())
	g = Step(g)
	if !g.Cells().Equal(vertical) {
		t.Fatalf("after one step got %v, want %v", g.Cells().Sorted(), vertical.Sorted())
	}
	g = Step(g)
	if !g.Cells().Equal(horizontal) {
		t.Fatalf("after two steps got %v, want %v", g.Cells().Sorted(), horizontal.Sorted())
	}
}

func TestStepGliderTranslates(t *testing.T) {
	glider := patterns["glider"].Cells
	g := NewGrid(Dim{Width: 10, Height: 10}, glider...)

	for period := 1; period <= 3; period++ {
		g = stepN(g, 4)
		want := shifted(glider, C(period, period))
		if !g.Cells().Equal(want) {
			t.Fatalf("after %d steps got %v, want %v", 4*period, g.Cells().Sorted(), want.Sorted())
		}
	}
}

func TestStepDoesNotClipAtExtent(t *testing.T) {
	glider := patterns["glider"].Cells
	g := NewGrid(Dim{Width: 5, Height: 5}, shifted(glider, C(2, 2)).Sorted()...)

	g = stepN(g, 40)
	want := shifted(glider, C(12, 12))
	if !g.Cells().Equal(want) {
		t.Fatalf("glider left the extent incorrectly: got %v, want %v", g.Cells().Sorted(), want.Sorted())
	}
	if g.Dim() != (Dim{Width: 5, Height: 5}) {
		t.Fatalf("dim changed to %v", g.Dim())
	}
}

func TestStepBirthOutsideExtentFeedsBack(t *testing.T) {
	vertical := NewCellSet(C(0, 0), C(0, 1), C(0, 2))
	g := newGridFromSet(Dim{Width: 3, Height: 3}, vertical.Clone())

	g = Step(g)
	if !g.Get(-1, 1) {
		t.Fatalf("expected birth at (-1,1), got %v", g.Cells().Sorted())
	}
	g = Step(g)
	if !g.Cells().Equal(vertical) {
		t.Fatalf("cell outside extent did not feed back: got %v", g.Cells().Sorted())
	}
}

func TestStepLeavesInputUntouched(t *testing.T) {
	g := NewGrid(Dim{Width: 8, Height: 8}, patterns["r_pentomino"].Cells...)
	before := g.Cells().Clone()

	next := Step(g)
	if !g.Cells().Equal(before) {
		t.Fatalf("input grid mutated: %v", g.Cells().Sorted())
	}
	next.Set(100, 100, true)
	if g.Get(100, 100) {
		t.Fatal("next generation aliases the input cell set")
	}
}

func TestStepMatchesDenseReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 0))
	for trial := range 50 {
		g := NewGrid(Dim{Width: 12, Height: 12})
		g.Randomize(rng, 0.35)
		// Some cells off the extent, including negative coordinates.
		g.Set(-1, -1, true)
		g.Set(-2, -1, true)
		g.Set(13, 5, true)

		for gen := range 5 {
			want := referenceStep(g)
			g = Step(g)
			if !g.Cells().Equal(want) {
				t.Fatalf("trial %d gen %d: got %v, want %v", trial, gen, g.Cells().Sorted(), want.Sorted())
			}
		}
	}
}

func TestStepIndependentOfIterationOrder(t *testing.T) {
	cells := patterns["gosper_glider_gun"].Cells
	rng := rand.New(rand.NewPCG(3, 0))
	want := Step(NewGrid(Dim{Width: 40, Height: 10}, cells...)).Cells()

	for range 20 {
		shuffled := append([]Coord(nil), cells...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := Step(NewGrid(Dim{Width: 40, Height: 10}, shuffled...)).Cells()
		if !got.Equal(want) {
			t.Fatalf("result depends on insertion order: got %v, want %v", got.Sorted(), want.Sorted())
		}
	}
}

func TestGosperGunEmitsGliders(t *testing.T) {
	gun := patterns["gosper_glider_gun"]
	g := NewGrid(Dim{Width: 60, Height: 40}, gun.Cells...)
	size := gun.Size()

	for period := 1; period <= 4; period++ {
		g = stepN(g, 30)
		if got, want := g.CountLivingCells(), 36+5*period; got != want {
			t.Fatalf("after %d generations population %d, want %d", 30*period, got, want)
		}

		inGun := NewCellSet()
		for c := range g.Cells() {
			if c.X < size.Width && c.Y < size.Height {
				inGun.Insert(c)
			}
		}
		if !inGun.Equal(NewCellSet(gun.Cells...)) {
			t.Fatalf("gun did not return to its initial phase after %d generations", 30*period)
		}
	}
}

func TestNextGenerationWithPoolMatchesStep(t *testing.T) {
	pool := NewGridPool()
	pooled := NewGrid(Dim{Width: 20, Height: 20}, patterns["r_pentomino"].Cells...)
	plain := pooled.Clone()

	for gen := range 30 {
		next := pooled.NextGeneration(pool)
		GridToPool(pooled, pool)
		pooled = next
		plain = Step(plain)

		if !pooled.Cells().Equal(plain.Cells()) {
			t.Fatalf("gen %d: pooled %v, plain %v", gen, pooled.Cells().Sorted(), plain.Cells().Sorted())
		}
		if pooled.Dim() != plain.Dim() {
			t.Fatalf("gen %d: pooled dim %v, plain dim %v", gen, pooled.Dim(), plain.Dim())
		}
	}
}
