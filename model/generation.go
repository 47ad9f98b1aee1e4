package model

import "github.com/sheikhrachel/sparse-gol/rules"

// Step returns the next generation of g. The input grid is left untouched.
func Step(g *Grid) *Grid {
	return g.NextGeneration(nil)
}

// NextGeneration calculates the next generation by visiting only alive cells and their
// neighbors, so patterns keep evolving past the grid's extent. When pool is non-nil the
// result grid is taken from it.
func (g *Grid) NextGeneration(pool *GridPool) *Grid {
	var next *Grid
	if pool != nil {
		next = pool.Get(g.dim)
		for c := range g.cells {
			next.cells.Insert(c)
		}
	} else {
		next = g.Clone()
	}

	// Survival and tallies read g.cells only, so births never feed back into this pass.
	tally := make(map[Coord]int, 2*len(g.cells))
	for c := range g.cells {
		alive, dead := Classify(g, c.X, c.Y)
		if !rules.Survives(alive.Len()) {
			next.cells.Remove(c)
		}
		for n := range dead {
			tally[n]++
		}
	}

	for c, count := range tally {
		if rules.Born(count) {
			next.cells.Insert(c)
		}
	}

	return next
}
