package model

// neighborOffsets lists the 8-connected neighborhood of a cell
var neighborOffsets = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Classify splits the 8 neighbors of (x, y) into those alive and those dead in g.
// Every neighbor lands in exactly one of the two sets.
func Classify(g *Grid, x, y int) (alive, dead CellSet) {
	alive = make(CellSet, len(neighborOffsets))
	dead = make(CellSet, len(neighborOffsets))
	g.visitNeighbors(C(x, y), func(n Coord, isAlive bool) {
		if isAlive {
			alive.Insert(n)
		} else {
			dead.Insert(n)
		}
	})
	return alive, dead
}

// visitNeighbors calls fn for each neighbor of c with its state in g
func (g *Grid) visitNeighbors(c Coord, fn func(n Coord, alive bool)) {
	for _, off := range neighborOffsets {
		n := c.Add(off)
		fn(n, g.cells.Contains(n))
	}
}
