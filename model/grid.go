package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Grid is one generation: an editing extent plus the sparse set of alive cells.
// Alive cells may lie outside the extent.
type Grid struct {
	dim   Dim
	cells CellSet
}

// NewGrid creates a grid with the given extent and alive cells
func NewGrid(dim Dim, cells ...Coord) *Grid {
	return &Grid{
		dim:   dim,
		cells: NewCellSet(cells...),
	}
}

// newGridFromSet wraps an existing set without copying it
func newGridFromSet(dim Dim, cells CellSet) *Grid {
	if cells == nil {
		cells = NewCellSet()
	}
	return &Grid{dim: dim, cells: cells}
}

// Dim returns the extent of the grid
func (g *Grid) Dim() Dim {
	return g.dim
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.dim.Width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.dim.Height
}

// Cells exposes the alive set. Callers that hold the current generation may edit it in place.
func (g *Grid) Cells() CellSet {
	return g.cells
}

// Reset resets the grid to a new extent with no alive cells
func (g *Grid) Reset(dim Dim) {
	g.dim = dim
	if g.cells == nil {
		g.cells = NewCellSet()
		return
	}
	g.cells.Clear()
}

// Clear kills every cell
func (g *Grid) Clear() {
	g.cells.Clear()
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if alive {
		g.cells.Insert(C(x, y))
		return
	}
	g.cells.Remove(C(x, y))
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	return g.cells.Contains(C(x, y))
}

// Toggle flips a cell and returns its new state
func (g *Grid) Toggle(x, y int) bool {
	alive := !g.Get(x, y)
	g.Set(x, y, alive)
	return alive
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	return newGridFromSet(g.dim, g.cells.Clone())
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() int {
	return g.cells.Len()
}

// CountCellsInExtent returns the number of living cells inside the grid's extent
func (g *Grid) CountCellsInExtent() int {
	count := 0
	for c := range g.cells {
		if g.dim.Contains(c) {
			count++
		}
	}
	return count
}

// Bounds is an inclusive rectangle of coordinates
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
}

// Size returns the number of cells covered by the bounds
func (b Bounds) Size() int {
	return (b.MaxX - b.MinX + 1) * (b.MaxY - b.MinY + 1)
}

// BoundingBox returns the smallest rectangle holding every alive cell.
// ok is false for an empty grid.
func (g *Grid) BoundingBox() (b Bounds, ok bool) {
	for c := range g.cells {
		if !ok {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			ok = true
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b, ok
}

// GetBoundingBoxSize returns the size of the active region
func (g *Grid) GetBoundingBoxSize() int {
	b, ok := g.BoundingBox()
	if !ok {
		return 0
	}
	return b.Size()
}

// GetGridHash returns an MD5 hash of the alive set, independent of iteration order
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, 0, 2*binary.MaxVarintLen64)
	for _, c := range g.cells.Sorted() {
		buf = binary.AppendVarint(buf[:0], int64(c.X))
		buf = binary.AppendVarint(buf, int64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// InjectRandomLife adds count random cells inside the extent to break stagnation
func (g *Grid) InjectRandomLife(rng *rand.Rand, count int) {
	if g.dim.Area() == 0 {
		return
	}
	for range count {
		g.Set(rng.IntN(g.dim.Width), rng.IntN(g.dim.Height), true)
	}
}

// Randomize brings each cell of the extent to life with the given probability
func (g *Grid) Randomize(rng *rand.Rand, density float64) {
	for y := range g.dim.Height {
		for x := range g.dim.Width {
			if rng.Float64() < density {
				g.Set(x, y, true)
			}
		}
	}
}
