package model

import (
	"fmt"
	"sort"
)

// Coord identifies one cell on the unbounded plane
type Coord struct {
	X int
	Y int
}

// C is a shorthand constructor for Coord
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the coordinate offset by other
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Dim is the viewport and editing bound of a grid. The transition rule never consults it.
type Dim struct {
	Width  int
	Height int
}

// Contains reports whether c lies within [0,Width)x[0,Height)
func (d Dim) Contains(c Coord) bool {
	return c.X >= 0 && c.X < d.Width && c.Y >= 0 && c.Y < d.Height
}

// Area returns the number of cells covered by the extent
func (d Dim) Area() int {
	if d.Width <= 0 || d.Height <= 0 {
		return 0
	}
	return d.Width * d.Height
}

// CellSet is a set of coordinates
type CellSet map[Coord]struct{}

// NewCellSet returns a set holding the given cells
func NewCellSet(cells ...Coord) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

// Contains reports whether c is in the set
func (s CellSet) Contains(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Insert adds c to the set
func (s CellSet) Insert(c Coord) {
	s[c] = struct{}{}
}

// Remove deletes c from the set
func (s CellSet) Remove(c Coord) {
	delete(s, c)
}

// Clear empties the set, keeping its storage
func (s CellSet) Clear() {
	clear(s)
}

// Len returns the number of cells in the set
func (s CellSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Sorted returns the cells in row-major order
func (s CellSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
