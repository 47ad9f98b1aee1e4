package model

import (
	"math"

	"github.com/pkg/errors"
)

// ErrOutOfBounds is returned when an edit targets a cell outside the grid's extent
var ErrOutOfBounds = errors.New("cell outside grid extent")

// EditAction is what a pointer edit does to the targeted cell
type EditAction int

const (
	// Paint brings the cell to life
	Paint EditAction = iota
	// Erase kills the cell
	Erase
	// Toggle flips the cell
	Toggle
)

func (a EditAction) String() string {
	switch a {
	case Paint:
		return "paint"
	case Erase:
		return "erase"
	case Toggle:
		return "toggle"
	}
	return "unknown"
}

// CellAt maps a pixel position on a surface of the given size to a grid coordinate
func CellAt(px, py, surfaceW, surfaceH float64, dim Dim) Coord {
	if dim.Area() == 0 || surfaceW <= 0 || surfaceH <= 0 {
		return C(-1, -1)
	}
	cellW := surfaceW / float64(dim.Width)
	cellH := surfaceH / float64(dim.Height)
	return C(int(math.Floor(px/cellW)), int(math.Floor(py/cellH)))
}

// Editor applies pointer edits to a grid. While a button is held the same cell is only
// edited once, so a toggle does not flicker on every frame.
type Editor struct {
	last    Coord
	hasLast bool
}

// Apply performs action on c in g. It reports whether the grid was changed.
func (e *Editor) Apply(g *Grid, c Coord, action EditAction) (bool, error) {
	if !g.Dim().Contains(c) {
		return false, errors.Wrapf(ErrOutOfBounds, "[Editor.Apply] %s %v in %dx%d",
			action, c, g.GetWidth(), g.GetHeight())
	}
	if e.hasLast && e.last == c {
		return false, nil
	}
	e.last, e.hasLast = c, true

	switch action {
	case Paint:
		g.Set(c.X, c.Y, true)
	case Erase:
		g.Set(c.X, c.Y, false)
	case Toggle:
		g.Toggle(c.X, c.Y)
	default:
		return false, errors.Errorf("[Editor.Apply] unsupported action %d", action)
	}
	return true, nil
}

// Release ends the current stroke so the next edit always applies
func (e *Editor) Release() {
	e.hasLast = false
}
