package model

import (
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/utils"
)

// RandomPattern names the seeding mode that scatters gliders, blinkers and noise
const RandomPattern = "random"

// ErrUnknownPattern is returned when a pattern name is not in the library
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of alive cells relative to its top-left corner
type Pattern struct {
	Name  string
	Cells []Coord
}

var patterns = map[string]Pattern{
	"block":   {Name: "block", Cells: []Coord{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
	"blinker": {Name: "blinker", Cells: []Coord{{0, 0}, {1, 0}, {2, 0}}},
	"glider": {Name: "glider", Cells: []Coord{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}},
	"r_pentomino": {Name: "r_pentomino", Cells: []Coord{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	}},
	"gosper_glider_gun": {Name: "gosper_glider_gun", Cells: []Coord{
		{24, 0},
		{22, 1}, {24, 1},
		{12, 2}, {13, 2}, {20, 2}, {21, 2}, {34, 2}, {35, 2},
		{11, 3}, {15, 3}, {20, 3}, {21, 3}, {34, 3}, {35, 3},
		{0, 4}, {1, 4}, {10, 4}, {16, 4}, {20, 4}, {21, 4},
		{0, 5}, {1, 5}, {10, 5}, {14, 5}, {16, 5}, {17, 5}, {22, 5}, {24, 5},
		{10, 6}, {16, 6}, {24, 6},
		{11, 7}, {15, 7},
		{12, 8}, {13, 8},
	}},
}

// PatternNames lists the built-in patterns in alphabetical order
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern returns the built-in pattern with the given name
func LookupPattern(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[LookupPattern] %q", name)
	}
	return p, nil
}

// PatternChoices lists every accepted pattern name, including the random seeding mode
func PatternChoices() string {
	return strings.Join(append(PatternNames(), RandomPattern), ", ")
}

// IsKnownPattern reports whether name is a library pattern or the random seeding mode
func IsKnownPattern(name string) bool {
	if name == RandomPattern {
		return true
	}
	_, ok := patterns[name]
	return ok
}

// Size returns the extent of the pattern's bounding box
func (p Pattern) Size() Dim {
	var d Dim
	for _, c := range p.Cells {
		d.Width = max(d.Width, c.X+1)
		d.Height = max(d.Height, c.Y+1)
	}
	return d
}

// Place brings the pattern to life in g with its top-left corner at origin
func (p Pattern) Place(g *Grid, origin Coord) {
	for _, c := range p.Cells {
		g.cells.Insert(origin.Add(c))
	}
}

// Centered returns the origin that centers the pattern inside dim
func (p Pattern) Centered(dim Dim) Coord {
	size := p.Size()
	return C(max(0, (dim.Width-size.Width)/2), max(0, (dim.Height-size.Height)/2))
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	patterns["glider"].Place(g, C(startX, startY))
}

// AddOscillator adds a blinker oscillator pattern
func (g *Grid) AddOscillator(startX, startY int) {
	patterns["blinker"].Place(g, C(startX, startY))
}

// ResetWithInterestingPatterns clears the grid and seeds it according to config.Pattern
func (g *Grid) ResetWithInterestingPatterns(config utils.Config, rng *rand.Rand) error {
	g.Reset(Dim{Width: config.Width, Height: config.Height})

	if config.Pattern != RandomPattern {
		p, err := LookupPattern(config.Pattern)
		if err != nil {
			return errors.Wrap(err, "[ResetWithInterestingPatterns] failed to seed grid")
		}
		p.Place(g, p.Centered(g.dim))
		return nil
	}

	w, h := g.dim.Width, g.dim.Height
	if w >= 10 && h >= 10 {
		g.AddGlider(5, 5)
		if w >= 20 && h >= 15 {
			g.AddGlider(w-8, 5)
		}

		g.AddOscillator(w/4, h/4)
		if w >= 30 {
			g.AddOscillator(3*w/4, 3*h/4)
		}
	}

	g.Randomize(rng, config.RandomDensity)
	return nil
}
