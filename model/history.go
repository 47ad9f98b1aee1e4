package model

const (
	historySize     = 5
	stagnationDepth = 3
)

// History keeps hashes of recent generations for cycle detection
type History struct {
	hashes []string
}

// Record adds g to the history, keeping only the most recent states
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded generations,
// i.e. the pattern is a still life or an oscillator of period three or less.
// Call it before recording g.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) == 0 {
		return false
	}

	current := g.GetGridHash()
	for i := 1; i <= stagnationDepth && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Observe checks g for stagnation and then records it
func (h *History) Observe(g *Grid) bool {
	stagnant := h.IsStagnant(g)
	h.Record(g)
	return stagnant
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}
