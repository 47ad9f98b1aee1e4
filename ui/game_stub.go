//go:build !ebiten

package ui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/utils"
)

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New reports that the ebiten build tag is required for GUI support.
func New(utils.Config) (*Game, error) {
	return nil, errors.New("ui.New requires building with the 'ebiten' tag")
}

// Title returns an empty title in the headless build.
func (g *Game) Title() string { return "" }
