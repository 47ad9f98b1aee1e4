//go:build ebiten

// Package ui is the windowed front end: it draws the grid's extent and turns mouse
// and keyboard input into edits and driver commands.
package ui

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const (
	runningTitle = "Game of Life (running)"
	pausedTitle  = "Game of Life (paused)"

	borderSize = 2
)

var (
	cellColor       = color.RGBA{R: 255, A: 255}
	backgroundColor = color.Black
	statusColor     = color.White
)

// Game adapts the simulation to the ebiten.Game interface. The current grid belongs to
// Update; edits and generation replacement happen on the same goroutine.
type Game struct {
	config utils.Config
	grid   *model.Grid
	editor model.Editor
	pacer  *utils.Pacer
	rng    *rand.Rand

	paused     bool
	generation int
}

// New constructs a Game seeded from config
func New(config utils.Config) (*Game, error) {
	rng := rand.New(rand.NewPCG(uint64(config.Seed), 0))
	grid := model.NewGrid(model.Dim{Width: config.Width, Height: config.Height})
	if err := grid.ResetWithInterestingPatterns(config, rng); err != nil {
		return nil, errors.Wrap(err, "[ui.New] failed to seed grid")
	}

	return &Game{
		config: config,
		grid:   grid,
		pacer:  utils.NewPacer(config.FrameRate, config.SpeedStep),
		rng:    rng,
	}, nil
}

// Title returns the window title for the current run state
func (g *Game) Title() string {
	if g.paused {
		return pausedTitle
	}
	return runningTitle
}

// Update handles per-frame input and advances the simulation when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		ebiten.SetWindowTitle(g.Title())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.grid.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.grid.ResetWithInterestingPatterns(g.config, g.rng); err != nil {
			return err
		}
		g.generation = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pacer.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.pacer.Slower()
	}

	if err := g.handlePointer(); err != nil {
		return err
	}

	if !g.paused && g.pacer.ShouldStep(time.Now()) {
		g.grid = model.Step(g.grid)
		g.generation++
	}
	return nil
}

// handlePointer edits the cell under the cursor: middle toggles, left paints, right erases
func (g *Game) handlePointer() error {
	var action model.EditAction
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		action = model.Toggle
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		action = model.Paint
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		action = model.Erase
	default:
		g.editor.Release()
		return nil
	}

	w, h := g.Layout(0, 0)
	x, y := ebiten.CursorPosition()
	c := model.CellAt(float64(x), float64(y), float64(w), float64(h), g.grid.Dim())
	if _, err := g.editor.Apply(g.grid, c, action); err != nil && !errors.Is(err, model.ErrOutOfBounds) {
		return err
	}
	return nil
}

// Draw renders the alive cells inside the grid's extent and a status line.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	dim := g.grid.Dim()
	size := float32(g.config.CellSize)
	for c := range g.grid.Cells() {
		if !dim.Contains(c) {
			continue
		}
		vector.DrawFilledRect(screen,
			float32(c.X)*size+borderSize, float32(c.Y)*size+borderSize,
			size-borderSize, size-borderSize,
			cellColor, false)
	}

	status := fmt.Sprintf("gen %d  alive %d  interval %v", g.generation, g.grid.CountLivingCells(), g.pacer.Interval())
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, statusColor)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Width * g.config.CellSize, g.config.Height * g.config.CellSize
}
