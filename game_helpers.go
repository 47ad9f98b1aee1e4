package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

// session is the driver-owned simulation state. Only the loop goroutine touches it.
type session struct {
	config   utils.Config
	grid     *model.Grid
	pool     *model.GridPool
	history  model.History
	stats    *utils.Stats
	pacer    *utils.Pacer
	rng      *rand.Rand
	renderer *model.TerminalRenderer
	out      io.Writer
	// clearScreen wipes the terminal before each frame
	clearScreen func()

	paused         bool
	cleared        bool // user cleared the grid; no automatic restart until reseeded
	generation     int
	stagnantCount  int
	lastRestartGen int
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*session, error) {
	var pool *model.GridPool
	if config.UseMemoryPool {
		pool = model.NewGridPool()
	}

	rng := rand.New(rand.NewPCG(uint64(config.Seed), 0))
	grid := model.NewGrid(model.Dim{Width: config.Width, Height: config.Height})
	if err := grid.ResetWithInterestingPatterns(config, rng); err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build initial grid")
	}

	renderer := &model.TerminalRenderer{}
	return &session{
		config:      config,
		grid:        grid,
		pool:        pool,
		stats:       utils.NewStats(),
		pacer:       utils.NewPacer(config.FrameRate, config.SpeedStep),
		rng:         rng,
		renderer:    renderer,
		out:         out,
		clearScreen: renderer.Clear,
	}, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid, interactive bool) {
	fmt.Printf("Pattern: %s | Memory Pool: %v\n", config.Pattern, config.UseMemoryPool)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.GetWidth(), grid.GetHeight(), grid.CountLivingCells())
	if interactive {
		fmt.Println("Keys: space pause | n step | c clear | r restart | up/down speed | q quit")
	}
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

// extentDensity returns the share of the extent's cells that are alive, in percent.
// Cells that have wandered outside the extent are not counted.
func extentDensity(grid *model.Grid) float64 {
	return float64(grid.CountCellsInExtent()) / float64(max(1, grid.Dim().Area())) * 100
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	history *model.History,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := extentDensity(grid)

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, grid.GetBoundingBoxSize(), frameDuration)

	// Compare against earlier generations, then remember this one
	isStagnant := history.Observe(grid)

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant (%d)", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	out io.Writer,
	generation, livingCells int,
	density float64,
	status string,
	stats *utils.Stats,
	pacer *utils.Pacer,
	lastRestartGen int,
	paused bool,
) {
	if paused {
		status += " [paused]"
	}

	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells\n",
		generation, livingCells, density, status, stats.BoundingBoxSize)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Interval: %v | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, pacer.Interval(), time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Fprintf(out, "Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Fprintln(out)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if config.RefreshEvery > 0 && generation > 0 && generation%config.RefreshEvery == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame builds a freshly seeded grid, recycling the old one
func (s *session) restartGame() error {
	next := s.grid
	if s.pool != nil {
		next = s.pool.Get(s.grid.Dim())
		model.GridToPool(s.grid, s.pool)
	}
	if err := next.ResetWithInterestingPatterns(s.config, s.rng); err != nil {
		return errors.Wrap(err, "[restartGame] failed to reseed grid")
	}

	s.grid = next
	s.history.Reset()
	s.lastRestartGen = s.generation
	s.stagnantCount = 0
	s.cleared = false
	fmt.Fprintf(s.out, "New patterns loaded! Living cells: %d\n", s.grid.CountLivingCells())
	return nil
}

// advance replaces the current grid with the next generation
func (s *session) advance() {
	next := s.grid.NextGeneration(s.pool)

	// Return old grid to pool if using memory pooling
	model.GridToPool(s.grid, s.pool)
	s.grid = next
	s.generation++
}
