package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/sparse-gol/input"
	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/utils"
)

const configFile = "config.json"

var (
	errQuit           = errors.New("quit requested")
	errMaxGenerations = errors.New("maximum generations reached")
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("failed to load configuration: %+v", err)
		}
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	if !model.IsKnownPattern(config.Pattern) {
		log.Fatalf("unknown pattern %q, choose one of: %s", config.Pattern, model.PatternChoices())
	}

	s, err := initializeGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("failed to start: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	keys := make(chan input.Key, 16)

	var term *input.Terminal
	if config.Interactive {
		if term, err = input.Open(int(os.Stdin.Fd())); err != nil {
			fmt.Printf("Interactive controls disabled: %v\n", err)
			term = nil
		}
	}
	displayGameInfo(config, s.grid, term != nil)

	if term != nil {
		eg.Go(func() error { return term.ReadKeys(ctx, keys) })
	}
	eg.Go(func() error { return s.run(ctx, keys) })

	err = eg.Wait()
	if term != nil {
		if rerr := term.Restore(); rerr != nil {
			log.Printf("%+v", rerr)
		}
	}
	switch {
	case errors.Is(err, errMaxGenerations):
		fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
	case err != nil && !errors.Is(err, errQuit):
		log.Printf("game loop stopped: %+v", err)
	}

	fmt.Println("\nShutting down gracefully...")
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		s.generation, time.Since(s.stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		s.stats.GenerationsPerSecond, s.stats.AveragePopulation)
	model.GridToPool(s.grid, s.pool)
}

// run is the main game loop. It owns s exclusively: key presses are applied between
// ticks, never while a generation is being replaced.
func (s *session) run(ctx context.Context, keys <-chan input.Key) error {
	timer := time.NewTimer(0)
	defer timer.Stop()
	lastFrameTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case k := <-keys:
			if err := s.handleKey(k); err != nil {
				return err
			}
			s.draw()
			continue
		case <-timer.C:
		}

		frameStart := time.Now()
		if err := s.tick(lastFrameTime); err != nil {
			return err
		}
		lastFrameTime = frameStart

		// Wait before next frame
		timer.Reset(s.pacer.Interval())
	}
}

// draw renders the current grid and its status without advancing it
func (s *session) draw() {
	s.clearScreen()
	livingCells := s.grid.CountLivingCells()
	density := extentDensity(s.grid)
	status := "Active"
	if livingCells == 0 {
		status = "Extinct"
	}
	displayGameStatus(s.out, s.generation, livingCells, density, status, s.stats, s.pacer, s.lastRestartGen, s.paused)
	if err := s.renderer.Display(s.out, s.grid); err != nil {
		log.Printf("render failed: %+v", err)
	}
}

// tick renders one frame and, unless paused, advances the simulation. A restart
// replaces the grid without advancing it, so the new seed is drawn on the next tick.
func (s *session) tick(lastFrameTime time.Time) error {
	if s.paused {
		return nil
	}

	s.clearScreen()

	// Update game state
	livingCells, density, status, isStagnant := updateGameState(s.grid, &s.history, s.generation, lastFrameTime, s.stats)

	// Update stagnation counter
	if isStagnant {
		s.stagnantCount++
	} else {
		s.stagnantCount = 0
	}

	// Display current status
	displayGameStatus(s.out, s.generation, livingCells, density, status, s.stats, s.pacer, s.lastRestartGen, s.paused)
	if err := s.renderer.Display(s.out, s.grid); err != nil {
		return errors.Wrap(err, "[tick] failed to render grid")
	}

	// Check for max generations limit
	if s.config.MaxGenerations > 0 && s.generation >= s.config.MaxGenerations {
		return errMaxGenerations
	}

	// A grid the user cleared stays empty until restarted by hand
	if s.cleared {
		s.advance()
		return nil
	}

	// Check restart conditions
	shouldRestart, restartReason := checkRestartConditions(livingCells, s.stagnantCount, s.generation, s.config)

	if shouldRestart && s.config.AutoRestart {
		fmt.Fprintf(s.out, "Restarting due to %s...\n", restartReason)
		return s.restartGame()
	}
	if s.stagnantCount >= 2 && s.stagnantCount < s.config.StagnationThreshold {
		// Inject some life to try to break the stagnation
		s.grid.InjectRandomLife(s.rng, s.config.InjectionCount)
	}

	s.advance()
	return nil
}

// handleKey applies one interactive command between ticks
func (s *session) handleKey(k input.Key) error {
	switch k {
	case input.KeyQuit:
		return errQuit
	case input.KeyPause:
		s.paused = !s.paused
	case input.KeyClear:
		s.grid.Clear()
		s.history.Reset()
		s.stagnantCount = 0
		s.cleared = true
	case input.KeyStep:
		if s.paused {
			s.advance()
		}
	case input.KeyRestart:
		return s.restartGame()
	case input.KeyFaster:
		s.pacer.Faster()
	case input.KeySlower:
		s.pacer.Slower()
	}
	return nil
}
