//go:build ebiten

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
	"github.com/sheikhrachel/sparse-gol/ui"
	"github.com/sheikhrachel/sparse-gol/utils"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	pattern := flag.String("pattern", "", "initial pattern, overrides config: "+model.PatternChoices())
	flag.Parse()

	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			log.Fatalf("%+v", err)
		}
	}
	if *pattern != "" {
		config.Pattern = *pattern
	}
	if !model.IsKnownPattern(config.Pattern) {
		log.Fatalf("unknown pattern %q, choose one of: %s", config.Pattern, model.PatternChoices())
	}

	game, err := ui.New(config)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(config.Width*config.CellSize, config.Height*config.CellSize)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
