package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/game"
	"github.com/vovakirdan/termsnake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game session.

Controls:
  Arrows/WASD  - Steer the snake
  R            - Restart (after game over)
  Q/Esc        - Quit

The snake moves once per tick (160 ms by default) no matter how fast
your terminal renders. Eat fruit to grow; your score is the snake's
length. Hitting a wall or your own body ends the game.`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "termsnake",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "err", err)
	}

	// Flags override the config file
	if flagTickMS > 0 {
		cfg.Game.TickIntervalMS = flagTickMS
	}
	if flagFPS > 0 {
		cfg.Game.FrameRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	rt := core.DefaultConfig()
	rt.TickInterval = cfg.Game.TickInterval()
	rt.FrameRate = cfg.Game.FrameRate
	rt.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	style := game.DefaultStyle()
	style.HeadRune = cfg.Theme.HeadRune()
	style.BodyRune = cfg.Theme.BodyRune()
	style.FruitRune = cfg.Theme.FruitRune()

	result, err := tui.Run(rt, style)
	if err != nil {
		logger.Fatal("cannot run game", "err", err)
	}

	fmt.Printf("Final score: %d\n", result.Score)
	if result.Outcome == game.OutcomeWin {
		fmt.Println("You filled the whole board. Perfect game!")
	}
}
