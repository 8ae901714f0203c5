package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/spider/spider"
	"github.com/lox/spider/internal/config"
	"github.com/lox/spider/internal/randutil"
	"github.com/lox/spider/internal/store"
	"github.com/lox/spider/internal/tui"
)

// PlayCmd runs the interactive terminal game
type PlayCmd struct {
	Seed     *int64 `help:"Deterministic RNG seed for the deal (optional)"`
	NoResume bool   `help:"Start a fresh game instead of resuming a saved one"`
	Debug    bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level := cfg.Server.LogLevel
	if c.Debug {
		level = "debug"
	}
	logger := setupLogger(level)

	suit, err := cfg.GameSuit()
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	} else if cfg.Game.Seed != 0 {
		seed = cfg.Game.Seed
	}
	logger.Debug("Dealing", "suit", suit, "seed", seed)

	newGame := func() *spider.Game {
		return spider.New(suit, randutil.New(time.Now().UnixNano()))
	}
	game := spider.New(suit, randutil.New(seed))

	fileStore, err := store.NewFileStore(cfg.Game.SaveDir)
	if err != nil {
		return fmt.Errorf("opening save directory: %w", err)
	}
	if !c.NoResume {
		game = store.LoadGame(fileStore, logger, game)
	}

	model := tui.NewModel(game, newGame, logger, tui.Options{
		Store:      fileStore,
		Autosave:   cfg.UI.Autosave,
		ResetDelay: time.Duration(cfg.UI.AutoResetSeconds) * time.Second,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
