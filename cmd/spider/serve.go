package main

import (
	"fmt"

	"github.com/lox/spider/internal/config"
	"github.com/lox/spider/internal/server"
)

// ServeCmd runs the WebSocket server
type ServeCmd struct {
	Addr     string `short:"a" help:"Server address to bind to (overrides config)"`
	LogLevel string `short:"l" help:"Log level (overrides config)"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	addr := cfg.ServerAddress()
	if c.Addr != "" {
		addr = c.Addr
	}
	level := cfg.Server.LogLevel
	if c.LogLevel != "" {
		level = c.LogLevel
	}
	logger := setupLogger(level)

	suit, err := cfg.GameSuit()
	if err != nil {
		return err
	}

	logger.Info("Starting spider server", "addr", addr, "suit", suit)
	return server.NewServer(addr, suit, logger).Start()
}
