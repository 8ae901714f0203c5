package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lox/spider/spider"
	"github.com/lox/spider/internal/config"
	"github.com/lox/spider/internal/randutil"
)

// DealCmd prints a dealt tableau without starting the UI. Useful for
// eyeballing seeds and for scripting.
type DealCmd struct {
	Seed *int64 `help:"Deterministic RNG seed for the deal (optional)"`
}

func (c *DealCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	suit, err := cfg.GameSuit()
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	game := spider.New(suit, randutil.New(seed))
	fmt.Printf("seed %d\n", seed)
	for i, pile := range game.Tableau {
		cards := make([]string, 0, len(pile))
		for _, card := range pile {
			if card.FaceUp {
				cards = append(cards, card.String())
			} else {
				cards = append(cards, "##")
			}
		}
		fmt.Printf("pile %d: %s\n", i, strings.Join(cards, " "))
	}
	fmt.Printf("stock: %d cards\n", len(game.Stock))
	return nil
}
