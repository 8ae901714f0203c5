// Package config loads the spider configuration from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/spider/spider"
)

// Config represents the complete configuration
type Config struct {
	Game   GameSettings   `hcl:"game,block"`
	Server ServerSettings `hcl:"server,block"`
	UI     UISettings     `hcl:"ui,block"`
}

// GameSettings configures the deal
type GameSettings struct {
	Suit    string `hcl:"suit,optional"`
	Seed    int64  `hcl:"seed,optional"`
	SaveDir string `hcl:"save_dir,optional"`
}

// ServerSettings configures the websocket server
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// UISettings configures the terminal client
type UISettings struct {
	AutoResetSeconds int  `hcl:"auto_reset_seconds,optional"`
	Autosave         bool `hcl:"autosave,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Suit:    "spades",
			SaveDir: defaultSaveDir(),
		},
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		UI: UISettings{
			AutoResetSeconds: 3,
			Autosave:         true,
		},
	}
}

func defaultSaveDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir + "/spider"
	}
	return ".spider"
}

// Load reads configuration from an HCL file. A missing file is not an
// error; it yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if _, err := cfg.GameSuit(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse decodes configuration from HCL source text. Tests use this to
// avoid touching the filesystem.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&cfg)
	if _, err := cfg.GameSuit(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Game.Suit == "" {
		cfg.Game.Suit = def.Game.Suit
	}
	if cfg.Game.SaveDir == "" {
		cfg.Game.SaveDir = def.Game.SaveDir
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = def.Server.LogLevel
	}
	if cfg.UI.AutoResetSeconds == 0 {
		cfg.UI.AutoResetSeconds = def.UI.AutoResetSeconds
	}
}

// GameSuit resolves the configured suit name
func (c *Config) GameSuit() (spider.Suit, error) {
	return spider.ParseSuit(c.Game.Suit)
}

// ServerAddress returns the full address to bind to
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
