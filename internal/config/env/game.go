package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"slot_client/internal/config"
)

type gameYAML struct {
	Game struct {
		Name    string `yaml:"name"`
		Reels   int    `yaml:"reels"`
		Rows    int    `yaml:"rows"`
		Symbols struct {
			High    []string `yaml:"high"`
			Low     []string `yaml:"low"`
			Special []string `yaml:"special"`
		} `yaml:"symbols"`
		DefaultSymbol        string    `yaml:"default_symbol"`
		BetLevels            []float64 `yaml:"bet_levels"`
		DefaultBetLevelIndex int       `yaml:"default_bet_level_index"`
	} `yaml:"game"`
}

type gameConfig struct {
	name                 string
	reels                int
	rows                 int
	symbols              []string
	defaultSymbol        string
	betLevels            []float64
	defaultBetLevelIndex int
}

func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var raw gameYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	g := raw.Game
	if g.Reels <= 0 || g.Rows <= 0 {
		return nil, fmt.Errorf("invalid board size %dx%d", g.Reels, g.Rows)
	}
	if len(g.BetLevels) == 0 {
		return nil, fmt.Errorf("bet levels not set")
	}
	if g.DefaultBetLevelIndex < 0 || g.DefaultBetLevelIndex >= len(g.BetLevels) {
		return nil, fmt.Errorf("default bet level index %d out of range", g.DefaultBetLevelIndex)
	}

	symbols := make([]string, 0, len(g.Symbols.High)+len(g.Symbols.Low)+len(g.Symbols.Special))
	symbols = append(symbols, g.Symbols.High...)
	symbols = append(symbols, g.Symbols.Low...)
	symbols = append(symbols, g.Symbols.Special...)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("symbol alphabet is empty")
	}

	defaultSymbol := g.DefaultSymbol
	if defaultSymbol == "" {
		// Пустую доску заполняем самым дешевым символом
		defaultSymbol = symbols[len(symbols)-1]
		if len(g.Symbols.Low) > 0 {
			defaultSymbol = g.Symbols.Low[len(g.Symbols.Low)-1]
		}
	}

	return &gameConfig{
		name:                 g.Name,
		reels:                g.Reels,
		rows:                 g.Rows,
		symbols:              symbols,
		defaultSymbol:        defaultSymbol,
		betLevels:            g.BetLevels,
		defaultBetLevelIndex: g.DefaultBetLevelIndex,
	}, nil
}

func (cfg *gameConfig) Name() string {
	return cfg.name
}

func (cfg *gameConfig) Reels() int {
	return cfg.reels
}

func (cfg *gameConfig) Rows() int {
	return cfg.rows
}

func (cfg *gameConfig) Symbols() []string {
	return cfg.symbols
}

func (cfg *gameConfig) DefaultSymbol() string {
	return cfg.defaultSymbol
}

func (cfg *gameConfig) BetLevels() []float64 {
	return cfg.betLevels
}

func (cfg *gameConfig) DefaultBetLevelIndex() int {
	return cfg.defaultBetLevelIndex
}
