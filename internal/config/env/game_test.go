package env

import (
	"os"
	"path/filepath"
	"testing"
)

func writeGameYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validGameYAML = `
game:
  name: "Golden Fortune"
  reels: 5
  rows: 3
  symbols:
    high: [WILD, GOLD]
    low: [KING, QUEEN, TEN]
    special: [SCATTER]
  default_symbol: TEN
  bet_levels: [0.1, 0.25, 0.5, 1]
  default_bet_level_index: 3
`

func TestNewGameConfigFromYAML(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(writeGameYAML(t, validGameYAML))
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}

	if cfg.Name() != "Golden Fortune" {
		t.Errorf("Name = %q", cfg.Name())
	}
	if cfg.Reels() != 5 || cfg.Rows() != 3 {
		t.Errorf("board = %dx%d", cfg.Reels(), cfg.Rows())
	}
	if got := len(cfg.Symbols()); got != 6 {
		t.Errorf("symbols = %v", cfg.Symbols())
	}
	if cfg.DefaultSymbol() != "TEN" {
		t.Errorf("DefaultSymbol = %q", cfg.DefaultSymbol())
	}
	if len(cfg.BetLevels()) != 4 || cfg.DefaultBetLevelIndex() != 3 {
		t.Errorf("bet levels = %v, index %d", cfg.BetLevels(), cfg.DefaultBetLevelIndex())
	}
}

func TestGameConfigDefaultSymbolFallsBackToCheapestLow(t *testing.T) {
	cfg, err := NewGameConfigFromYAML(writeGameYAML(t, `
game:
  reels: 5
  rows: 3
  symbols:
    high: [WILD]
    low: [KING, TEN]
  bet_levels: [1]
  default_bet_level_index: 0
`))
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}
	if cfg.DefaultSymbol() != "TEN" {
		t.Errorf("DefaultSymbol = %q, want TEN", cfg.DefaultSymbol())
	}
}

func TestGameConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "zero reels",
			yaml: `
game:
  reels: 0
  rows: 3
  symbols:
    low: [TEN]
  bet_levels: [1]
`,
		},
		{
			name: "no bet levels",
			yaml: `
game:
  reels: 5
  rows: 3
  symbols:
    low: [TEN]
`,
		},
		{
			name: "default index out of range",
			yaml: `
game:
  reels: 5
  rows: 3
  symbols:
    low: [TEN]
  bet_levels: [0.1, 1]
  default_bet_level_index: 7
`,
		},
		{
			name: "empty alphabet",
			yaml: `
game:
  reels: 5
  rows: 3
  bet_levels: [1]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewGameConfigFromYAML(writeGameYAML(t, tt.yaml)); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestNewGameConfigMissingFile(t *testing.T) {
	if _, err := NewGameConfigFromYAML(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
