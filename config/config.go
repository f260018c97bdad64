package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"go.uber.org/zap/zapcore"
)

var (
	cfgFile = "towerkrieg-local/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor         int `json:"board"`
	BoardColorAlt      int `json:"board_alt"`
	MarginColor        int `json:"margin"`
	BlackColor         int `json:"black"`
	WhiteColor         int `json:"white"`
	CursorColorBG      int `json:"cursor_bg"`
	SelectedColorBG    int `json:"selected_bg"`
	DestinationColorBG int `json:"destination_bg"`
	LastPlayedColorBG  int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	Destination rune `json:"destination"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// LogConfig controls the log file. The terminal belongs to the board, so
// logs never go to stdout; an empty File disables logging.
type LogConfig struct {
	File  string `json:"file"`
	Level string `json:"level"`
}

type Config struct {
	Theme Theme     `json:"theme"`
	Log   LogConfig `json:"log"`
}

// InitConfig loads the user's config file from the XDG config directories,
// falling back to DefaultConfig when none exists.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return LoadFile(absPath)
}

// LoadFile reads filePath on top of DefaultConfig and validates the result.
func LoadFile(filePath string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.BoardSquare, c.Theme.Symbols.Destination} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.Log.Level)}
		}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return c.SaveFile(absPath)
}

// SaveFile writes the config to filePath.
func (c *Config) SaveFile(filePath string) error {
	return saveCfgFile(filePath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
