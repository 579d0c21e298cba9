// Package config provides YAML-based configuration loading for term2048.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Console ConsoleConfig `yaml:"console"`
	Storage StorageConfig `yaml:"storage"`
	Solver  SolverConfig  `yaml:"solver"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the rules of a game.
type GameConfig struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"` // Chance a spawned tile is a 4
	Target            int     `yaml:"target"`             // Winning tile, 0 disables the win banner
}

// ConsoleConfig defines the line-oriented front end.
type ConsoleConfig struct {
	InvalidDelay time.Duration `yaml:"invalid_delay"`
	Verbose      bool          `yaml:"verbose"`
	ClearScreen  bool          `yaml:"clear_screen"` // Only honored when stdout is a terminal
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SolverConfig defines the expectimax search.
type SolverConfig struct {
	Depth     int `yaml:"depth"`      // Search depth in player moves
	CacheSize int `yaml:"cache_size"` // Evaluation cache entries
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig defines process logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Game.Spawn4Probability < 0 || c.Game.Spawn4Probability > 1:
		return fmt.Errorf("config: game.spawn4_probability %v outside [0, 1]", c.Game.Spawn4Probability)
	case c.Game.Target < 0:
		return fmt.Errorf("config: game.target %d is negative", c.Game.Target)
	case c.Game.Target > 0 && c.Game.Target&(c.Game.Target-1) != 0:
		return fmt.Errorf("config: game.target %d is not a power of two", c.Game.Target)
	case c.Console.InvalidDelay < 0:
		return fmt.Errorf("config: console.invalid_delay %v is negative", c.Console.InvalidDelay)
	case c.Storage.DBPath == "":
		return errors.New("config: storage.db_path is empty")
	case c.Solver.Depth <= 0:
		return fmt.Errorf("config: solver.depth %d must be positive", c.Solver.Depth)
	case c.Solver.CacheSize <= 0:
		return fmt.Errorf("config: solver.cache_size %d must be positive", c.Solver.CacheSize)
	case c.SSH.Address == "":
		return errors.New("config: ssh.address is empty")
	case c.SSH.IdleTimeout < 0:
		return fmt.Errorf("config: ssh.idle_timeout %v is negative", c.SSH.IdleTimeout)
	case !validLevels[c.Log.Level]:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	return nil
}
