package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/term2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			Spawn4Probability: 0.1,
			Target:            2048,
		},
		Console: ConsoleConfig{
			InvalidDelay: time.Second,
			ClearScreen:  true,
		},
		Storage: StorageConfig{
			DBPath: "~/.term2048/scores.db",
		},
		Solver: SolverConfig{
			Depth:     2,
			CacheSize: 65536,
		},
		SSH: SSHConfig{
			Address:     ":23234",
			HostKey:     ".ssh/term2048_ed25519",
			IdleTimeout: 10 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
