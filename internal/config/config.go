package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Server holds the network and match identity settings.
type Server struct {
	IP        string `toml:"SERVER_IP"`
	Port      int    `toml:"SERVER_PORT"`
	ClientID  string `toml:"CLIENT_ID"`
	Map       string `toml:"MAP"`
	MaxPlayer int    `toml:"MAX_PLAYER"`
}

// Simulation holds the game loop tuning knobs.
type Simulation struct {
	TickRate         int     `toml:"tick_rate"`          // ticks per second
	VisionIntervalMS int     `toml:"vision_interval_ms"` // refresher period
	VisionMaxAge     float64 `toml:"vision_max_age"`     // seconds before a cached snapshot expires
	AbilityConfigs   string  `toml:"ability_configs"`    // path to the ability definition file
}

// VisionInterval returns the refresher period as a duration.
func (s Simulation) VisionInterval() time.Duration {
	return time.Duration(s.VisionIntervalMS) * time.Millisecond
}

// GameServer holds all configuration for the game server.
type GameServer struct {
	Server     Server     `toml:"server"`
	Simulation Simulation `toml:"simulation"`
}

// TickStep returns the fixed step duration derived from the tick rate.
func (c GameServer) TickStep() time.Duration {
	return time.Second / time.Duration(c.Simulation.TickRate)
}

// DefaultGameServer returns GameServer config with sensible defaults.
func DefaultGameServer() GameServer {
	return GameServer{
		Server: Server{
			IP:        "0.0.0.0",
			Port:      7777,
			ClientID:  "sengoku",
			Map:       "castle_siege",
			MaxPlayer: 10,
		},
		Simulation: Simulation{
			TickRate:         30,
			VisionIntervalMS: 100,
			VisionMaxAge:     0.2,
			AbilityConfigs:   "configs/abilities.yaml",
		},
	}
}

// LoadGameServer loads game server config from a TOML file.
// If the file doesn't exist, returns defaults.
func LoadGameServer(path string) (GameServer, error) {
	cfg := DefaultGameServer()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
