package ability

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Format selects the config wire format.
type Format int8

const (
	FormatYAML Format = iota
	FormatJSON
)

// ErrUnsupportedFormat is returned when a config file extension is neither
// YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// ConfigStore indexes ability configs by ability id. Read-only after load.
type ConfigStore struct {
	configs map[string]*Config
}

// NewConfigStore creates an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{configs: make(map[string]*Config)}
}

// Load parses a mapping of ability_id → config and merges it into the store.
// The id field of each config is overwritten with its map key.
func (s *ConfigStore) Load(data []byte, format Format) error {
	raw := make(map[string]*Config)

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing ability config: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing ability config: %w", err)
		}
	default:
		return ErrUnsupportedFormat
	}

	for id, cfg := range raw {
		cfg.ID = id
		s.configs[id] = cfg
	}

	slog.Info("loaded ability configs", "count", len(raw), "total", len(s.configs))
	return nil
}

// LoadFile reads a config file, selecting the format by extension.
// Unknown extensions fail with ErrUnsupportedFormat; the caller decides
// whether that is fatal for the process.
func (s *ConfigStore) LoadFile(path string) error {
	var format Format
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		format = FormatYAML
	case ".json":
		format = FormatJSON
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading ability config %s: %w", path, err)
	}

	if err := s.Load(data, format); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Register inserts or replaces one config keyed by its ID.
func (s *ConfigStore) Register(cfg *Config) {
	s.configs[cfg.ID] = cfg
}

// Get returns the config for an ability id.
func (s *ConfigStore) Get(abilityID string) (*Config, bool) {
	cfg, ok := s.configs[abilityID]
	return cfg, ok
}

// Len returns the number of loaded configs.
func (s *ConfigStore) Len() int {
	return len(s.configs)
}

// IDs returns all loaded ability ids.
func (s *ConfigStore) IDs() []string {
	ids := make([]string, 0, len(s.configs))
	for id := range s.configs {
		ids = append(ids, id)
	}
	return ids
}

// Marshal serializes the store back to the wire format, primarily for
// tooling and config round trips.
func (s *ConfigStore) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(s.configs)
	case FormatJSON:
		return json.Marshal(s.configs)
	default:
		return nil, ErrUnsupportedFormat
	}
}
