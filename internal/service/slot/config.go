package slot

import (
	"encoding/json"
	"fmt"
)

// Default delivery hours.
const (
	DefaultStartHour  = 8
	DefaultEndHour    = 20
	DefaultSplitHours = 4
)

// Config describes the delivery day: windows of SplitHours from StartHour up to EndHour.
type Config struct {
	StartHour  int `json:"start"`
	EndHour    int `json:"end"`
	SplitHours int `json:"split"`
}

// DefaultConfig returns the 8-20 day split into 4 hour windows.
func DefaultConfig() Config {
	return Config{StartHour: DefaultStartHour, EndHour: DefaultEndHour, SplitHours: DefaultSplitHours}
}

// Validate reports why the config cannot produce windows.
func (c Config) Validate() error {
	switch {
	case c.StartHour < 0 || c.StartHour > 23:
		return fmt.Errorf("start hour %d out of range", c.StartHour)
	case c.EndHour < 1 || c.EndHour > 24:
		return fmt.Errorf("end hour %d out of range", c.EndHour)
	case c.StartHour >= c.EndHour:
		return fmt.Errorf("start hour %d must be before end hour %d", c.StartHour, c.EndHour)
	case c.SplitHours <= 0:
		return fmt.Errorf("split %d must be positive", c.SplitHours)
	}
	return nil
}

// Normalize returns c, or the defaults when c is malformed.
func (c Config) Normalize() Config {
	if c.Validate() != nil {
		return DefaultConfig()
	}
	return c
}

// ParseConfig decodes a stored {"start":..,"end":..,"split":..} value.
// Missing keys take their default value.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode delivery time config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
