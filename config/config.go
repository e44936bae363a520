package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Config holds runtime configuration of the dot tracking tool.
// Fields may be loaded from a JSON file and overridden by command-line flags.
type Config struct {
	// Frames: camera index, video file or directory of still images
	Source    string `json:"source"`
	MaxFrames int    `json:"max_frames"`

	// Seeds, one dot is tracked per seed
	Seeds []Seed `json:"seeds"`

	// Tracking parameters
	Accuracy       float64 `json:"accuracy"`
	ComputeMoments bool    `json:"compute_moments"`
	// Predict is the time between two frames given to the position predictor, 0 disables it
	Predict float64 `json:"predict"`
	// MaxLost is the number of frames a lost dot is seeded again before it is dropped
	MaxLost int `json:"max_lost"`
	// GroupIoU drops dots converging on the same region, 0 disables it
	GroupIoU float64 `json:"group_iou"`

	// Diagnostics
	OverlayDir   string `json:"overlay_dir"`
	OverlayScale int    `json:"overlay_scale"`
	LogLevel     string `json:"log_level"`
	LogJSON      bool   `json:"log_json"`
}

// Seed is the pixel a dot is initialised from
type Seed struct {
	U int `json:"u"`
	V int `json:"v"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Source:         "0",
		MaxFrames:      0,
		Seeds:          []Seed{},
		Accuracy:       0.65,
		ComputeMoments: false,
		Predict:        0,
		MaxLost:        0,
		GroupIoU:       0,
		OverlayDir:     "",
		OverlayScale:   1,
		LogLevel:       "info",
		LogJSON:        false,
	}
}

// Validate clamps/normalizes values to safe ranges. Seeds with negative coordinates are an error.
func (c *Config) Validate() error {
	if c.Source == "" {
		c.Source = "0"
	}
	if c.MaxFrames < 0 {
		c.MaxFrames = 0
	}
	switch {
	case c.Accuracy < 0.05:
		c.Accuracy = 0.05
	case c.Accuracy > 1:
		c.Accuracy = 1.0
	}
	if c.Predict < 0 {
		c.Predict = 0
	}
	if c.MaxLost < 0 {
		c.MaxLost = 0
	}
	if c.GroupIoU < 0 || c.GroupIoU > 1 {
		c.GroupIoU = 0
	}
	if c.OverlayScale < 1 {
		c.OverlayScale = 1
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = "info"
	}
	for i, s := range c.Seeds {
		if s.U < 0 || s.V < 0 {
			return errors.Errorf("seed %d (%d, %d) has negative coordinates", i, s.U, s.V)
		}
	}
	return nil
}

// RequireSeeds returns an error when there is no dot to seed
func (c *Config) RequireSeeds() error {
	if len(c.Seeds) == 0 {
		return errors.New("no seed to track")
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "Can't open config '%s'", path)
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "Can't decode config '%s'", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "Invalid config '%s'", path)
	}
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return errors.Wrap(err, "Can't save invalid config")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "Can't create config '%s'", path)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		f.Close()
		return errors.Wrapf(err, "Can't encode config '%s'", path)
	}
	return f.Close()
}
