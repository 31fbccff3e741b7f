package train

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ember-ml/ember/internal/dataset"
)

// Config holds the training hyperparameters. Zero values are filled in
// from DefaultConfig, so a partial YAML file is enough.
type Config struct {
	Dataset      string  `yaml:"dataset"`       // one of dataset.Names()
	Points       int     `yaml:"points"`        // dataset size
	Hidden       int     `yaml:"hidden"`        // hidden layer width
	LearningRate float64 `yaml:"learning_rate"` // SGD learning rate
	Momentum     float64 `yaml:"momentum"`      // SGD momentum, 0 disables
	Epochs       int     `yaml:"epochs"`        // training epochs
	Seed         int64   `yaml:"seed"`          // rng seed for data + init
	LogEvery     int     `yaml:"log_every"`     // epochs between log lines
}

// DefaultConfig returns the baseline configuration: the xor dataset with a
// small two-hidden-layer network, matching the classic teaching setup.
func DefaultConfig() Config {
	return Config{
		Dataset:      "xor",
		Points:       50,
		Hidden:       8,
		LearningRate: 0.1,
		Momentum:     0,
		Epochs:       500,
		Seed:         42,
		LogEvery:     10,
	}
}

// LoadConfig reads a YAML config file, layering it over DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("train: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("train: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the trainer cannot run.
func (c Config) Validate() error {
	known := false
	for _, name := range dataset.Names() {
		if c.Dataset == name {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("train: unknown dataset %q (want one of %v)", c.Dataset, dataset.Names())
	}
	if c.Points <= 0 {
		return fmt.Errorf("train: points must be positive, got %d", c.Points)
	}
	if c.Hidden <= 0 {
		return fmt.Errorf("train: hidden must be positive, got %d", c.Hidden)
	}
	if c.LearningRate <= 0 {
		return fmt.Errorf("train: learning_rate must be positive, got %g", c.LearningRate)
	}
	if c.Momentum < 0 || c.Momentum >= 1 {
		return fmt.Errorf("train: momentum must be in [0, 1), got %g", c.Momentum)
	}
	if c.Epochs <= 0 {
		return fmt.Errorf("train: epochs must be positive, got %d", c.Epochs)
	}
	return nil
}
