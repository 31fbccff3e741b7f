package train_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/train"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "train.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_PartialOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "dataset: circle\nepochs: 25\nlearning_rate: 0.05\n")

	cfg, err := train.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "circle", cfg.Dataset)
	assert.Equal(t, 25, cfg.Epochs)
	assert.Equal(t, 0.05, cfg.LearningRate)

	// Untouched fields keep the defaults.
	def := train.DefaultConfig()
	assert.Equal(t, def.Points, cfg.Points)
	assert.Equal(t, def.Hidden, cfg.Hidden)
	assert.Equal(t, def.Seed, cfg.Seed)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := train.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "epochs: [not a number\n")
	_, err := train.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := writeConfig(t, "epochs: -3\n")
	_, err := train.LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, train.DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*train.Config)
	}{
		{"unknown dataset", func(c *train.Config) { c.Dataset = "moons" }},
		{"zero points", func(c *train.Config) { c.Points = 0 }},
		{"zero hidden", func(c *train.Config) { c.Hidden = 0 }},
		{"negative lr", func(c *train.Config) { c.LearningRate = -0.1 }},
		{"momentum one", func(c *train.Config) { c.Momentum = 1 }},
		{"zero epochs", func(c *train.Config) { c.Epochs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := train.DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
