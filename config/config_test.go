package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClamps(t *testing.T) {
	c := &Config{
		Source:       "",
		MaxFrames:    -3,
		Seeds:        []Seed{{U: 10, V: 20}},
		Accuracy:     1.5,
		Predict:      -1,
		MaxLost:      -2,
		GroupIoU:     3,
		OverlayScale: 0,
		LogLevel:     "verbose",
	}
	require.NoError(t, c.Validate())
	assert.Equal(t, "0", c.Source)
	assert.Equal(t, 0, c.MaxFrames)
	assert.Equal(t, 1.0, c.Accuracy)
	assert.Equal(t, 0.0, c.Predict)
	assert.Equal(t, 0, c.MaxLost)
	assert.Equal(t, 0.0, c.GroupIoU)
	assert.Equal(t, 1, c.OverlayScale)
	assert.Equal(t, "info", c.LogLevel)

	c.Accuracy = 0.01
	require.NoError(t, c.Validate())
	assert.Equal(t, 0.05, c.Accuracy)
}

func TestValidateAccuracyClamp(t *testing.T) {
	tests := []struct {
		accuracy float64
		expected float64
	}{
		{0, 0.05},
		{-1, 0.05},
		{0.01, 0.05},
		{0.5, 0.5},
		{1, 1},
		{1.5, 1},
		{2, 1},
	}
	for _, tt := range tests {
		c := DefaultConfig()
		c.Accuracy = tt.accuracy
		require.NoError(t, c.Validate())
		assert.Equal(t, tt.expected, c.Accuracy, "accuracy %v", tt.accuracy)
	}
}

func TestValidateSeeds(t *testing.T) {
	c := DefaultConfig()
	assert.NoError(t, c.Validate())
	assert.Error(t, c.RequireSeeds())

	c.Seeds = []Seed{{U: 5, V: -1}}
	assert.Error(t, c.Validate())
	assert.Error(t, c.Save(filepath.Join(t.TempDir(), "config.json")))

	c.Seeds = []Seed{{U: 5, V: 1}}
	assert.NoError(t, c.Validate())
	assert.NoError(t, c.RequireSeeds())
}

func TestLoadInvalidSeeds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seeds": [{"u": -3, "v": 4}]}`), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveErrors(t *testing.T) {
	c := DefaultConfig()
	assert.Error(t, c.Save(filepath.Join(t.TempDir(), "missing", "config.json")))
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	cfg, err := Load(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	c := DefaultConfig()
	c.Source = "frames"
	c.Seeds = []Seed{{U: 120, V: 80}, {U: 10, V: 12}}
	c.Accuracy = 0.8
	c.ComputeMoments = true
	c.Predict = 0.04
	c.OverlayDir = "out"
	c.LogJSON = true
	require.NoError(t, c.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, c, loaded)
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"source": "video.avi", "seeds": [{"u": 3, "v": 4}]}`), 0o644))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "video.avi", cfg.Source)
	assert.Equal(t, []Seed{{U: 3, V: 4}}, cfg.Seeds)
	assert.Equal(t, 0.65, cfg.Accuracy)
	assert.Equal(t, "info", cfg.LogLevel)
}
