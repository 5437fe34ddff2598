// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/pixelgrid"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"grid": { "cellSize": 6, "cellGap": 2 },
		"window": { "scale": 0.75 },
		"banner": { "duration": "1500ms" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))

	require.NoError(t, Load(dir))

	c, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 6.0, c.Grid.CellSize)
	assert.Equal(t, 2.0, c.Grid.CellGap)
	assert.Equal(t, pixelgrid.DefaultPointSize, c.Grid.PointSize)
	assert.Equal(t, 0.75, c.Window.Scale)
	assert.Equal(t, 1500*time.Millisecond, c.Banner.Duration)
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{}`), 0644))
	require.NoError(t, Load(dir))

	c, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, pixelgrid.DefaultGeometry(), c.Geometry())
	assert.Equal(t, "Pixel Grid", c.Window.Title)
	assert.Equal(t, 1.0, c.Window.Scale)
	assert.Equal(t, time.Second, c.Banner.Duration)
	assert.Equal(t, "pixelgrid.png", c.Snapshot.Output)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrConfigNotFound)

	c, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel, "defaults apply without a file")
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(`{"logLevel":`), 0644))

	err := Load(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestSet_OverridesFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{ "snapshot": { "output": "file.png" } }`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(cfg), 0644))
	require.NoError(t, Load(dir))

	Set("snapshot.output", "flag.png")
	Set("window.title", "Demo")

	c, err := Get()
	require.NoError(t, err)
	assert.Equal(t, "flag.png", c.Snapshot.Output)
	assert.Equal(t, "Demo", c.Window.Title)
}
