// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads executable settings through viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/pixelgrid"
	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = configName + ".json"

const configName = "pixelgrid"

// ErrConfigNotFound is returned by Load when the directory holds no
// config file. Defaults are still in effect.
var ErrConfigNotFound = errors.New("config: file not found")

// Config is the resolved configuration.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`

	Grid struct {
		CellSize  float64 `mapstructure:"cellSize"`
		CellGap   float64 `mapstructure:"cellGap"`
		PointSize float64 `mapstructure:"pointSize"`
	} `mapstructure:"grid"`

	Window struct {
		Title string  `mapstructure:"title"`
		Scale float64 `mapstructure:"scale"`
	} `mapstructure:"window"`

	Banner struct {
		Duration time.Duration `mapstructure:"duration"`
	} `mapstructure:"banner"`

	Snapshot struct {
		Output string `mapstructure:"output"`
	} `mapstructure:"snapshot"`
}

// setDefaults registers every default value.
func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("grid.cellSize", pixelgrid.DefaultCellSize)
	viper.SetDefault("grid.cellGap", pixelgrid.DefaultCellGap)
	viper.SetDefault("grid.pointSize", pixelgrid.DefaultPointSize)

	viper.SetDefault("window.title", "Pixel Grid")
	viper.SetDefault("window.scale", 1.0)

	viper.SetDefault("banner.duration", "1s")

	viper.SetDefault("snapshot.output", "pixelgrid.png")
}

// Load reads FileName from configDir on top of the defaults.
// A missing file yields ErrConfigNotFound; any other read error is
// wrapped as "error reading config file".
func Load(configDir string) error {
	setDefaults()

	viper.SetConfigName(configName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return ErrConfigNotFound
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get decodes the current settings.
func Get() (Config, error) {
	setDefaults()
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return c, nil
}

// Geometry returns the grid geometry described by c.
func (c Config) Geometry() pixelgrid.Geometry {
	return pixelgrid.Geometry{
		CellSize:  c.Grid.CellSize,
		CellGap:   c.Grid.CellGap,
		PointSize: c.Grid.PointSize,
	}
}

// Set overrides a config value, e.g. from a command-line flag.
func Set(key string, value any) {
	viper.Set(key, value)
}
