// seehuhn.de/go/semidonut - semi-circular ring charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings of the semidonut command.
//
// Settings come from built-in defaults, an optional YAML file and
// environment variables, in increasing order of priority.  Environment
// variables have the form SEMIDONUT_<SECTION>_<KEY>, for example
// SEMIDONUT_CHART_RADIUS.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/semidonut/theme"
)

// Config is the complete configuration.
type Config struct {
	Chart ChartConfig `mapstructure:"chart"`
	SVG   SVGConfig   `mapstructure:"svg"`
	Log   LogConfig   `mapstructure:"log"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// ChartConfig holds the chart geometry.
type ChartConfig struct {
	Radius     float64 `mapstructure:"radius"`
	InnerRatio float64 `mapstructure:"inner_ratio"`
}

// SVGConfig holds settings for SVG output.
type SVGConfig struct {
	Precision int `mapstructure:"precision"` // decimal places
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"` // "debug", "info", "warn", "error"
}

// ThemeConfig overrides the colours and sizes of the dark theme.
type ThemeConfig struct {
	Background     string  `mapstructure:"background"`
	Paper          string  `mapstructure:"paper"`
	TextPrimary    string  `mapstructure:"text_primary"`
	TextSecondary  string  `mapstructure:"text_secondary"`
	Separator      string  `mapstructure:"separator"`
	SeparatorWidth float64 `mapstructure:"separator_width"`
	LegendFontSize float64 `mapstructure:"legend_font_size"`
	LegendSwatch   float64 `mapstructure:"legend_swatch"`
}

// Load reads the configuration from the default locations.
// Config file search order:
//  1. ./semidonut.yaml
//  2. ~/.config/semidonut/semidonut.yaml
//
// A missing config file is not an error.
func Load() (*Config, error) {
	v := newViper()
	v.SetConfigName("semidonut")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "semidonut"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFromFile reads the configuration from the given file.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SEMIDONUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chart.radius", 100.0)
	v.SetDefault("chart.inner_ratio", 0.5)
	v.SetDefault("svg.precision", 3)
	v.SetDefault("log.level", "info")

	th := theme.Dark()
	v.SetDefault("theme.background", th.Background)
	v.SetDefault("theme.paper", th.Paper)
	v.SetDefault("theme.text_primary", th.TextPrimary)
	v.SetDefault("theme.text_secondary", th.TextSecondary)
	v.SetDefault("theme.separator", th.Separator)
	v.SetDefault("theme.separator_width", th.SeparatorWidth)
	v.SetDefault("theme.legend_font_size", th.LegendFontSize)
	v.SetDefault("theme.legend_swatch", th.LegendSwatch)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MaxRadius is the largest accepted chart.radius.  Charts of this size
// still fit into a raster image.
const MaxRadius = 2000

// Validate checks the configuration for values which cannot work.
func (c *Config) Validate() error {
	if !(c.Chart.Radius > 0 && c.Chart.Radius <= MaxRadius) {
		return fmt.Errorf("config: chart.radius must be in (0, %g], not %g", float64(MaxRadius), c.Chart.Radius)
	}
	if !(c.Chart.InnerRatio > 0 && c.Chart.InnerRatio < 1) {
		return fmt.Errorf("config: chart.inner_ratio must be between 0 and 1, not %g", c.Chart.InnerRatio)
	}
	if c.SVG.Precision < 0 || c.SVG.Precision > 12 {
		return fmt.Errorf("config: svg.precision must be between 0 and 12, not %d", c.SVG.Precision)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	th := c.ChartTheme()
	if err := th.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ChartTheme returns the theme described by the configuration.
func (c *Config) ChartTheme() theme.Theme {
	return theme.Theme{
		Background:     c.Theme.Background,
		Paper:          c.Theme.Paper,
		TextPrimary:    c.Theme.TextPrimary,
		TextSecondary:  c.Theme.TextSecondary,
		Separator:      c.Theme.Separator,
		SeparatorWidth: c.Theme.SeparatorWidth,
		LegendFontSize: c.Theme.LegendFontSize,
		LegendSwatch:   c.Theme.LegendSwatch,
	}
}
