// Package config stores persistent viewer settings as JSON.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/hdtv/hdtv/internal/display"
	"github.com/hdtv/hdtv/internal/render"
)

// Config stores persistent application settings
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	ViewMode        string   `json:"view_mode"` // solid, hollow or dotted
	LogScale        bool     `json:"log_scale"`
	Headroom        float64  `json:"auto_zoom_headroom"`
	MarkerTolerance int      `json:"marker_tolerance"` // pixels
	Palette         []string `json:"palette,omitempty"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Width:           800,
		Height:          500,
		ViewMode:        display.ViewHollow.String(),
		Headroom:        display.DefaultAutoZoomHeadroom,
		MarkerTolerance: display.DefaultMarkerTolerance,
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	var configDir string
	if appData := os.Getenv("APPDATA"); appData != "" {
		// Windows: %APPDATA%\hdtv
		configDir = filepath.Join(appData, "hdtv")
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(homeDir, ".config", "hdtv")
	}
	return filepath.Join(configDir, "config.json"), nil
}

// Load loads the application configuration
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults;
// fields absent from the file keep their default values.
func LoadFrom(path string) (*Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Save saves the application configuration
func Save(config *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(config, path)
}

// SaveTo writes config to path, creating the directory if needed.
func SaveTo(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.Headroom < 1 {
		return fmt.Errorf("auto zoom headroom %g is below 1", c.Headroom)
	}
	if c.MarkerTolerance < 0 {
		return fmt.Errorf("negative marker tolerance %d", c.MarkerTolerance)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Mode returns the configured view mode.
func (c *Config) Mode() (display.ViewMode, error) {
	return display.ParseViewMode(c.ViewMode)
}

// Colors returns the configured palette, or the built-in one when none is
// set.
func (c *Config) Colors() ([]color.NRGBA, error) {
	if len(c.Palette) == 0 {
		return display.Palette, nil
	}
	return render.ParsePalette(c.Palette)
}

// Apply configures v with the view settings.
func (c *Config) Apply(v *display.Viewport) error {
	mode, err := c.Mode()
	if err != nil {
		return err
	}
	v.SetAutoZoomHeadroom(c.Headroom)
	v.SetMarkerTolerance(c.MarkerTolerance)
	v.SetViewMode(mode)
	v.SetLogScale(c.LogScale)
	return nil
}
