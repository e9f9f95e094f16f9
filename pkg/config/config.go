// Package config reads render settings from TOML files.
//
// Keys left out of a file keep the value of the configuration they are applied to:
//
//	preset = "sdl"
//	width = 640
//	height = 480
//	scaling = 0.0055
//	x_offset = 2.6
//	y_offset = 1.6
//	max_iterations = 100
//	colour_scale = 11
//	workers = 4
//	output = "out/mandelbrot.png"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/willbeason/escape-field/pkg/escape"
)

// File is the contents of a config file.
type File struct {
	Preset        *string  `toml:"preset"`
	Width         *int     `toml:"width"`
	Height        *int     `toml:"height"`
	Scaling       *float64 `toml:"scaling"`
	XOffset       *float64 `toml:"x_offset"`
	YOffset       *float64 `toml:"y_offset"`
	MaxIterations *int     `toml:"max_iterations"`
	ColourScale   *float64 `toml:"colour_scale"`
	Workers       *int     `toml:"workers"`
	Output        *string  `toml:"output"`
}

// ParseError is returned for files that are not valid TOML or have unknown keys.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the config file at path.
func Load(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer f.Close()

	return Decode(path, f)
}

// Decode parses a config file from r. name is used in error messages.
func Decode(name string, r io.Reader) (File, error) {
	var file File

	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return File{}, &ParseError{Path: name, Err: errors.New(strict.String())}
		}
		return File{}, &ParseError{Path: name, Err: err}
	}

	return file, nil
}

// Base returns the configuration the file builds on: its preset, or fallback when it
// names none.
func (f File) Base(fallback string) (escape.Config, error) {
	name := fallback
	if f.Preset != nil {
		name = *f.Preset
	}

	return escape.Preset(name)
}

// Apply overrides the fields of cfg that the file sets.
func (f File) Apply(cfg escape.Config) escape.Config {
	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Height != nil {
		cfg.Height = *f.Height
	}
	if f.Scaling != nil {
		cfg.Viewport.Scaling = *f.Scaling
	}
	if f.XOffset != nil {
		cfg.Viewport.XOffset = *f.XOffset
	}
	if f.YOffset != nil {
		cfg.Viewport.YOffset = *f.YOffset
	}
	if f.MaxIterations != nil {
		cfg.MaxIterations = *f.MaxIterations
	}
	if f.ColourScale != nil {
		cfg.ColourScale = *f.ColourScale
	}

	return cfg
}
