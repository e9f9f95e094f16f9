package escape

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/willbeason/escape-field/pkg/geometry"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrUnknownPreset = errors.New("unknown preset")
)

// Config holds everything a render needs. It is passed by value and never modified
// during a render.
type Config struct {
	// Width and Height are the raster dimensions in pixels.
	Width  int
	Height int

	Viewport geometry.Viewport

	// MaxIterations is the iteration budget per pixel. Points that survive it are
	// treated as members of the set.
	MaxIterations int

	// ColourScale is how many times the hue wheel wraps across the iteration budget.
	ColourScale float64
}

// Validate reports configurations for which a render is meaningless.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	case c.Viewport.Scaling <= 0:
		return fmt.Errorf("%w: scaling %g must be positive", ErrInvalidConfig, c.Viewport.Scaling)
	case c.MaxIterations <= 0:
		return fmt.Errorf("%w: max iterations %d must be positive", ErrInvalidConfig, c.MaxIterations)
	case c.ColourScale <= 0:
		return fmt.Errorf("%w: colour scale %g must be positive", ErrInvalidConfig, c.ColourScale)
	}

	return nil
}

// Pixels is the number of pixels in the raster.
func (c Config) Pixels() int {
	return c.Width * c.Height
}

const DefaultPreset = "p5"

var presets = map[string]Config{
	// The sketch version: a large canvas at fine scaling.
	"p5": {
		Width:         1400,
		Height:        1050,
		Viewport:      geometry.Viewport{Scaling: 0.003, XOffset: 2.6, YOffset: 1.6},
		MaxIterations: 360,
		ColourScale:   28,
	},
	// The windowed version sized for small displays.
	"sdl": {
		Width:         320,
		Height:        240,
		Viewport:      geometry.Viewport{Scaling: 0.011, XOffset: 2.6, YOffset: 1.6},
		MaxIterations: 100,
		ColourScale:   11,
	},
	// The TFT framebuffer version.
	"framebuffer": {
		Width:         320,
		Height:        240,
		Viewport:      geometry.Viewport{Scaling: 0.013, XOffset: 2.6, YOffset: 1.6},
		MaxIterations: 360,
		ColourScale:   18,
	},
}

// Preset returns a named configuration. Names are case-insensitive.
func Preset(name string) (Config, error) {
	c, ok := presets[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}

	return c, nil
}

// PresetNames lists the known presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
