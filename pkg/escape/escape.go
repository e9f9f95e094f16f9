// Package escape computes escape-time values for points of the Mandelbrot set.
//
// Everything here is pure: no state survives a call, so pixels may be computed in any
// order and from any number of goroutines.
package escape

import (
	"math"

	"github.com/willbeason/escape-field/pkg/geometry"
	"github.com/willbeason/escape-field/pkg/transforms"
)

const (
	// EscapeRadiusSq is the squared magnitude at which an orbit counts as escaped.
	EscapeRadiusSq = 4.0

	// Saturation is fixed for every pixel.
	Saturation = 100.0

	// BrightnessInside and BrightnessOutside are the brightness of points that did
	// and did not exhaust the iteration budget.
	BrightnessInside  = 0.0
	BrightnessOutside = 100.0
)

// Pixel is the colour of one raster point in hue-saturation-brightness space along
// with the iteration count it was derived from.
type Pixel struct {
	N          int
	Hue        float64
	Saturation float64
	Brightness float64
}

// Inside reports whether the point never escaped.
func (p Pixel) Inside() bool {
	return p.Brightness == BrightnessInside
}

// Iterations iterates t starting at start until the orbit escapes or maxIterations is
// reached, and returns the number of steps taken.
//
// The escape test reads the squares of the point the previous step started from, so
// an orbit is detected one step after it leaves the escape radius.
func Iterations(t transforms.Transform, start geometry.XY, maxIterations int) int {
	z := start
	n := 0
	magSq := 0.0

	for magSq < EscapeRadiusSq && n < maxIterations {
		magSq = z.MagnitudeSq()
		z = t.Next(z)
		n++
	}

	return n
}

// Hue maps an iteration count onto [0, 360).
func Hue(n int, cfg Config) float64 {
	return math.Mod(float64(n)*360*cfg.ColourScale/float64(cfg.MaxIterations), 360)
}

// Brightness is zero for points that exhausted the budget.
func Brightness(n int, cfg Config) float64 {
	if n == cfg.MaxIterations {
		return BrightnessInside
	}

	return BrightnessOutside
}

// ComputePixel returns the colour of pixel (i, j).
func ComputePixel(i, j int, cfg Config) Pixel {
	c := cfg.Viewport.ToPlane(i, j)
	n := Iterations(transforms.Mandelbrot{C: c}, c, cfg.MaxIterations)

	return Pixel{
		N:          n,
		Hue:        Hue(n, cfg),
		Saturation: Saturation,
		Brightness: Brightness(n, cfg),
	}
}
