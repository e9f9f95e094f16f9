// Package colour builds canvas colours from hue-saturation-brightness triples.
package colour

import (
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// HSB returns the opaque colour with hue h in degrees and saturation s and brightness b
// in percent.
func HSB(h, s, b float64) gg.RGBA {
	c := colorful.Hsv(h, s/100, b/100)
	return gg.RGB(c.R, c.G, c.B)
}
