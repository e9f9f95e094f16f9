package transforms

import "github.com/willbeason/escape-field/pkg/geometry"

// Mandelbrot is the quadratic map z -> z^2 + C.
type Mandelbrot struct {
	C geometry.XY
}

// Next computes the squares first, then the imaginary part, then the real part.
// Every product is rounded to float64 before it is added so results do not depend on
// whether the target fuses multiply-add.
func (m Mandelbrot) Next(z geometry.XY) geometry.XY {
	xSq := float64(z.X * z.X)
	ySq := float64(z.Y * z.Y)

	return geometry.XY{
		X: xSq - ySq + m.C.X,
		Y: float64(2*z.X*z.Y) + m.C.Y,
	}
}

var _ Transform = Mandelbrot{}
