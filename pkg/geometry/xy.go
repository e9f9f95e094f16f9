package geometry

// XY is a point in the complex plane. X is the real part and Y the imaginary part.
type XY struct {
	X, Y float64
}

// MagnitudeSq is the squared distance of the point from the origin.
func (p XY) MagnitudeSq() float64 {
	return float64(p.X*p.X) + float64(p.Y*p.Y)
}
