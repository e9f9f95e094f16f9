package geometry

// A Viewport maps raster pixels onto the complex plane.
//
// Pixel (i, j) lands on (i*Scaling - XOffset, j*Scaling - YOffset). The mapping is affine and
// does not flip the vertical axis: larger j means larger imaginary part.
type Viewport struct {
	// Scaling is the size of one pixel in plane units. Smaller values zoom in.
	Scaling float64

	// XOffset and YOffset translate the plane after scaling.
	XOffset float64
	YOffset float64
}

// ToPlane returns the plane coordinates of pixel (i, j).
func (v Viewport) ToPlane(i, j int) XY {
	return XY{
		X: float64(float64(i)*v.Scaling) - v.XOffset,
		Y: float64(float64(j)*v.Scaling) - v.YOffset,
	}
}

// ToPixel is the inverse of ToPlane. The result is fractional when p does not lie on a pixel.
func (v Viewport) ToPixel(p XY) (float64, float64) {
	return (p.X + v.XOffset) / v.Scaling, (p.Y + v.YOffset) / v.Scaling
}

// Bounds returns the plane coordinates of the top-left and bottom-right corners of a
// width x height raster.
func (v Viewport) Bounds(width, height int) (XY, XY) {
	return v.ToPlane(0, 0), v.ToPlane(width-1, height-1)
}
