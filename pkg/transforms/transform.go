package transforms

import "github.com/willbeason/escape-field/pkg/geometry"

// A Transform iterates a passed point.
type Transform interface {
	Next(geometry.XY) geometry.XY
}
