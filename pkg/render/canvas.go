package render

import (
	"sync"

	"github.com/gogpu/gg"

	"github.com/willbeason/escape-field/pkg/escape"
)

// A Canvas is a writable pixel surface owned by the caller.
//
// Render calls SetPixel from several goroutines, never twice for the same pixel.
// Canvases that cannot take concurrent writes to distinct pixels must be wrapped with Locked.
type Canvas interface {
	SetPixel(x, y int, c gg.RGBA)
}

var _ Canvas = (*gg.Pixmap)(nil)

// NewSurface allocates a pixmap sized for cfg.
func NewSurface(cfg escape.Config) *gg.Pixmap {
	return gg.NewPixmap(cfg.Width, cfg.Height)
}

type lockedCanvas struct {
	mu     sync.Mutex
	canvas Canvas
}

// Locked serializes SetPixel calls on c.
func Locked(c Canvas) Canvas {
	return &lockedCanvas{canvas: c}
}

func (l *lockedCanvas) SetPixel(x, y int, c gg.RGBA) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.canvas.SetPixel(x, y, c)
}

type multiCanvas []Canvas

// Multi paints every pixel onto each of cs.
func Multi(cs ...Canvas) Canvas {
	if len(cs) == 1 {
		return cs[0]
	}
	return multiCanvas(cs)
}

func (m multiCanvas) SetPixel(x, y int, c gg.RGBA) {
	for _, canvas := range m {
		canvas.SetPixel(x, y, c)
	}
}
