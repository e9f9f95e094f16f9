// Package framebuffer packs pixels the way Linux framebuffer devices lay them out.
//
// A Target is an in-memory copy of a device's visible area. Writing it to the device
// node (for example /dev/fb1) displays it. The caller supplies the pixel format and line
// length since no screen-info ioctls are issued.
package framebuffer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gogpu/gg"
)

var ErrUnknownFormat = errors.New("unknown pixel format")

// Format is a framebuffer pixel layout.
type Format int

const (
	// RGB565 is 16 bits per pixel, little endian.
	RGB565 Format = iota
	// BGR24 is 24 bits per pixel stored blue, green, red.
	BGR24
	// BGRA32 is 32 bits per pixel stored blue, green, red, alpha.
	BGRA32
)

// BytesPerPixel is the size of one pixel in the buffer.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGB565:
		return 2
	case BGR24:
		return 3
	default:
		return 4
	}
}

func (f Format) String() string {
	switch f {
	case RGB565:
		return "rgb565"
	case BGR24:
		return "bgr24"
	case BGRA32:
		return "bgra32"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts a format name or its bit depth ("16", "24", "32").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "rgb565", "16":
		return RGB565, nil
	case "bgr24", "24":
		return BGR24, nil
	case "bgra32", "32":
		return BGRA32, nil
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Target is a packed pixel buffer of W x H pixels, Stride bytes per row.
type Target struct {
	W, H   int
	Stride int
	Format Format
	Buf    []byte
}

// New allocates a target. A stride of zero means rows are packed without padding.
func New(w, h, stride int, format Format) (*Target, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("framebuffer size %dx%d must be positive", w, h)
	}
	if stride == 0 {
		stride = w * format.BytesPerPixel()
	}
	if stride < w*format.BytesPerPixel() {
		return nil, fmt.Errorf("line length %d is shorter than %d %s pixels", stride, w, format)
	}

	return &Target{
		W:      w,
		H:      h,
		Stride: stride,
		Format: format,
		Buf:    make([]byte, stride*h),
	}, nil
}

// SetPixel packs c at (x, y). Coordinates outside the target are ignored.
// Distinct pixels occupy distinct bytes, so concurrent calls for different pixels are safe.
func (t *Target) SetPixel(x, y int, c gg.RGBA) {
	if x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}

	r, g, b := to8(c.R), to8(c.G), to8(c.B)
	off := y*t.Stride + x*t.Format.BytesPerPixel()

	switch t.Format {
	case RGB565:
		p := uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3)
		t.Buf[off] = byte(p)
		t.Buf[off+1] = byte(p >> 8)
	case BGR24:
		t.Buf[off] = b
		t.Buf[off+1] = g
		t.Buf[off+2] = r
	case BGRA32:
		t.Buf[off] = b
		t.Buf[off+1] = g
		t.Buf[off+2] = r
		t.Buf[off+3] = 0xFF
	}
}

// WriteTo writes the whole buffer to w.
func (t *Target) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Buf)
	return int64(n), err
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xFF
	default:
		return uint8(v * 255)
	}
}
