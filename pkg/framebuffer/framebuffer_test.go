package framebuffer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/gogpu/gg"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "rgb565", want: RGB565},
		{in: "16", want: RGB565},
		{in: "BGR24", want: BGR24},
		{in: "32", want: BGRA32},
		{in: "yuv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Errorf("ParseFormat(%q) err = %v, want ErrUnknownFormat", tt.in, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	fb, err := New(4, 3, 0, BGR24)
	if err != nil {
		t.Fatal(err)
	}
	if fb.Stride != 12 || len(fb.Buf) != 36 {
		t.Errorf("stride = %d, len = %d, want 12, 36", fb.Stride, len(fb.Buf))
	}

	if _, err := New(4, 3, 7, BGR24); err == nil {
		t.Error("short stride accepted")
	}
	if _, err := New(0, 3, 0, RGB565); err == nil {
		t.Error("zero width accepted")
	}
}

func TestTarget_SetPixel(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		c      gg.RGBA
		want   []byte
	}{
		{name: "rgb565 red", format: RGB565, c: gg.Red, want: []byte{0x00, 0xF8}},
		{name: "rgb565 green", format: RGB565, c: gg.Green, want: []byte{0xE0, 0x07}},
		{name: "rgb565 blue", format: RGB565, c: gg.Blue, want: []byte{0x1F, 0x00}},
		{name: "bgr24 red", format: BGR24, c: gg.Red, want: []byte{0x00, 0x00, 0xFF}},
		{name: "bgra32 blue", format: BGRA32, c: gg.Blue, want: []byte{0xFF, 0x00, 0x00, 0xFF}},
		{name: "bgra32 black", format: BGRA32, c: gg.Black, want: []byte{0x00, 0x00, 0x00, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := New(2, 2, 0, tt.format)
			if err != nil {
				t.Fatal(err)
			}

			fb.SetPixel(1, 1, tt.c)

			off := fb.Stride + tt.format.BytesPerPixel()
			got := fb.Buf[off : off+tt.format.BytesPerPixel()]
			if !bytes.Equal(got, tt.want) {
				t.Errorf("pixel bytes = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestTarget_SetPixelOutOfRange(t *testing.T) {
	fb, err := New(2, 2, 16, BGRA32)
	if err != nil {
		t.Fatal(err)
	}

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		fb.SetPixel(p[0], p[1], gg.White)
	}

	if !bytes.Equal(fb.Buf, make([]byte, len(fb.Buf))) {
		t.Error("out of range write modified the buffer")
	}
}

func TestTarget_WriteTo(t *testing.T) {
	fb, err := New(3, 2, 0, RGB565)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetPixel(0, 0, gg.White)

	var buf bytes.Buffer
	n, err := fb.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 12 || !bytes.Equal(buf.Bytes(), fb.Buf) {
		t.Errorf("wrote %d bytes, want 12 equal to buffer", n)
	}
	if buf.Bytes()[0] != 0xFF || buf.Bytes()[1] != 0xFF {
		t.Errorf("white = % x", buf.Bytes()[:2])
	}
}
