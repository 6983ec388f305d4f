//go:build !tinygo

package hal

import (
	"image/color"
	"sync"
)

// monoFramebuffer is a 1bpp pixel buffer standing in for an OLED panel on
// the host. It implements drivers.Displayer so the shared TextSurface can
// draw on it, and exposes a snapshot for the simulator window.
type monoFramebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int // bytes per row
	buf    []byte
}

func newMonoFramebuffer(width, height int) *monoFramebuffer {
	stride := (width + 7) / 8
	return &monoFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *monoFramebuffer) Size() (int16, int16) {
	return int16(f.width), int16(f.height)
}

func (f *monoFramebuffer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= f.width || iy < 0 || iy >= f.height {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	off := iy*f.stride + ix/8
	mask := byte(0x80) >> uint(ix&7)
	if c.R == 0 && c.G == 0 && c.B == 0 {
		f.buf[off] &^= mask
	} else {
		f.buf[off] |= mask
	}
}

func (f *monoFramebuffer) Display() error { return nil }

func (f *monoFramebuffer) ClearBuffer() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// snapshot copies the buffer for the window painter.
func (f *monoFramebuffer) snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

func (f *monoFramebuffer) pixelAt(buf []byte, x, y int) bool {
	off := y*f.stride + x/8
	if off >= len(buf) {
		return false
	}
	return buf[off]&(0x80>>uint(x&7)) != 0
}
