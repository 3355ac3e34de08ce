package hal

import (
	"image/color"
	"sync"

	"tinygo.org/x/drivers"
)

// framebuffer is an in-memory RGB565 (little-endian) panel.
//
// It satisfies the drivers.Displayer family so the terminal and the line
// primitive can draw on it exactly as they would on the real panel.
type framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newFramebuffer(width, height int) *framebuffer {
	stride := width * 2
	return &framebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
	}
}

func (f *framebuffer) Size() (x, y int16) { return int16(f.width), int16(f.height) }
func (f *framebuffer) Display() error     { return nil }

// SetScroll is a no-op: the terminal runs with software scrolling.
func (f *framebuffer) SetScroll(line int16) {}

func (f *framebuffer) SetRotation(rotation drivers.Rotation) error { return nil }

func (f *framebuffer) SetPixel(x, y int16, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setPixelLocked(int(x), int(y), rgb565(c.R, c.G, c.B))
}

func (f *framebuffer) setPixelLocked(x, y int, pixel uint16) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *framebuffer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	pixel := rgb565(c.R, c.G, c.B)
	for yy := int(y); yy < int(y)+int(height); yy++ {
		for xx := int(x); xx < int(x)+int(width); xx++ {
			f.setPixelLocked(xx, yy, pixel)
		}
	}
	return nil
}

func (f *framebuffer) pixel(x, y int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

func (f *framebuffer) snapshotRGB565(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}
