// Package bridge is the display call boundary offered to the external logic.
//
// Both operations are synchronous and stateless: every call goes straight to
// the LCD peripheral on the caller's thread, and no caller memory is kept
// once a call returns.
package bridge

import (
	"sync/atomic"
	"unsafe"

	"m5boot/hal"
)

// Bridge forwards display calls to an LCD peripheral.
type Bridge struct {
	lcd hal.LCD
}

// New returns a bridge over lcd.
func New(lcd hal.LCD) *Bridge {
	return &Bridge{lcd: lcd}
}

// Print sends every byte of text to the peripheral's character printer, in
// order. Zero bytes are printed like any other byte.
func (b *Bridge) Print(text []byte) {
	for _, c := range text {
		b.lcd.PrintByte(c)
	}
}

// PrintRaw prints count bytes starting at p. The memory is only read for the
// duration of the call and must not move while it runs.
func (b *Bridge) PrintRaw(p unsafe.Pointer, count uintptr) {
	if p == nil || count == 0 {
		return
	}
	b.Print(unsafe.Slice((*byte)(p), count))
}

// DrawLine forwards a line to the peripheral unchanged.
func (b *Bridge) DrawLine(x0, y0, x1, y1 int32, color uint32) {
	b.lcd.DrawLine(x0, y0, x1, y1, color)
}

var active atomic.Pointer[Bridge]

// Install makes b the bridge behind the exported C symbols.
func Install(b *Bridge) {
	active.Store(b)
}

// Active returns the installed bridge, or nil.
func Active() *Bridge {
	return active.Load()
}
