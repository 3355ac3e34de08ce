//go:build tinygo && esp32

package hal

import (
	"fmt"
	"image/color"
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/ili9341"
)

// m5StackDisplay adapts the ILI9341 driver to the terminal's display interface.
type m5StackDisplay struct {
	dev *ili9341.Device
}

func newM5StackDisplay() (*m5StackDisplay, error) {
	spi := machine.SPI1 // VSPI
	if err := spi.Configure(machine.SPIConfig{
		SCK:       machine.GPIO18,
		SDO:       machine.GPIO23,
		SDI:       machine.GPIO19,
		Frequency: 40_000_000,
	}); err != nil {
		return nil, fmt.Errorf("configure VSPI: %w", err)
	}

	bl := machine.GPIO32
	bl.Configure(machine.PinConfig{Mode: machine.PinOutput})

	dev := ili9341.NewSPI(spi, machine.GPIO27, machine.GPIO14, machine.GPIO33)
	dev.Configure(ili9341.Config{})
	dev.SetRotation(ili9341.Rotation90)
	_ = dev.FillRectangle(0, 0, lcdWidth, lcdHeight, color.RGBA{A: 0xFF})
	bl.High()

	return &m5StackDisplay{dev: dev}, nil
}

func (d *m5StackDisplay) Size() (x, y int16)                 { return d.dev.Size() }
func (d *m5StackDisplay) SetPixel(x, y int16, c color.RGBA)  { d.dev.SetPixel(x, y, c) }
func (d *m5StackDisplay) Display() error                     { return d.dev.Display() }
func (d *m5StackDisplay) SetScroll(line int16)               { d.dev.SetScroll(line) }
func (d *m5StackDisplay) SetRotation(drivers.Rotation) error { return nil }

func (d *m5StackDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	return d.dev.FillRectangle(x, y, width, height, c)
}

type nullLCD struct{}

func (nullLCD) PrintByte(b byte)                            {}
func (nullLCD) DrawLine(x0, y0, x1, y1 int32, color uint32) {}
