//go:build tinygo && esp32

package hal

import (
	"device/esp"
	"machine"
)

type m5StackHAL struct {
	logger *uartLogger
	lcd    LCD
	sched  *tinyGoScheduler
	power  esp32Power
}

// New returns an M5Stack (ESP32 + ILI9341) HAL implementation.
//
// UART: UART0 on the USB bridge, 115200 8N1.
// LCD: VSPI, SCK=18 MOSI=23 MISO=19 CS=14 DC=27 RST=33 BL=32.
func New() HAL {
	uart := machine.DefaultUART
	uart.Configure(machine.UARTConfig{BaudRate: 115200})

	logger := &uartLogger{uart: uart}

	var lcd LCD
	if disp, err := newM5StackDisplay(); err == nil {
		lcd = newTermLCD(disp)
	} else {
		logger.WriteLineString("lcd: " + err.Error())
		lcd = nullLCD{}
	}

	return &m5StackHAL{
		logger: logger,
		lcd:    lcd,
		sched:  &tinyGoScheduler{logger: logger, cores: 2},
	}
}

func (h *m5StackHAL) Logger() Logger       { return h.logger }
func (h *m5StackHAL) LCD() LCD             { return h.lcd }
func (h *m5StackHAL) Scheduler() Scheduler { return h.sched }
func (h *m5StackHAL) Power() Power         { return h.power }

type esp32Power struct{}

// Restart triggers a software system reset through the RTC controller.
func (esp32Power) Restart() {
	esp.RTC_CNTL.OPTIONS0.SetBits(esp.RTC_CNTL_OPTIONS0_SW_SYS_RST)
	for {
	}
}
