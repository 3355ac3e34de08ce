//go:build !tinygo

package hal

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// HostConfig tunes the simulator.
type HostConfig struct {
	// MaxBoots stops the simulator instead of restarting once this many
	// boots have run (0 = restart forever).
	MaxBoots int
}

type hostHAL struct {
	logger *hostLogger
	fb     *framebuffer
	lcd    *termLCD
	sched  *hostScheduler
	power  *hostPower
}

// New returns a host HAL implementation.
func New() HAL {
	return NewHost(HostConfig{})
}

// NewHost returns a host HAL implementation with the given simulator settings.
//
// The LCD is a 320x240 in-memory panel, the scheduler offers two cores and
// pins the task's OS thread where the host allows it, and Restart re-executes
// the current binary.
func NewHost(cfg HostConfig) HAL {
	logger := newHostLogger(os.Stdout)
	fb := newFramebuffer(lcdWidth, lcdHeight)
	return &hostHAL{
		logger: logger,
		fb:     fb,
		lcd:    newTermLCD(fb),
		sched:  newHostScheduler(logger),
		power:  newHostPower(logger, cfg.MaxBoots),
	}
}

func (h *hostHAL) Logger() Logger       { return h.logger }
func (h *hostHAL) LCD() LCD             { return h.lcd }
func (h *hostHAL) Scheduler() Scheduler { return h.sched }
func (h *hostHAL) Power() Power         { return h.power }

type hostLogger struct {
	mu sync.Mutex
	w  *bufio.Writer
}

func newHostLogger(w io.Writer) *hostLogger {
	return &hostLogger{w: bufio.NewWriter(w)}
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.WriteString(s)
	l.w.WriteByte('\n')
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.WriteByte('\n')
}

func (l *hostLogger) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Flush()
}
