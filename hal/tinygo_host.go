//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"os"
	"runtime"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	lcd    *termLCD
	sched  *tinyGoHostScheduler
	power  tinyGoHostPower
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. The LCD is an in-memory panel nobody looks at; Restart ends
// the process because these targets cannot re-exec.
func New() HAL {
	l := &tinyGoHostLogger{}
	return &tinyGoHostHAL{
		logger: l,
		lcd:    newTermLCD(newFramebuffer(lcdWidth, lcdHeight)),
		sched:  &tinyGoHostScheduler{logger: l},
		power:  tinyGoHostPower{logger: l},
	}
}

func (h *tinyGoHostHAL) Logger() Logger       { return h.logger }
func (h *tinyGoHostHAL) LCD() LCD             { return h.lcd }
func (h *tinyGoHostHAL) Scheduler() Scheduler { return h.sched }
func (h *tinyGoHostHAL) Power() Power         { return h.power }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

func (l *tinyGoHostLogger) Flush() error { return nil }

type tinyGoHostScheduler struct {
	logger Logger
}

func (s *tinyGoHostScheduler) Cores() int { return 2 }

func (s *tinyGoHostScheduler) Spawn(spec TaskSpec) error {
	if err := spec.Validate(s.Cores()); err != nil {
		return fmt.Errorf("spawn %q: %w", spec.Name, err)
	}
	go spec.Entry()
	return nil
}

type tinyGoHostPower struct {
	logger Logger
}

func (p tinyGoHostPower) Restart() {
	p.logger.WriteLineString(fmt.Sprintf("restart requested (tinygo/%s)", runtime.GOOS))
	os.Exit(0)
}
