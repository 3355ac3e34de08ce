//go:build tinygo && esp32

package hal

import (
	"fmt"
	"machine"
)

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// Flush is immediate: WriteByte only returns once the byte is in the TX FIFO.
func (l *uartLogger) Flush() error { return nil }

// tinyGoScheduler runs tasks as goroutines on the TinyGo scheduler.
//
// The runtime owns stacks and cores: StackSize must fit the build's
// -stack-size and every goroutine runs on the core the runtime booted on.
// Priority and Core are validated and logged, not enforced.
type tinyGoScheduler struct {
	logger Logger
	cores  int
}

func (s *tinyGoScheduler) Cores() int { return s.cores }

func (s *tinyGoScheduler) Spawn(spec TaskSpec) error {
	if err := spec.Validate(s.cores); err != nil {
		return fmt.Errorf("spawn %q: %w", spec.Name, err)
	}
	if s.logger != nil {
		s.logger.WriteLineString(fmt.Sprintf("spawn %s: stack=%d prio=%d core=%d",
			spec.Name, spec.StackSize, spec.Priority, spec.Core))
	}
	// The core pin is nominal here: TinyGo schedules every goroutine on the
	// boot core and ignores Priority.
	go spec.Entry()
	return nil
}
