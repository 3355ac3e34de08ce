// Package hal is the hardware boundary: diagnostics, the LCD, the task
// scheduler and power control. Host and TinyGo builds implement it behind
// build tags.
package hal

import "errors"

// Logger writes newline-delimited log lines to the diagnostic stream.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)

	// Flush blocks until every line written so far has left the device.
	Flush() error
}

var (
	ErrNotImplemented  = errors.New("not implemented")
	ErrNoEntry         = errors.New("task has no entry function")
	ErrStackSize       = errors.New("task stack size must be positive")
	ErrCoreUnavailable = errors.New("core unavailable")
)

// LCD is the opaque display peripheral: a character printer plus a line
// primitive. Coordinates and colors are passed through untouched; clipping
// and color conversion are the peripheral's business.
type LCD interface {
	PrintByte(b byte)
	DrawLine(x0, y0, x1, y1 int32, color uint32)
}

// Core names one of the processor cores a task can be pinned to.
type Core uint8

const (
	// CorePro runs the platform's own startup and idle work.
	CorePro Core = 0
	// CoreApp is left free for the application.
	CoreApp Core = 1
)

// TaskSpec describes a task handed to the platform scheduler.
//
// It carries no parameter and the scheduler returns no handle: a task lives
// until the device restarts.
type TaskSpec struct {
	Entry     func()
	Name      string
	StackSize uint32
	Priority  uint8
	Core      Core
}

// Validate checks the spec against a scheduler with the given core count.
func (s TaskSpec) Validate(cores int) error {
	if s.Entry == nil {
		return ErrNoEntry
	}
	if s.StackSize == 0 {
		return ErrStackSize
	}
	if int(s.Core) >= cores {
		return ErrCoreUnavailable
	}
	return nil
}

// Scheduler creates tasks on the platform's preemptive scheduler.
type Scheduler interface {
	// Cores reports how many processor cores tasks may be pinned to.
	Cores() int
	// Spawn starts spec.Entry on its own task and returns immediately.
	Spawn(spec TaskSpec) error
}

// Power controls device power state.
type Power interface {
	// Restart discards all process state and boots again. On hardware it
	// does not return.
	Restart()
}

// HAL provides the only contact point between the bootstrap and the outside world.
type HAL interface {
	Logger() Logger
	LCD() LCD
	Scheduler() Scheduler
	Power() Power
}
