// Package kernel starts and supervises the loop task: its fixed creation
// parameters, its lifecycle, fault capture and the queue its tasks share.
package kernel

import (
	"sync"
	"sync/atomic"

	"m5boot/hal"
)

const startupLine = "Starting loop task."

// State is a LoopTask lifecycle state.
type State uint32

const (
	StateStarting State = iota
	StateRunning
	StateRestarting
)

func (s State) String() string {
	switch s {
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateRestarting:
		return "restarting"
	default:
		return "unknown"
	}
}

// LoopTask is the body of the one application task: it announces itself,
// hands its thread to the entry function and restarts the device when the
// entry gives it back, however that happens.
type LoopTask struct {
	log     hal.Logger
	power   hal.Power
	entry   func()
	onFault func(Fault)

	state   atomic.Uint32
	restart sync.Once
}

// Option configures a LoopTask.
type Option func(*LoopTask)

// WithFaultHandler installs fn to be called with a recovered panic before
// the restart. fn runs on the loop task; a panic inside it is dropped.
func WithFaultHandler(fn func(Fault)) Option {
	return func(t *LoopTask) { t.onFault = fn }
}

// NewLoopTask returns a task that will run entry once. A nil entry behaves
// like one that returns immediately.
func NewLoopTask(log hal.Logger, power hal.Power, entry func(), opts ...Option) *LoopTask {
	t := &LoopTask{log: log, power: power, entry: entry}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// State returns the current lifecycle state.
func (t *LoopTask) State() State { return State(t.state.Load()) }

// Run executes one boot cycle. On hardware it never returns because the
// restart resets the device.
func (t *LoopTask) Run() {
	defer t.restartDevice()

	t.state.Store(uint32(StateStarting))
	t.writeLine(startupLine)
	t.flush()

	t.state.Store(uint32(StateRunning))
	t.invoke()
}

func (t *LoopTask) invoke() {
	defer func() {
		if r := recover(); r != nil {
			t.fault(Fault{Task: LoopTaskName, Value: r, Stack: captureStack()})
		}
	}()
	if t.entry != nil {
		t.entry()
	}
}

func (t *LoopTask) fault(f Fault) {
	for _, line := range f.Lines() {
		t.writeLine(line)
	}
	if t.onFault == nil {
		return
	}
	defer func() { _ = recover() }()
	t.onFault(f)
}

// restartDevice runs from a deferred call so Goexit and panics in the
// task's own logging still reach it.
func (t *LoopTask) restartDevice() {
	t.restart.Do(func() {
		t.state.Store(uint32(StateRestarting))
		t.flush()
		if t.power != nil {
			t.power.Restart()
		}
	})
}

func (t *LoopTask) writeLine(s string) {
	if t.log != nil {
		t.log.WriteLineString(s)
	}
}

func (t *LoopTask) flush() {
	if t.log != nil {
		_ = t.log.Flush()
	}
}
