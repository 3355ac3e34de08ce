package kernel

import (
	"runtime"
	"strings"
	"sync"
	"testing"
)

// trace records logger, entry and power events in order.
type trace struct {
	mu     sync.Mutex
	events []string
}

func (tr *trace) add(ev string) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.events = append(tr.events, ev)
}

func (tr *trace) snapshot() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]string(nil), tr.events...)
}

func (tr *trace) count(ev string) int {
	n := 0
	for _, e := range tr.snapshot() {
		if e == ev {
			n++
		}
	}
	return n
}

type traceLogger struct{ tr *trace }

func (l traceLogger) WriteLineString(s string) { l.tr.add("line:" + s) }
func (l traceLogger) WriteLineBytes(b []byte)  { l.tr.add("line:" + string(b)) }
func (l traceLogger) Flush() error             { l.tr.add("flush"); return nil }

type tracePower struct{ tr *trace }

func (p tracePower) Restart() { p.tr.add("restart") }

func TestLoopTaskNormalReturn(t *testing.T) {
	tr := &trace{}
	task := NewLoopTask(traceLogger{tr}, tracePower{tr}, func() { tr.add("entry") })

	task.Run()

	want := []string{"line:" + startupLine, "flush", "entry", "flush", "restart"}
	got := tr.snapshot()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if task.State() != StateRestarting {
		t.Fatalf("State() = %v, want %v", task.State(), StateRestarting)
	}
}

func TestLoopTaskStateWhileRunning(t *testing.T) {
	tr := &trace{}
	var task *LoopTask
	var during State
	task = NewLoopTask(traceLogger{tr}, tracePower{tr}, func() { during = task.State() })

	task.Run()

	if during != StateRunning {
		t.Fatalf("State() inside entry = %v, want %v", during, StateRunning)
	}
}

func TestLoopTaskNilEntryRestarts(t *testing.T) {
	tr := &trace{}
	NewLoopTask(traceLogger{tr}, tracePower{tr}, nil).Run()

	if n := tr.count("restart"); n != 1 {
		t.Fatalf("restarts = %d, want 1", n)
	}
}

func TestLoopTaskPanicRestartsOnce(t *testing.T) {
	tr := &trace{}
	var got Fault
	task := NewLoopTask(traceLogger{tr}, tracePower{tr}, func() { panic("boom") },
		WithFaultHandler(func(f Fault) {
			got = f
			tr.add("fault")
		}))

	task.Run()

	if got.Value != "boom" || got.Task != LoopTaskName {
		t.Fatalf("fault = %+v, want boom from %s", got, LoopTaskName)
	}
	if len(got.Stack) == 0 {
		t.Fatalf("fault stack is empty")
	}
	events := tr.snapshot()
	if events[len(events)-1] != "restart" || events[len(events)-2] != "flush" {
		t.Fatalf("events = %v, want flush then restart last", events)
	}
	if n := tr.count("restart"); n != 1 {
		t.Fatalf("restarts = %d, want 1", n)
	}
	if n := tr.count("line:" + LoopTaskName + ": panic: boom"); n != 1 {
		t.Fatalf("panic line count = %d, want 1 in %v", n, events)
	}
}

func TestLoopTaskFaultHandlerPanicStillRestarts(t *testing.T) {
	tr := &trace{}
	task := NewLoopTask(traceLogger{tr}, tracePower{tr}, func() { panic("first") },
		WithFaultHandler(func(Fault) { panic("second") }))

	task.Run()

	if n := tr.count("restart"); n != 1 {
		t.Fatalf("restarts = %d, want 1", n)
	}
}

func TestLoopTaskGoexitRestartsOnce(t *testing.T) {
	tr := &trace{}
	task := NewLoopTask(traceLogger{tr}, tracePower{tr}, func() { runtime.Goexit() })

	done := make(chan struct{})
	go func() {
		defer close(done)
		task.Run()
	}()
	<-done

	if n := tr.count("restart"); n != 1 {
		t.Fatalf("restarts = %d, want 1", n)
	}
}

func TestLoopTaskRestartNotDuplicated(t *testing.T) {
	tr := &trace{}
	task := NewLoopTask(traceLogger{tr}, tracePower{tr}, nil)

	task.Run()
	task.restartDevice()

	if n := tr.count("restart"); n != 1 {
		t.Fatalf("restarts = %d, want 1", n)
	}
}

func TestFaultLinesWithoutStack(t *testing.T) {
	lines := Fault{Task: "t", Value: 3}.Lines()
	if len(lines) != 2 || lines[0] != "t: panic: 3" || lines[1] != "stack: unavailable" {
		t.Fatalf("Lines() = %v", lines)
	}
}
