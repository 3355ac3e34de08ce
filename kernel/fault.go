package kernel

import (
	"fmt"
	"strings"
)

// Fault describes a panic recovered from a task's entry.
type Fault struct {
	Task  string
	Value any
	Stack []byte
}

// Lines renders the fault for a line-oriented diagnostic stream.
func (f Fault) Lines() []string {
	lines := []string{fmt.Sprintf("%s: panic: %v", f.Task, f.Value)}
	if len(f.Stack) == 0 {
		return append(lines, "stack: unavailable")
	}
	for _, line := range strings.Split(string(f.Stack), "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
