package kernel

import (
	"errors"
	"fmt"

	"m5boot/hal"
)

// Fixed creation parameters of the loop task. They do not vary between boots.
const (
	LoopTaskName      = "loopTask"
	LoopTaskStackSize = 8192
	LoopTaskPriority  = 1
	LoopTaskCore      = hal.CoreApp
)

// ErrTaskCreate wraps every failure to create the loop task.
var ErrTaskCreate = errors.New("task create failed")

// LoopTaskSpec returns the spec the loop task is created with.
func LoopTaskSpec(entry func()) hal.TaskSpec {
	return hal.TaskSpec{
		Entry:     entry,
		Name:      LoopTaskName,
		StackSize: LoopTaskStackSize,
		Priority:  LoopTaskPriority,
		Core:      LoopTaskCore,
	}
}

// Bootstrap creates the loop task on its core. It is called once per boot;
// the scheduler keeps no handle the caller could use later.
func Bootstrap(s hal.Scheduler, t *LoopTask) error {
	if s == nil {
		return fmt.Errorf("%w: no scheduler", ErrTaskCreate)
	}
	spec := LoopTaskSpec(t.Run)
	if err := s.Spawn(spec); err != nil {
		return fmt.Errorf("%w: %s on core %d: %w", ErrTaskCreate, spec.Name, spec.Core, err)
	}
	return nil
}
