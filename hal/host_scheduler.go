//go:build !tinygo

package hal

import (
	"fmt"
	"runtime"
)

// hostCores mirrors the dual-core device so task specs validate the same way.
const hostCores = 2

type hostScheduler struct {
	logger Logger
	pin    func(Core) error
}

func newHostScheduler(logger Logger) *hostScheduler {
	return &hostScheduler{logger: logger, pin: pinToCore}
}

func (s *hostScheduler) Cores() int { return hostCores }

// Spawn runs the task on a goroutine locked to its own OS thread. Pinning
// is best-effort: a host with fewer CPUs than the device still runs the task.
func (s *hostScheduler) Spawn(spec TaskSpec) error {
	if err := spec.Validate(hostCores); err != nil {
		return fmt.Errorf("spawn %q: %w", spec.Name, err)
	}

	go func() {
		// Never unlocked: the thread exits with the task.
		runtime.LockOSThread()
		if err := s.pin(spec.Core); err != nil && s.logger != nil {
			s.logger.WriteLineString(fmt.Sprintf("%s: core %d affinity: %v", spec.Name, spec.Core, err))
		}
		spec.Entry()
	}()
	return nil
}
