//go:build !tinygo && linux

package hal

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// bootMask is the affinity the process started with, before any task pinned
// its thread. execve keeps the calling thread's mask, so it is restored
// before a restart re-executes the image.
var (
	bootMask    unix.CPUSet
	bootMaskErr = unix.SchedGetaffinity(0, &bootMask)
)

// pinToCore binds the calling OS thread to the CPU with the core's index.
func pinToCore(core Core) error {
	if int(core) >= runtime.NumCPU() {
		return fmt.Errorf("host has %d cpus: %w", runtime.NumCPU(), ErrCoreUnavailable)
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(int(core))
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("sched_setaffinity: %w", err)
	}
	return nil
}

// unpinThread gives the calling OS thread back the boot affinity.
func unpinThread() error {
	if bootMaskErr != nil {
		return fmt.Errorf("sched_getaffinity: %w", bootMaskErr)
	}
	mask := bootMask
	if err := unix.SchedSetaffinity(0, &mask); err != nil {
		return fmt.Errorf("sched_setaffinity: %w", err)
	}
	return nil
}
