//go:build linux

package affinity

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Pin binds the calling OS thread to cpu. The caller must have locked the
// goroutine to its thread with runtime.LockOSThread first, otherwise the
// scheduler may migrate the goroutine off the pinned thread.
func Pin(cpu int) error {
	if cpu < 0 {
		return fmt.Errorf("%w: %d", ErrBadCPU, cpu)
	}
	var set unix.CPUSet
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("affinity: pinning to cpu %d: %w", cpu, err)
	}
	return nil
}
