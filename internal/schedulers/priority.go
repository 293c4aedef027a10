package schedulers

import (
	"fmt"

	"os-scheduler/internal/core"
)

// SchedulePriority is non-preemptive; a lower value means a higher priority.
// Every process must carry a priority.
func SchedulePriority(processes []core.Process) (core.Schedule, error) {
	if len(processes) == 0 {
		return core.Schedule{}, fmt.Errorf("%w: %s", ErrEmptyInput, Priority)
	}
	for _, p := range processes {
		if p.Priority == nil {
			return core.Schedule{}, fmt.Errorf("%w: process %d", ErrMissingPriority, p.ID)
		}
	}
	return scheduleNonPreemptive(Priority, processes, highestPriority)
}

func highestPriority(ready []*job, _ int) *job {
	best := ready[0]
	for _, j := range ready[1:] {
		if j.PriorityOrZero() < best.PriorityOrZero() {
			best = j
		}
	}
	return best
}
