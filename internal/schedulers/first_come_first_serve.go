package schedulers

import "os-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes strictly in arrival order.
// Arrival ties keep the caller's order.
func ScheduleFirstComeFirstServe(processes []core.Process) (core.Schedule, error) {
	return scheduleNonPreemptive(FCFS, processes, func(ready []*job, _ int) *job {
		// the working array is arrival-sorted, so the first ready job arrived earliest
		return ready[0]
	})
}
