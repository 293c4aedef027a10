package schedulers

import "os-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive: among arrived processes the
// smallest burst runs next, first found on ties.
func ScheduleShortestJobFirst(processes []core.Process) (core.Schedule, error) {
	return scheduleNonPreemptive(SJF, processes, shortestJob)
}

func shortestJob(ready []*job, _ int) *job {
	shortest := ready[0]
	for _, j := range ready[1:] {
		if j.BurstTime < shortest.BurstTime {
			shortest = j
		}
	}
	return shortest
}
