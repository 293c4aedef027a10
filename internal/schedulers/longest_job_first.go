package schedulers

import "os-scheduler/internal/core"

// ScheduleLongestJobFirst mirrors SJF with the largest burst selected.
func ScheduleLongestJobFirst(processes []core.Process) (core.Schedule, error) {
	return scheduleNonPreemptive(LJF, processes, longestJob)
}

func longestJob(ready []*job, _ int) *job {
	longest := ready[0]
	for _, j := range ready[1:] {
		if j.BurstTime > longest.BurstTime {
			longest = j
		}
	}
	return longest
}
