package schedulers

import "os-scheduler/internal/core"

// ScheduleHighestResponseRatioNext selects the ready process with the highest
// (waiting + burst) / burst at the moment of selection.
func ScheduleHighestResponseRatioNext(processes []core.Process) (core.Schedule, error) {
	return scheduleNonPreemptive(HRRN, processes, highestResponseRatio)
}

func highestResponseRatio(ready []*job, clock int) *job {
	best := ready[0]
	for _, j := range ready[1:] {
		if responseRatioGreater(j, best, clock) {
			best = j
		}
	}
	return best
}

// responseRatioGreater compares (wa+ba)/ba > (wb+bb)/bb by cross
// multiplication so equal ratios compare equal exactly.
func responseRatioGreater(a, b *job, clock int) bool {
	waitA := clock - a.ArrivalTime
	waitB := clock - b.ArrivalTime
	return (waitA+a.BurstTime)*b.BurstTime > (waitB+b.BurstTime)*a.BurstTime
}

