package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"os-scheduler/internal/core"
)

// ScheduleShortestRemainingTimeFirst is the preemptive form of SJF. The clock
// moves one unit at a time while a process runs so that a newly arrived
// shorter process can take the CPU. Ties on remaining time go to the process
// that comes first in the caller's list. The returned trace has touching
// segments of the same process merged.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) (core.Schedule, error) {
	if len(processes) == 0 {
		return core.Schedule{}, fmt.Errorf("%w: %s", ErrEmptyInput, SRTF)
	}

	jobs := newJobs(processes)
	cpu := core.NewCPU(earliestArrival(jobs))

	for completed := 0; completed < len(jobs); {
		idx := shortestRemaining(jobs, cpu.Clock())
		if idx == -1 {
			cpu.IdleUntil(nextArrival(jobs))
			continue
		}

		current := &jobs[idx]
		if pid, ok := cpu.Running(); !ok || pid != current.ID {
			logrus.Debugf("%s: pid: %d dispatched at %d (remaining %d)", SRTF, current.ID, cpu.Clock(), current.remaining)
		}
		cpu.Dispatch(current.ID)
		cpu.Advance(1)
		current.remaining--

		if current.remaining == 0 {
			cpu.Release()
			current.completed = true
			completed++
			logrus.Debugf("%s: pid: %d finished at %d", SRTF, current.ID, cpu.Clock())
			continue
		}

		if arrivalPreempts(jobs, cpu.Clock(), current.remaining) {
			logrus.Debugf("%s: pid: %d preempted at %d", SRTF, current.ID, cpu.Clock())
			cpu.Release()
		}
	}

	return generateResponse(processes, core.MergeAdjacent(cpu.Trace()), cpu.Clock()), nil
}

// shortestRemaining returns the index of the arrived, unfinished job with the
// least remaining time, or -1 when none has arrived.
func shortestRemaining(jobs []job, clock int) int {
	idx := -1
	for i := range jobs {
		if jobs[i].completed || jobs[i].ArrivalTime > clock {
			continue
		}
		if idx == -1 || jobs[i].remaining < jobs[idx].remaining {
			idx = i
		}
	}
	return idx
}

// arrivalPreempts reports whether a process arriving exactly at clock needs
// strictly less time than the running one.
func arrivalPreempts(jobs []job, clock, remaining int) bool {
	for i := range jobs {
		if !jobs[i].completed && jobs[i].ArrivalTime == clock && jobs[i].remaining < remaining {
			return true
		}
	}
	return false
}
