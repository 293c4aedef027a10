package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"os-scheduler/internal/core"
)

// selector picks one job from a non-empty ready set at the given clock.
type selector func(ready []*job, clock int) *job

// scheduleNonPreemptive runs the shared loop of FCFS, SJF, LJF, HRRN and
// Priority: pick one ready job, run it to completion, repeat. When nothing
// is ready the clock jumps to the next arrival.
func scheduleNonPreemptive(algorithm Algorithm, processes []core.Process, pick selector) (core.Schedule, error) {
	if len(processes) == 0 {
		return core.Schedule{}, fmt.Errorf("%w: %s", ErrEmptyInput, algorithm)
	}

	jobs := newJobs(processes)
	sortByArrival(jobs)

	cpu := core.NewCPU(earliestArrival(jobs))
	for completed := 0; completed < len(jobs); {
		ready := readyJobs(jobs, cpu.Clock())
		if len(ready) == 0 {
			cpu.IdleUntil(nextArrival(jobs))
			continue
		}

		next := pick(ready, cpu.Clock())
		item := cpu.Execute(next.ID, next.BurstTime)
		logrus.Debugf("%s: pid: %d runs [%d, %d)", algorithm, item.ProcessID, item.StartTime, item.EndTime)

		next.remaining = 0
		next.completed = true
		completed++
	}

	return generateResponse(processes, cpu.Trace(), cpu.Clock()), nil
}
