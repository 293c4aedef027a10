package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"os-scheduler/internal/core"
)

// ScheduleMultilevelFeedbackQueue runs one round robin level per entry of
// timeQuantumList plus a final FCFS level. New arrivals enter the top level;
// a process that uses its whole quantum without finishing drops one level.
// The highest non-empty level is always served first and slices are never
// cut short.
func ScheduleMultilevelFeedbackQueue(processes []core.Process, timeQuantumList []int) (core.Schedule, error) {
	logrus.Debugf("mlfq algorithm with timeQuantum = %v", timeQuantumList)
	if len(processes) == 0 {
		return core.Schedule{}, fmt.Errorf("%w: %s", ErrEmptyInput, MLFQ)
	}
	if len(timeQuantumList) == 0 {
		return core.Schedule{}, fmt.Errorf("%w: no levels configured", ErrInvalidQuantum)
	}
	for level, quantum := range timeQuantumList {
		if quantum <= 0 {
			return core.Schedule{}, fmt.Errorf("%w: level %d got %d", ErrInvalidQuantum, level, quantum)
		}
	}

	jobs := newJobs(processes)
	sortByArrival(jobs)

	fcfsLevel := len(timeQuantumList)
	levels := make([]readyQueue, fcfsLevel+1)
	sendProccessToLevel := func(idx int) {
		levels[jobs[idx].level].AddToEnd(idx)
	}

	cpu := core.NewCPU(earliestArrival(jobs))
	for completed := 0; completed < len(jobs); {
		enqueueArrived(jobs, cpu.Clock(), -1, sendProccessToLevel)

		level, idx, ok := highestNonEmptyLevel(levels)
		if !ok {
			cpu.IdleUntil(nextArrival(jobs))
			continue
		}
		current := &jobs[idx]
		current.queued = false

		slice := current.remaining
		if level < fcfsLevel {
			slice = min(timeQuantumList[level], current.remaining)
		}
		item := cpu.Execute(current.ID, slice)
		current.remaining -= item.Duration()
		logrus.Debugf("%s: pid: %d runs [%d, %d) at level %d, remaining %d", MLFQ, current.ID, item.StartTime, item.EndTime, level, current.remaining)

		if current.remaining == 0 {
			current.completed = true
			completed++
			continue
		}

		if level < fcfsLevel {
			current.level = level + 1
		}
		enqueueArrived(jobs, cpu.Clock(), idx, sendProccessToLevel)
		current.queued = true
		sendProccessToLevel(idx)
	}

	return generateResponse(processes, cpu.Trace(), cpu.Clock()), nil
}

func highestNonEmptyLevel(levels []readyQueue) (level, idx int, ok bool) {
	for level = range levels {
		if idx, ok = levels[level].RemoveFromTop(); ok {
			return level, idx, true
		}
	}
	return -1, -1, false
}
