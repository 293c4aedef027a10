package schedulers

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"os-scheduler/internal/core"
)

// readyQueue is a FIFO of indices into the working job array.
type readyQueue []int

func (q *readyQueue) AddToEnd(idx int) {
	*q = append(*q, idx)
}

func (q *readyQueue) RemoveFromTop() (int, bool) {
	if len(*q) == 0 {
		return -1, false
	}
	idx := (*q)[0]
	*q = (*q)[1:]
	return idx, true
}

// enqueueArrived appends every arrived, unqueued, unfinished job except skip,
// in working-array order.
func enqueueArrived(jobs []job, clock, skip int, add func(idx int)) {
	for i := range jobs {
		if i == skip || jobs[i].queued || jobs[i].completed || jobs[i].ArrivalTime > clock {
			continue
		}
		jobs[i].queued = true
		add(i)
	}
}

// ScheduleRoundRobin gives each ready process at most timeQuantum units per
// turn. Processes that arrive during a slice are queued ahead of the process
// that was preempted by the end of that slice.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (core.Schedule, error) {
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)
	if len(processes) == 0 {
		return core.Schedule{}, fmt.Errorf("%w: %s", ErrEmptyInput, RoundRobin)
	}
	if timeQuantum <= 0 {
		return core.Schedule{}, fmt.Errorf("%w: got %d", ErrInvalidQuantum, timeQuantum)
	}

	jobs := newJobs(processes)
	sortByArrival(jobs)

	cpu := core.NewCPU(earliestArrival(jobs))
	queue := make(readyQueue, 0, len(jobs))

	for completed := 0; completed < len(jobs); {
		enqueueArrived(jobs, cpu.Clock(), -1, queue.AddToEnd)

		idx, ok := queue.RemoveFromTop()
		if !ok {
			cpu.IdleUntil(nextArrival(jobs))
			continue
		}
		current := &jobs[idx]
		current.queued = false

		item := cpu.Execute(current.ID, min(timeQuantum, current.remaining))
		current.remaining -= item.Duration()
		logrus.Debugf("%s: pid: %d runs [%d, %d), remaining %d", RoundRobin, current.ID, item.StartTime, item.EndTime, current.remaining)

		if current.remaining == 0 {
			current.completed = true
			completed++
			continue
		}

		enqueueArrived(jobs, cpu.Clock(), idx, queue.AddToEnd)
		current.queued = true
		queue.AddToEnd(idx)
	}

	return generateResponse(processes, cpu.Trace(), cpu.Clock()), nil
}
