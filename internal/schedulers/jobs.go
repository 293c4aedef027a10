package schedulers

import (
	"math"
	"sort"

	"os-scheduler/internal/core"
)

// job is the private working copy of a process for one run.
type job struct {
	core.Process
	remaining int
	completed bool
	queued    bool
	level     int
}

func newJobs(processes []core.Process) []job {
	jobs := make([]job, len(processes))
	for i, p := range processes {
		if p.Priority != nil {
			p.Priority = core.IntPtr(*p.Priority)
		}
		jobs[i] = job{Process: p, remaining: p.BurstTime}
	}
	return jobs
}

// sortByArrival orders jobs by arrival time, keeping input order on ties.
func sortByArrival(jobs []job) {
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].ArrivalTime < jobs[j].ArrivalTime
	})
}

func earliestArrival(jobs []job) int {
	earliest := math.MaxInt
	for i := range jobs {
		if jobs[i].ArrivalTime < earliest {
			earliest = jobs[i].ArrivalTime
		}
	}
	return earliest
}

// nextArrival is the earliest arrival among jobs that have not completed.
func nextArrival(jobs []job) int {
	next := math.MaxInt
	for i := range jobs {
		if !jobs[i].completed && jobs[i].ArrivalTime < next {
			next = jobs[i].ArrivalTime
		}
	}
	return next
}

// readyJobs returns arrived, not completed jobs in working-array order.
func readyJobs(jobs []job, clock int) []*job {
	ready := make([]*job, 0, len(jobs))
	for i := range jobs {
		if !jobs[i].completed && jobs[i].ArrivalTime <= clock {
			ready = append(ready, &jobs[i])
		}
	}
	return ready
}
