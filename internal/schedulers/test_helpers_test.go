package schedulers

import (
	"os-scheduler/internal/core"
)

func proc(id, arrival, burst int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func procP(id, arrival, burst, priority int) core.Process {
	return core.Process{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: core.IntPtr(priority)}
}

func item(pid, start, end int) core.GanttItem {
	return core.GanttItem{ProcessID: pid, StartTime: start, EndTime: end}
}

// fixtures are shared by the property tests; every process carries a
// priority so the set is valid for all algorithms.
func fixtures() map[string][]core.Process {
	return map[string][]core.Process{
		"single": {procP(1, 0, 5, 1)},
		"two staggered": {
			procP(1, 0, 5, 2),
			procP(2, 1, 3, 1),
		},
		"textbook sjf": {
			procP(1, 0, 7, 3),
			procP(2, 2, 4, 1),
			procP(3, 4, 1, 4),
			procP(4, 5, 4, 2),
		},
		"srtf classic": {
			procP(1, 0, 8, 2),
			procP(2, 1, 4, 1),
			procP(3, 2, 9, 3),
			procP(4, 3, 5, 2),
		},
		"idle gaps": {
			procP(1, 3, 2, 1),
			procP(2, 10, 4, 2),
			procP(3, 11, 1, 0),
			procP(4, 30, 3, 5),
		},
		"same arrival": {
			procP(1, 0, 3, 3),
			procP(2, 0, 3, 3),
			procP(3, 0, 6, 1),
			procP(4, 0, 1, 2),
		},
		"unsorted input": {
			procP(5, 9, 2, 1),
			procP(3, 4, 6, 2),
			procP(1, 0, 3, 3),
			procP(2, 2, 5, 1),
			procP(4, 6, 1, 2),
		},
		"hrrn textbook": {
			procP(1, 0, 3, 1),
			procP(2, 2, 6, 1),
			procP(3, 4, 4, 1),
			procP(4, 6, 5, 1),
			procP(5, 8, 2, 1),
		},
	}
}

func defaultOptions() Options {
	return Options{TimeQuantum: 2, LevelsTimeQuantum: []int{2, 4}}
}

func cloneProcesses(in []core.Process) []core.Process {
	out := make([]core.Process, len(in))
	for i, p := range in {
		if p.Priority != nil {
			p.Priority = core.IntPtr(*p.Priority)
		}
		out[i] = p
	}
	return out
}
