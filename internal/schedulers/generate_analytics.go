package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/util"
)

// generateResponse derives every metric of a schedule from its trace.
// Completion of a process is the end of its last item, its response the
// start of its first item.
func generateResponse(processes []core.Process, trace []core.GanttItem, totalTime int) core.Schedule {
	firstStart := make(map[int]int, len(processes))
	completion := make(map[int]int, len(processes))
	busy := 0
	for _, item := range trace {
		if _, ok := firstStart[item.ProcessID]; !ok {
			firstStart[item.ProcessID] = item.StartTime
		}
		completion[item.ProcessID] = item.EndTime
		busy += item.Duration()
	}

	details := make([]core.ProcessStat, 0, len(processes))
	for _, p := range processes {
		details = append(details, generateProcessDetails(p, firstStart[p.ID], completion[p.ID]))
	}

	schedule := core.Schedule{
		GanttItems: trace,
		TotalTime:  totalTime,
		Details:    details,
	}
	schedule.Results.WaitingTime, schedule.Results.ResponseTime, schedule.Results.TurnaroundTime = util.CalculateAverage(details)

	if span := totalTime - schedule.StartTime(); span > 0 {
		schedule.IdleTime = span - busy
		schedule.CpuUtilization = util.Round2(float64(busy) / float64(span))
		schedule.Throughput = util.Round2(float64(len(processes)) / float64(span))
	}
	return schedule
}

func generateProcessDetails(p core.Process, firstStart, completion int) core.ProcessStat {
	turnaround := completion - p.ArrivalTime
	var priority *int
	if p.Priority != nil {
		priority = core.IntPtr(*p.Priority)
	}
	return core.ProcessStat{
		ProcessID:      p.ID,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       priority,
		CompletionTime: completion,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ResponseTime:   firstStart - p.ArrivalTime,
	}
}
