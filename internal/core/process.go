package core

// Process is one schedulable unit. Simulators never modify the caller's copy.
type Process struct {
	ID          int  `json:"id" yaml:"id"`
	ArrivalTime int  `json:"arrivalTime" yaml:"arrival_time"`
	BurstTime   int  `json:"burstTime" yaml:"burst_time"`
	Priority    *int `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// PriorityOrZero treats a missing priority as 0, the highest priority.
func (p Process) PriorityOrZero() int {
	if p.Priority == nil {
		return 0
	}
	return *p.Priority
}

// IntPtr is a helper for building processes with a priority literal.
func IntPtr(v int) *int {
	return &v
}

// Idle stands in for a process id where the CPU runs nothing.
const Idle = -1

// GanttItem is one contiguous execution interval [StartTime, EndTime).
type GanttItem struct {
	ProcessID int `json:"processId"`
	StartTime int `json:"startTime"`
	EndTime   int `json:"endTime"`
}

func (g GanttItem) Duration() int {
	return g.EndTime - g.StartTime
}

// Metrics holds averages over all input processes, rounded to 2 decimals.
type Metrics struct {
	WaitingTime    float64 `json:"waitingTime"`
	TurnaroundTime float64 `json:"turnaroundTime"`
	ResponseTime   float64 `json:"responseTime"`
}

// ProcessStat is the per-process outcome of a schedule.
type ProcessStat struct {
	ProcessID      int  `json:"processId"`
	ArrivalTime    int  `json:"arrivalTime"`
	BurstTime      int  `json:"burstTime"`
	Priority       *int `json:"priority,omitempty"`
	CompletionTime int  `json:"completionTime"`
	WaitingTime    int  `json:"waitingTime"`
	TurnaroundTime int  `json:"turnaroundTime"`
	ResponseTime   int  `json:"responseTime"`
}

// Schedule is the fully materialized result of one simulator run.
type Schedule struct {
	GanttItems     []GanttItem   `json:"ganttItems"`
	TotalTime      int           `json:"totalTime"`
	Results        Metrics       `json:"results"`
	Details        []ProcessStat `json:"details"`
	IdleTime       int           `json:"idleTime"`
	CpuUtilization float64       `json:"cpuUtilization"`
	Throughput     float64       `json:"throughput"`
}

// StartTime is the start of the first execution interval, or 0 for an empty trace.
func (s Schedule) StartTime() int {
	if len(s.GanttItems) == 0 {
		return 0
	}
	return s.GanttItems[0].StartTime
}
