package core

// idle marks the CPU as holding no open execution segment.
const idle = -1

// CPU is a simulated single core. It owns the clock and the Gantt trace.
// A segment is opened by Dispatch and closed by Release; Execute does both
// for non-preemptive runs.
type CPU struct {
	clock    int
	running  int
	segStart int
	trace    []GanttItem
}

// NewCPU returns a CPU whose clock starts at start.
func NewCPU(start int) *CPU {
	return &CPU{
		clock:   start,
		running: idle,
		trace:   make([]GanttItem, 0),
	}
}

func (c *CPU) Clock() int {
	return c.clock
}

// Running returns the pid holding the open segment and whether one exists.
func (c *CPU) Running() (int, bool) {
	return c.running, c.running != idle
}

// IdleUntil jumps the clock forward to t. Idle gaps are not part of the trace.
func (c *CPU) IdleUntil(t int) {
	if c.running != idle {
		c.Release()
	}
	if t > c.clock {
		c.clock = t
	}
}

// Dispatch gives the CPU to pid. If another process holds an open segment it
// is closed at the current clock first.
func (c *CPU) Dispatch(pid int) {
	if c.running == pid {
		return
	}
	if c.running != idle {
		c.Release()
	}
	c.running = pid
	c.segStart = c.clock
}

// Advance runs the dispatched process for units time units.
func (c *CPU) Advance(units int) {
	if units <= 0 {
		return
	}
	c.clock += units
}

// Release closes the open segment at the current clock.
func (c *CPU) Release() {
	if c.running == idle {
		return
	}
	if c.clock > c.segStart {
		c.trace = append(c.trace, GanttItem{
			ProcessID: c.running,
			StartTime: c.segStart,
			EndTime:   c.clock,
		})
	}
	c.running = idle
}

// Execute runs pid for units without interruption and returns the emitted item.
func (c *CPU) Execute(pid, units int) GanttItem {
	c.Dispatch(pid)
	c.Advance(units)
	item := GanttItem{ProcessID: pid, StartTime: c.segStart, EndTime: c.clock}
	c.Release()
	return item
}

// Trace closes any open segment and returns a copy of the emitted items.
func (c *CPU) Trace() []GanttItem {
	c.Release()
	out := make([]GanttItem, len(c.trace))
	copy(out, c.trace)
	return out
}

// MergeAdjacent joins consecutive items of the same process that touch
// (prev.EndTime == next.StartTime). The input slice is not modified.
func MergeAdjacent(items []GanttItem) []GanttItem {
	merged := make([]GanttItem, 0, len(items))
	for _, item := range items {
		if n := len(merged); n > 0 {
			prev := &merged[n-1]
			if prev.ProcessID == item.ProcessID && prev.EndTime == item.StartTime {
				prev.EndTime = item.EndTime
				continue
			}
		}
		merged = append(merged, item)
	}
	return merged
}

// FillIdle returns items with an Idle item inserted into every gap between
// consecutive items.
func FillIdle(items []GanttItem) []GanttItem {
	filled := make([]GanttItem, 0, len(items))
	for i, item := range items {
		if i > 0 && items[i-1].EndTime < item.StartTime {
			filled = append(filled, GanttItem{ProcessID: Idle, StartTime: items[i-1].EndTime, EndTime: item.StartTime})
		}
		filled = append(filled, item)
	}
	return filled
}
