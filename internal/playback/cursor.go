// Package playback steps through a computed schedule one time unit at a time.
// The schedule itself is never recomputed; playback only reveals it.
package playback

import "os-scheduler/internal/core"

// Frame is the visible state at Time: every item executed so far, the last
// one clipped at Time, and the process that ran during [Time-1, Time).
type Frame struct {
	Time    int
	Items   []core.GanttItem
	Running int
}

// Cursor walks the time axis of a schedule from its first start to its
// total time.
type Cursor struct {
	schedule core.Schedule
	time     int
}

func NewCursor(schedule core.Schedule) *Cursor {
	return &Cursor{schedule: schedule, time: schedule.StartTime()}
}

func (c *Cursor) Schedule() core.Schedule {
	return c.schedule
}

func (c *Cursor) Time() int {
	return c.time
}

func (c *Cursor) Done() bool {
	return c.time >= c.schedule.TotalTime
}

// Next advances one time unit. It returns false once the end is reached.
func (c *Cursor) Next() (Frame, bool) {
	if c.Done() {
		return c.Frame(), false
	}
	c.time++
	return c.Frame(), true
}

func (c *Cursor) Reset() {
	c.time = c.schedule.StartTime()
}

// Progress is the revealed fraction of the schedule, in [0, 1].
func (c *Cursor) Progress() float64 {
	span := c.schedule.TotalTime - c.schedule.StartTime()
	if span <= 0 {
		return 1
	}
	return float64(c.time-c.schedule.StartTime()) / float64(span)
}

func (c *Cursor) Frame() Frame {
	frame := Frame{Time: c.time, Running: core.Idle}
	for _, item := range c.schedule.GanttItems {
		if item.StartTime >= c.time {
			break
		}
		if item.EndTime > c.time {
			item.EndTime = c.time
		}
		if item.EndTime == c.time {
			frame.Running = item.ProcessID
		}
		frame.Items = append(frame.Items, item)
	}
	return frame
}
