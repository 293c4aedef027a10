// Package report renders schedules and Banker's results as text: a Gantt
// chart plus tablewriter tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/bankers"
	"os-scheduler/internal/core"
)

const cellWidth = 6

// WriteSchedule outputs a schedule as a Gantt chart followed by its table.
func WriteSchedule(w io.Writer, title string, schedule core.Schedule) {
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)))
	WriteGantt(w, schedule.GanttItems)
	writeScheduleTable(w, schedule)
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, idle %d, span %d..%d\n\n",
		schedule.CpuUtilization*100, schedule.IdleTime, schedule.StartTime(), schedule.TotalTime)
}

// WriteGantt draws one cell per item, idle gaps included, with the start of
// every cell on the axis below it.
func WriteGantt(w io.Writer, items []core.GanttItem) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(items) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var bar, axis strings.Builder
	bar.WriteString("|")
	for _, item := range core.FillIdle(items) {
		label := Label(item.ProcessID)
		width := max(len(label)+2, cellWidth)
		padding := width - len(label)
		bar.WriteString(strings.Repeat(" ", padding/2) + label + strings.Repeat(" ", padding-padding/2) + "|")

		start := strconv.Itoa(item.StartTime)
		axis.WriteString(start + strings.Repeat(" ", max(width+1-len(start), 1)))
	}
	axis.WriteString(strconv.Itoa(items[len(items)-1].EndTime))

	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", axis.String())
}

// Label names a pid the way charts show it.
func Label(pid int) string {
	if pid == core.Idle {
		return "idle"
	}
	return "P" + strconv.Itoa(pid)
}

func writeScheduleTable(w io.Writer, schedule core.Schedule) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(schedule.Details))
	for _, d := range schedule.Details {
		priority := "-"
		if d.Priority != nil {
			priority = strconv.Itoa(*d.Priority)
		}
		rows = append(rows, []string{
			strconv.Itoa(d.ProcessID),
			priority,
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnaroundTime),
			strconv.Itoa(d.ResponseTime),
			strconv.Itoa(d.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", schedule.Results.WaitingTime),
		fmt.Sprintf("Average\n%.2f", schedule.Results.TurnaroundTime),
		fmt.Sprintf("Average\n%.2f", schedule.Results.ResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", schedule.Throughput)})
	table.Render()
}

// Comparison is one row of WriteComparison.
type Comparison struct {
	Title    string
	Schedule core.Schedule
}

// WriteComparison puts the averages of several schedules side by side.
func WriteComparison(w io.Writer, rows []Comparison) {
	_, _ = fmt.Fprintln(w, "Comparison")
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		s := row.Schedule
		data = append(data, []string{
			row.Title,
			fmt.Sprintf("%.2f", s.Results.WaitingTime),
			fmt.Sprintf("%.2f", s.Results.TurnaroundTime),
			fmt.Sprintf("%.2f", s.Results.ResponseTime),
			strconv.Itoa(s.TotalTime),
			fmt.Sprintf("%.2f%%", s.CpuUtilization*100),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Total", "CPU"})
	table.AppendBulk(data)
	table.Render()
}

// WriteBankers outputs the initial state, the admitted steps and the verdict.
func WriteBankers(w io.Writer, processes []bankers.Process, available bankers.Resources, result bankers.Result) {
	_, _ = fmt.Fprintln(w, "Initial state")
	state := tablewriter.NewWriter(w)
	state.SetHeader([]string{"Process", "Allocation", "Max", "Need"})
	for _, p := range processes {
		state.Append([]string{Label(p.ID), vector(p.Allocation), vector(p.Max), vector(p.Need())})
	}
	state.SetFooter([]string{"", "", "Available", vector(available)})
	state.Render()

	_, _ = fmt.Fprintln(w, "Safety check")
	steps := tablewriter.NewWriter(w)
	steps.SetHeader([]string{"Step", "Process", "Need", "Available Before", "Available After"})
	for i, s := range result.Steps {
		steps.Append([]string{strconv.Itoa(i + 1), Label(s.ProcessID), vector(s.Need), vector(s.AvailableBefore), vector(s.AvailableAfter)})
	}
	steps.Render()

	if !result.Safe() {
		_, _ = fmt.Fprintf(w, "System is in an unsafe state\n\n")
		return
	}
	labels := make([]string, len(result.SafeSequence))
	for i, pid := range result.SafeSequence {
		labels[i] = Label(pid)
	}
	_, _ = fmt.Fprintf(w, "Safe sequence: %s\n\n", strings.Join(labels, " -> "))
}

func vector(r bankers.Resources) string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
