// Package ui animates schedules and Banker's safety checks in the terminal.
package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"os-scheduler/internal/core"
	"os-scheduler/internal/playback"
	"os-scheduler/internal/report"
)

const (
	unitWidth   = 3
	maxBarWidth = 120
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// ScheduleModel plays a computed schedule back one time unit per tick.
type ScheduleModel struct {
	title    string
	cursor   *playback.Cursor
	interval time.Duration
	paused   bool
	ticking  bool
	width    int
}

func NewScheduleModel(title string, schedule core.Schedule, interval time.Duration) ScheduleModel {
	return ScheduleModel{
		title:    title,
		cursor:   playback.NewCursor(schedule),
		interval: interval,
		ticking:  true,
	}
}

func (m ScheduleModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if !m.paused {
				return m.resume()
			}
		case "n", "right":
			if m.paused {
				m.cursor.Next()
			}
		case "r":
			m.cursor.Reset()
			return m.resume()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tickMsg:
		if m.paused || m.cursor.Done() {
			m.ticking = false
			return m, nil
		}
		m.cursor.Next()
		return m, tick(m.interval)
	}
	return m, nil
}

// resume restarts the tick chain if it stopped.
func (m ScheduleModel) resume() (tea.Model, tea.Cmd) {
	if m.ticking || m.paused {
		return m, nil
	}
	m.ticking = true
	return m, tick(m.interval)
}

func (m ScheduleModel) View() string {
	frame := m.cursor.Frame()
	schedule := m.cursor.Schedule()

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(renderGantt(frame, schedule.StartTime())))
	b.WriteString("\n")

	status := labelStyle.Render("time ") + valueStyle.Render(strconv.Itoa(frame.Time)) +
		labelStyle.Render("  running ") + valueStyle.Render(report.Label(frame.Running)) +
		labelStyle.Render("  progress ") + valueStyle.Render(fmt.Sprintf("%3.0f%%", m.cursor.Progress()*100))
	switch {
	case m.cursor.Done():
		status += "  " + okStyle.Render("done")
	case m.paused:
		status += "  " + warnStyle.Render("paused")
	}
	b.WriteString(status)
	b.WriteString("\n\n")

	if m.cursor.Done() {
		b.WriteString(renderMetrics(schedule))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space pause  n step  r restart  q quit"))
	return b.String()
}

// renderGantt draws each revealed item as a colored block, unitWidth columns
// per time unit, with a time axis underneath.
func renderGantt(frame playback.Frame, start int) string {
	if len(frame.Items) == 0 {
		return labelStyle.Render("waiting for t=" + strconv.Itoa(start))
	}

	unit := unitWidth
	if span := frame.Time - start; span*unit > maxBarWidth {
		unit = max(maxBarWidth/span, 1)
	}

	var bar, axis strings.Builder
	for _, item := range core.FillIdle(frame.Items) {
		width := item.Duration() * unit
		label := report.Label(item.ProcessID)
		if len(label) > width {
			label = label[:width]
		}
		bar.WriteString(processStyle(item.ProcessID).Width(width).Align(lipgloss.Center).Render(label))

		mark := strconv.Itoa(item.StartTime)
		axis.WriteString(mark + strings.Repeat(" ", max(width-len(mark), 0)))
	}
	axis.WriteString(strconv.Itoa(frame.Items[len(frame.Items)-1].EndTime))
	return bar.String() + "\n" + labelStyle.Render(axis.String())
}

func renderMetrics(schedule core.Schedule) string {
	rows := []string{
		headerStyle.Render(fmt.Sprintf("%-4s %8s %8s %10s %8s %10s", "ID", "Arrival", "Burst", "Completion", "Wait", "Turnaround")),
	}
	for _, d := range schedule.Details {
		rows = append(rows, valueStyle.Render(fmt.Sprintf("%-4s %8d %8d %10d %8d %10d",
			report.Label(d.ProcessID), d.ArrivalTime, d.BurstTime, d.CompletionTime, d.WaitingTime, d.TurnaroundTime)))
	}
	rows = append(rows, "",
		labelStyle.Render("avg waiting ")+valueStyle.Render(fmt.Sprintf("%.2f", schedule.Results.WaitingTime))+
			labelStyle.Render("  avg turnaround ")+valueStyle.Render(fmt.Sprintf("%.2f", schedule.Results.TurnaroundTime))+
			labelStyle.Render("  avg response ")+valueStyle.Render(fmt.Sprintf("%.2f", schedule.Results.ResponseTime))+
			labelStyle.Render("  cpu ")+valueStyle.Render(fmt.Sprintf("%.0f%%", schedule.CpuUtilization*100)))
	return panelStyle.Render(strings.Join(rows, "\n"))
}

// RunSchedule opens the full-screen playback and blocks until the user quits.
func RunSchedule(title string, schedule core.Schedule, interval time.Duration) error {
	_, err := tea.NewProgram(NewScheduleModel(title, schedule, interval), tea.WithAltScreen()).Run()
	return err
}
