package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"os-scheduler/internal/bankers"
	"os-scheduler/internal/report"
)

// BankersModel reveals the safety check one admitted process per tick.
type BankersModel struct {
	processes []bankers.Process
	available bankers.Resources
	result    bankers.Result
	shown     int
	interval  time.Duration
	paused    bool
	ticking   bool
}

func NewBankersModel(processes []bankers.Process, available bankers.Resources, result bankers.Result, interval time.Duration) BankersModel {
	return BankersModel{
		processes: processes,
		available: available,
		result:    result,
		interval:  interval,
		ticking:   true,
	}
}

func (m BankersModel) Init() tea.Cmd {
	return tick(m.interval)
}

func (m BankersModel) done() bool {
	return m.shown >= len(m.result.Steps)
}

func (m BankersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
			if !m.paused && !m.ticking {
				m.ticking = true
				return m, tick(m.interval)
			}
		case "n", "right":
			if m.paused && !m.done() {
				m.shown++
			}
		case "r":
			m.shown = 0
			if !m.paused && !m.ticking {
				m.ticking = true
				return m, tick(m.interval)
			}
		}
	case tickMsg:
		if m.paused || m.done() {
			m.ticking = false
			return m, nil
		}
		m.shown++
		return m, tick(m.interval)
	}
	return m, nil
}

func (m BankersModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Banker's Algorithm"))
	b.WriteString("\n\n")

	state := []string{headerStyle.Render(fmt.Sprintf("%-8s %-12s %-12s %-12s", "Process", "Allocation", "Max", "Need"))}
	for _, p := range m.processes {
		state = append(state, valueStyle.Render(fmt.Sprintf("%-8s %-12s %-12s %-12s",
			report.Label(p.ID), vector(p.Allocation), vector(p.Max), vector(p.Need()))))
	}
	state = append(state, labelStyle.Render("available ")+valueStyle.Render(vector(m.available)))
	b.WriteString(panelStyle.Render(strings.Join(state, "\n")))
	b.WriteString("\n")

	steps := []string{headerStyle.Render(fmt.Sprintf("%-5s %-8s %-12s %-12s", "Step", "Process", "Work Before", "Work After"))}
	for i, s := range m.result.Steps[:m.shown] {
		steps = append(steps, okStyle.Render(fmt.Sprintf("%-5d %-8s %-12s %-12s",
			i+1, report.Label(s.ProcessID), vector(s.AvailableBefore), vector(s.AvailableAfter))))
	}
	b.WriteString(panelStyle.Render(strings.Join(steps, "\n")))
	b.WriteString("\n")

	if m.done() {
		if m.result.Safe() {
			labels := make([]string, len(m.result.SafeSequence))
			for i, pid := range m.result.SafeSequence {
				labels[i] = report.Label(pid)
			}
			b.WriteString(okStyle.Render("safe sequence: " + strings.Join(labels, " -> ")))
		} else {
			b.WriteString(critStyle.Render("unsafe state: no process can finish with the remaining work"))
		}
		b.WriteString("\n")
	} else if m.paused {
		b.WriteString(warnStyle.Render("paused"))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("space pause  n step  r restart  q quit"))
	return b.String()
}

func vector(r bankers.Resources) string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// RunBankers opens the full-screen Banker's walkthrough.
func RunBankers(processes []bankers.Process, available bankers.Resources, result bankers.Result, interval time.Duration) error {
	_, err := tea.NewProgram(NewBankersModel(processes, available, result, interval), tea.WithAltScreen()).Run()
	return err
}
