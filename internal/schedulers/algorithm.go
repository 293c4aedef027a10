package schedulers

import (
	"fmt"
	"strings"

	"os-scheduler/internal/core"
)

// Algorithm identifies a simulator.
type Algorithm string

const (
	FCFS       Algorithm = "fcfs"
	SJF        Algorithm = "sjf"
	LJF        Algorithm = "ljf"
	SRTF       Algorithm = "srtf"
	HRRN       Algorithm = "hrrn"
	RoundRobin Algorithm = "rr"
	Priority   Algorithm = "priority"
	MLFQ       Algorithm = "mlfq"
	// Bankers has catalogue details only; it is not a process scheduler.
	Bankers Algorithm = "banker"
)

// Options carries the per-algorithm extras.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

// AlgorithmDetails is the human readable catalogue entry for an algorithm.
type AlgorithmDetails struct {
	ID          Algorithm `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

var catalogue = map[Algorithm]AlgorithmDetails{
	FCFS: {FCFS, "First Come First Serve (FCFS)",
		"A non-preemptive scheduling algorithm that executes processes in order of their arrival time."},
	SJF: {SJF, "Shortest Job First (SJF)",
		"A non-preemptive scheduling algorithm that executes the process with the smallest burst time first."},
	LJF: {LJF, "Longest Job First (LJF)",
		"A non-preemptive scheduling algorithm that executes the process with the largest burst time first."},
	SRTF: {SRTF, "Shortest Remaining Time First (SRTF)",
		"A preemptive version of SJF where the process with the smallest remaining time is selected for execution."},
	HRRN: {HRRN, "Highest Response Ratio Next (HRRN)",
		"A non-preemptive scheduling algorithm that selects the process with highest response ratio next."},
	RoundRobin: {RoundRobin, "Round Robin (RR)",
		"A preemptive scheduling algorithm that assigns a fixed time slice to each process in a circular queue."},
	Priority: {Priority, "Priority Scheduling",
		"A scheduling algorithm that selects the process with the highest priority for execution next."},
	MLFQ: {MLFQ, "Multilevel Feedback Queue (MLFQ)",
		"Round robin levels with growing time slices and a final FCFS level; processes that use a whole slice move down one level."},
	Bankers: {Bankers, "Banker's Algorithm",
		"A deadlock avoidance algorithm that tests for safety by simulating allocation of all resources."},
}

// Algorithms lists the process schedulers in display order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, LJF, SRTF, HRRN, RoundRobin, Priority, MLFQ}
}

// Details returns the catalogue entry for alg, or an "Unknown Algorithm" entry.
func Details(alg Algorithm) AlgorithmDetails {
	if d, ok := catalogue[alg]; ok {
		return d
	}
	return AlgorithmDetails{ID: alg, Title: "Unknown Algorithm", Description: "Algorithm details not found."}
}

// Catalogue lists every entry including Banker's.
func Catalogue() []AlgorithmDetails {
	out := make([]AlgorithmDetails, 0, len(catalogue))
	for _, alg := range append(Algorithms(), Bankers) {
		out = append(out, catalogue[alg])
	}
	return out
}

// ParseAlgorithm accepts an algorithm id case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	alg := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Algorithms() {
		if alg == known {
			return alg, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// NeedsPriority reports whether alg requires a priority on every process.
func (a Algorithm) NeedsPriority() bool {
	return a == Priority
}

// NeedsTimeQuantum reports whether alg reads Options.TimeQuantum.
func (a Algorithm) NeedsTimeQuantum() bool {
	return a == RoundRobin
}

// Simulate dispatches to the simulator selected by alg.
func Simulate(alg Algorithm, processes []core.Process, opts Options) (core.Schedule, error) {
	switch alg {
	case FCFS:
		return ScheduleFirstComeFirstServe(processes)
	case SJF:
		return ScheduleShortestJobFirst(processes)
	case LJF:
		return ScheduleLongestJobFirst(processes)
	case SRTF:
		return ScheduleShortestRemainingTimeFirst(processes)
	case HRRN:
		return ScheduleHighestResponseRatioNext(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.TimeQuantum)
	case Priority:
		return SchedulePriority(processes)
	case MLFQ:
		return ScheduleMultilevelFeedbackQueue(processes, opts.LevelsTimeQuantum)
	default:
		return core.Schedule{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}
