package schedulers

import (
	"fmt"

	"os-scheduler/internal/core"
)

// MaxTime bounds every arrival time and the sum of all burst times, so the
// simulated clock never passes 2*MaxTime.
const MaxTime = 1_000_000

// ValidateProcesses applies the input rules the simulators assume: at least
// one process, unique positive ids, 0 <= arrival <= MaxTime, burst > 0 with
// the bursts summing to at most MaxTime, and a priority on every process when
// alg needs one.
func ValidateProcesses(alg Algorithm, processes []core.Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	totalBurst := 0
	seen := make(map[int]struct{}, len(processes))
	for _, p := range processes {
		if p.ID <= 0 {
			return fmt.Errorf("%w: id must be positive, got %d", ErrInvalidProcess, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidProcess, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d arrival time must be non-negative", ErrInvalidProcess, p.ID)
		}
		if p.ArrivalTime > MaxTime {
			return fmt.Errorf("%w: process %d arrival time must be at most %d", ErrInvalidProcess, p.ID, MaxTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d burst time must be positive", ErrInvalidProcess, p.ID)
		}
		if p.BurstTime > MaxTime-totalBurst {
			return fmt.Errorf("%w: total burst time must be at most %d", ErrInvalidProcess, MaxTime)
		}
		totalBurst += p.BurstTime
		if alg.NeedsPriority() && p.Priority == nil {
			return fmt.Errorf("%w: process %d", ErrMissingPriority, p.ID)
		}
	}
	return nil
}
