package bankers

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid banker's input")

// Validate checks the shape Check assumes: exactly five processes with ids
// 0..4, non-negative vectors and max >= allocation.
func Validate(processes []Process, available Resources) error {
	if len(processes) != ProcessCount {
		return fmt.Errorf("%w: need exactly %d processes, got %d", ErrInvalidInput, ProcessCount, len(processes))
	}
	seen := make(map[int]bool, ProcessCount)
	for _, p := range processes {
		if p.ID < 0 || p.ID >= ProcessCount {
			return fmt.Errorf("%w: process id %d out of range 0..%d", ErrInvalidInput, p.ID, ProcessCount-1)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
		for r := 0; r < ResourceTypes; r++ {
			if p.Allocation[r] < 0 || p.Max[r] < 0 {
				return fmt.Errorf("%w: P%d values must be non-negative", ErrInvalidInput, p.ID)
			}
			if p.Max[r] < p.Allocation[r] {
				return fmt.Errorf("%w: P%d max must be greater than or equal to allocation", ErrInvalidInput, p.ID)
			}
		}
	}
	for r := 0; r < ResourceTypes; r++ {
		if available[r] < 0 {
			return fmt.Errorf("%w: available resources must be non-negative", ErrInvalidInput)
		}
	}
	return nil
}

// ExampleAvailable is the available vector of the textbook example.
var ExampleAvailable = Resources{3, 3, 2}

// ExampleProcesses returns the textbook five-process example, whose safe
// sequence is P1, P3, P4, P0, P2.
func ExampleProcesses() []Process {
	return []Process{
		{ID: 0, Allocation: Resources{0, 1, 0}, Max: Resources{7, 5, 3}},
		{ID: 1, Allocation: Resources{2, 0, 0}, Max: Resources{3, 2, 2}},
		{ID: 2, Allocation: Resources{3, 0, 2}, Max: Resources{9, 0, 2}},
		{ID: 3, Allocation: Resources{2, 1, 1}, Max: Resources{2, 2, 2}},
		{ID: 4, Allocation: Resources{0, 0, 2}, Max: Resources{4, 3, 3}},
	}
}
