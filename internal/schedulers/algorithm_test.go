package schedulers

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm(" SJF ")
	require.NoError(t, err)
	assert.Equal(t, SJF, alg)

	_, err = ParseAlgorithm("lottery")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	// banker has catalogue details but is not a process scheduler
	_, err = ParseAlgorithm("banker")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSimulate_UnknownAlgorithm(t *testing.T) {
	_, err := Simulate("lottery", []core.Process{proc(1, 0, 1)}, Options{})
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestSimulate_PassesOptions(t *testing.T) {
	processes := []core.Process{proc(1, 0, 3)}
	rr, err := Simulate(RoundRobin, processes, Options{TimeQuantum: 1})
	require.NoError(t, err)
	assert.Len(t, rr.GanttItems, 3)

	_, err = Simulate(RoundRobin, processes, Options{})
	assert.ErrorIs(t, err, ErrInvalidQuantum)

	mlfq, err := Simulate(MLFQ, processes, Options{LevelsTimeQuantum: []int{1, 1}})
	require.NoError(t, err)
	assert.Len(t, mlfq.GanttItems, 3)
}

func TestDetails(t *testing.T) {
	assert.Equal(t, "Round Robin (RR)", Details(RoundRobin).Title)
	assert.Equal(t, "Banker's Algorithm", Details(Bankers).Title)
	assert.Equal(t, "Unknown Algorithm", Details("nope").Title)
}

func TestCatalogue_CoversEveryAlgorithm(t *testing.T) {
	entries := Catalogue()
	assert.Len(t, entries, len(Algorithms())+1)
	for _, e := range entries {
		assert.NotEmpty(t, e.Title, e.ID)
		assert.NotEmpty(t, e.Description, e.ID)
	}
}

func TestValidateProcesses(t *testing.T) {
	tests := []struct {
		name      string
		alg       Algorithm
		processes []core.Process
		wantErr   error
	}{
		{"valid", FCFS, []core.Process{proc(1, 0, 1), proc(2, 3, 2)}, nil},
		{"empty", FCFS, nil, ErrEmptyInput},
		{"zero id", FCFS, []core.Process{proc(0, 0, 1)}, ErrInvalidProcess},
		{"duplicate id", SJF, []core.Process{proc(1, 0, 1), proc(1, 2, 1)}, ErrInvalidProcess},
		{"negative arrival", SJF, []core.Process{proc(1, -1, 1)}, ErrInvalidProcess},
		{"zero burst", SJF, []core.Process{proc(1, 0, 0)}, ErrInvalidProcess},
		{"arrival at limit", FCFS, []core.Process{proc(1, MaxTime, 1)}, nil},
		{"arrival past limit", FCFS, []core.Process{proc(1, math.MaxInt-2, 5)}, ErrInvalidProcess},
		{"burst past limit", SRTF, []core.Process{proc(1, 0, math.MaxInt)}, ErrInvalidProcess},
		{"bursts sum to limit", RoundRobin, []core.Process{proc(1, 0, MaxTime-1), proc(2, 0, 1)}, nil},
		{"bursts sum past limit", RoundRobin, []core.Process{proc(1, 0, MaxTime), proc(2, 0, 1)}, ErrInvalidProcess},
		{"priority required", Priority, []core.Process{proc(1, 0, 1)}, ErrMissingPriority},
		{"priority optional elsewhere", HRRN, []core.Process{proc(1, 0, 1)}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProcesses(tt.alg, tt.processes)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
