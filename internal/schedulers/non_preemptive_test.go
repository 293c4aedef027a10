package schedulers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func TestFirstComeFirstServe_TwoProcesses(t *testing.T) {
	got, err := ScheduleFirstComeFirstServe([]core.Process{proc(1, 0, 5), proc(2, 1, 3)})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttItem{item(1, 0, 5), item(2, 5, 8)}, got.GanttItems)
	assert.Equal(t, 8, got.TotalTime)
	// P1 waits 0, P2 waits 4; turnarounds are 5 and 7
	assert.Equal(t, 2.0, got.Results.WaitingTime)
	assert.Equal(t, 6.0, got.Results.TurnaroundTime)
}

func TestFirstComeFirstServe_OrdersByArrivalNotBurst(t *testing.T) {
	got, err := ScheduleFirstComeFirstServe([]core.Process{proc(1, 3, 1), proc(2, 0, 9)})
	require.NoError(t, err)
	assert.Equal(t, []core.GanttItem{item(2, 0, 9), item(1, 9, 10)}, got.GanttItems)
}

func TestFirstComeFirstServe_ArrivalTieKeepsInputOrder(t *testing.T) {
	got, err := ScheduleFirstComeFirstServe([]core.Process{proc(2, 0, 3), proc(1, 0, 1)})
	require.NoError(t, err)
	assert.Equal(t, []core.GanttItem{item(2, 0, 3), item(1, 3, 4)}, got.GanttItems)
}

func TestFirstComeFirstServe_SkipsIdleTime(t *testing.T) {
	got, err := ScheduleFirstComeFirstServe([]core.Process{proc(1, 2, 3), proc(2, 10, 1)})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttItem{item(1, 2, 5), item(2, 10, 11)}, got.GanttItems)
	assert.Equal(t, 11, got.TotalTime)
	assert.Equal(t, 5, got.IdleTime)
	assert.Equal(t, 0.0, got.Results.WaitingTime)
}

func TestShortestJobFirst_Textbook(t *testing.T) {
	got, err := ScheduleShortestJobFirst([]core.Process{
		proc(1, 0, 7), proc(2, 2, 4), proc(3, 4, 1), proc(4, 5, 4),
	})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttItem{
		item(1, 0, 7), item(3, 7, 8), item(2, 8, 12), item(4, 12, 16),
	}, got.GanttItems)
	assert.Equal(t, 16, got.TotalTime)
	assert.Equal(t, 4.0, got.Results.WaitingTime)
	assert.Equal(t, 8.0, got.Results.TurnaroundTime)
}

func TestShortestJobFirst_TieGoesToFirstFound(t *testing.T) {
	got, err := ScheduleShortestJobFirst([]core.Process{proc(1, 0, 2), proc(2, 1, 3), proc(3, 1, 3)})
	require.NoError(t, err)
	assert.Equal(t, []core.GanttItem{item(1, 0, 2), item(2, 2, 5), item(3, 5, 8)}, got.GanttItems)
}

func TestLongestJobFirst_Textbook(t *testing.T) {
	got, err := ScheduleLongestJobFirst([]core.Process{
		proc(1, 0, 7), proc(2, 2, 4), proc(3, 4, 1), proc(4, 5, 4),
	})
	require.NoError(t, err)

	// P2 and P4 tie on burst 4; P2 is found first
	assert.Equal(t, []core.GanttItem{
		item(1, 0, 7), item(2, 7, 11), item(4, 11, 15), item(3, 15, 16),
	}, got.GanttItems)
}

func TestHighestResponseRatioNext_RecomputesRatios(t *testing.T) {
	got, err := ScheduleHighestResponseRatioNext([]core.Process{
		proc(1, 0, 3), proc(2, 2, 6), proc(3, 4, 4), proc(4, 6, 5), proc(5, 8, 2),
	})
	require.NoError(t, err)

	// at 9: P3 2.25, P4 1.6, P5 1.5; at 13: P4 2.4, P5 3.5
	assert.Equal(t, []core.GanttItem{
		item(1, 0, 3), item(2, 3, 9), item(3, 9, 13), item(5, 13, 15), item(4, 15, 20),
	}, got.GanttItems)
}

func TestHighestResponseRatioNext_EqualRatiosGoToFirstFound(t *testing.T) {
	// at 4 both P2 (wait 2, burst 2) and P3 (wait 4, burst 4) have ratio 2
	got, err := ScheduleHighestResponseRatioNext([]core.Process{proc(1, 0, 4), proc(2, 2, 2), proc(3, 0, 4)})
	require.NoError(t, err)
	assert.Equal(t, item(1, 0, 4), got.GanttItems[0])
	assert.Equal(t, 3, got.GanttItems[1].ProcessID)
}

func TestPriority_LowerValueRunsFirst(t *testing.T) {
	got, err := SchedulePriority([]core.Process{
		procP(1, 0, 4, 2), procP(2, 1, 3, 1), procP(3, 2, 1, 3), procP(4, 3, 2, 1),
	})
	require.NoError(t, err)

	assert.Equal(t, []core.GanttItem{
		item(1, 0, 4), item(2, 4, 7), item(4, 7, 9), item(3, 9, 10),
	}, got.GanttItems)
	require.Len(t, got.Details, 4)
	require.NotNil(t, got.Details[0].Priority)
	assert.Equal(t, 2, *got.Details[0].Priority)
}

func TestPriority_NegativePrioritiesAreHigher(t *testing.T) {
	got, err := SchedulePriority([]core.Process{procP(1, 0, 1, 0), procP(2, 0, 1, -5)})
	require.NoError(t, err)
	assert.Equal(t, 2, got.GanttItems[0].ProcessID)
}

func TestPriority_MissingPriority(t *testing.T) {
	_, err := SchedulePriority([]core.Process{procP(1, 0, 4, 2), proc(2, 1, 3)})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingPriority))
}

func TestNonPreemptive_EmptyInput(t *testing.T) {
	for name, run := range map[string]func([]core.Process) (core.Schedule, error){
		"fcfs":     ScheduleFirstComeFirstServe,
		"sjf":      ScheduleShortestJobFirst,
		"ljf":      ScheduleLongestJobFirst,
		"hrrn":     ScheduleHighestResponseRatioNext,
		"priority": SchedulePriority,
	} {
		t.Run(name, func(t *testing.T) {
			got, err := run(nil)
			assert.ErrorIs(t, err, ErrEmptyInput)
			assert.Empty(t, got.GanttItems)
		})
	}
}
