package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/internal/bankers"
	"os-scheduler/internal/core"
)

func TestLoadProcessesCSV(t *testing.T) {
	processes, err := LoadProcessesCSV(strings.NewReader("1,5,0\n2, 9, 1, 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Process{
		{ID: 1, BurstTime: 5, ArrivalTime: 0},
		{ID: 2, BurstTime: 9, ArrivalTime: 1, Priority: core.IntPtr(3)},
	}, processes)
}

func TestLoadProcessesCSV_SkipsHeaderAndComments(t *testing.T) {
	processes, err := LoadProcessesCSV(strings.NewReader("id,burst,arrival\n# warmup\n1,2,3\n"))
	require.NoError(t, err)
	assert.Equal(t, []core.Process{{ID: 1, BurstTime: 2, ArrivalTime: 3}}, processes)
}

func TestLoadProcessesCSV_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too few fields", "1,2\n"},
		{"too many fields", "1,2,3,4,5\n"},
		{"not a number", "1,x,3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadProcessesCSV(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, ErrMalformedInput)
		})
	}
}

func TestWriteProcessesCSV_ReadsBack(t *testing.T) {
	in := []core.Process{
		{ID: 1, BurstTime: 4, ArrivalTime: 0, Priority: core.IntPtr(2)},
		{ID: 2, BurstTime: 1, ArrivalTime: 3},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteProcessesCSV(&buf, in))
	assert.Equal(t, "1,4,0,2\n2,1,3\n", buf.String())
}

func TestLoadScheduleFile_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
time_quantum: 3
levels_time_quantum: [1, 2]
processes:
  - id: 1
    arrival_time: 0
    burst_time: 4
  - id: 2
    arrival_time: 2
    burst_time: 1
    priority: 0
`), 0o600))

	req, err := LoadScheduleFile(path)
	require.NoError(t, err)
	require.NotNil(t, req.TimeQuantum)
	assert.Equal(t, 3, *req.TimeQuantum)
	assert.Equal(t, []int{1, 2}, req.LevelsTimeQuantum)
	assert.Equal(t, []core.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 4},
		{ID: 2, ArrivalTime: 2, BurstTime: 1, Priority: core.IntPtr(0)},
	}, req.Processes)
}

func TestLoadScheduleFile_JSONAndUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"processes":[{"id":7,"arrivalTime":1,"burstTime":2}]}`), 0o600))

	req, err := LoadScheduleFile(path)
	require.NoError(t, err)
	assert.Equal(t, []core.Process{{ID: 7, ArrivalTime: 1, BurstTime: 2}}, req.Processes)
	assert.Nil(t, req.TimeQuantum)

	_, err = LoadScheduleFile(filepath.Join(dir, "input.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadBankers_YAML(t *testing.T) {
	req, err := LoadBankers(strings.NewReader(`
available: [3, 3, 2]
processes:
  - {id: 0, allocation: [0, 1, 0], max: [7, 5, 3]}
  - {id: 1, allocation: [2, 0, 0], max: [3, 2, 2]}
  - {id: 2, allocation: [3, 0, 2], max: [9, 0, 2]}
  - {id: 3, allocation: [2, 1, 1], max: [2, 2, 2]}
  - {id: 4, allocation: [0, 0, 2], max: [4, 3, 3]}
`), YAML)
	require.NoError(t, err)
	assert.Equal(t, bankers.ExampleAvailable, req.Available)
	assert.Equal(t, bankers.ExampleProcesses(), req.Processes)
}

func TestLoadBankers_RejectsCSV(t *testing.T) {
	_, err := LoadBankers(strings.NewReader("0,1,0"), CSV)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRandomProcesses(t *testing.T) {
	a := RandomProcesses(20, 42, true)
	b := RandomProcesses(20, 42, true)
	assert.Equal(t, a, b)
	require.Len(t, a, 20)
	for i, p := range a {
		assert.Equal(t, i+1, p.ID)
		assert.GreaterOrEqual(t, p.ArrivalTime, 0)
		assert.LessOrEqual(t, p.ArrivalTime, maxArrival)
		assert.GreaterOrEqual(t, p.BurstTime, 1)
		assert.LessOrEqual(t, p.BurstTime, maxBurst)
		require.NotNil(t, p.Priority)
	}

	for _, p := range RandomProcesses(5, 1, false) {
		assert.Nil(t, p.Priority)
	}
}
