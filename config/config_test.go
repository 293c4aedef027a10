package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
log_level: debug
scheduler:
  round_robin:
    time_quantum: 4
  multilevel_feedback_queue:
    levels_time_quantum: [2, 4, 8]
playback:
  interval: 250ms
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{2, 4, 8}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, 250*time.Millisecond, cfg.PlaybackInterval)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, 2, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, []int{5, 8}, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
	assert.Equal(t, 500*time.Millisecond, cfg.PlaybackInterval)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\n"), 0o600))
	t.Setenv("SCHEDULER_PORT", "7100")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7100, cfg.Port)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverridesListKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\n"), 0o600))

	tests := []struct {
		env  string
		want []int
	}{
		{"3,6", []int{3, 6}},
		{"3 6 9", []int{3, 6, 9}},
		{"[4, 8]", []int{4, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("SCHEDULER_SCHEDULER_MULTILEVEL_FEEDBACK_QUEUE_LEVELS_TIME_QUANTUM", tt.env)
			t.Setenv("SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")

			cfg, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 7, cfg.RoundRobinTimeQuantum)
			assert.Equal(t, tt.want, cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
		})
	}
}

func TestLoad_InvalidListFromEnvFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: 7000\n"), 0o600))
	t.Setenv("SCHEDULER_SCHEDULER_MULTILEVEL_FEEDBACK_QUEUE_LEVELS_TIME_QUANTUM", "3,x")

	_, err := Load(path)
	assert.Error(t, err)
}
