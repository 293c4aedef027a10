package requests

import (
	"os-scheduler/config"
	"os-scheduler/internal/bankers"
	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

// ScheduleRequests is the body of every scheduling endpoint and the shape of
// a YAML input file. A nil TimeQuantum or empty LevelsTimeQuantum falls back
// to the configured value.
type ScheduleRequests struct {
	Processes         []core.Process `json:"processes" yaml:"processes"`
	TimeQuantum       *int           `json:"timeQuantum,omitempty" yaml:"time_quantum,omitempty"`
	LevelsTimeQuantum []int          `json:"levelsTimeQuantum,omitempty" yaml:"levels_time_quantum,omitempty"`
}

// Options fills in configured defaults for the extras the request omits.
func (r ScheduleRequests) Options(cfg *config.SchedulerConfig) schedulers.Options {
	opts := schedulers.Options{
		TimeQuantum:       cfg.RoundRobinTimeQuantum,
		LevelsTimeQuantum: cfg.MultilevelFeedbackQueueLevelsTimeQuantum,
	}
	if r.TimeQuantum != nil {
		opts.TimeQuantum = *r.TimeQuantum
	}
	if len(r.LevelsTimeQuantum) > 0 {
		opts.LevelsTimeQuantum = r.LevelsTimeQuantum
	}
	return opts
}

type BankersRequest struct {
	Processes []bankers.Process `json:"processes" yaml:"processes"`
	Available bankers.Resources `json:"available" yaml:"available"`
}
