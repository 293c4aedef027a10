package responses

import (
	"os-scheduler/internal/bankers"
	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

type ScheduleResponse struct {
	Algorithm schedulers.AlgorithmDetails `json:"algorithm"`
	core.Schedule
}

// AllAlgorithmsResponse maps algorithm id to its schedule. Algorithms that
// cannot run on the input (priority without priorities) are listed in Skipped.
type AllAlgorithmsResponse struct {
	Schedules map[schedulers.Algorithm]ScheduleResponse `json:"schedules"`
	Skipped   map[schedulers.Algorithm]string           `json:"skipped,omitempty"`
}

type BankersResponse struct {
	Algorithm schedulers.AlgorithmDetails `json:"algorithm"`
	Safe      bool                        `json:"safe"`
	bankers.Result
}

type ErrorResponse struct {
	Error string `json:"error"`
}
