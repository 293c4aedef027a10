package loader

import (
	"math/rand"

	"os-scheduler/internal/core"
)

const (
	maxArrival  = 10
	maxBurst    = 10
	maxPriority = 5
)

// RandomProcesses builds n demo processes with ids 1..n. The same seed always
// yields the same set.
func RandomProcesses(n int, seed int64, withPriority bool) []core.Process {
	rng := rand.New(rand.NewSource(seed))
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:          i + 1,
			ArrivalTime: rng.Intn(maxArrival + 1),
			BurstTime:   rng.Intn(maxBurst) + 1,
		}
		if withPriority {
			processes[i].Priority = core.IntPtr(rng.Intn(maxPriority + 1))
		}
	}
	return processes
}
