// Package bankers implements the Banker's deadlock-avoidance safety check
// for five processes over three resource types.
package bankers

import (
	"sort"

	"github.com/sirupsen/logrus"
)

const (
	ProcessCount  = 5
	ResourceTypes = 3
)

// Resources is one count per resource type (A, B, C).
type Resources [ResourceTypes]int

// Add returns the component-wise sum.
func (r Resources) Add(o Resources) Resources {
	for i := range r {
		r[i] += o[i]
	}
	return r
}

// Sub returns the component-wise difference.
func (r Resources) Sub(o Resources) Resources {
	for i := range r {
		r[i] -= o[i]
	}
	return r
}

// LessOrEqual reports whether every component of r is <= the one in o.
func (r Resources) LessOrEqual(o Resources) bool {
	for i := range r {
		if r[i] > o[i] {
			return false
		}
	}
	return true
}

type Process struct {
	ID         int       `json:"id" yaml:"id"`
	Allocation Resources `json:"allocation" yaml:"allocation"`
	Max        Resources `json:"max" yaml:"max"`
}

// Need is what the process may still request: Max - Allocation.
func (p Process) Need() Resources {
	return p.Max.Sub(p.Allocation)
}

// Step records one process admitted to the safe sequence.
type Step struct {
	ProcessID       int       `json:"processId"`
	Allocation      Resources `json:"allocation"`
	Max             Resources `json:"max"`
	Need            Resources `json:"need"`
	AvailableBefore Resources `json:"availableBefore"`
	AvailableAfter  Resources `json:"availableAfter"`
}

// Result holds the safe sequence, nil when the state is unsafe, and the
// steps taken up to that point.
type Result struct {
	SafeSequence []int  `json:"safeSequence"`
	Steps        []Step `json:"steps"`
}

func (r Result) Safe() bool {
	return r.SafeSequence != nil
}

// Check runs the safety algorithm. Work starts at available; candidates are
// examined in ascending id order, sweep after sweep, and any process whose
// need fits in work is admitted and its allocation returned to work. A sweep
// that admits nobody while processes remain means the state is unsafe.
// Check does not validate its input; see Validate.
func Check(processes []Process, available Resources) Result {
	procs := make([]Process, len(processes))
	copy(procs, processes)
	sort.SliceStable(procs, func(i, j int) bool {
		return procs[i].ID < procs[j].ID
	})

	finished := make([]bool, len(procs))
	sequence := make([]int, 0, len(procs))
	steps := make([]Step, 0, len(procs))
	work := available

	for len(sequence) < len(procs) {
		admitted := false
		for i, p := range procs {
			if finished[i] || !p.Need().LessOrEqual(work) {
				continue
			}
			before := work
			work = work.Add(p.Allocation)
			finished[i] = true
			admitted = true
			sequence = append(sequence, p.ID)
			steps = append(steps, Step{
				ProcessID:       p.ID,
				Allocation:      p.Allocation,
				Max:             p.Max,
				Need:            p.Need(),
				AvailableBefore: before,
				AvailableAfter:  work,
			})
			logrus.Debugf("banker: P%d admitted, work %v -> %v", p.ID, before, work)
		}
		if !admitted {
			logrus.Debugf("banker: no process fits work %v, state is unsafe", work)
			return Result{SafeSequence: nil, Steps: steps}
		}
	}
	return Result{SafeSequence: sequence, Steps: steps}
}
