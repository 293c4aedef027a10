package schedulers

import "errors"

var (
	ErrEmptyInput       = errors.New("please add at least one process")
	ErrMissingPriority  = errors.New("all processes must have a priority value for this algorithm")
	ErrInvalidQuantum   = errors.New("time quantum must be greater than zero")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrInvalidProcess   = errors.New("invalid process")
)
