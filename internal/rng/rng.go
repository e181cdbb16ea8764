package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a reproducible generator
// Generators are not safe for concurrent use, each goroutine needs its own
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// ForWorker returns the generator for one worker of a sharded run
// Each worker gets its own stream so results only depend on the seed and the worker count
func ForWorker(seed int64, worker int) Generator {
	return NewSeeded(seed + int64(worker))
}
