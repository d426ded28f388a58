// Package session derives the playable question sequence of one quiz session
// from a stored question bank and the player's settings.
package session

import "math/rand/v2"

// RandSource supplies uniform integers in [0, n).
type RandSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// GlobalSource is the process-wide, non-deterministic source used in production.
var GlobalSource RandSource = globalSource{}

// Shuffle returns a uniformly permuted copy of in (Fisher-Yates, back to front).
// The input slice is never modified.
func Shuffle[T any](src RandSource, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)

	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
