package orderkey

import "math/rand"

// Jitter interface for testability (use math/rand.Rand).
type Jitter interface {
	// Uniform integer in [min, max], inclusive.
	IntnRange(min, max int) int
}

// NoJitter implements Jitter but returns 0 offset.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int { return 0 }

// RandJitter is a helper backed by *rand.Rand. Like the *rand.Rand it wraps,
// it is not safe for concurrent use.
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// BisectJitter picks a key strictly between k and other, with randomization.
// Each digit choice may stray up to jitterRange steps from the centre of the
// available room. This provides collision resistance when multiple writers
// generate keys between the same neighbours at the same time.
func (k Key) BisectJitter(other Key, j Jitter, jitterRange int) (Key, error) {
	return k.bisect(other, picker{j: j, width: max(jitterRange, 0)})
}
