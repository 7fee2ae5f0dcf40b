package flappy

import "math/rand"

// Rand is the random source used for gap draws. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// SequenceRand replays a fixed list of values, cycling when exhausted.
// Each value is reduced modulo n. Used for reproducible scenarios.
type SequenceRand struct {
	Values []int
	next   int
}

// Intn returns the next scripted value in [0, n).
func (s *SequenceRand) Intn(n int) int {
	if n <= 0 || len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Draws returns how many values have been consumed.
func (s *SequenceRand) Draws() int {
	return s.next
}

// drawInclusive returns an integer in [lo, hi].
func drawInclusive(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}
