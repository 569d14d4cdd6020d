// Package entropy provides the simulation's single randomness source.
// One seeded Source per simulation instance makes combat rolls and AI
// dice checks reproducible; tests can inject a fixed playback sequence.
package entropy

import "math/rand/v2"

// Source produces the random numbers the simulation consumes. All draws
// funnel through Float so a playback queue can stand in for the generator.
type Source struct {
	rng   *rand.Rand
	queue []float64
	pos   int
}

// NewSource creates a seeded source. The same seed replays the same
// simulation given identical inputs.
func NewSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewFixed creates a source that cycles through the given values instead
// of generating. Test use only.
func NewFixed(values ...float64) *Source {
	return &Source{queue: values}
}

// Float returns a value in [0, 1).
func (s *Source) Float() float64 {
	if s.queue != nil {
		v := s.queue[s.pos%len(s.queue)]
		s.pos++
		return v
	}
	return s.rng.Float64()
}

// Range returns a value in [lo, hi).
func (s *Source) Range(lo, hi float64) float64 {
	return lo + s.Float()*(hi-lo)
}

// Chance reports true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.Float() < p
}

// IntN returns a value in [0, n). n must be > 0.
func (s *Source) IntN(n int) int {
	return int(s.Float() * float64(n))
}
