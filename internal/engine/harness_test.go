package engine

import (
	"github.com/talgya/hegemony/internal/entropy"
	"github.com/talgya/hegemony/internal/military"
	"github.com/talgya/hegemony/internal/scenario"
)

// newTestSim builds a simulation over the built-in three-nation world with
// the given randomness. Most tests drive individual systems directly so
// one system's behavior is observable without the others interfering.
func newTestSim(rng *entropy.Source) *Simulation {
	sc := scenario.Sample()
	return NewSimulation(sc.Provinces, sc.Countries, military.DefaultCatalog(), rng)
}

// fakeJournal records appended events for assertions.
type fakeJournal struct {
	events []Event
	err    error
}

func (j *fakeJournal) AppendEvent(e Event) error {
	if j.err != nil {
		return j.err
	}
	j.events = append(j.events, e)
	return nil
}
