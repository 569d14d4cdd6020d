// Simulation ties the registries and systems together and advances them
// each tick in a fixed, documented order.
package engine

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hegemony/internal/entropy"
	"github.com/talgya/hegemony/internal/military"
	"github.com/talgya/hegemony/internal/nation"
	"github.com/talgya/hegemony/internal/world"
)

// Event is a notable occurrence in the simulation, kept in a bounded
// in-memory ring and optionally journaled for observers.
type Event struct {
	Hour        float64 `json:"hour" db:"game_hour"`
	Category    string  `json:"category" db:"category"` // "war", "battle", "annexation", ...
	Description string  `json:"description" db:"description"`
}

// Journal receives every recorded event. The chronicle implements this;
// a nil journal means events live only in the ring.
type Journal interface {
	AppendEvent(e Event) error
}

// Simulation holds the complete world state and wires systems together.
// Engines hold no private copies of shared entities; everything lives in
// the central registries and the military roster.
type Simulation struct {
	mu sync.RWMutex

	Provinces *world.Registry
	Countries *nation.Registry
	Templates *military.Catalog

	Economy   *EconomySystem
	Military  *MilitarySystem
	Combat    *CombatSystem
	Diplomacy *DiplomacySystem
	AI        *AISystem

	Rand *entropy.Source

	GameTime float64 // elapsed game hours
	Speed    float64 // time multiplier, 0 = frozen
	Paused   bool

	// PlayerCountry is the human-controlled code; the AI skips it.
	PlayerCountry string

	Events  []Event
	Journal Journal

	// OnDay fires once per game-day rollover, inside the tick (the write
	// lock is held; read state directly, never through Read).
	OnDay func(day int)

	lastReportDay int
}

// NewSimulation wires the systems around the given registries. The entropy
// source is the simulation's only randomness; seed it for reproducible runs.
func NewSimulation(provinces *world.Registry, countries *nation.Registry, templates *military.Catalog, rng *entropy.Source) *Simulation {
	s := &Simulation{
		Provinces: provinces,
		Countries: countries,
		Templates: templates,
		Rand:      rng,
		Speed:     1.0,
	}

	s.Economy = NewEconomySystem(s)
	s.Military = NewMilitarySystem(s)
	s.Combat = NewCombatSystem(s)
	s.Diplomacy = NewDiplomacySystem(s)
	s.AI = NewAISystem(s)

	return s
}

// Advance moves the simulation forward by dt game-hours of base time,
// scaled by Speed. The system order is a hard contract: economy, then
// military, then combat, then AI, with the forced-peace sweep always last.
// Each system keeps its own accumulator and fires on its own period.
func (s *Simulation) Advance(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Paused || dt <= 0 {
		return
	}

	scaled := dt * s.Speed
	s.GameTime += scaled

	s.Economy.Advance(scaled)
	s.Military.Advance(scaled)
	s.Combat.Advance(scaled)
	s.AI.Advance(scaled)
	s.Diplomacy.AutoPeaceAt100()

	if day := int(s.GameTime / 24); day > s.lastReportDay {
		s.lastReportDay = day
		s.dailyReport(day)
		if s.OnDay != nil {
			s.OnDay(day)
		}
	}
}

// Read runs fn under the read lock so observers see a consistent snapshot
// between ticks.
func (s *Simulation) Read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

// SetSpeed sets the time multiplier.
func (s *Simulation) SetSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Speed = speed
}

// TogglePause flips the pause flag and returns the new state.
func (s *Simulation) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Paused = !s.Paused
	return s.Paused
}

// SetPlayerCountry designates the human-controlled country. Unknown codes
// are ignored.
func (s *Simulation) SetPlayerCountry(code string) {
	if s.Countries.Get(code) == nil {
		return
	}
	s.PlayerCountry = code
}

// CurrentDate renders the game clock as a calendar date. The campaign
// starts 1 January 1936; months are a uniform 30 days.
func (s *Simulation) CurrentDate() string {
	totalDays := int(s.GameTime) / 24

	year := 1936
	month := 1
	day := 1 + totalDays

	for day > 30 {
		day -= 30
		month++
		if month > 12 {
			month = 1
			year++
		}
	}

	months := [...]string{"", "January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}

	return fmt.Sprintf("%s %d, %d", months[month], day, year)
}

// recordEvent appends to the ring and forwards to the journal.
func (s *Simulation) recordEvent(category, description string) {
	e := Event{Hour: s.GameTime, Category: category, Description: description}
	s.Events = append(s.Events, e)

	if s.Journal != nil {
		if err := s.Journal.AppendEvent(e); err != nil {
			slog.Warn("journal write failed", "error", err)
		}
	}
}

// dailyReport logs a world summary once per game day and bounds the ring.
func (s *Simulation) dailyReport(day int) {
	var totalMoney float64
	var totalManpower int
	warPairs := 0
	for _, c := range s.Countries.All() {
		totalMoney += c.Money
		totalManpower += c.Manpower
		warPairs += len(c.AtWarWith)
	}

	slog.Info("daily report",
		"day", day,
		"date", s.CurrentDate(),
		"countries", s.Countries.Count(),
		"units", len(s.Military.Units()),
		"battles", len(s.Combat.Battles()),
		"wars", warPairs/2,
		"world_treasury", humanize.CommafWithDigits(totalMoney, 0),
		"world_manpower", humanize.Comma(int64(totalManpower)),
	)

	// Keep the last 1000 events to prevent unbounded growth.
	if len(s.Events) > 1000 {
		s.Events = s.Events[len(s.Events)-1000:]
	}
}
