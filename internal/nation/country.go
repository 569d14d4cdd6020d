// Package nation holds countries: treasuries, manpower pools, and the
// diplomatic state (wars, alliances, war scores) the rest of the
// simulation reads and mutates.
package nation

import "github.com/talgya/hegemony/internal/world"

// Country is a playable nation, keyed by its 3-letter code.
//
// Invariants: a code appears in WarScores iff it appears in AtWarWith,
// and the war relation is symmetric: if A is at war with B then B is at
// war with A, each tracking its own score. The diplomacy system's
// DeclareWar/MakePeace are the only entry points that keep this true;
// callers must not edit the sets directly.
type Country struct {
	Code    string           `json:"code"` // 3-letter code, e.g. "GER"
	Name    string           `json:"name"`
	Color   [3]uint8         `json:"color"`
	Capital world.ProvinceID `json:"capital"`

	Money    float64 `json:"money"`
	Manpower int     `json:"manpower"`

	MilitaryFactories int `json:"military_factories"`
	CivilianFactories int `json:"civilian_factories"`

	AtWarWith  []string `json:"at_war_with"`
	AlliedWith []string `json:"allied_with"`

	// WarScores maps enemy code to this country's score in that war,
	// from this country's own perspective.
	WarScores map[string]int `json:"war_scores"`
}

// AddMoney credits the treasury.
func (c *Country) AddMoney(amount float64) {
	c.Money += amount
}

// SpendMoney debits the treasury if sufficient funds exist.
func (c *Country) SpendMoney(amount float64) bool {
	if c.Money >= amount {
		c.Money -= amount
		return true
	}
	return false
}

// AddManpower credits the manpower pool.
func (c *Country) AddManpower(amount int) {
	c.Manpower += amount
}

// DrawManpower debits the manpower pool if sufficient.
func (c *Country) DrawManpower(amount int) bool {
	if c.Manpower >= amount {
		c.Manpower -= amount
		return true
	}
	return false
}

// IsAtWarWith reports whether this country is at war with the given code.
func (c *Country) IsAtWarWith(code string) bool {
	for _, enemy := range c.AtWarWith {
		if enemy == code {
			return true
		}
	}
	return false
}

// DeclareWar records a one-sided war entry. The score against the enemy
// resets to 0 even on re-declaration. Diplomacy calls this on both sides.
func (c *Country) DeclareWar(code string) {
	if !c.IsAtWarWith(code) {
		c.AtWarWith = append(c.AtWarWith, code)
	}
	if c.WarScores == nil {
		c.WarScores = make(map[string]int)
	}
	c.WarScores[code] = 0
}

// MakePeace removes the one-sided war entry and its score.
func (c *Country) MakePeace(code string) {
	for i, enemy := range c.AtWarWith {
		if enemy == code {
			c.AtWarWith = append(c.AtWarWith[:i], c.AtWarWith[i+1:]...)
			break
		}
	}
	delete(c.WarScores, code)
}

// Registry is the central country store. Iteration order is insertion
// order so AI evaluation and forced-peace sweeps are reproducible.
type Registry struct {
	byCode  map[string]*Country
	ordered []*Country
}

// NewRegistry creates an empty country registry.
func NewRegistry() *Registry {
	return &Registry{byCode: make(map[string]*Country)}
}

// Add registers a country.
func (r *Registry) Add(c *Country) {
	if c.WarScores == nil {
		c.WarScores = make(map[string]int)
	}
	if _, exists := r.byCode[c.Code]; !exists {
		r.ordered = append(r.ordered, c)
	}
	r.byCode[c.Code] = c
}

// Get returns the country with the given code, or nil.
func (r *Registry) Get(code string) *Country {
	return r.byCode[code]
}

// All returns every country in insertion order.
func (r *Registry) All() []*Country {
	return r.ordered
}

// Count returns the number of registered countries.
func (r *Registry) Count() int {
	return len(r.ordered)
}
