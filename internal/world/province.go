// Package world holds the province map: the immutable geography the
// simulation plays out on, plus the one mutable field (ownership) that
// combat and diplomacy fight over.
package world

// ProvinceID is a unique, stable province identifier.
type ProvinceID int

// Province is a single region on the map. Provinces are created once at
// load time and never destroyed; only Owner changes during a session,
// and only the combat and diplomacy systems change it.
type Province struct {
	ID      ProvinceID `json:"id"`
	Name    string     `json:"name"`
	Terrain Terrain    `json:"terrain"`

	Development int `json:"development"` // >= 1
	Population  int `json:"population"`  // >= 0

	// Owner is a country code ("" = unowned). This is a back-reference,
	// not ownership of the struct.
	Owner string `json:"owner"`

	BaseIncome float64 `json:"base_income"`

	Fortification int  `json:"fortification"`
	IsCapital     bool `json:"is_capital"`
	IsCoastal     bool `json:"is_coastal"`
}

// Income is the province's daily income contribution. Derived, never stored.
func (p *Province) Income() float64 {
	return p.BaseIncome * float64(p.Development)
}

// RecruitableManpower is the share of the population fit for service.
func (p *Province) RecruitableManpower() int {
	return p.Population / 10
}

// Registry is the central province store. Iteration order is insertion
// order so a seeded run replays identically.
type Registry struct {
	byID    map[ProvinceID]*Province
	ordered []*Province
}

// NewRegistry creates an empty province registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[ProvinceID]*Province)}
}

// Add registers a province. A duplicate ID replaces the earlier entry's
// lookup but keeps the original iteration slot.
func (r *Registry) Add(p *Province) {
	if _, exists := r.byID[p.ID]; !exists {
		r.ordered = append(r.ordered, p)
	}
	r.byID[p.ID] = p
}

// Get returns the province with the given ID, or nil.
func (r *Registry) Get(id ProvinceID) *Province {
	return r.byID[id]
}

// All returns every province in insertion order.
func (r *Registry) All() []*Province {
	return r.ordered
}

// ByOwner returns every province owned by the given country, in insertion order.
func (r *Registry) ByOwner(code string) []*Province {
	var owned []*Province
	for _, p := range r.ordered {
		if p.Owner == code {
			owned = append(owned, p)
		}
	}
	return owned
}

// Count returns the number of registered provinces.
func (r *Registry) Count() int {
	return len(r.ordered)
}
