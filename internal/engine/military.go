// Military: the unit roster: recruitment, movement, and the destruction
// sweep. Movement is instantaneous province-to-province in this version;
// there is no adjacency or pathfinding constraint.
package engine

import (
	"log/slog"

	"github.com/talgya/hegemony/internal/military"
	"github.com/talgya/hegemony/internal/world"
)

// MilitarySystem owns every live unit.
type MilitarySystem struct {
	sim    *Simulation
	units  []*military.Unit
	nextID military.UnitID
}

// NewMilitarySystem creates an empty roster.
func NewMilitarySystem(sim *Simulation) *MilitarySystem {
	return &MilitarySystem{sim: sim, nextID: 1}
}

// Advance runs every tick: resolve movement first, then sweep destroyed
// units. The order lets a unit die the same tick it arrives.
func (m *MilitarySystem) Advance(dt float64) {
	for _, u := range m.units {
		if u.Moving && u.MoveTarget != 0 {
			u.Location = u.MoveTarget
			u.Moving = false
			u.MoveTarget = 0
		}
	}

	alive := m.units[:0]
	for _, u := range m.units {
		if u.Destroyed() {
			slog.Debug("unit destroyed", "unit", u.ID, "owner", u.Owner, "province", u.Location)
			continue
		}
		alive = append(alive, u)
	}
	m.units = alive
}

// CreateUnit allocates a new unit at template maximums. Returns nil for an
// unknown template.
func (m *MilitarySystem) CreateUnit(templateID, owner string, location world.ProvinceID) *military.Unit {
	t := m.sim.Templates.Get(templateID)
	if t == nil {
		return nil
	}

	u := &military.Unit{
		ID:           m.nextID,
		TemplateID:   templateID,
		Owner:        owner,
		Location:     location,
		HP:           t.MaxHP,
		Organization: t.MaxOrganization,
		Strength:     1.0,
	}

	m.units = append(m.units, u)
	m.nextID++
	return u
}

// RecruitUnit purchases and creates a unit. Returns false for an unknown
// template or an unaffordable cost. Resources stay spent once the purchase
// goes through; the unknown-template case is excluded before any debit.
func (m *MilitarySystem) RecruitUnit(code, templateID string, provinceID world.ProvinceID) bool {
	t := m.sim.Templates.Get(templateID)
	if t == nil {
		return false
	}

	if !m.sim.Economy.CanAfford(code, t.Cost, t.ManpowerCost) {
		return false
	}

	if m.sim.Economy.Purchase(code, t.Cost, t.ManpowerCost) {
		return m.CreateUnit(templateID, code, provinceID) != nil
	}

	return false
}

// OrderMove marks a unit as moving toward the destination. The next
// Advance relocates it.
func (m *MilitarySystem) OrderMove(u *military.Unit, destination world.ProvinceID) {
	u.Moving = true
	u.MoveTarget = destination
}

// Units returns the full roster in insertion order.
func (m *MilitarySystem) Units() []*military.Unit {
	return m.units
}

// UnitsIn returns every unit located in a province.
func (m *MilitarySystem) UnitsIn(provinceID world.ProvinceID) []*military.Unit {
	var out []*military.Unit
	for _, u := range m.units {
		if u.Location == provinceID {
			out = append(out, u)
		}
	}
	return out
}

// UnitsOf returns every unit owned by a country.
func (m *MilitarySystem) UnitsOf(code string) []*military.Unit {
	var out []*military.Unit
	for _, u := range m.units {
		if u.Owner == code {
			out = append(out, u)
		}
	}
	return out
}

// UnitsInByOwner returns units in a province owned by a specific country.
func (m *MilitarySystem) UnitsInByOwner(provinceID world.ProvinceID, code string) []*military.Unit {
	var out []*military.Unit
	for _, u := range m.units {
		if u.Location == provinceID && u.Owner == code {
			out = append(out, u)
		}
	}
	return out
}

// UnitByID returns the unit with the given ID, or nil.
func (m *MilitarySystem) UnitByID(id military.UnitID) *military.Unit {
	for _, u := range m.units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// CountByCategory counts a country's units of one category.
func (m *MilitarySystem) CountByCategory(code string, cat military.Category) int {
	count := 0
	for _, u := range m.UnitsOf(code) {
		t := m.sim.Templates.Get(u.TemplateID)
		if t != nil && t.Category == cat {
			count++
		}
	}
	return count
}
