// Diplomacy: war state, peace demands, treaty negotiation, and the
// forced-peace sweep at total war-score victory.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hegemony/internal/world"
)

// DemandKind selects the variant of a peace demand.
type DemandKind uint8

const (
	DemandAnnexProvince DemandKind = iota
	DemandWarReparations
	DemandReleaseNation
	DemandMilitaryAccess
)

// PeaceDemand is one costed request inside a treaty. Kind selects which
// target field is meaningful: Province for annexation, Amount for
// reparations, neither for the flat-cost kinds.
type PeaceDemand struct {
	Kind     DemandKind       `json:"kind"`
	Province world.ProvinceID `json:"province,omitempty"`
	Amount   float64          `json:"amount,omitempty"`
	Cost     int              `json:"cost"`
}

// PeaceTreaty is a pending proposal. It exists only while pending:
// acceptance consumes it, and a failed proposal never enters the set.
type PeaceTreaty struct {
	Proposer  string        `json:"proposer"`
	Target    string        `json:"target"`
	Demands   []PeaceDemand `json:"demands"`
	TotalCost int           `json:"total_cost"`
}

// DiplomacySystem manages wars and peace treaties. It has no time
// accumulator; the forced-peace sweep runs every tick.
type DiplomacySystem struct {
	sim     *Simulation
	pending []*PeaceTreaty
}

// NewDiplomacySystem creates the diplomacy system.
func NewDiplomacySystem(sim *Simulation) *DiplomacySystem {
	return &DiplomacySystem{sim: sim}
}

// DeclareWar puts both countries at war with each other, resetting both
// war scores to 0. Returns false if either code is unknown.
func (d *DiplomacySystem) DeclareWar(attacker, defender string) bool {
	a := d.sim.Countries.Get(attacker)
	b := d.sim.Countries.Get(defender)
	if a == nil || b == nil {
		return false
	}

	a.DeclareWar(defender)
	b.DeclareWar(attacker)

	slog.Info("war declared", "attacker", attacker, "defender", defender)
	d.sim.recordEvent("war", fmt.Sprintf("%s declared war on %s", attacker, defender))
	return true
}

// MakePeace ends the war between two countries symmetrically.
func (d *DiplomacySystem) MakePeace(a, b string) {
	ca := d.sim.Countries.Get(a)
	cb := d.sim.Countries.Get(b)
	if ca == nil || cb == nil {
		return
	}

	ca.MakePeace(b)
	cb.MakePeace(a)

	slog.Info("peace made", "a", a, "b", b)
	d.sim.recordEvent("war", fmt.Sprintf("%s and %s made peace", a, b))
}

// AnnexDemand builds an annexation demand costed by province development.
func (d *DiplomacySystem) AnnexDemand(id world.ProvinceID) PeaceDemand {
	cost := 10
	if p := d.sim.Provinces.Get(id); p != nil {
		cost = 5 + p.Development*2
	}
	return PeaceDemand{Kind: DemandAnnexProvince, Province: id, Cost: cost}
}

// ReparationsDemand builds a war-reparations demand costed by amount.
func (d *DiplomacySystem) ReparationsDemand(amount float64) PeaceDemand {
	cost := int(amount / 500)
	if cost < 5 {
		cost = 5
	}
	return PeaceDemand{Kind: DemandWarReparations, Amount: amount, Cost: cost}
}

// ReleaseNationDemand builds a release-nation demand at its flat cost.
func (d *DiplomacySystem) ReleaseNationDemand() PeaceDemand {
	return PeaceDemand{Kind: DemandReleaseNation, Cost: 30}
}

// MilitaryAccessDemand builds a military-access demand at its flat cost.
func (d *DiplomacySystem) MilitaryAccessDemand() PeaceDemand {
	return PeaceDemand{Kind: DemandMilitaryAccess, Cost: 5}
}

// ProposePeaceTreaty enters a treaty into the pending set if the proposer's
// war score against the target covers the summed demand cost. Returns nil
// otherwise.
func (d *DiplomacySystem) ProposePeaceTreaty(proposer, target string, demands []PeaceDemand) *PeaceTreaty {
	total := 0
	for _, dem := range demands {
		total += dem.Cost
	}

	t := &PeaceTreaty{
		Proposer:  proposer,
		Target:    target,
		Demands:   demands,
		TotalCost: total,
	}

	p := d.sim.Countries.Get(proposer)
	if p == nil {
		return nil
	}
	if score, ok := p.WarScores[target]; ok && score >= total {
		d.pending = append(d.pending, t)
		slog.Info("peace treaty proposed", "proposer", proposer, "target", target,
			"demands", len(demands), "cost", total)
		return t
	}

	return nil
}

// AcceptPeaceTreaty executes every demand in order, makes peace, and
// removes the treaty. Returns false if the treaty is not pending.
func (d *DiplomacySystem) AcceptPeaceTreaty(t *PeaceTreaty) bool {
	found := false
	for _, p := range d.pending {
		if p == t {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	for _, demand := range t.Demands {
		d.executeDemand(t.Proposer, t.Target, demand)
	}

	d.MakePeace(t.Proposer, t.Target)

	for i, p := range d.pending {
		if p == t {
			d.pending = append(d.pending[:i], d.pending[i+1:]...)
			break
		}
	}

	d.sim.recordEvent("treaty", fmt.Sprintf("%s accepted peace terms from %s", t.Target, t.Proposer))
	return true
}

// Pending returns the pending treaty set.
func (d *DiplomacySystem) Pending() []*PeaceTreaty {
	return d.pending
}

// executeDemand applies one demand of an accepted treaty. Annexation only
// transfers provinces the loser still owns; reparations transfer at most
// the loser's current money. Release-nation and military-access have no
// mechanical effect in this version.
func (d *DiplomacySystem) executeDemand(winner, loser string, demand PeaceDemand) {
	switch demand.Kind {
	case DemandAnnexProvince:
		p := d.sim.Provinces.Get(demand.Province)
		if p != nil && p.Owner == loser {
			p.Owner = winner
			d.sim.recordEvent("annexation", fmt.Sprintf("%s annexed %s from %s", winner, p.Name, loser))
		}

	case DemandWarReparations:
		lc := d.sim.Countries.Get(loser)
		wc := d.sim.Countries.Get(winner)
		if lc == nil || wc == nil {
			return
		}
		amount := demand.Amount
		if lc.Money < amount {
			amount = lc.Money
		}
		lc.SpendMoney(amount)
		wc.AddMoney(amount)
		d.sim.recordEvent("treaty", fmt.Sprintf("%s paid %.0f in reparations to %s", loser, amount, winner))
	}
}

// AIShouldAcceptPeace is the acceptance heuristic, evaluated in fixed
// order; the first matching rule decides.
func (d *DiplomacySystem) AIShouldAcceptPeace(code string, t *PeaceTreaty) bool {
	if t.Target != code {
		return false
	}

	c := d.sim.Countries.Get(code)
	if c == nil {
		return false
	}

	// Losing badly: take any terms.
	if score, ok := c.WarScores[t.Proposer]; ok && score < -50 {
		return true
	}

	// Never concede more than half the country.
	provincesLost := 0
	for _, demand := range t.Demands {
		if demand.Kind == DemandAnnexProvince {
			provincesLost++
		}
	}
	totalProvinces := len(d.sim.Provinces.ByOwner(code))
	if totalProvinces > 0 && float64(provincesLost)/float64(totalProvinces) > 0.5 {
		return false
	}

	// Never pay reparations beyond 80% of the treasury.
	reparations := 0.0
	for _, demand := range t.Demands {
		if demand.Kind == DemandWarReparations {
			reparations += demand.Amount
		}
	}
	if reparations > c.Money*0.8 {
		return false
	}

	// The proposer is far enough ahead that refusal is pointless.
	if enemy := d.sim.Countries.Get(t.Proposer); enemy != nil {
		if score, ok := enemy.WarScores[code]; ok && score > 75 {
			return true
		}
	}

	return false
}

// AutoPeaceAt100 force-resolves every war where one side's score has
// reached 100: the winner annexes every province the loser still owns and
// peace is made unconditionally, bypassing the proposal gate.
func (d *DiplomacySystem) AutoPeaceAt100() {
	for _, c := range d.sim.Countries.All() {
		enemies := append([]string(nil), c.AtWarWith...)
		for _, enemy := range enemies {
			score, ok := c.WarScores[enemy]
			if !ok || score < 100 {
				continue
			}

			if d.sim.Countries.Get(enemy) != nil {
				provinces := append([]*world.Province(nil), d.sim.Provinces.ByOwner(enemy)...)
				for _, p := range provinces {
					d.executeDemand(c.Code, enemy, d.AnnexDemand(p.ID))
				}
			}

			d.MakePeace(c.Code, enemy)

			slog.Info("total victory", "winner", c.Code, "loser", enemy)
			d.sim.recordEvent("war", fmt.Sprintf("%s achieved total victory over %s", c.Code, enemy))
		}
	}
}
