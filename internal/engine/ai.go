// AI: weekly policy evaluation for every computer-controlled country:
// recruitment, war conduct, expansion, and peace negotiation.
package engine

import (
	"log/slog"

	"github.com/talgya/hegemony/internal/military"
	"github.com/talgya/hegemony/internal/nation"
)

// aiInterval is one game week in hours.
const aiInterval = 168.0

// AISystem drives every non-player country.
type AISystem struct {
	sim   *Simulation
	accum float64
}

// NewAISystem creates the AI system.
func NewAISystem(sim *Simulation) *AISystem {
	return &AISystem{sim: sim}
}

// Advance accumulates game-hours and runs the weekly decision pass per
// crossed threshold.
func (a *AISystem) Advance(dt float64) {
	a.accum += dt
	for a.accum >= aiInterval {
		a.accum -= aiInterval
		a.decideAll()
	}
}

// decideAll evaluates every non-player country in roster order.
func (a *AISystem) decideAll() {
	for _, c := range a.sim.Countries.All() {
		if c.Code == a.sim.PlayerCountry {
			continue
		}
		a.economicDecisions(c)
		a.militaryDecisions(c)
		a.diplomaticDecisions(c)
	}
}

// economicDecisions recruits while the country is rich, manned, and thin
// on land forces.
func (a *AISystem) economicDecisions(c *nation.Country) {
	if c.Money <= 500 || c.Manpower <= 5000 {
		return
	}

	landUnits := a.sim.Military.CountByCategory(c.Code, military.CategoryLand)
	if landUnits >= 5 {
		return
	}

	capital := a.sim.Provinces.Get(c.Capital)
	if capital == nil || capital.Owner != c.Code {
		return
	}

	if a.sim.Military.RecruitUnit(c.Code, "infantry", capital.ID) {
		slog.Debug("ai recruited infantry", "country", c.Code, "capital", capital.Name)
	}
}

// militaryDecisions pushes the war effort, or weighs starting one.
func (a *AISystem) militaryDecisions(c *nation.Country) {
	if len(c.AtWarWith) > 0 {
		a.conductWar(c)
	} else {
		a.considerExpansion(c)
	}
}

// conductWar orders every idle unit toward a random enemy province.
// Targets are re-rolled each AI pass; there is no pathfinding.
func (a *AISystem) conductWar(c *nation.Country) {
	for _, enemy := range c.AtWarWith {
		ourUnits := a.sim.Military.UnitsOf(c.Code)
		enemyProvinces := a.sim.Provinces.ByOwner(enemy)
		if len(ourUnits) == 0 || len(enemyProvinces) == 0 {
			continue
		}

		for _, u := range ourUnits {
			if u.Moving {
				continue
			}
			target := enemyProvinces[a.sim.Rand.IntN(len(enemyProvinces))]
			a.sim.Military.OrderMove(u, target.ID)
		}
	}
}

// considerExpansion occasionally declares war on a clearly weaker country.
// The attacker must be at least 1.5x stronger; at most one declaration per
// pass, and the player is a far less likely target.
func (a *AISystem) considerExpansion(c *nation.Country) {
	if !a.sim.Rand.Chance(0.1) {
		return
	}

	if len(a.sim.Provinces.ByOwner(c.Code)) == 0 {
		return
	}

	ourStrength := a.militaryStrength(c.Code)

	for _, other := range a.sim.Countries.All() {
		if other.Code == c.Code {
			continue
		}
		if other.Code == a.sim.PlayerCountry && !a.sim.Rand.Chance(0.05) {
			continue
		}

		if ourStrength > a.militaryStrength(other.Code)*1.5 {
			a.sim.Diplomacy.DeclareWar(c.Code, other.Code)
			break
		}
	}
}

// diplomaticDecisions negotiates peace in ongoing wars and answers
// pending proposals.
func (a *AISystem) diplomaticDecisions(c *nation.Country) {
	enemies := append([]string(nil), c.AtWarWith...)
	for _, enemy := range enemies {
		a.considerPeace(c, enemy)
	}

	treaties := append([]*PeaceTreaty(nil), a.sim.Diplomacy.Pending()...)
	for _, t := range treaties {
		if t.Target == c.Code && a.sim.Diplomacy.AIShouldAcceptPeace(c.Code, t) {
			a.sim.Diplomacy.AcceptPeaceTreaty(t)
		}
	}
}

// considerPeace proposes annexation terms when clearly winning, or invokes
// the capitulation hook when clearly losing.
func (a *AISystem) considerPeace(c *nation.Country, enemyCode string) {
	if a.sim.Countries.Get(enemyCode) == nil {
		return
	}
	score, ok := c.WarScores[enemyCode]
	if !ok {
		return
	}

	switch {
	case score >= 50:
		enemyProvinces := a.sim.Provinces.ByOwner(enemyCode)

		take := score / 20
		if take > 3 {
			take = 3
		}
		if take > len(enemyProvinces) {
			take = len(enemyProvinces)
		}

		var demands []PeaceDemand
		for _, p := range enemyProvinces[:take] {
			demands = append(demands, a.sim.Diplomacy.AnnexDemand(p.ID))
		}

		if len(demands) == 0 {
			return
		}

		t := a.sim.Diplomacy.ProposePeaceTreaty(c.Code, enemyCode, demands)
		if t != nil && score >= 75 && a.sim.Diplomacy.AIShouldAcceptPeace(enemyCode, t) {
			a.sim.Diplomacy.AcceptPeaceTreaty(t)
		}

	case score <= -50:
		a.offerCapitulation(c, enemyCode)
	}
}

// offerCapitulation would cede provinces to a winning enemy. Offers from
// the losing side are a recognized gap: the hook runs, nothing happens,
// and the loser waits for the winner's terms.
func (a *AISystem) offerCapitulation(c *nation.Country, enemyCode string) {
}

// militaryStrength approximates a country's total fighting power.
func (a *AISystem) militaryStrength(code string) float64 {
	strength := 0.0
	for _, u := range a.sim.Military.UnitsOf(code) {
		t := a.sim.Templates.Get(u.TemplateID)
		if t != nil {
			strength += float64(t.Attack+t.Defense) * u.Strength
		}
	}
	return strength
}
