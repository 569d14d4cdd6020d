// Economy: daily income and manpower accrual, plus the shared purchase
// gate every recruitment goes through.
package engine

// hoursPerDay is the economy's accrual period in game hours.
const hoursPerDay = 24.0

// EconomySystem accrues resources for every country once per game day.
type EconomySystem struct {
	sim   *Simulation
	accum float64
}

// NewEconomySystem creates the economy system.
func NewEconomySystem(sim *Simulation) *EconomySystem {
	return &EconomySystem{sim: sim}
}

// Advance accumulates elapsed game-hours and fires the daily accrual once
// per crossed threshold, keeping the overflow. A delta spanning several
// days fires several times.
func (e *EconomySystem) Advance(dt float64) {
	e.accum += dt
	for e.accum >= hoursPerDay {
		e.accum -= hoursPerDay
		e.collect()
	}
}

// collect credits every country with one day of province income and
// recruitable manpower (1% of population per day).
func (e *EconomySystem) collect() {
	for _, c := range e.sim.Countries.All() {
		var income float64
		var manpower int
		for _, p := range e.sim.Provinces.ByOwner(c.Code) {
			income += p.Income()
			manpower += p.Population / 100
		}
		c.AddMoney(income)
		c.AddManpower(manpower)
	}
}

// CanAfford reports whether the country can cover both costs.
func (e *EconomySystem) CanAfford(code string, moneyCost float64, manpowerCost int) bool {
	c := e.sim.Countries.Get(code)
	if c == nil {
		return false
	}
	return c.Money >= moneyCost && c.Manpower >= manpowerCost
}

// Purchase debits both resources, all-or-nothing: both are checked before
// either is touched, so an insufficient manpower pool never strands a
// partial money debit.
func (e *EconomySystem) Purchase(code string, moneyCost float64, manpowerCost int) bool {
	c := e.sim.Countries.Get(code)
	if c == nil {
		return false
	}
	if c.Money < moneyCost || c.Manpower < manpowerCost {
		return false
	}
	c.Money -= moneyCost
	c.Manpower -= manpowerCost
	return true
}
