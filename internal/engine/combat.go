// Combat: battle detection, hourly resolution, and territory transfer.
// A battle walks Detected → Active → Resolved; resolution is the only
// place unit damage originates.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/hegemony/internal/military"
	"github.com/talgya/hegemony/internal/world"
)

// combatInterval is the resolution period in game hours.
const combatInterval = 1.0

// Battle is an ongoing fight in one province. The attacker/defender split
// records detection order, not who aggressed.
type Battle struct {
	ID        uuid.UUID        `json:"id"`
	Province  world.ProvinceID `json:"province"`
	Attackers []string         `json:"attackers"` // country codes
	Defenders []string         `json:"defenders"`
	Duration  float64          `json:"duration"` // hours of combat
}

// CombatSystem detects and resolves battles.
type CombatSystem struct {
	sim     *Simulation
	battles []*Battle
	accum   float64
}

// NewCombatSystem creates the combat system.
func NewCombatSystem(sim *Simulation) *CombatSystem {
	return &CombatSystem{sim: sim}
}

// Advance accumulates game-hours and, per crossed hour, detects new
// battles and resolves every active one.
func (c *CombatSystem) Advance(dt float64) {
	c.accum += dt
	for c.accum >= combatInterval {
		c.accum -= combatInterval

		c.detectBattles()

		snapshot := append([]*Battle(nil), c.battles...)
		for _, b := range snapshot {
			c.resolveBattleTick(b)
			b.Duration += combatInterval
		}
	}
}

// Battles returns the active battle set.
func (c *CombatSystem) Battles() []*Battle {
	return c.battles
}

// BattleIn returns the battle in a province, or nil.
func (c *CombatSystem) BattleIn(provinceID world.ProvinceID) *Battle {
	for _, b := range c.battles {
		if b.Province == provinceID {
			return b
		}
	}
	return nil
}

// detectBattles scans every province for co-located units of mutually
// warring owners and opens a battle where none exists yet.
func (c *CombatSystem) detectBattles() {
	for _, p := range c.sim.Provinces.All() {
		units := c.sim.Military.UnitsIn(p.ID)
		if len(units) < 2 {
			continue
		}

		var owners []string
		seen := make(map[string]bool)
		for _, u := range units {
			if !seen[u.Owner] {
				seen[u.Owner] = true
				owners = append(owners, u.Owner)
			}
		}

		for i, owner1 := range owners {
			for _, owner2 := range owners[i+1:] {
				c1 := c.sim.Countries.Get(owner1)
				c2 := c.sim.Countries.Get(owner2)
				if c1 == nil || c2 == nil || !c1.IsAtWarWith(owner2) {
					continue
				}
				if c.BattleIn(p.ID) == nil {
					c.startBattle(p.ID, owner1, owner2)
				}
			}
		}
	}
}

func (c *CombatSystem) startBattle(provinceID world.ProvinceID, attacker, defender string) {
	b := &Battle{
		ID:        uuid.New(),
		Province:  provinceID,
		Attackers: []string{attacker},
		Defenders: []string{defender},
	}
	c.battles = append(c.battles, b)

	slog.Info("battle started", "province", provinceID, "attacker", attacker, "defender", defender)
	c.sim.recordEvent("battle", fmt.Sprintf("Battle of %s: %s engages %s",
		c.provinceName(provinceID), attacker, defender))
}

// resolveBattleTick runs one hour of combat for a battle.
func (c *CombatSystem) resolveBattleTick(b *Battle) {
	province := c.sim.Provinces.Get(b.Province)
	if province == nil {
		// A battle without a province is corrupt state; drop it quietly.
		c.removeBattle(b)
		return
	}

	var attackerUnits, defenderUnits []*military.Unit
	for _, code := range b.Attackers {
		attackerUnits = append(attackerUnits, c.sim.Military.UnitsInByOwner(b.Province, code)...)
	}
	for _, code := range b.Defenders {
		defenderUnits = append(defenderUnits, c.sim.Military.UnitsInByOwner(b.Province, code)...)
	}

	if len(attackerUnits) == 0 || len(defenderUnits) == 0 {
		c.endBattle(b, attackerUnits, defenderUnits)
		return
	}

	attackPower := c.combatPower(attackerUnits, true)
	defensePower := c.combatPower(defenderUnits, false) * province.Terrain.DefenseModifier()

	attackRoll := attackPower * c.sim.Rand.Range(0.7, 1.3)
	defenseRoll := defensePower * c.sim.Rand.Range(0.7, 1.3)

	if attackRoll > defenseRoll {
		c.applyDamage(defenderUnits, (attackRoll-defenseRoll)*0.5)
		c.applyDamage(attackerUnits, defenseRoll*0.2) // chip damage to the winner
	} else {
		c.applyDamage(attackerUnits, (defenseRoll-attackRoll)*0.5)
		c.applyDamage(defenderUnits, attackRoll*0.2)
	}

	c.checkRetreats(attackerUnits, defenderUnits)
}

// combatPower sums the side's effective attack or defense.
func (c *CombatSystem) combatPower(units []*military.Unit, attacking bool) float64 {
	total := 0.0
	for _, u := range units {
		t := c.sim.Templates.Get(u.TemplateID)
		if t == nil {
			continue
		}
		if attacking {
			total += u.EffectiveAttack(t)
		} else {
			total += u.EffectiveDefense(t)
		}
	}
	return total
}

// applyDamage splits total damage evenly across the side.
func (c *CombatSystem) applyDamage(units []*military.Unit, totalDamage float64) {
	if len(units) == 0 {
		return
	}
	share := totalDamage / float64(len(units))
	for _, u := range units {
		t := c.sim.Templates.Get(u.TemplateID)
		if t != nil {
			u.TakeDamage(share, t)
		}
	}
}

// checkRetreats is the organization-collapse withdrawal hook. Units report
// ShouldRetreat but no forced retreat happens in this version.
func (c *CombatSystem) checkRetreats(attackerUnits, defenderUnits []*military.Unit) {
}

// endBattle resolves a battle where at least one side has no units left.
func (c *CombatSystem) endBattle(b *Battle, remainingAttackers, remainingDefenders []*military.Unit) {
	province := c.sim.Provinces.Get(b.Province)
	if province == nil {
		c.removeBattle(b)
		return
	}

	switch {
	case len(remainingAttackers) > 0 && len(remainingDefenders) == 0:
		winner := b.Attackers[0]
		if province.Owner != winner {
			former := province.Owner
			province.Owner = winner

			slog.Info("province captured", "province", province.Name, "by", winner, "from", former)
			c.sim.recordEvent("annexation", fmt.Sprintf("%s captured %s", winner, province.Name))

			if former != "" {
				c.awardWarScore(winner, former, 5)
			}
		}

	case len(remainingDefenders) > 0 && len(remainingAttackers) == 0:
		winner := b.Defenders[0]
		c.awardWarScore(winner, b.Attackers[0], 2)

		slog.Info("province defended", "province", province.Name, "by", winner)
		c.sim.recordEvent("battle", fmt.Sprintf("%s held %s", winner, province.Name))
	}

	// Both sides empty ends the battle with no award.
	c.removeBattle(b)
}

// awardWarScore credits the winner's score against the loser, capped at 100.
// The award only lands while the war entry exists.
func (c *CombatSystem) awardWarScore(winner, loser string, points int) {
	wc := c.sim.Countries.Get(winner)
	if wc == nil {
		return
	}
	if score, ok := wc.WarScores[loser]; ok {
		score += points
		if score > 100 {
			score = 100
		}
		wc.WarScores[loser] = score
	}
}

func (c *CombatSystem) removeBattle(b *Battle) {
	for i, active := range c.battles {
		if active == b {
			c.battles = append(c.battles[:i], c.battles[i+1:]...)
			return
		}
	}
}

func (c *CombatSystem) provinceName(id world.ProvinceID) string {
	if p := c.sim.Provinces.Get(id); p != nil {
		return p.Name
	}
	return fmt.Sprintf("province %d", id)
}
