package military

import "github.com/talgya/hegemony/internal/world"

// UnitID is a unique, monotonically increasing unit identifier.
type UnitID int64

// Unit is a live instance of a template. Strength is always HP/MaxHP,
// recomputed whenever HP changes; nothing else may set it.
type Unit struct {
	ID         UnitID           `json:"id"`
	TemplateID string           `json:"template_id"`
	Owner      string           `json:"owner"` // country code
	Location   world.ProvinceID `json:"location"`

	HP           int     `json:"hp"`
	Organization int     `json:"organization"`
	Experience   int     `json:"experience"`
	Strength     float64 `json:"strength"` // HP / MaxHP, in [0, 1]

	Moving     bool             `json:"moving"`
	MoveTarget world.ProvinceID `json:"move_target"`
}

// EffectiveAttack is the unit's attack contribution, scaled by strength
// and organization.
func (u *Unit) EffectiveAttack(t *UnitTemplate) float64 {
	return float64(t.Attack) * u.Strength * (float64(u.Organization) / 100.0)
}

// EffectiveDefense is the unit's defense contribution, scaled the same way.
func (u *Unit) EffectiveDefense(t *UnitTemplate) float64 {
	return float64(t.Defense) * u.Strength * (float64(u.Organization) / 100.0)
}

// TakeDamage applies damage, split evenly between HP and organization,
// both floored at 0, then recomputes strength.
func (u *Unit) TakeDamage(damage float64, t *UnitTemplate) {
	u.HP -= int(damage * 0.5)
	u.Organization -= int(damage * 0.5)

	if u.HP < 0 {
		u.HP = 0
	}
	if u.Organization < 0 {
		u.Organization = 0
	}

	u.Strength = float64(u.HP) / float64(t.MaxHP)
}

// Destroyed reports whether the unit has been destroyed.
func (u *Unit) Destroyed() bool {
	return u.HP <= 0
}

// ShouldRetreat reports whether organization has collapsed below the
// withdrawal threshold. Nothing acts on this yet; forced retreat is a
// recognized gap in the combat system.
func (u *Unit) ShouldRetreat() bool {
	return u.Organization <= 20
}
