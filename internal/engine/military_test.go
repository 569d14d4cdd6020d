package engine

import (
	"testing"

	"github.com/talgya/hegemony/internal/entropy"
	"github.com/talgya/hegemony/internal/military"
)

func TestRecruitUnit(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	ger := sim.Countries.Get("GER")

	if !sim.Military.RecruitUnit("GER", "infantry", 1) {
		t.Fatal("recruit failed")
	}

	if ger.Money != 1900 {
		t.Errorf("Money = %v, want 1900", ger.Money)
	}
	if ger.Manpower != 19000 {
		t.Errorf("Manpower = %d, want 19000", ger.Manpower)
	}

	units := sim.Military.Units()
	if len(units) != 1 {
		t.Fatalf("roster has %d units, want 1", len(units))
	}

	u := units[0]
	if u.Owner != "GER" || u.Location != 1 || u.TemplateID != "infantry" {
		t.Errorf("unit = %+v, want GER infantry at province 1", u)
	}
	if u.HP != 100 || u.Organization != 100 || u.Strength != 1.0 {
		t.Errorf("fresh unit HP=%d Org=%d Strength=%v, want 100/100/1.0", u.HP, u.Organization, u.Strength)
	}
}

func TestRecruitUnknownTemplate(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	ger := sim.Countries.Get("GER")

	if sim.Military.RecruitUnit("GER", "cavalry", 1) {
		t.Error("unknown template should not recruit")
	}
	if ger.Money != 2000 || ger.Manpower != 20000 {
		t.Errorf("unknown template debited resources: money=%v manpower=%d", ger.Money, ger.Manpower)
	}
}

func TestRecruitUnaffordable(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	ger := sim.Countries.Get("GER")
	ger.Money = 50

	if sim.Military.RecruitUnit("GER", "infantry", 1) {
		t.Error("unaffordable recruit should fail")
	}
	if ger.Money != 50 || ger.Manpower != 20000 {
		t.Errorf("failed recruit debited resources: money=%v manpower=%d", ger.Money, ger.Manpower)
	}
	if len(sim.Military.Units()) != 0 {
		t.Error("failed recruit created a unit")
	}
}

func TestUnitIDsAreSequential(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))

	a := sim.Military.CreateUnit("infantry", "GER", 1)
	b := sim.Military.CreateUnit("armor", "GER", 1)

	if a.ID != 1 || b.ID != 2 {
		t.Errorf("unit IDs = %d, %d, want 1, 2", a.ID, b.ID)
	}
	if sim.Military.UnitByID(2) != b {
		t.Error("UnitByID(2) did not return the second unit")
	}
	if sim.Military.UnitByID(99) != nil {
		t.Error("UnitByID(99) should be nil")
	}
}

func TestMovementResolvesOnAdvance(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	u := sim.Military.CreateUnit("infantry", "GER", 1)

	sim.Military.OrderMove(u, 4)
	if !u.Moving || u.MoveTarget != 4 {
		t.Fatalf("after OrderMove: moving=%v target=%d", u.Moving, u.MoveTarget)
	}

	sim.Military.Advance(1.0)

	if u.Location != 4 {
		t.Errorf("Location = %d, want 4", u.Location)
	}
	if u.Moving || u.MoveTarget != 0 {
		t.Errorf("movement flags not cleared: moving=%v target=%d", u.Moving, u.MoveTarget)
	}
}

func TestDestructionSweep(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	a := sim.Military.CreateUnit("infantry", "GER", 1)
	b := sim.Military.CreateUnit("infantry", "GER", 1)

	tmpl := sim.Templates.Get("infantry")
	a.TakeDamage(1e6, tmpl)

	sim.Military.Advance(1.0)

	units := sim.Military.Units()
	if len(units) != 1 {
		t.Fatalf("roster has %d units after sweep, want 1", len(units))
	}
	if units[0] != b {
		t.Error("sweep removed the wrong unit")
	}
}

func TestRosterQueries(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	sim.Military.CreateUnit("infantry", "GER", 1)
	sim.Military.CreateUnit("armor", "GER", 4)
	sim.Military.CreateUnit("infantry", "FRA", 4)
	sim.Military.CreateUnit("destroyer", "GER", 3)

	if got := len(sim.Military.UnitsIn(4)); got != 2 {
		t.Errorf("UnitsIn(4) = %d, want 2", got)
	}
	if got := len(sim.Military.UnitsOf("GER")); got != 3 {
		t.Errorf("UnitsOf(GER) = %d, want 3", got)
	}
	if got := len(sim.Military.UnitsInByOwner(4, "FRA")); got != 1 {
		t.Errorf("UnitsInByOwner(4, FRA) = %d, want 1", got)
	}
	if got := sim.Military.CountByCategory("GER", military.CategoryLand); got != 2 {
		t.Errorf("CountByCategory(GER, land) = %d, want 2", got)
	}
	if got := sim.Military.CountByCategory("GER", military.CategorySea); got != 1 {
		t.Errorf("CountByCategory(GER, sea) = %d, want 1", got)
	}
}
