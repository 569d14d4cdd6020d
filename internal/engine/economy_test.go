package engine

import (
	"testing"

	"github.com/talgya/hegemony/internal/entropy"
)

func TestDailyAccrual(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	ger := sim.Countries.Get("GER")

	// GER holds development 5+4+3 at base income 10: 120/day.
	// Manpower: (5000+4000+3000)/100 = 120/day.
	sim.Economy.Advance(24.0)

	if ger.Money != 2120 {
		t.Errorf("Money after one day = %v, want 2120", ger.Money)
	}
	if ger.Manpower != 20120 {
		t.Errorf("Manpower after one day = %d, want 20120", ger.Manpower)
	}
}

func TestAccrualSpansMultipleDays(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	ger := sim.Countries.Get("GER")

	// One 72-hour delta fires the daily accrual three times.
	sim.Economy.Advance(72.0)

	if ger.Money != 2360 {
		t.Errorf("Money after 72h = %v, want 2360", ger.Money)
	}
}

func TestAccrualKeepsRemainder(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	ger := sim.Countries.Get("GER")

	sim.Economy.Advance(23.5)
	if ger.Money != 2000 {
		t.Errorf("Money at 23.5h = %v, want 2000 (no accrual yet)", ger.Money)
	}

	sim.Economy.Advance(0.5)
	if ger.Money != 2120 {
		t.Errorf("Money at 24h = %v, want 2120", ger.Money)
	}
}

func TestPurchaseAllOrNothing(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	ger := sim.Countries.Get("GER")
	ger.Money = 150
	ger.Manpower = 500

	// Enough money, not enough manpower: nothing is debited.
	if sim.Economy.Purchase("GER", 100, 1000) {
		t.Error("purchase should fail on insufficient manpower")
	}
	if ger.Money != 150 || ger.Manpower != 500 {
		t.Errorf("failed purchase debited resources: money=%v manpower=%d", ger.Money, ger.Manpower)
	}

	// Enough manpower, not enough money: same.
	if sim.Economy.Purchase("GER", 200, 100) {
		t.Error("purchase should fail on insufficient money")
	}
	if ger.Money != 150 || ger.Manpower != 500 {
		t.Errorf("failed purchase debited resources: money=%v manpower=%d", ger.Money, ger.Manpower)
	}

	// Both sufficient: both debited.
	if !sim.Economy.Purchase("GER", 100, 500) {
		t.Fatal("affordable purchase failed")
	}
	if ger.Money != 50 || ger.Manpower != 0 {
		t.Errorf("after purchase: money=%v manpower=%d, want 50/0", ger.Money, ger.Manpower)
	}
}

func TestCanAfford(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))

	if !sim.Economy.CanAfford("GER", 2000, 20000) {
		t.Error("GER should afford exactly its reserves")
	}
	if sim.Economy.CanAfford("GER", 2000.01, 0) {
		t.Error("GER should not afford more than its money")
	}
	if sim.Economy.CanAfford("XXX", 0, 0) {
		t.Error("unknown country should afford nothing")
	}
}
