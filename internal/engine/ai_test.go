package engine

import (
	"testing"

	"github.com/talgya/hegemony/internal/entropy"
)

func TestAIRecruitsWhenRichAndThin(t *testing.T) {
	// Draws of 0.5 fail every expansion roll, so only recruitment runs.
	sim := newTestSim(entropy.NewFixed(0.5))

	sim.AI.Advance(168.0)

	for _, code := range []string{"GER", "FRA", "GBR"} {
		units := sim.Military.UnitsOf(code)
		if len(units) != 1 {
			t.Errorf("%s has %d units after one AI pass, want 1", code, len(units))
			continue
		}
		c := sim.Countries.Get(code)
		if units[0].Location != c.Capital {
			t.Errorf("%s recruited at province %d, want capital %d", code, units[0].Location, c.Capital)
		}
	}

	if got := sim.Countries.Get("GER").Money; got != 1900 {
		t.Errorf("GER money = %v, want 1900", got)
	}
}

func TestAISkipsPlayerCountry(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	sim.SetPlayerCountry("GER")

	sim.AI.Advance(168.0)

	if got := len(sim.Military.UnitsOf("GER")); got != 0 {
		t.Errorf("player country recruited %d units", got)
	}
	if got := sim.Countries.Get("GER").Money; got != 2000 {
		t.Errorf("player money = %v, want untouched 2000", got)
	}
	if got := len(sim.Military.UnitsOf("FRA")); got != 1 {
		t.Errorf("FRA has %d units, want 1", got)
	}
}

func TestAIStopsRecruitingAtFiveLandUnits(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	for i := 0; i < 5; i++ {
		sim.Military.CreateUnit("infantry", "GER", 1)
	}

	sim.AI.Advance(168.0)

	if got := len(sim.Military.UnitsOf("GER")); got != 5 {
		t.Errorf("GER has %d units, want 5 (no further recruitment)", got)
	}
}

func TestAIDeclaresWarOnMuchWeakerNeighbor(t *testing.T) {
	// Draws of 0.0 pass every chance roll.
	sim := newTestSim(entropy.NewFixed(0.0))
	sim.Military.CreateUnit("infantry", "GER", 1)
	sim.Military.CreateUnit("infantry", "GER", 1)

	sim.AI.Advance(168.0)

	ger := sim.Countries.Get("GER")
	if !ger.IsAtWarWith("FRA") {
		t.Fatal("GER did not declare war on the first weaker country")
	}
	if !sim.Countries.Get("FRA").IsAtWarWith("GER") {
		t.Error("declaration not symmetric")
	}
	// One declaration per pass.
	if ger.IsAtWarWith("GBR") {
		t.Error("GER declared a second war in the same pass")
	}

	// FRA, evaluated after GER, immediately pushes its forces out.
	fraUnits := sim.Military.UnitsOf("FRA")
	if len(fraUnits) != 1 {
		t.Fatalf("FRA has %d units, want 1", len(fraUnits))
	}
	if !fraUnits[0].Moving || fraUnits[0].MoveTarget != 1 {
		t.Errorf("FRA unit moving=%v target=%d, want move toward province 1",
			fraUnits[0].Moving, fraUnits[0].MoveTarget)
	}
}

func TestAINeverAttacksNearPeers(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.0))
	for _, code := range []string{"GER", "FRA", "GBR"} {
		c := sim.Countries.Get(code)
		sim.Military.CreateUnit("infantry", code, c.Capital)
		sim.Military.CreateUnit("infantry", code, c.Capital)
	}

	sim.AI.Advance(168.0)

	// Each country recruits one more unit on its turn, so nobody is ever
	// more than one unit ahead and the 1.5x bar never clears.
	for _, code := range []string{"GER", "FRA", "GBR"} {
		if got := len(sim.Countries.Get(code).AtWarWith); got != 0 {
			t.Errorf("%s is at war with %v, want none", code, sim.Countries.Get(code).AtWarWith)
		}
	}
}

func TestAIProposalRejectedWhenTooGreedy(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	sim.Diplomacy.DeclareWar("GER", "FRA")
	sim.Countries.Get("GER").WarScores["FRA"] = 80

	sim.AI.Advance(168.0)

	// GER proposes annexing all 3 FRA provinces; FRA refuses to concede
	// more than half the country, so the treaty stays on the table.
	if got := len(sim.Diplomacy.Pending()); got != 1 {
		t.Fatalf("pending treaties = %d, want 1", got)
	}
	treaty := sim.Diplomacy.Pending()[0]
	if treaty.Proposer != "GER" || treaty.Target != "FRA" || len(treaty.Demands) != 3 {
		t.Errorf("treaty = %+v, want GER demanding 3 provinces from FRA", treaty)
	}
	if !sim.Countries.Get("GER").IsAtWarWith("FRA") {
		t.Error("war ended without acceptance")
	}
	if got := len(sim.Provinces.ByOwner("FRA")); got != 3 {
		t.Errorf("FRA owns %d provinces, want 3", got)
	}
}

func TestAIWinnerTermsAcceptedByCollapsingLoser(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	sim.Diplomacy.DeclareWar("GER", "FRA")
	sim.Countries.Get("GER").WarScores["FRA"] = 80
	sim.Countries.Get("FRA").WarScores["GER"] = -60

	sim.AI.Advance(168.0)

	if sim.Countries.Get("GER").IsAtWarWith("FRA") {
		t.Error("war survived an accepted treaty")
	}
	if got := len(sim.Provinces.ByOwner("GER")); got != 6 {
		t.Errorf("GER owns %d provinces, want 6", got)
	}
	if got := len(sim.Diplomacy.Pending()); got != 0 {
		t.Errorf("pending treaties = %d, want 0", got)
	}
}

func TestLosingSideOffersNothing(t *testing.T) {
	sim := newTestSim(entropy.NewFixed(0.5))
	sim.Diplomacy.DeclareWar("GER", "FRA")
	sim.Countries.Get("FRA").WarScores["GER"] = -60

	sim.AI.Advance(168.0)

	// The capitulation hook runs for FRA but produces no proposal and no
	// concession; the loser waits for the winner's terms.
	if got := len(sim.Diplomacy.Pending()); got != 0 {
		t.Errorf("pending treaties = %d, want 0", got)
	}
	if !sim.Countries.Get("FRA").IsAtWarWith("GER") {
		t.Error("war ended without any treaty")
	}
	if got := len(sim.Provinces.ByOwner("FRA")); got != 3 {
		t.Errorf("FRA owns %d provinces, want 3", got)
	}
}
