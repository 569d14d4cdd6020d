package entropy

import "testing"

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)

	for i := 0; i < 100; i++ {
		if av, bv := a.Float(), b.Float(); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestFloatInRange(t *testing.T) {
	s := NewSource(1)
	for i := 0; i < 1000; i++ {
		v := s.Float()
		if v < 0 || v >= 1 {
			t.Fatalf("Float() = %v, want [0, 1)", v)
		}
	}
}

func TestFixedPlaybackCycles(t *testing.T) {
	s := NewFixed(0.1, 0.5, 0.9)

	want := []float64{0.1, 0.5, 0.9, 0.1, 0.5}
	for i, w := range want {
		if got := s.Float(); got != w {
			t.Errorf("draw %d = %v, want %v", i, got, w)
		}
	}
}

func TestRange(t *testing.T) {
	s := NewFixed(0.0, 0.5, 1.0)

	if got := s.Range(0.7, 1.3); got != 0.7 {
		t.Errorf("Range at 0.0 = %v, want 0.7", got)
	}
	if got := s.Range(0.7, 1.3); got != 1.0 {
		t.Errorf("Range at 0.5 = %v, want 1.0", got)
	}
	if got := s.Range(0.7, 1.3); got != 1.3 {
		t.Errorf("Range at 1.0 = %v, want 1.3", got)
	}
}

func TestChance(t *testing.T) {
	s := NewFixed(0.05, 0.5)

	if !s.Chance(0.1) {
		t.Error("Chance(0.1) with draw 0.05 should be true")
	}
	if s.Chance(0.1) {
		t.Error("Chance(0.1) with draw 0.5 should be false")
	}
}

func TestIntN(t *testing.T) {
	s := NewFixed(0.0, 0.99)

	if got := s.IntN(5); got != 0 {
		t.Errorf("IntN(5) at 0.0 = %d, want 0", got)
	}
	if got := s.IntN(5); got != 4 {
		t.Errorf("IntN(5) at 0.99 = %d, want 4", got)
	}
}
