package engine

import (
	"math"
	"testing"
)

func TestCatalogWeights(t *testing.T) {
	if TotalWeight() != 130 {
		t.Errorf("TotalWeight() = %d, expected 130", TotalWeight())
	}

	expected := []struct {
		typ    PowerUpType
		name   string
		weight int
	}{
		{PowerUpShield, "shield", 30},
		{PowerUpRapidFire, "rapid_fire", 25},
		{PowerUpMultiShot, "multi_shot", 20},
		{PowerUpSlowTime, "slow_time", 15},
		{PowerUpNuke, "nuke", 5},
		{PowerUpMagnet, "magnet", 20},
		{PowerUpDoublePoints, "double_points", 15},
	}

	cat := Catalog()
	if len(cat) != len(expected) {
		t.Fatalf("Catalog() has %d entries, expected %d", len(cat), len(expected))
	}
	for i, e := range expected {
		if cat[i].Type != e.typ {
			t.Errorf("entry %d: Type = %s, expected %s", i, cat[i].Type, e.typ)
		}
		if e.typ.String() != e.name {
			t.Errorf("%d.String() = %q, expected %q", e.typ, e.typ.String(), e.name)
		}
		if Weight(e.typ) != e.weight {
			t.Errorf("Weight(%s) = %d, expected %d", e.typ, Weight(e.typ), e.weight)
		}
	}

	if !cat[4].Instant() {
		t.Error("nuke should be instantaneous")
	}
}

func TestCatalogIsCopied(t *testing.T) {
	cat := Catalog()
	cat[0].Duration = 1
	if Catalog()[0].Duration != 5000 {
		t.Error("Catalog() exposed internal state")
	}
}

func TestGetRandomPowerUpWalk(t *testing.T) {
	tests := []struct {
		draw     float64
		expected PowerUpType
	}{
		{0, PowerUpShield},
		{0.1, PowerUpShield},         // r = 13
		{0.3, PowerUpRapidFire},      // r = 39
		{0.5, PowerUpMultiShot},      // r = 65
		{0.65, PowerUpSlowTime},      // r = 84.5
		{0.72, PowerUpNuke},          // r = 93.6
		{0.8, PowerUpMagnet},         // r = 104
		{0.999, PowerUpDoublePoints}, // r = 129.87
	}
	for _, tc := range tests {
		e := New(newSequence(tc.draw))
		if got := e.GetRandomPowerUp(); got.Type != tc.expected {
			t.Errorf("draw %f: got %s, expected %s", tc.draw, got.Type, tc.expected)
		}
	}
}

func TestGetRandomPowerUpFallback(t *testing.T) {
	// A draw past the total weight exhausts the walk.
	e := New(newSequence(1.5))
	if got := e.GetRandomPowerUp(); got.Type != PowerUpShield {
		t.Errorf("exhausted walk returned %s, expected shield", got.Type)
	}
}

func TestGetRandomPowerUpDistribution(t *testing.T) {
	const trials = 100000
	e := New(NewSeededSource(42))

	counts := make(map[PowerUpType]int)
	for i := 0; i < trials; i++ {
		counts[e.GetRandomPowerUp().Type]++
	}

	for _, p := range Catalog() {
		want := float64(Weight(p.Type)) / float64(TotalWeight())
		got := float64(counts[p.Type]) / trials
		if math.Abs(got-want) > 0.01 {
			t.Errorf("%s: frequency %.4f, expected %.4f", p.Type, got, want)
		}
	}
}
