package engine

import (
	"fmt"
	"math"
)

// SpecialEvent is a named modifier attached to a wave. At most one per wave.
type SpecialEvent int

const (
	EventNone SpecialEvent = iota
	EventBonus
	EventBoss
	EventSwarm
	EventSpeed
)

// String returns the wire name of the event.
func (s SpecialEvent) String() string {
	switch s {
	case EventNone:
		return "none"
	case EventBonus:
		return "bonus"
	case EventBoss:
		return "boss"
	case EventSwarm:
		return "swarm"
	case EventSpeed:
		return "speed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the event by name.
func (s SpecialEvent) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes an event name produced by MarshalText.
func (s *SpecialEvent) UnmarshalText(text []byte) error {
	for ev := EventNone; ev <= EventSpeed; ev++ {
		if ev.String() == string(text) {
			*s = ev
			return nil
		}
	}
	return fmt.Errorf("engine: unknown special event %q", text)
}

// WaveConfig describes one wave. It is produced fresh by GetNextWave and is
// not retained by the engine.
type WaveConfig struct {
	WaveNumber      int          `json:"wave_number"`
	EnemyCount      int          `json:"enemy_count"`
	EnemySpeed      float64      `json:"enemy_speed"`
	SpawnRate       float64      `json:"spawn_rate"` // ms between spawns
	PowerUpChance   float64      `json:"power_up_chance"`
	BonusMultiplier float64      `json:"bonus_multiplier"`
	SpecialEvent    SpecialEvent `json:"special_event"`
}

// Wave tuning.
const (
	MaxEnemies   = 50
	MinSpawnRate = 200.0
	BaseSpeed    = 1.0

	baseSpawnRate  = 1000.0
	jitterLow      = 0.9
	jitterHigh     = 1.1
	spawnRateDecay = 0.05
)

// speedPlateaus maps wave thresholds to enemy speed, ascending.
var speedPlateaus = []struct {
	wave  int
	speed float64
}{
	{5, 1.2},
	{10, 1.5},
	{15, 1.8},
	{20, 2.0},
	{30, 2.5},
	{40, 3.0},
	{50, 3.5},
}

// rule is one rung of a priority ladder: the first rule whose when matches
// supplies the value.
type rule[T any] struct {
	when func(w int) bool
	then func(w int) T
}

func firstMatch[T any](rules []rule[T], w int) T {
	for _, r := range rules {
		if r.when(w) {
			return r.then(w)
		}
	}
	var zero T
	return zero
}

func every(n int) func(int) bool {
	return func(w int) bool { return w%n == 0 }
}

func always(int) bool { return true }

func constant[T any](v T) func(int) T {
	return func(int) T { return v }
}

// The mod-10 rung is shadowed by the mod-5 rung; order is load-bearing.
var powerUpChanceRules = []rule[float64]{
	{every(5), constant(0.3)},
	{every(10), constant(0.5)},
	// Reaches 1 at wave 180 and stays there
	{always, func(w int) float64 { return min(1, 0.1+float64(w)*0.005) }},
}

var bonusMultiplierRules = []rule[float64]{
	{every(10), constant(3.0)},
	{every(5), constant(2.0)},
	{always, func(w int) float64 { return 1 + float64(w)*0.02 }},
}

var specialEventRules = []rule[SpecialEvent]{
	{every(25), constant(EventBoss)},
	{every(10), constant(EventBonus)},
	{every(7), constant(EventSwarm)},
	{func(w int) bool { return w%5 == 3 }, constant(EventSpeed)},
	{always, constant(EventNone)},
}

var enemyCountRules = []rule[int]{
	{func(w int) bool { return w <= 3 }, func(w int) int { return 5 + w }},
	{func(w int) bool { return w <= 10 }, func(w int) int { return 8 + int(math.Floor(float64(w)*1.5)) }},
	{func(w int) bool { return w <= 20 }, func(w int) int { return 15 + w*2 }},
	{always, func(w int) int { return 20 + int(math.Floor(float64(w)*2.5)) }},
}

// GetNextWave advances the wave counter and returns the configuration for the
// new wave. The first call yields wave 1.
func (e *Engine) GetNextWave() WaveConfig {
	e.state.WaveNumber++
	w := e.state.WaveNumber

	return WaveConfig{
		WaveNumber:      w,
		EnemyCount:      enemyCount(w),
		EnemySpeed:      plateauSpeed(w) * (jitterLow + e.rng.Float64()*(jitterHigh-jitterLow)),
		SpawnRate:       spawnRate(w),
		PowerUpChance:   firstMatch(powerUpChanceRules, w),
		BonusMultiplier: firstMatch(bonusMultiplierRules, w),
		SpecialEvent:    firstMatch(specialEventRules, w),
	}
}

// enemyCount applies the tiered count and the hard cap.
// The cap binds every tier, so the count never drops between waves.
func enemyCount(w int) int {
	return min(MaxEnemies, firstMatch(enemyCountRules, w))
}

// plateauSpeed returns the speed of the highest threshold reached by w.
func plateauSpeed(w int) float64 {
	speed := BaseSpeed
	for _, p := range speedPlateaus {
		if w < p.wave {
			break
		}
		speed = p.speed
	}
	return speed
}

func spawnRate(w int) float64 {
	return math.Max(MinSpawnRate, baseSpawnRate/(1+float64(w)*spawnRateDecay))
}
