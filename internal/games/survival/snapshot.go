package survival

import (
	"math"
	"sort"

	"github.com/vovakirdan/stunt-arcade/internal/engine"
)

// Snapshot contains the complete observable game state for replay and
// determinism checks. Positions are stored as fixed-point (x1000) ints.
type Snapshot struct {
	Tick     int
	Now      int64
	Score    int
	Lives    int
	MaxCombo int
	Combo    int
	GameOver bool

	Wave       int
	WaveActive bool
	Spawned    int
	Killed     int

	PlayerX, PlayerY int

	// Each enemy is 4 ints: X, Y, HP, Boss
	EnemyData []int
	// Each bullet is 2 ints: X, Y
	BulletData []int
	// Each pickup is 3 ints: X, Y, Type index
	PickupData []int
	// Each effect is 2 ints: Type index, remaining ms (sorted by type)
	EffectData []int
}

func fixed(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(g.enemies)*4)
	for _, e := range g.enemies {
		boss := 0
		if e.boss {
			boss = 1
		}
		enemyData = append(enemyData, fixed(e.pos.X), fixed(e.pos.Y), e.hp, boss)
	}

	bulletData := make([]int, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bulletData = append(bulletData, fixed(b.pos.X), fixed(b.pos.Y))
	}

	pickupData := make([]int, 0, len(g.pickups)*3)
	for _, p := range g.pickups {
		pickupData = append(pickupData, fixed(p.pos.X), fixed(p.pos.Y), int(p.powerUp.Type))
	}

	// Map iteration order is random; sort for a stable hash
	types := make([]int, 0, len(g.effects))
	for t := range g.effects {
		types = append(types, int(t))
	}
	sort.Ints(types)
	effectData := make([]int, 0, len(types)*2)
	for _, t := range types {
		until := g.effects[engine.PowerUpType(t)]
		effectData = append(effectData, t, int(until-g.now))
	}

	return Snapshot{
		Tick:       g.tick,
		Now:        g.now,
		Score:      g.score,
		Lives:      g.lives,
		MaxCombo:   g.maxCombo,
		Combo:      g.eng.State().ComboCount,
		GameOver:   g.gameOver,
		Wave:       g.wave.WaveNumber,
		WaveActive: g.waveActive,
		Spawned:    g.spawned,
		Killed:     g.killed,
		PlayerX:    fixed(g.player.X),
		PlayerY:    fixed(g.player.Y),
		EnemyData:  enemyData,
		BulletData: bulletData,
		PickupData: pickupData,
		EffectData: effectData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Now)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MaxCombo) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Spawned)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Killed)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerX)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerY)  //#nosec G115 -- hash computation
	if snap.GameOver {
		h = h*31 + 1
	}
	if snap.WaveActive {
		h = h*31 + 2
	}

	for _, data := range [][]int{snap.EnemyData, snap.BulletData, snap.PickupData, snap.EffectData} {
		h = h*31 + uint64(len(data)) //#nosec G115 -- hash computation
		for _, v := range data {
			h = h*31 + uint64(v) //#nosec G115 -- hash computation
		}
	}

	return h
}
