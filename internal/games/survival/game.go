// Package survival implements the arcade survival mini-game.
// The player holds out against escalating waves whose size, speed and rewards
// come from the difficulty engine; this package owns entities, movement,
// collisions and rendering.
package survival

import (
	"fmt"
	"math"

	"github.com/vovakirdan/stunt-arcade/internal/config"
	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/engine"
)

// Game identity used by storage and the CLI.
const (
	GameID    = "survival"
	GameTitle = "Stunt Survival"
)

const (
	hudHeight       = 1
	minArenaW       = 20
	minArenaH       = 10
	hitRadius       = 1.0
	bossSpeedFactor = 0.6
	gameSeedSalt    = 0x5DEECE66D
)

// Game implements the survival game logic.
type Game struct {
	cfg     config.SurvivalConfig
	runtime core.RuntimeConfig
	eng     *engine.Engine
	engRNG  *engine.RNG // Source handed to the engine
	rng     *engine.RNG // Spawn positions and power-up gating

	tick   int
	now    int64 // Simulated milliseconds since Reset
	tickMs int64
	arena  core.Rect

	player      core.Vec2
	facing      core.Vec2
	lives       int
	invulnUntil int64
	lastShot    int64

	enemies []*enemy
	bullets []*bullet
	pickups []*pickup
	effects map[engine.PowerUpType]int64 // Active effect -> expiry

	wave              engine.WaveConfig
	waveActive        bool
	total             int // Enemies in the current wave, boss included
	spawned           int
	killed            int
	spawnInterval     int64
	nextSpawnAt       int64
	intermissionUntil int64

	score    int
	maxCombo int
	banner   banner
	banners  []string // Raised during the current tick
	gameOver bool
	paused   bool
}

type banner struct {
	text  string
	color core.Color
	until int64
}

// New creates a survival game with the given arena configuration.
func New(cfg config.SurvivalConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset initializes or restarts the game.
// The engine instance is kept across restarts and returned to its zero state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickMs = runtime.TickMillis()

	if g.eng == nil {
		g.engRNG = engine.NewSeededSource(runtime.Seed)
		g.rng = engine.NewRNG(runtime.Seed ^ gameSeedSalt)
		g.eng = engine.New(g.engRNG)
	} else {
		g.engRNG.Seed(runtime.Seed)
		g.rng.Seed(runtime.Seed ^ gameSeedSalt)
	}
	g.eng.Reset()

	g.arena = core.NewRect(0, hudHeight,
		max(runtime.ScreenW, minArenaW),
		max(runtime.ScreenH-hudHeight, minArenaH))

	g.tick = 0
	g.now = 0
	g.player = core.Vec2{
		X: float64(g.arena.X + g.arena.W/2),
		Y: float64(g.arena.Y + g.arena.H/2),
	}
	g.facing = core.Vec2{X: 0, Y: -1}
	g.lives = max(g.cfg.Player.Lives, 1)
	g.invulnUntil = 0
	g.lastShot = math.MinInt64 / 2

	g.enemies = g.enemies[:0]
	g.bullets = g.bullets[:0]
	g.pickups = g.pickups[:0]
	g.effects = make(map[engine.PowerUpType]int64)

	g.wave = engine.WaveConfig{}
	g.waveActive = false
	g.total, g.spawned, g.killed = 0, 0, 0
	g.intermissionUntil = int64(g.cfg.Pacing.IntermissionMs)

	g.score = 0
	g.maxCombo = 0
	g.banner = banner{}
	g.banners = g.banners[:0]
	g.gameOver = false
	g.paused = false

	g.raise("GET READY", core.ColorBrightWhite)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.now += g.tickMs
	g.banners = g.banners[:0]

	if !g.waveActive && g.now >= g.intermissionUntil {
		g.startWave()
	}

	g.movePlayer(in)
	if in.Has(core.ActionFire) {
		g.fire()
	}

	g.spawnEnemies()
	g.updateBullets()
	g.updateEnemies()
	g.updatePickups()
	g.expireEffects()

	if g.waveActive && !g.gameOver {
		if ev, ok := g.eng.GetTensionEvent(g.score); ok {
			g.raise(ev.Message, tensionColor(ev.Type))
		}
		if g.spawned == g.total && g.aliveEnemies() == 0 {
			g.completeWave()
		}
	}

	return core.StepResult{
		State:   g.State(),
		Banners: append([]string(nil), g.banners...),
	}
}

// startWave pulls the next wave from the engine and arms the spawner.
func (g *Game) startWave() {
	g.wave = g.eng.GetNextWave()

	g.total = g.wave.EnemyCount
	if g.wave.SpecialEvent == engine.EventBoss {
		g.total++
	}
	g.spawned = 0
	g.killed = 0

	rate := g.wave.SpawnRate
	if g.wave.SpecialEvent == engine.EventSwarm {
		rate *= g.cfg.Enemies.SwarmSpawnFactor
	}
	g.spawnInterval = max(int64(rate), 1)
	g.nextSpawnAt = g.now
	g.waveActive = true

	g.raise(waveTitle(g.wave), eventColor(g.wave.SpecialEvent))
}

// completeWave scores the finished wave and starts the intermission.
func (g *Game) completeWave() {
	res := g.eng.GetWaveCompleteBonus(g.killed, g.total)
	g.score += res.Bonus

	if res.Perfect {
		g.raise(fmt.Sprintf("PERFECT WAVE! +%d", res.Bonus), core.ColorGold)
	} else {
		g.raise(fmt.Sprintf("WAVE %d CLEAR +%d", g.wave.WaveNumber, res.Bonus), core.ColorBrightGreen)
	}

	g.waveActive = false
	g.intermissionUntil = g.now + int64(g.cfg.Pacing.IntermissionMs)
}

// raise shows a banner and reports it in this tick's StepResult.
func (g *Game) raise(text string, color core.Color) {
	g.banner = banner{text: text, color: color, until: g.now + int64(g.cfg.Pacing.BannerMs)}
	g.banners = append(g.banners, text)
}

func waveTitle(w engine.WaveConfig) string {
	if w.SpecialEvent == engine.EventNone {
		return fmt.Sprintf("WAVE %d", w.WaveNumber)
	}
	return fmt.Sprintf("WAVE %d - %s", w.WaveNumber, eventLabel(w.SpecialEvent))
}

func eventLabel(ev engine.SpecialEvent) string {
	switch ev {
	case engine.EventBoss:
		return "BOSS"
	case engine.EventBonus:
		return "BONUS"
	case engine.EventSwarm:
		return "SWARM"
	case engine.EventSpeed:
		return "SPEED"
	default:
		return ""
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Wave:     g.wave.WaveNumber,
		MaxCombo: g.maxCombo,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Wave returns the configuration of the current (or last) wave.
func (g *Game) Wave() engine.WaveConfig {
	return g.wave
}
