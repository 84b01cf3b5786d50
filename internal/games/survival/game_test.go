package survival

import (
	"strings"
	"testing"

	"github.com/vovakirdan/stunt-arcade/internal/config"
	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/engine"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.DefaultSurvivalConfig())
	g.Reset(testRuntime())
	return g
}

func inputSequence(n int) []core.InputFrame {
	frames := make([]core.InputFrame, n)
	for i := range frames {
		frames[i] = core.NewInputFrame()
		frames[i].Set(core.ActionFire)
		switch (i / 40) % 4 {
		case 0:
			frames[i].Set(core.ActionLeft)
		case 1:
			frames[i].Set(core.ActionUp)
		case 2:
			frames[i].Set(core.ActionRight)
		}
	}
	return frames
}

func TestGameDeterminism(t *testing.T) {
	frames := inputSequence(900)

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range frames {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.Wave == 0 {
		t.Error("expected at least one wave to start in 900 ticks")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	fresh := g.Snapshot()

	for _, in := range inputSequence(400) {
		g.Step(in)
	}
	if s := g.Snapshot(); s.Hash() == fresh.Hash() {
		t.Fatal("expected state to change after 400 ticks")
	}

	g.Reset(testRuntime())
	snap := g.Snapshot()
	if snap.Hash() != fresh.Hash() {
		t.Errorf("Reset() hash = %d, want %d", snap.Hash(), fresh.Hash())
	}
	if got := g.eng.State(); got != (engine.State{}) {
		t.Errorf("engine state after Reset() = %+v, want zero", got)
	}
	if g.Lives() != 3 {
		t.Errorf("Lives() = %d, want 3", g.Lives())
	}
}

func TestFirstWaveStartsAfterIntermission(t *testing.T) {
	g := newTestGame(t)
	ticks := int(int64(g.cfg.Pacing.IntermissionMs) / g.tickMs)

	for range ticks - 1 {
		res := g.Step(core.NewInputFrame())
		if res.State.Wave != 0 {
			t.Fatalf("wave started early at now=%d", g.now)
		}
	}

	res := g.Step(core.NewInputFrame())
	if res.State.Wave != 1 {
		t.Fatalf("Wave = %d, want 1 at now=%d", res.State.Wave, g.now)
	}
	if len(res.Banners) == 0 || res.Banners[0] != "WAVE 1" {
		t.Errorf("Banners = %v, want [WAVE 1 ...]", res.Banners)
	}
	if g.spawned != 1 {
		t.Errorf("spawned = %d, want 1 on the first wave tick", g.spawned)
	}
	if g.total != g.Wave().EnemyCount {
		t.Errorf("total = %d, want %d", g.total, g.Wave().EnemyCount)
	}
}

func TestKillScoringAndCombo(t *testing.T) {
	g := newTestGame(t)
	g.startWave()

	// Wave 1 multiplier is 1.02; combo bonus is 10 per streak step, doubled at x3
	tests := []struct {
		now       int64
		wantCombo int
		wantScore int
	}{
		{2000, 1, 20},
		{2500, 2, 50},
		{3000, 3, 121},
		{6000, 1, 141},
	}

	for _, tt := range tests {
		g.now = tt.now
		g.kill(&enemy{hp: 1, alive: true})
		if got := g.eng.State().ComboCount; got != tt.wantCombo {
			t.Errorf("at %dms combo = %d, want %d", tt.now, got, tt.wantCombo)
		}
		if g.score != tt.wantScore {
			t.Errorf("at %dms score = %d, want %d", tt.now, g.score, tt.wantScore)
		}
	}

	if g.maxCombo != 3 {
		t.Errorf("maxCombo = %d, want 3", g.maxCombo)
	}
	if g.killed != 4 {
		t.Errorf("killed = %d, want 4", g.killed)
	}
}

func TestDoublePointsAndBonusWave(t *testing.T) {
	g := newTestGame(t)
	g.wave = engine.WaveConfig{WaveNumber: 10, BonusMultiplier: 3.0, SpecialEvent: engine.EventBonus}

	// 10 base + 10 combo bonus, x3 wave, x2 bonus event
	if got := g.killPoints(10); got != 120 {
		t.Errorf("killPoints on bonus wave = %d, want 120", got)
	}

	g.effects[engine.PowerUpDoublePoints] = g.now + 1000
	if got := g.killPoints(10); got != 240 {
		t.Errorf("killPoints with double points = %d, want 240", got)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("expected game to be paused")
	}
	tick := g.tick

	g.Step(core.NewInputFrame())
	if g.tick != tick {
		t.Errorf("tick advanced while paused: %d -> %d", tick, g.tick)
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("expected game to resume")
	}
	if g.tick != tick+1 {
		t.Errorf("tick = %d, want %d after resume", g.tick, tick+1)
	}
}

func TestGameOverWhenLivesRunOut(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1
	g.enemies = append(g.enemies, &enemy{pos: g.player, hp: 1, alive: true})

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("expected game over after losing the last life")
	}
	if g.Lives() != 0 {
		t.Errorf("Lives() = %d, want 0", g.Lives())
	}
	if g.killed != 0 {
		t.Errorf("crash counted as kill: killed = %d", g.killed)
	}

	tick := g.tick
	g.Step(core.NewInputFrame())
	if g.tick != tick {
		t.Error("game advanced after game over")
	}
}

func TestInvulnerabilityAfterHit(t *testing.T) {
	g := newTestGame(t)
	g.enemies = append(g.enemies, &enemy{pos: g.player, hp: 1, alive: true})
	g.Step(core.NewInputFrame())

	if g.Lives() != 2 {
		t.Fatalf("Lives() = %d, want 2", g.Lives())
	}

	g.enemies = append(g.enemies, &enemy{pos: g.player, hp: 1, alive: true})
	g.Step(core.NewInputFrame())
	if g.Lives() != 2 {
		t.Errorf("lost a life while invulnerable: Lives() = %d", g.Lives())
	}
}

func TestShieldKillsOnContact(t *testing.T) {
	g := newTestGame(t)
	g.effects[engine.PowerUpShield] = 5000
	g.enemies = append(g.enemies, &enemy{pos: g.player, hp: 1, alive: true})

	g.Step(core.NewInputFrame())

	if g.Lives() != 3 {
		t.Errorf("Lives() = %d, want 3 with shield", g.Lives())
	}
	if g.killed != 1 {
		t.Errorf("killed = %d, want 1", g.killed)
	}
	if len(g.enemies) != 0 {
		t.Errorf("enemies = %d, want 0", len(g.enemies))
	}
}

func TestNukeClearsEnemies(t *testing.T) {
	g := newTestGame(t)
	g.startWave()
	g.enemies = append(g.enemies,
		&enemy{pos: core.Vec2{X: 5, Y: 5}, hp: 1, alive: true},
		&enemy{pos: core.Vec2{X: 6, Y: 5}, hp: 1, alive: true},
		&enemy{pos: core.Vec2{X: 7, Y: 5}, hp: 10, boss: true, alive: true},
	)

	var nuke engine.PowerUp
	for _, p := range engine.Catalog() {
		if p.Type == engine.PowerUpNuke {
			nuke = p
		}
	}
	g.collect(nuke)

	if n := g.aliveEnemies(); n != 0 {
		t.Errorf("aliveEnemies() = %d, want 0", n)
	}
	if g.killed != 3 {
		t.Errorf("killed = %d, want 3", g.killed)
	}
	if len(g.effects) != 0 {
		t.Errorf("nuke left an effect: %v", g.effects)
	}
	if g.banner.text != "CLEAR SCREEN" {
		t.Errorf("banner = %q, want CLEAR SCREEN", g.banner.text)
	}
}

func TestPickupCollectedAndExpires(t *testing.T) {
	g := newTestGame(t)
	rapid := engine.PowerUp{Type: engine.PowerUpRapidFire, Duration: 100, Color: "#ff6600", Effect: "2x Fire Rate"}
	g.pickups = append(g.pickups, &pickup{pos: g.player, powerUp: rapid, expiresAt: 10_000, alive: true})

	g.Step(core.NewInputFrame())
	if len(g.pickups) != 0 {
		t.Fatalf("pickup not collected")
	}
	if !g.hasEffect(engine.PowerUpRapidFire) {
		t.Fatal("expected rapid fire to be active")
	}

	for range 10 {
		g.Step(core.NewInputFrame())
	}
	if g.hasEffect(engine.PowerUpRapidFire) || len(g.effects) != 0 {
		t.Errorf("rapid fire did not expire: %v", g.effects)
	}
}

func TestUncollectedPickupExpires(t *testing.T) {
	g := newTestGame(t)
	far := core.Vec2{X: 1, Y: 2}
	g.pickups = append(g.pickups, &pickup{
		pos:       far,
		powerUp:   engine.Catalog()[0],
		expiresAt: 50,
		alive:     true,
	})

	for range 4 {
		g.Step(core.NewInputFrame())
	}
	if len(g.pickups) != 0 {
		t.Errorf("pickups = %d, want 0 after expiry", len(g.pickups))
	}
}

func TestFireCooldownAndMultiShot(t *testing.T) {
	g := newTestGame(t)
	g.now = 1000

	g.fire()
	g.fire()
	if len(g.bullets) != 1 {
		t.Fatalf("bullets = %d, want 1 during cooldown", len(g.bullets))
	}

	g.effects[engine.PowerUpMultiShot] = 10_000
	g.now += int64(g.cfg.Weapon.CooldownMs)
	g.fire()
	if len(g.bullets) != 4 {
		t.Errorf("bullets = %d, want 4 after a triple shot", len(g.bullets))
	}

	g.effects[engine.PowerUpRapidFire] = 10_000
	g.now += int64(g.cfg.Weapon.CooldownMs / 2)
	g.fire()
	if len(g.bullets) != 7 {
		t.Errorf("bullets = %d, want 7 with rapid fire", len(g.bullets))
	}
}

func TestBulletKillsEnemy(t *testing.T) {
	g := newTestGame(t)
	g.startWave()
	g.spawned = g.total // Keep the spawner quiet
	target := &enemy{pos: g.player.Add(core.Vec2{X: 0, Y: -3}), hp: 1, alive: true}
	g.enemies = append(g.enemies, target)

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	g.Step(fire)
	g.Step(core.NewInputFrame())

	if target.alive {
		t.Fatal("expected bullet to kill the enemy")
	}
	if g.score == 0 {
		t.Error("expected score after kill")
	}
}

func TestWaveCompleteBonus(t *testing.T) {
	// Wave 1 has 6 enemies
	tests := []struct {
		name       string
		killed     int
		wantBonus  int
		wantBanner string
	}{
		{"perfect", 6, 1000, "PERFECT WAVE! +1000"},
		{"half", 3, 250, "WAVE 1 CLEAR +250"},
		{"none", 0, 0, "WAVE 1 CLEAR +0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			g.startWave()
			if g.total != 6 {
				t.Fatalf("wave 1 total = %d, want 6", g.total)
			}
			g.spawned = g.total
			g.killed = tt.killed

			g.completeWave()

			if g.score != tt.wantBonus {
				t.Errorf("score = %d, want %d", g.score, tt.wantBonus)
			}
			if g.banner.text != tt.wantBanner {
				t.Errorf("banner = %q, want %q", g.banner.text, tt.wantBanner)
			}
			if g.waveActive {
				t.Error("wave still active after completion")
			}
			if g.intermissionUntil != g.now+int64(g.cfg.Pacing.IntermissionMs) {
				t.Errorf("intermissionUntil = %d", g.intermissionUntil)
			}
		})
	}
}

func TestBossWaveSpawnsBossLast(t *testing.T) {
	g := newTestGame(t)
	g.eng = engine.New(engine.NewSeededSource(1))
	for range 24 {
		g.eng.GetNextWave()
	}
	g.startWave()

	if g.wave.SpecialEvent != engine.EventBoss {
		t.Fatalf("wave 25 event = %v, want boss", g.wave.SpecialEvent)
	}
	if g.total != g.wave.EnemyCount+1 {
		t.Errorf("total = %d, want %d", g.total, g.wave.EnemyCount+1)
	}

	g.now += int64(g.total) * g.spawnInterval
	g.spawnEnemies()

	bosses := 0
	for i, e := range g.enemies {
		if e.boss {
			bosses++
			if i != len(g.enemies)-1 {
				t.Errorf("boss spawned at index %d, want last", i)
			}
			if e.hp != g.cfg.Enemies.BossHP {
				t.Errorf("boss hp = %d, want %d", e.hp, g.cfg.Enemies.BossHP)
			}
		}
	}
	if bosses != 1 {
		t.Errorf("bosses = %d, want 1", bosses)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.Contains(scr.String(), "GET READY") {
		t.Error("expected GET READY banner")
	}

	g.gameOver = true
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("expected GAME OVER box")
	}
}

func TestMessageBoxFitsNarrowScreen(t *testing.T) {
	g := newTestGame(t)
	g.gameOver = true

	scr := core.NewScreen(30, 24)
	g.Render(scr)

	boxY := (24 - 5) / 2
	if got := scr.GetCell(0, boxY).Rune; got != '┌' {
		t.Errorf("box corner = %q, want it pinned to column 0", got)
	}
	if !strings.Contains(scr.Row(boxY+1), "GAME OVER") {
		t.Errorf("title row = %q", scr.Row(boxY+1))
	}
}
