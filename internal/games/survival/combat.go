package survival

import (
	"math"
	"strings"

	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/engine"
)

// fire shoots along the facing direction, honoring cooldown and weapon buffs.
func (g *Game) fire() {
	cooldown := int64(g.cfg.Weapon.CooldownMs)
	if g.hasEffect(engine.PowerUpRapidFire) {
		cooldown /= 2
	}
	if g.now-g.lastShot < cooldown {
		return
	}
	g.lastShot = g.now

	angles := []float64{0}
	if g.hasEffect(engine.PowerUpMultiShot) {
		s := g.cfg.Weapon.SpreadAngle
		angles = []float64{-s, 0, s}
	}

	for _, a := range angles {
		dir := rotate(g.facing, a)
		g.bullets = append(g.bullets, &bullet{
			pos:   g.player,
			vel:   dir.Scale(g.cfg.Weapon.BulletSpeed),
			alive: true,
		})
	}
}

func rotate(v core.Vec2, angle float64) core.Vec2 {
	sin, cos := math.Sincos(angle)
	return core.Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// contact resolves an enemy reaching the player.
func (g *Game) contact(e *enemy) {
	switch {
	case g.hasEffect(engine.PowerUpShield):
		// Ramming with a shield up counts as a kill
		g.damage(e, e.hp)
	case g.now < g.invulnUntil:
		return
	default:
		g.lives--
		g.invulnUntil = g.now + int64(g.cfg.Player.InvulnerableMs)
		if !e.boss {
			e.alive = false // Crashed into the player, not a kill
		}
		if g.lives <= 0 {
			g.lives = 0
			g.gameOver = true
			g.raise("GAME OVER", core.ColorBrightRed)
		}
	}
}

func (g *Game) damage(e *enemy, n int) {
	if !e.alive {
		return
	}
	e.hp -= n
	if e.hp <= 0 {
		g.kill(e)
	}
}

// kill registers the kill with the engine, scores it and may drop a power-up.
func (g *Game) kill(e *enemy) {
	e.alive = false
	g.killed++

	res := g.eng.RegisterKill(g.now)
	g.maxCombo = max(g.maxCombo, res.Combo)
	g.score += g.killPoints(res.Bonus)
	if res.Milestone() {
		g.raise(res.Message, core.ColorBrightYellow)
	}

	// Spawn gating is ours; the engine only picks which power-up
	if g.rng.Float64() < g.wave.PowerUpChance {
		g.pickups = append(g.pickups, &pickup{
			pos:       e.pos,
			powerUp:   g.eng.GetRandomPowerUp(),
			expiresAt: g.now + int64(g.cfg.PowerUps.LifetimeMs),
			alive:     true,
		})
	}
}

func (g *Game) killPoints(comboBonus int) int {
	pts := float64(g.cfg.Enemies.KillPoints+comboBonus) * g.wave.BonusMultiplier
	if g.wave.SpecialEvent == engine.EventBonus {
		pts *= 2
	}
	if g.hasEffect(engine.PowerUpDoublePoints) {
		pts *= 2
	}
	return int(math.Floor(pts))
}

// collect applies a power-up. Instant ones fire now, the rest become effects.
func (g *Game) collect(p engine.PowerUp) {
	switch {
	case p.Type == engine.PowerUpNuke:
		g.nuke()
	case !p.Instant():
		g.effects[p.Type] = g.now + int64(p.Duration)
	}
	g.raise(strings.ToUpper(p.Effect), core.ColorFromHex(p.Color))
}

// nuke destroys every live enemy, boss included.
func (g *Game) nuke() {
	for _, e := range g.enemies {
		g.damage(e, e.hp)
	}
}

func (g *Game) hasEffect(t engine.PowerUpType) bool {
	until, ok := g.effects[t]
	return ok && g.now < until
}

func (g *Game) expireEffects() {
	for t, until := range g.effects {
		if g.now >= until {
			delete(g.effects, t)
		}
	}
}

// EffectRemaining returns the milliseconds left on an effect, or 0.
func (g *Game) EffectRemaining(t engine.PowerUpType) int64 {
	if !g.hasEffect(t) {
		return 0
	}
	return g.effects[t] - g.now
}
