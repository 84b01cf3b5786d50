package survival

import (
	"math"

	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/engine"
)

type enemy struct {
	pos   core.Vec2
	hp    int
	boss  bool
	alive bool
}

type bullet struct {
	pos   core.Vec2
	vel   core.Vec2
	alive bool
}

type pickup struct {
	pos       core.Vec2
	powerUp   engine.PowerUp
	expiresAt int64
	alive     bool
}

// movePlayer applies directional input and keeps the ship inside the arena.
func (g *Game) movePlayer(in core.InputFrame) {
	dx, dy := in.Direction()
	if dx == 0 && dy == 0 {
		return
	}

	dir := core.Vec2{X: float64(dx), Y: float64(dy)}.Norm()
	g.facing = dir
	g.player = g.clampToArena(g.player.Add(dir.Scale(g.cfg.Player.Speed)))
}

func (g *Game) clampToArena(p core.Vec2) core.Vec2 {
	return core.Vec2{
		X: core.ClampF(p.X, float64(g.arena.X), float64(g.arena.Right()-1)),
		Y: core.ClampF(p.Y, float64(g.arena.Y), float64(g.arena.Bottom()-1)),
	}
}

func (g *Game) inArena(p core.Vec2) bool {
	x, y := p.Cell()
	return g.arena.Contains(x, y)
}

// spawnEnemies releases enemies on the wave cadence. The boss, if any, comes last.
func (g *Game) spawnEnemies() {
	for g.waveActive && g.spawned < g.total && g.now >= g.nextSpawnAt {
		boss := g.wave.SpecialEvent == engine.EventBoss && g.spawned == g.total-1
		hp := 1
		if boss {
			hp = max(g.cfg.Enemies.BossHP, 1)
		}

		g.enemies = append(g.enemies, &enemy{
			pos:   g.edgePosition(),
			hp:    hp,
			boss:  boss,
			alive: true,
		})
		g.spawned++
		g.nextSpawnAt += g.spawnInterval
	}
}

// edgePosition picks a random point on the arena border.
func (g *Game) edgePosition() core.Vec2 {
	x0, y0 := float64(g.arena.X), float64(g.arena.Y)
	x1, y1 := float64(g.arena.Right()-1), float64(g.arena.Bottom()-1)

	switch g.rng.Intn(4) {
	case 0:
		return core.Vec2{X: g.rng.Range(x0, x1), Y: y0}
	case 1:
		return core.Vec2{X: g.rng.Range(x0, x1), Y: y1}
	case 2:
		return core.Vec2{X: x0, Y: g.rng.Range(y0, y1)}
	default:
		return core.Vec2{X: x1, Y: g.rng.Range(y0, y1)}
	}
}

// enemySpeed returns the chase speed in cells per tick for regular enemies.
func (g *Game) enemySpeed() float64 {
	s := g.cfg.Enemies.BaseSpeed * g.wave.EnemySpeed
	if g.wave.SpecialEvent == engine.EventSpeed {
		s *= g.cfg.Enemies.SpeedEventFactor
	}
	if g.hasEffect(engine.PowerUpSlowTime) {
		s *= g.cfg.PowerUps.SlowTimeFactor
	}
	return s
}

// updateEnemies moves enemies toward the player and resolves contact.
func (g *Game) updateEnemies() {
	speed := g.enemySpeed()

	for _, e := range g.enemies {
		if !e.alive {
			continue
		}

		s := speed
		if e.boss {
			s *= bossSpeedFactor
		}
		toPlayer := g.player.Sub(e.pos)
		if toPlayer.Len() > s {
			e.pos = e.pos.Add(toPlayer.Norm().Scale(s))
		} else {
			e.pos = g.player
		}

		if g.player.Sub(e.pos).Len() < hitRadius {
			g.contact(e)
		}
	}

	alive := g.enemies[:0]
	for _, e := range g.enemies {
		if e.alive {
			alive = append(alive, e)
		}
	}
	g.enemies = alive
}

// updateBullets advances bullets in sub-steps of at most one cell so fast
// bullets cannot skip over an enemy.
func (g *Game) updateBullets() {
	for _, b := range g.bullets {
		steps := max(int(math.Ceil(b.vel.Len())), 1)
		step := b.vel.Scale(1 / float64(steps))

		for i := 0; i < steps && b.alive; i++ {
			b.pos = b.pos.Add(step)
			if !g.inArena(b.pos) {
				b.alive = false
				break
			}
			for _, e := range g.enemies {
				if e.alive && e.pos.Sub(b.pos).Len() < hitRadius {
					b.alive = false
					g.damage(e, 1)
					break
				}
			}
		}
	}

	active := g.bullets[:0]
	for _, b := range g.bullets {
		if b.alive {
			active = append(active, b)
		}
	}
	g.bullets = active
}

// updatePickups expires, attracts and collects power-ups.
func (g *Game) updatePickups() {
	magnet := g.hasEffect(engine.PowerUpMagnet)

	for _, p := range g.pickups {
		if !p.alive {
			continue
		}
		if g.now >= p.expiresAt {
			p.alive = false
			continue
		}

		toPlayer := g.player.Sub(p.pos)
		if magnet && toPlayer.Len() < g.cfg.Player.MagnetRadius {
			pull := math.Min(g.cfg.Player.MagnetPullSpeed, toPlayer.Len())
			p.pos = p.pos.Add(toPlayer.Norm().Scale(pull))
			toPlayer = g.player.Sub(p.pos)
		}

		if toPlayer.Len() <= g.cfg.Player.PickupRadius {
			p.alive = false
			g.collect(p.powerUp)
		}
	}

	active := g.pickups[:0]
	for _, p := range g.pickups {
		if p.alive {
			active = append(active, p)
		}
	}
	g.pickups = active
}

func (g *Game) aliveEnemies() int {
	n := 0
	for _, e := range g.enemies {
		if e.alive {
			n++
		}
	}
	return n
}
