package survival

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/stunt-arcade/internal/core"
	"github.com/vovakirdan/stunt-arcade/internal/engine"
)

// Visual elements
const (
	EnemyChar  = 'x'
	BossChar   = 'B'
	BulletChar = '•'
	ShieldChar = '◈'
	LifeChar   = '♥'
)

var pickupGlyphs = map[engine.PowerUpType]rune{
	engine.PowerUpShield:       'S',
	engine.PowerUpRapidFire:    'R',
	engine.PowerUpMultiShot:    'M',
	engine.PowerUpSlowTime:     'T',
	engine.PowerUpNuke:         'N',
	engine.PowerUpMagnet:       'G',
	engine.PowerUpDoublePoints: 'D',
}

// effectOrder fixes the HUD order of active effects.
var effectOrder = []engine.PowerUpType{
	engine.PowerUpShield,
	engine.PowerUpRapidFire,
	engine.PowerUpMultiShot,
	engine.PowerUpSlowTime,
	engine.PowerUpMagnet,
	engine.PowerUpDoublePoints,
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)
	g.renderPickups(dst)
	g.renderEnemies(dst)
	g.renderBullets(dst)
	g.renderPlayer(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, wave, lives, combo and active effects on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	waveText := fmt.Sprintf("Wave: %d", g.wave.WaveNumber)
	if g.waveActive {
		waveText += fmt.Sprintf(" [%d/%d]", g.killed, g.total)
	}
	dst.DrawTextColored(16, 0, waveText, eventColor(g.wave.SpecialEvent))

	lives := strings.Repeat(string(LifeChar), g.lives)
	dst.DrawTextColored(dst.Width()/2-len([]rune(lives))/2, 0, lives, core.ColorBrightRed)

	right := g.effectsString()
	if combo := g.eng.State().ComboCount; combo > 1 {
		right = fmt.Sprintf("x%d %s", combo, right)
	}
	right = strings.TrimSpace(right)
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorBrightYellow)
}

// effectsString lists active effects with whole seconds remaining.
func (g *Game) effectsString() string {
	var parts []string
	for _, t := range effectOrder {
		if ms := g.EffectRemaining(t); ms > 0 {
			parts = append(parts, fmt.Sprintf("%c%d", pickupGlyphs[t], (ms+999)/1000))
		}
	}
	return strings.Join(parts, " ")
}

func (g *Game) renderPickups(dst *core.Screen) {
	for _, p := range g.pickups {
		x, y := p.pos.Cell()
		// Blink during the last two seconds
		if p.expiresAt-g.now < 2000 && (g.tick/8)%2 == 1 {
			continue
		}
		dst.SetColored(x, y, pickupGlyphs[p.powerUp.Type], core.ColorFromHex(p.powerUp.Color))
	}
}

func (g *Game) renderEnemies(dst *core.Screen) {
	for _, e := range g.enemies {
		x, y := e.pos.Cell()
		if e.boss {
			dst.SetColored(x, y, BossChar, core.ColorBrightMagenta)
			continue
		}
		dst.SetColored(x, y, EnemyChar, core.ColorRed)
	}
}

func (g *Game) renderBullets(dst *core.Screen) {
	for _, b := range g.bullets {
		x, y := b.pos.Cell()
		dst.SetColored(x, y, BulletChar, core.ColorBrightWhite)
	}
}

func (g *Game) renderPlayer(dst *core.Screen) {
	if g.now < g.invulnUntil && (g.tick/4)%2 == 1 {
		return
	}

	x, y := g.player.Cell()
	if g.hasEffect(engine.PowerUpShield) {
		dst.SetColored(x, y, ShieldChar, core.ColorBrightCyan)
		return
	}
	dst.SetColored(x, y, shipGlyph(g.facing), core.ColorBrightGreen)
}

func shipGlyph(facing core.Vec2) rune {
	switch {
	case facing.X > 0.5:
		return '►'
	case facing.X < -0.5:
		return '◄'
	case facing.Y > 0:
		return '▼'
	default:
		return '▲'
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	if g.now < g.banner.until && g.banner.text != "" {
		dst.DrawTextCentered(g.arena.Y+1, g.banner.text, g.banner.color)
	}

	if !g.waveActive && !g.gameOver {
		secs := (g.intermissionUntil - g.now + 999) / 1000
		if secs > 0 {
			dst.DrawTextCentered(g.arena.Bottom()-2, fmt.Sprintf("Next wave in %d", secs), core.ColorGray)
		}
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		subtitle := fmt.Sprintf("Score: %d  Wave: %d  |  Press R to restart", g.score, g.wave.WaveNumber)
		g.drawCenteredMessage(dst, "GAME OVER", subtitle)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	// Pin to the left edge when the box is wider than the screen
	boxX := core.Clamp((dst.Width()-boxW)/2, 0, max(dst.Width()-boxW, 0))
	boxY := core.Clamp((dst.Height()-boxH)/2, 0, max(dst.Height()-boxH, 0))

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

func eventColor(ev engine.SpecialEvent) core.Color {
	switch ev {
	case engine.EventBoss:
		return core.ColorBrightMagenta
	case engine.EventBonus:
		return core.ColorGold
	case engine.EventSwarm:
		return core.ColorOrange
	case engine.EventSpeed:
		return core.ColorBrightCyan
	default:
		return core.ColorBrightWhite
	}
}

func tensionColor(t engine.TensionType) core.Color {
	switch t {
	case engine.TensionCritical:
		return core.ColorBrightRed
	case engine.TensionDanger:
		return core.ColorRed
	case engine.TensionAlert:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}
