package engine

import "fmt"

// PowerUpType identifies a catalog entry.
type PowerUpType int

const (
	PowerUpShield PowerUpType = iota
	PowerUpRapidFire
	PowerUpMultiShot
	PowerUpSlowTime
	PowerUpNuke
	PowerUpMagnet
	PowerUpDoublePoints
)

// String returns the wire name of the power-up.
func (p PowerUpType) String() string {
	switch p {
	case PowerUpShield:
		return "shield"
	case PowerUpRapidFire:
		return "rapid_fire"
	case PowerUpMultiShot:
		return "multi_shot"
	case PowerUpSlowTime:
		return "slow_time"
	case PowerUpNuke:
		return "nuke"
	case PowerUpMagnet:
		return "magnet"
	case PowerUpDoublePoints:
		return "double_points"
	default:
		return "unknown"
	}
}

// MarshalText encodes the power-up by name.
func (p PowerUpType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a power-up name produced by MarshalText.
func (p *PowerUpType) UnmarshalText(text []byte) error {
	for t := PowerUpShield; t <= PowerUpDoublePoints; t++ {
		if t.String() == string(text) {
			*p = t
			return nil
		}
	}
	return fmt.Errorf("engine: unknown power-up %q", text)
}

// PowerUp is a player buff. Duration 0 means the effect is instantaneous.
type PowerUp struct {
	Type     PowerUpType `json:"type"`
	Duration int         `json:"duration"` // ms
	Color    string      `json:"color"`
	Effect   string      `json:"effect"`
}

// Instant reports whether the power-up applies once with no duration.
func (p PowerUp) Instant() bool {
	return p.Duration == 0
}

type catalogEntry struct {
	powerUp PowerUp
	weight  int
}

// catalog is walked in this order by the weighted draw.
var catalog = []catalogEntry{
	{PowerUp{PowerUpShield, 5000, "#00ffff", "Invincibility"}, 30},
	{PowerUp{PowerUpRapidFire, 8000, "#ff6600", "2x Fire Rate"}, 25},
	{PowerUp{PowerUpMultiShot, 10000, "#ff00ff", "Triple Shot"}, 20},
	{PowerUp{PowerUpSlowTime, 5000, "#00ff00", "Slow Motion"}, 15},
	{PowerUp{PowerUpNuke, 0, "#ff0000", "Clear Screen"}, 5},
	{PowerUp{PowerUpMagnet, 10000, "#ffff00", "Coin Magnet"}, 20},
	{PowerUp{PowerUpDoublePoints, 15000, "#ffd700", "2x Points"}, 15},
}

var totalWeight = func() int {
	total := 0
	for _, c := range catalog {
		total += c.weight
	}
	return total
}()

// Catalog returns a copy of the power-up catalog in draw order.
func Catalog() []PowerUp {
	out := make([]PowerUp, len(catalog))
	for i, c := range catalog {
		out[i] = c.powerUp
	}
	return out
}

// Weight returns the selection weight of a power-up type, or 0 if unknown.
func Weight(t PowerUpType) int {
	for _, c := range catalog {
		if c.powerUp.Type == t {
			return c.weight
		}
	}
	return 0
}

// TotalWeight returns the sum of all catalog weights.
func TotalWeight() int {
	return totalWeight
}

// GetRandomPowerUp draws one power-up proportionally to catalog weight.
// Whether a power-up should spawn at all is the caller's decision.
func (e *Engine) GetRandomPowerUp() PowerUp {
	r := e.rng.Float64() * float64(totalWeight)
	for _, c := range catalog {
		r -= float64(c.weight)
		if r <= 0 {
			return c.powerUp
		}
	}
	// Rounding can exhaust the walk.
	return catalog[0].powerUp
}
