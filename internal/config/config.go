// Package config provides YAML-based game configuration loading and
// difficulty presets for the survival arcade.
//
// Wave pacing, combo and reward formulas belong to the engine and are not
// configurable here; this package only tunes the arena the engine drives.
package config

// SurvivalConfig contains all configuration for the survival game.
type SurvivalConfig struct {
	Player   SurvivalPlayer   `yaml:"player"`
	Enemies  SurvivalEnemies  `yaml:"enemies"`
	Weapon   SurvivalWeapon   `yaml:"weapon"`
	PowerUps SurvivalPowerUps `yaml:"power_ups"`
	Pacing   SurvivalPacing   `yaml:"pacing"`
}

// SurvivalPlayer defines player parameters.
type SurvivalPlayer struct {
	Lives           int     `yaml:"lives"`
	Speed           float64 `yaml:"speed"`             // Cells per tick
	InvulnerableMs  int     `yaml:"invulnerable_ms"`   // Grace period after a hit
	PickupRadius    float64 `yaml:"pickup_radius"`     // Cells
	MagnetRadius    float64 `yaml:"magnet_radius"`     // Cells, while magnet is active
	MagnetPullSpeed float64 `yaml:"magnet_pull_speed"` // Cells per tick
}

// SurvivalEnemies defines enemy parameters.
type SurvivalEnemies struct {
	BaseSpeed        float64 `yaml:"base_speed"`         // Cells per tick at wave speed 1.0
	BossHP           int     `yaml:"boss_hp"`            // Hits to kill the boss
	SpeedEventFactor float64 `yaml:"speed_event_factor"` // Extra speed during speed waves
	SwarmSpawnFactor float64 `yaml:"swarm_spawn_factor"` // Spawn interval multiplier during swarm waves
	KillPoints       int     `yaml:"kill_points"`        // Base points per kill before combo bonus
}

// SurvivalWeapon defines shooting parameters.
type SurvivalWeapon struct {
	CooldownMs  int     `yaml:"cooldown_ms"`
	BulletSpeed float64 `yaml:"bullet_speed"` // Cells per tick
	SpreadAngle float64 `yaml:"spread_angle"` // Radians between multi-shot bullets
}

// SurvivalPowerUps defines pickup parameters.
type SurvivalPowerUps struct {
	LifetimeMs     int     `yaml:"lifetime_ms"`      // How long an uncollected pickup stays
	SlowTimeFactor float64 `yaml:"slow_time_factor"` // Enemy speed multiplier during slow time
}

// SurvivalPacing defines timing between waves and banners.
type SurvivalPacing struct {
	IntermissionMs int `yaml:"intermission_ms"` // Pause between waves
	BannerMs       int `yaml:"banner_ms"`       // How long a banner stays on screen
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
