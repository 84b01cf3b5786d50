package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the default survival configuration.
// It mirrors defaults/survival.yaml and is used if the embedded file fails to parse.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Player: SurvivalPlayer{
			Lives:           3,
			Speed:           0.6,
			InvulnerableMs:  1500,
			PickupRadius:    1.5,
			MagnetRadius:    12,
			MagnetPullSpeed: 0.8,
		},
		Enemies: SurvivalEnemies{
			BaseSpeed:        0.15,
			BossHP:           10,
			SpeedEventFactor: 1.5,
			SwarmSpawnFactor: 0.5,
			KillPoints:       10,
		},
		Weapon: SurvivalWeapon{
			CooldownMs:  250,
			BulletSpeed: 1.5,
			SpreadAngle: 0.25,
		},
		PowerUps: SurvivalPowerUps{
			LifetimeMs:     8000,
			SlowTimeFactor: 0.5,
		},
		Pacing: SurvivalPacing{
			IntermissionMs: 2000,
			BannerMs:       1500,
		},
	}
}

// DefaultYAML returns the embedded default YAML for the survival game.
func DefaultYAML() []byte {
	return defaultSurvivalYAML
}
