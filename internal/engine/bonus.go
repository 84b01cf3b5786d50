package engine

import "math"

const (
	perfectWaveBonus = 1000
	partialWaveBonus = 500
)

// WaveBonus scores the end of a wave.
type WaveBonus struct {
	Bonus   int  `json:"bonus"`
	Perfect bool `json:"perfect"`
}

// GetWaveCompleteBonus scores a finished wave from the share of enemies killed.
// The caller guarantees totalEnemies > 0. It does not touch session state.
func (e *Engine) GetWaveCompleteBonus(enemiesKilled, totalEnemies int) WaveBonus {
	return WaveCompleteBonus(enemiesKilled, totalEnemies)
}

// WaveCompleteBonus is the stateless form of Engine.GetWaveCompleteBonus.
func WaveCompleteBonus(enemiesKilled, totalEnemies int) WaveBonus {
	pct := float64(enemiesKilled) / float64(totalEnemies)
	if pct == 1 {
		return WaveBonus{Bonus: perfectWaveBonus, Perfect: true}
	}
	return WaveBonus{Bonus: int(math.Floor(partialWaveBonus * pct))}
}
