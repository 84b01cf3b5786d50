package engine

// ComboWindow is the longest gap in ms between kills that keeps a streak alive.
const ComboWindow = 2000

const comboPointsPerKill = 10

// comboMilestones doubles the kill bonus and names the streak.
var comboMilestones = map[int]string{
	3:  "COMBO x3!",
	5:  "NICE STREAK!",
	10: "UNSTOPPABLE!",
	15: "GODLIKE!",
	20: "LEGENDARY!",
	30: "MYTHICAL!",
	50: "TRANSCENDENT!",
}

// KillResult is the outcome of registering a kill.
type KillResult struct {
	Combo   int    `json:"combo"`
	Bonus   int    `json:"bonus"`
	Message string `json:"message,omitempty"` // Empty unless a milestone was hit
}

// Milestone reports whether the kill landed on a named streak.
func (k KillResult) Milestone() bool {
	return k.Message != ""
}

// RegisterKill records a kill at timestampMs and returns the updated streak.
// Timestamps must come from one monotonic clock in non-decreasing order.
func (e *Engine) RegisterKill(timestampMs int64) KillResult {
	if timestampMs-e.state.LastKillTimestamp <= ComboWindow {
		e.state.ComboCount++
	} else {
		e.state.ComboCount = 1
	}
	e.state.LastKillTimestamp = timestampMs

	res := KillResult{
		Combo: e.state.ComboCount,
		Bonus: comboPointsPerKill * e.state.ComboCount,
	}
	if msg, ok := comboMilestones[res.Combo]; ok {
		res.Bonus *= 2
		res.Message = msg
	}
	return res
}
