package engine

// TensionType grades a tension event.
type TensionType string

const (
	TensionWarning  TensionType = "warning"
	TensionAlert    TensionType = "alert"
	TensionDanger   TensionType = "danger"
	TensionCritical TensionType = "critical"
)

// TensionChance is the per-call probability of a tension event.
const TensionChance = 0.02

// TensionEvent is a rare narrative flourish shown to the player.
type TensionEvent struct {
	Type    TensionType `json:"type"`
	Message string      `json:"message"`
}

var tensionEvents = []TensionEvent{
	{TensionWarning, "INCOMING SWARM!"},
	{TensionAlert, "SPEED SURGE!"},
	{TensionDanger, "CHAOS MODE!"},
	{TensionCritical, "SURVIVAL CHALLENGE!"},
}

// TensionEvents returns a copy of the fixed event payloads.
func TensionEvents() []TensionEvent {
	out := make([]TensionEvent, len(tensionEvents))
	copy(out, tensionEvents)
	return out
}

// GetTensionEvent rolls for a tension event. ok is false when none fires.
//
// score is accepted for callers that pass the running score each tick, but it
// does not affect the probability or the choice of event.
func (e *Engine) GetTensionEvent(score int) (ev TensionEvent, ok bool) {
	_ = score
	if e.rng.Float64() >= TensionChance {
		return TensionEvent{}, false
	}
	i := int(e.rng.Float64() * float64(len(tensionEvents)))
	if i >= len(tensionEvents) {
		i = len(tensionEvents) - 1
	}
	return tensionEvents[i], true
}
