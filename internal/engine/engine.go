// Package engine implements the difficulty and reward engine that paces a
// survival session: wave generation, kill combos, wave-completion bonuses,
// weighted power-up draws and rare tension events.
//
// The engine holds no entities and draws nothing. It produces configuration
// values and numeric bonuses for an external game loop. An Engine is owned by
// exactly one session and must not be shared between goroutines.
package engine

// State is the mutable session bookkeeping of an Engine.
// The zero value is the initial state of a fresh session.
type State struct {
	WaveNumber        int   // Waves generated so far (0 before the first wave)
	ComboCount        int   // Current kill streak (0 when idle)
	LastKillTimestamp int64 // Monotonic ms of the most recent kill (0 before first kill)
}

// Engine drives wave pacing and rewards for a single game session.
type Engine struct {
	state State
	rng   Source
}

// New creates an engine drawing randomness from src.
// A nil src falls back to a time-seeded generator.
func New(src Source) *Engine {
	if src == nil {
		src = NewSource()
	}
	return &Engine{rng: src}
}

// Reset returns the session to its initial zero state.
// The random source is kept.
func (e *Engine) Reset() {
	e.state = State{}
}

// State returns a copy of the current session state.
func (e *Engine) State() State {
	return e.state
}
