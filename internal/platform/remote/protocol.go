package remote

import "github.com/vovakirdan/stunt-arcade/internal/engine"

// Request ops understood by the engine endpoint.
const (
	OpReset        = "reset"
	OpState        = "state"
	OpNextWave     = "next_wave"
	OpKill         = "kill"
	OpWaveComplete = "wave_complete"
	OpPowerUp      = "power_up"
	OpTension      = "tension"
	OpSubmit       = "submit"
	OpError        = "error"
)

// Request is one client message. Only the fields of the named op are read.
type Request struct {
	Op string `json:"op"`

	// reset: optional seed for a reproducible session
	Seed *int64 `json:"seed,omitempty"`

	// kill
	Timestamp int64 `json:"timestamp,omitempty"`

	// wave_complete
	Killed int `json:"killed,omitempty"`
	Total  int `json:"total,omitempty"`

	// tension and submit
	Score int `json:"score,omitempty"`

	// submit
	Wave     int    `json:"wave,omitempty"`
	MaxCombo int    `json:"max_combo,omitempty"`
	Player   string `json:"player,omitempty"`
}

// Response answers a Request. Op echoes the request op, or is "error".
// A tension reply without Tension means no event fired.
type Response struct {
	Op      string               `json:"op"`
	State   *engine.State        `json:"state,omitempty"`
	Wave    *engine.WaveConfig   `json:"wave,omitempty"`
	Kill    *engine.KillResult   `json:"kill,omitempty"`
	Bonus   *engine.WaveBonus    `json:"bonus,omitempty"`
	PowerUp *engine.PowerUp      `json:"power_up,omitempty"`
	Tension *engine.TensionEvent `json:"tension,omitempty"`
	RunID   int64                `json:"run_id,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func errorResponse(op, msg string) Response {
	if op == "" {
		return Response{Op: OpError, Error: msg}
	}
	return Response{Op: OpError, Error: op + ": " + msg}
}
