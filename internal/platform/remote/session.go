package remote

import (
	"fmt"

	"github.com/vovakirdan/stunt-arcade/internal/engine"
	"github.com/vovakirdan/stunt-arcade/internal/storage"
)

// session is the engine state behind one connection.
// It is driven only from that connection's read loop.
type session struct {
	eng    *engine.Engine
	rng    *engine.RNG
	store  *storage.Store
	gameID string
	player string // Default player name from the connection query
}

func newSession(store *storage.Store, gameID, player string) *session {
	rng := engine.NewSource()
	return &session{
		eng:    engine.New(rng),
		rng:    rng,
		store:  store,
		gameID: gameID,
		player: player,
	}
}

// handle executes one request against the session's engine.
func (s *session) handle(req Request) Response {
	switch req.Op {
	case OpReset:
		if req.Seed != nil {
			s.rng.Seed(*req.Seed)
		}
		s.eng.Reset()
		st := s.eng.State()
		return Response{Op: OpReset, State: &st}

	case OpState:
		st := s.eng.State()
		return Response{Op: OpState, State: &st}

	case OpNextWave:
		w := s.eng.GetNextWave()
		return Response{Op: OpNextWave, Wave: &w}

	case OpKill:
		k := s.eng.RegisterKill(req.Timestamp)
		return Response{Op: OpKill, Kill: &k}

	case OpWaveComplete:
		// The engine leaves total <= 0 undefined; reject it here
		if req.Total <= 0 {
			return errorResponse(req.Op, "total must be positive")
		}
		if req.Killed < 0 || req.Killed > req.Total {
			return errorResponse(req.Op, "killed must be within [0, total]")
		}
		b := s.eng.GetWaveCompleteBonus(req.Killed, req.Total)
		return Response{Op: OpWaveComplete, Bonus: &b}

	case OpPowerUp:
		p := s.eng.GetRandomPowerUp()
		return Response{Op: OpPowerUp, PowerUp: &p}

	case OpTension:
		if ev, ok := s.eng.GetTensionEvent(req.Score); ok {
			return Response{Op: OpTension, Tension: &ev}
		}
		return Response{Op: OpTension}

	case OpSubmit:
		return s.submit(req)

	case "":
		return errorResponse("", "missing op")
	default:
		return errorResponse("", fmt.Sprintf("unknown op %q", req.Op))
	}
}

// submit records a finished run reported by the client.
func (s *session) submit(req Request) Response {
	if s.store == nil {
		return errorResponse(req.Op, "run storage is disabled")
	}
	if req.Score < 0 || req.Wave < 0 || req.MaxCombo < 0 {
		return errorResponse(req.Op, "negative values are not allowed")
	}

	player := req.Player
	if player == "" {
		player = s.player
	}

	id, err := s.store.SaveRun(storage.Run{
		GameID:   s.gameID,
		Player:   player,
		Score:    req.Score,
		Wave:     req.Wave,
		MaxCombo: req.MaxCombo,
	})
	if err != nil {
		return errorResponse(req.Op, "could not save run")
	}
	return Response{Op: OpSubmit, RunID: id}
}
