package protocol

import (
	"encoding/json"
)

const (
	MsgHello      = "hello"
	MsgHands      = "hands"
	MsgPhase      = "phase"
	MsgRestart    = "restart"
	MsgWelcome    = "welcome"
	MsgState      = "state"
	MsgCommentary = "commentary"
)

const (
	FrameHz     = 60 // simulation frames per second
	BroadcastHz = 30
	// Pose samples are applied at most once per this many milliseconds of
	// wall clock, regardless of frame rate.
	PoseSampleMinMs = 30
)

// Phase names on the wire. The UI layer owns transitions; the server only
// reads the current phase.
const (
	PhaseLoading  = "loading"
	PhaseMenu     = "menu"
	PhasePlaying  = "playing"
	PhasePaused   = "paused"
	PhaseGameOver = "gameover"
)

type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p"` // raw payload bytes
}
