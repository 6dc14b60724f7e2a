package room

import (
	"handpong/commentary"
	"handpong/game"
)

type Conn interface {
	Send([]byte) error
	Close() error
}

// Join: issued once after hello parsed
type Join struct {
	Conn  Conn
	Name  string
	Reply chan<- JoinResult
}

type JoinResult struct {
	Seat string // "left", "right" or "spectator"
}

// Hands: latest pose sample from a client's camera feed. One feed may
// carry hands for both sides.
type Hands struct {
	Hands []game.DetectedHand
}

// SetPhase mirrors the UI's phase machine into the loop. The room never
// transitions phase on its own.
type SetPhase struct {
	Phase game.Phase
}

// Restart zeroes scores and re-serves the ball.
type Restart struct{}

// Leave: issued on disconnect
type Leave struct {
	Conn Conn
}

// commentaryDone re-enters the loop when an async commentary request
// resolves, on a later tick of the same single goroutine.
type commentaryDone struct {
	event commentary.Event
}
