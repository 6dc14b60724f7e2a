package room

import (
	"handpong/game"
	"handpong/protocol"
)

// ParsePhase maps a wire phase name to the game enum.
func ParsePhase(name string) (game.Phase, bool) {
	switch name {
	case protocol.PhaseLoading:
		return game.PhaseLoading, true
	case protocol.PhaseMenu:
		return game.PhaseMenu, true
	case protocol.PhasePlaying:
		return game.PhasePlaying, true
	case protocol.PhasePaused:
		return game.PhasePaused, true
	case protocol.PhaseGameOver:
		return game.PhaseGameOver, true
	}
	return game.PhaseLoading, false
}

// PhaseName is the inverse of ParsePhase.
func PhaseName(p game.Phase) string {
	switch p {
	case game.PhaseMenu:
		return protocol.PhaseMenu
	case game.PhasePlaying:
		return protocol.PhasePlaying
	case game.PhasePaused:
		return protocol.PhasePaused
	case game.PhaseGameOver:
		return protocol.PhaseGameOver
	default:
		return protocol.PhaseLoading
	}
}
