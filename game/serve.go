package game

import (
	"math"
	"math/rand"
)

// ServeSpeed ramps the starting ball speed with the cumulative score of
// both players, capped so late games stay playable.
func ServeSpeed(totalPoints int) float64 {
	ramp := float64(totalPoints) * ServeRampPerPoint
	if ramp > ServeRampCap {
		ramp = ServeRampCap
	}
	return BallInitialSpeed + ramp
}

// Serve recreates the ball at center moving toward the given side — the
// player who just lost the point serves toward the scorer. The vertical
// velocity is uniform in ±ServeMaxVY and the horizontal component completes
// the speed magnitude.
func Serve(s *State, toward Side, rng *rand.Rand) {
	speed := ServeSpeed(s.TotalPoints())
	vy := (rng.Float64()*2 - 1) * ServeMaxVY
	vx := math.Sqrt(speed*speed - vy*vy)
	if toward == SideLeft {
		vx = -vx
	}
	s.Ball = Ball{X: 0.5, Y: 0.5, VX: vx, VY: vy, Speed: speed}
}
