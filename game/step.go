package game

import (
	"math"
	"math/rand"
)

// ScoreEvent reports a point that ended on this tick. Scores are already
// incremented and the ball already re-served when it is returned.
type ScoreEvent struct {
	Scorer     Side
	ScoreLeft  int
	ScoreRight int
}

// Step advances the match by one tick (one rendered frame). It integrates
// the ball, resolves wall and paddle collisions, decays the score pop and
// detects scoring. Returns nil unless a point ended.
func Step(s *State, rng *rand.Rand) *ScoreEvent {
	s.Tick++
	s.ScorePop += (1.0 - s.ScorePop) * ScorePopDecay

	b := &s.Ball
	b.X += b.VX
	b.Y += b.VY

	// Wall reflection, clamp back into the court.
	if b.Y <= CourtMin {
		b.Y = CourtMin
		b.VY = -b.VY
	} else if b.Y >= CourtMax {
		b.Y = CourtMax
		b.VY = -b.VY
	}

	if b.VX < 0 && b.X <= LeftPaddleX+PaddleWidth/2+CollisionBuffer && overlapsPaddle(b.Y, s.Left.Y) {
		bounceOffPaddle(b, s.Left.Y, 1)
	} else if b.VX > 0 && b.X >= RightPaddleX-PaddleWidth/2-CollisionBuffer && overlapsPaddle(b.Y, s.Right.Y) {
		bounceOffPaddle(b, s.Right.Y, -1)
	}

	if b.X < ScoreMarginLeft {
		return s.awardPoint(SideRight, rng)
	}
	if b.X > ScoreMarginRight {
		return s.awardPoint(SideLeft, rng)
	}
	return nil
}

func overlapsPaddle(ballY, paddleY float64) bool {
	return math.Abs(ballY-clamp01(paddleY)) < HalfPaddleHeight+BallRadius
}

// bounceOffPaddle reflects the ball off a paddle. The reflection angle is
// proportional to where on the paddle the ball hit; the speed ramps by a
// fixed increment, capped at MaxSpeed. dir is +1 off the left paddle and
// -1 off the right.
func bounceOffPaddle(b *Ball, paddleY, dir float64) {
	intersect := (b.Y - clamp01(paddleY)) / HalfPaddleHeight
	if intersect < -1 {
		intersect = -1
	} else if intersect > 1 {
		intersect = 1
	}
	angle := intersect * MaxReflectionAngle

	speed := b.Speed + SpeedIncrement
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	b.Speed = speed
	b.VX = dir * speed * math.Cos(angle)
	b.VY = speed * math.Sin(angle)
}

func (s *State) awardPoint(scorer Side, rng *rand.Rand) *ScoreEvent {
	s.Player(scorer).Score++
	s.ScorePop = ScorePopPeak
	Serve(s, scorer, rng)
	return &ScoreEvent{
		Scorer:     scorer,
		ScoreLeft:  s.Left.Score,
		ScoreRight: s.Right.Score,
	}
}
