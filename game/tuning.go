package game

import "math"

const (
	CourtMin = 0.0
	CourtMax = 1.0

	LeftPaddleX      = 0.03 // paddle center plane, left player owns x≈0
	RightPaddleX     = 0.97
	PaddleWidth      = 0.03
	HalfPaddleHeight = 0.08
	BallRadius       = 0.02
	CollisionBuffer  = 0.02 // tunneling safety band on each side of the face

	BallInitialSpeed   = 0.012
	SpeedIncrement     = 0.002 // per paddle hit
	MaxSpeed           = 0.04
	MaxReflectionAngle = math.Pi / 3 // 60°

	// Scoring margins sit beyond the strict 0/1 court bounds so the ball
	// visibly exits before the reset fires. Keep them distinct from
	// CourtMin/CourtMax.
	ScoreMarginLeft  = -0.05
	ScoreMarginRight = 1.05

	ServeRampPerPoint = 0.0015 // speed added per cumulative point
	ServeRampCap      = 0.02
	ServeMaxVY        = 0.006 // serve vy uniform in ±this

	ScorePopPeak  = 1.5
	ScorePopDecay = 0.05 // per tick, toward 1.0
)
