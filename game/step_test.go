package game

import (
	"math"
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestStepAdvancesTickAndIntegratesBall(t *testing.T) {
	s := NewState()
	s.Ball = Ball{X: 0.5, Y: 0.5, VX: 0.01, VY: 0.005, Speed: 0.0112}

	Step(s, testRNG())
	if s.Tick != 1 {
		t.Fatalf("tick after 1 step = %d, want 1", s.Tick)
	}
	if math.Abs(s.Ball.X-0.51) > 1e-12 || math.Abs(s.Ball.Y-0.505) > 1e-12 {
		t.Fatalf("ball after step = (%f, %f), want (0.51, 0.505)", s.Ball.X, s.Ball.Y)
	}
}

func TestWallBounceClampsAndFlipsVY(t *testing.T) {
	s := NewState()
	s.Ball = Ball{X: 0.5, Y: 0.005, VX: 0.0, VY: -0.01, Speed: 0.01}

	Step(s, testRNG())
	b := s.Ball
	if b.Y < CourtMin || b.Y > CourtMax {
		t.Fatalf("ball y out of court after bounce: %f", b.Y)
	}
	if b.VY <= 0 {
		t.Fatalf("expected vy to flip positive after floor bounce, got %f", b.VY)
	}

	s.Ball = Ball{X: 0.5, Y: 0.995, VX: 0.0, VY: 0.01, Speed: 0.01}
	Step(s, testRNG())
	b = s.Ball
	if b.Y < CourtMin || b.Y > CourtMax {
		t.Fatalf("ball y out of court after ceiling bounce: %f", b.Y)
	}
	if b.VY >= 0 {
		t.Fatalf("expected vy to flip negative after ceiling bounce, got %f", b.VY)
	}
}

func TestCenterHitOnRightPaddleReflectsFlat(t *testing.T) {
	// Ball at x=1.00 moving right at the right paddle's center: the
	// reflection angle must be zero, sending it straight back left.
	s := NewState()
	s.Right.Y = 0.5
	s.Ball = Ball{X: 1.00, Y: 0.5, VX: 0.03, VY: 0, Speed: 0.03}

	ev := Step(s, testRNG())
	if ev != nil {
		t.Fatalf("expected no score on paddle save")
	}
	b := s.Ball
	if b.VX >= 0 {
		t.Fatalf("expected ball to reflect leftward, got vx=%f", b.VX)
	}
	if math.Abs(b.VX+b.Speed) > 1e-12 {
		t.Fatalf("center hit should give vx=-speed: vx=%f speed=%f", b.VX, b.Speed)
	}
	if math.Abs(b.VY) > 1e-12 {
		t.Fatalf("center hit should give vy≈0, got %f", b.VY)
	}
}

func TestReflectionAngleTracksIntersectAndClamps(t *testing.T) {
	b := Ball{Y: 0.5, Speed: 0.02}
	bounceOffPaddle(&b, 0.5, 1)
	if math.Abs(math.Atan2(b.VY, b.VX)) > 1e-9 {
		t.Fatalf("intersect 0 should reflect flat, got angle %f", math.Atan2(b.VY, b.VX))
	}

	b = Ball{Y: 0.5 + HalfPaddleHeight, Speed: 0.02}
	bounceOffPaddle(&b, 0.5, 1)
	angle := math.Atan2(b.VY, b.VX)
	if math.Abs(angle-MaxReflectionAngle) > 1e-9 {
		t.Fatalf("intersect 1 angle = %f, want %f", angle, MaxReflectionAngle)
	}

	// Beyond the paddle edge the intersect clamps to ±1.
	b = Ball{Y: 0.5 + 2*HalfPaddleHeight, Speed: 0.02}
	bounceOffPaddle(&b, 0.5, 1)
	clamped := math.Atan2(b.VY, b.VX)
	if math.Abs(clamped-MaxReflectionAngle) > 1e-9 {
		t.Fatalf("intersect beyond 1 angle = %f, want clamped %f", clamped, MaxReflectionAngle)
	}

	b = Ball{Y: 0.5 - 2*HalfPaddleHeight, Speed: 0.02}
	bounceOffPaddle(&b, 0.5, 1)
	clamped = math.Atan2(b.VY, b.VX)
	if math.Abs(clamped+MaxReflectionAngle) > 1e-9 {
		t.Fatalf("intersect beyond -1 angle = %f, want clamped %f", clamped, -MaxReflectionAngle)
	}
}

func TestCollisionSpeedRampMonotoneAndCapped(t *testing.T) {
	prior := 0.02
	b := Ball{Y: 0.52, Speed: prior}
	bounceOffPaddle(&b, 0.5, 1)
	if b.Speed < prior || b.Speed > MaxSpeed {
		t.Fatalf("speed after bounce = %f, want in [%f, %f]", b.Speed, prior, MaxSpeed)
	}
	if math.Abs(math.Hypot(b.VX, b.VY)-b.Speed) > 1e-12 {
		t.Fatalf("velocity magnitude %f != speed %f", math.Hypot(b.VX, b.VY), b.Speed)
	}

	b = Ball{Y: 0.5, Speed: MaxSpeed - SpeedIncrement/2}
	bounceOffPaddle(&b, 0.5, -1)
	if math.Abs(b.Speed-MaxSpeed) > 1e-12 {
		t.Fatalf("speed should cap at %f, got %f", MaxSpeed, b.Speed)
	}
}

func TestBallExitingRightScoresForLeftAndReserves(t *testing.T) {
	s := NewState()
	s.Right.Y = 0.9 // paddle nowhere near, no save
	s.Ball = Ball{X: 1.04, Y: 0.2, VX: 0.03, VY: 0, Speed: 0.03}

	ev := Step(s, testRNG())
	if ev == nil {
		t.Fatalf("expected a score event when ball exits right margin")
	}
	if ev.Scorer != SideLeft {
		t.Fatalf("scorer = %v, want left", ev.Scorer)
	}
	if s.Left.Score != 1 || s.Right.Score != 0 {
		t.Fatalf("scores = %d-%d, want 1-0", s.Left.Score, s.Right.Score)
	}
	b := s.Ball
	if b.X != 0.5 || b.Y != 0.5 {
		t.Fatalf("ball not reset to center: (%f, %f)", b.X, b.Y)
	}
	// Loser (right) serves toward the scorer: vx points left.
	if b.VX >= 0 {
		t.Fatalf("expected serve toward the scoring left player, got vx=%f", b.VX)
	}
}

func TestBallExitingLeftScoresForRightExactlyOnce(t *testing.T) {
	s := NewState()
	s.Left.Y = 0.9
	s.Ball = Ball{X: -0.03, Y: 0.2, VX: -0.03, VY: 0, Speed: 0.03}

	ev := Step(s, testRNG())
	if ev == nil || ev.Scorer != SideRight {
		t.Fatalf("expected right player to score, got %+v", ev)
	}
	if s.Right.Score != 1 {
		t.Fatalf("right score = %d, want 1", s.Right.Score)
	}
	if s.Ball.VX <= 0 {
		t.Fatalf("expected serve toward the scoring right player, got vx=%f", s.Ball.VX)
	}

	// The reset already moved the ball; further ticks must not re-score.
	for i := 0; i < 3; i++ {
		if ev := Step(s, testRNG()); ev != nil {
			t.Fatalf("unexpected extra score event on tick %d", i)
		}
	}
	if s.Right.Score != 1 {
		t.Fatalf("right score after extra ticks = %d, want still 1", s.Right.Score)
	}
}

func TestScorePopDecaysTowardOne(t *testing.T) {
	s := NewState()
	s.ScorePop = ScorePopPeak
	s.Ball = Ball{X: 0.5, Y: 0.5}

	Step(s, testRNG())
	want := ScorePopPeak + (1.0-ScorePopPeak)*ScorePopDecay
	if math.Abs(s.ScorePop-want) > 1e-12 {
		t.Fatalf("score pop after one tick = %f, want %f", s.ScorePop, want)
	}

	for i := 0; i < 500; i++ {
		Step(s, testRNG())
	}
	if math.Abs(s.ScorePop-1.0) > 1e-6 {
		t.Fatalf("score pop should settle at 1.0, got %f", s.ScorePop)
	}
}

func TestSpeedInvariantHoldsAfterScoreReset(t *testing.T) {
	s := NewState()
	s.Left.Score = 3
	s.Right.Score = 2
	s.Left.Y = 0.9
	s.Ball = Ball{X: -0.03, Y: 0.2, VX: -0.03, VY: 0, Speed: 0.03}

	Step(s, testRNG())
	b := s.Ball
	if math.Abs(math.Hypot(b.VX, b.VY)-b.Speed) > 1e-12 {
		t.Fatalf("serve velocity magnitude %f != speed %f", math.Hypot(b.VX, b.VY), b.Speed)
	}
}
