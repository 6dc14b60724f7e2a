package game

// Internal truth authoritative match state

// Side identifies which half of the court a player defends.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Phase is owned by the UI layer; the loop only reads it.
type Phase uint8

const (
	PhaseLoading Phase = iota
	PhaseMenu
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

type Player struct {
	Side  Side
	Name  string
	Color string
	Score int
	Y     float64 // paddle center, normalized [0,1]
}

// Ball is recreated wholesale on every serve. Speed mirrors the velocity
// magnitude after any velocity-setting event; between events only X,Y move.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Speed  float64
}

// DetectedHand is one mirrored, normalized hand centroid from the pose
// backend. Consumed once per sample, never retained.
type DetectedHand struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type State struct {
	Tick     int
	Left     *Player
	Right    *Player
	Ball     Ball
	ScorePop float64 // transient render amplitude, decays toward 1.0
}

func NewState() *State {
	return &State{
		Left:     &Player{Side: SideLeft, Name: "Left", Color: "#4fc3f7", Y: 0.5},
		Right:    &Player{Side: SideRight, Name: "Right", Color: "#ffb74d", Y: 0.5},
		Ball:     Ball{X: 0.5, Y: 0.5},
		ScorePop: 1.0,
	}
}

// Player returns the player defending the given side.
func (s *State) Player(side Side) *Player {
	if side == SideLeft {
		return s.Left
	}
	return s.Right
}

// TotalPoints is the sum of both scores, used by the serve speed ramp.
func (s *State) TotalPoints() int {
	return s.Left.Score + s.Right.Score
}

// ResetScores zeroes both scores for an explicit restart. Paddle positions
// are left alone; the caller re-serves the ball.
func (s *State) ResetScores() {
	s.Left.Score = 0
	s.Right.Score = 0
	s.ScorePop = 1.0
}
