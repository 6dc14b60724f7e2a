package protocol

type Welcome struct {
	RoomCode string `json:"roomCode"`
	Seat     string `json:"seat"` // "left", "right" or "spectator"
	TickHz   int    `json:"tickHz"`
}

// State is the draw-ready snapshot broadcast every frame batch.
type State struct {
	Tick       int                 `json:"tick"`
	Phase      string              `json:"phase"`
	Players    [2]PlayerSnapshot   `json:"players"` // left then right
	Ball       BallSnapshot        `json:"ball"`
	ScorePop   float64             `json:"scorePop"`
	Commentary *CommentarySnapshot `json:"commentary,omitempty"`
}

type PlayerSnapshot struct {
	Side  string  `json:"side"`
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Score int     `json:"score"`
	Y     float64 `json:"y"`
}

type BallSnapshot struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

type CommentarySnapshot struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
	Ts   int64  `json:"ts"`
}
