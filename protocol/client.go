package protocol

// Messages coming in from the client.

type Hello struct {
	V    int    `json:"v"`              // version
	Name string `json:"name,omitempty"` // optional display name
}

// Hand is one detected hand centroid in normalized camera coordinates,
// already horizontally mirrored by the client for intuitive control.
type Hand struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hands carries one pose sample: zero or more detected hands.
type Hands struct {
	Hands []Hand `json:"hands"`
}

// PhaseChange announces the UI's current phase (see Phase* constants).
type PhaseChange struct {
	Phase string `json:"phase"`
}

// Restart asks for scores to be zeroed and the ball re-served.
type Restart struct{}
