package game

// ApplyHands writes each detected hand's vertical position through to the
// player owning the screen half its mirrored X falls in (x < 0.5 is the left
// player). When several hands land on one side the last one processed wins;
// there is deliberately no averaging and no temporal smoothing. An empty
// hand list leaves both paddles where they are.
func ApplyHands(s *State, hands []DetectedHand) {
	for _, h := range hands {
		y := clamp01(h.Y)
		if h.X < 0.5 {
			s.Left.Y = y
		} else {
			s.Right.Y = y
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
