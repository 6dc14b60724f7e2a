package commentary

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
)

// Canned is the default generator when no language-model backend is wired
// up: seeded canned lines with the live score spliced in.
type Canned struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewCanned(seed int64) *Canned {
	return &Canned{rng: rand.New(rand.NewSource(seed))}
}

var cannedLines = map[Kind][]string{
	KindIntro: {
		"Hands up, paddles ready — here we go!",
		"Two players, one ball, zero keyboards. Play on!",
	},
	KindScoreForLeft: {
		"Left side strikes! %d-%d.",
		"That one slipped past the right paddle — %d-%d.",
	},
	KindScoreForRight: {
		"Right side answers! %d-%d.",
		"The left defense blinks and it's %d-%d.",
	},
	KindGameOver: {
		"And that's the match! Final score %d-%d.",
		"What a finish — %d-%d at the buzzer!",
	},
}

func (c *Canned) Generate(_ context.Context, req Request) (string, error) {
	lines, ok := cannedLines[req.Kind]
	if !ok {
		return "", fmt.Errorf("no canned lines for kind %q", req.Kind)
	}
	c.mu.Lock()
	line := lines[c.rng.Intn(len(lines))]
	c.mu.Unlock()
	if req.Kind == KindIntro {
		return line, nil
	}
	return fmt.Sprintf(line, req.ScoreLeft, req.ScoreRight), nil
}
