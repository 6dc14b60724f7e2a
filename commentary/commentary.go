// Package commentary turns match events into short spectator lines via an
// external text-generation collaborator.
package commentary

import (
	"context"
	"strings"
	"time"
)

// Kind selects what the generator is asked to comment on.
type Kind string

const (
	KindIntro         Kind = "intro"
	KindScoreForLeft  Kind = "score_for_left"
	KindScoreForRight Kind = "score_for_right"
	KindGameOver      Kind = "game_over"
)

// Event kinds as delivered to the renderer.
const (
	EventIntro = "intro"
	EventScore = "score"
	EventHype  = "hype"
)

type Request struct {
	Kind       Kind
	ScoreLeft  int
	ScoreRight int
}

// Event is the resolved commentary handed to the render consumer.
type Event struct {
	Text      string `json:"text"`
	Kind      string `json:"kind"`
	Timestamp int64  `json:"ts"`
}

// Generator produces one commentary line. It may be slow and may fail.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Fallback replaces failed or empty generator output.
const Fallback = "commentary unavailable"

// Announcer wraps a Generator and recovers every failure into Fallback, so
// callers never see an error from here.
type Announcer struct {
	gen Generator
}

func NewAnnouncer(gen Generator) *Announcer {
	return &Announcer{gen: gen}
}

func (a *Announcer) Announce(ctx context.Context, req Request) Event {
	text := Fallback
	if a.gen != nil {
		if out, err := a.gen.Generate(ctx, req); err == nil && strings.TrimSpace(out) != "" {
			text = strings.TrimSpace(out)
		}
	}
	return Event{
		Text:      text,
		Kind:      eventKind(req.Kind),
		Timestamp: time.Now().UnixMilli(),
	}
}

func eventKind(k Kind) string {
	switch k {
	case KindIntro:
		return EventIntro
	case KindGameOver:
		return EventHype
	default:
		return EventScore
	}
}
