package events

import (
	"github.com/yohamta/donburi/features/events"
)

// ScoreChanged fires once per successful scoring entry with the new total.
type ScoreChangedData struct {
	Score int
}

// BallResolved fires when a throw finishes (capture complete, ground rest,
// or out-of-bounds).
type BallResolvedData struct {
	Scored bool
}

// RoundOver fires once when the session reaches its terminal phase.
type RoundOverData struct {
	FinalScore int
}

var (
	ScoreChanged = events.NewEventType[ScoreChangedData]()
	BallResolved = events.NewEventType[BallResolvedData]()
	RoundOver    = events.NewEventType[RoundOverData]()
)
