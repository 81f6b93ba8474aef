package systems

import (
	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// BallSnapshot is the drawable ball state.
type BallSnapshot struct {
	X, Y     float64 // center
	Radius   float64
	Rotation float64
	Captured bool
}

// GestureSnapshot is the drawable state of an active drag.
type GestureSnapshot struct {
	Start   gamemath.Vec
	Current gamemath.Vec
	Power   int
	Ticks   int // ticks since the press
}

// BinSnapshot is the drawable bin geometry.
type BinSnapshot struct {
	CenterX      float64
	RimY         float64
	BodyWidth    float64
	BodyHeight   float64
	OpeningWidth float64
	Lane         string
}

// Snapshot is everything a renderer needs for one frame. It is a copy;
// renderers cannot mutate engine state through it.
type Snapshot struct {
	Phase      cfg.PhaseID
	Score      int
	ThrowsLeft int
	MaxThrows  int

	Bin     BinSnapshot
	Ball    *BallSnapshot
	Gesture *GestureSnapshot
	Trail   []gamemath.Vec

	WindEnabled bool
	WindSpeed   float64
}

// TakeSnapshot assembles the render-boundary view of the current tick.
func TakeSnapshot(e *ecs.ECS) Snapshot {
	var snap Snapshot

	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return snap
	}
	session := components.Session.Get(sessionEntry)
	snap.Phase = session.Phase
	snap.Score = session.Score
	snap.ThrowsLeft = session.ThrowsLeft
	snap.MaxThrows = session.MaxThrows

	wind := components.Wind.Get(sessionEntry)
	snap.WindEnabled = wind.Enabled
	snap.WindSpeed = wind.Speed

	if binEntry, ok := components.Bin.First(e.World); ok {
		bin := components.Bin.Get(binEntry)
		snap.Bin = BinSnapshot{
			CenterX:      bin.CenterX,
			RimY:         bin.RimY,
			BodyWidth:    bin.BodyWidth,
			BodyHeight:   bin.BodyHeight,
			OpeningWidth: bin.OpeningWidth,
			Lane:         bin.Lane,
		}
	}

	if ballEntry, ok := components.Ball.First(e.World); ok {
		ball := components.Ball.Get(ballEntry)
		obj := components.Object.Get(ballEntry)
		snap.Ball = &BallSnapshot{
			X:        obj.X + obj.W/2,
			Y:        obj.Y + obj.H/2,
			Radius:   ball.Radius,
			Rotation: ball.Rotation,
			Captured: ballEntry.HasComponent(components.Tween),
		}
		trail := components.Trail.Get(ballEntry)
		trail.Each(func(_ int, p gamemath.Vec) {
			snap.Trail = append(snap.Trail, p)
		})
	}

	if session.Phase == cfg.PhaseDragging {
		gesture := components.Gesture.Get(sessionEntry)
		snap.Gesture = &GestureSnapshot{
			Start:   gesture.Start,
			Current: gesture.Current,
			Power:   gesture.Power,
			Ticks:   session.TickCount - gesture.StartTick,
		}
	}

	return snap
}
