package systems

import (
	"fmt"
	"math/rand"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/events"
	"github.com/MicahWalkerDesign/bintoss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartRound resets the session for a fresh round: score to zero, throws to
// the maximum, a new bin placement, and a new wind roll. Returns an error
// for unplayable configuration instead of producing a dead round.
func StartRound(e *ecs.ECS) error {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return fmt.Errorf("start round: no session entity")
	}
	if mt := components.Session.Get(sessionEntry).MaxThrows; mt <= 0 {
		return fmt.Errorf("start round: maxThrows must be positive, got %d", mt)
	}

	if ballEntry, ok := components.Ball.First(e.World); ok {
		factory.DestroyBall(e, ballEntry)
	}
	if sessionEntry.HasComponent(components.Gesture) {
		donburi.Remove[components.GestureData](sessionEntry, components.Gesture)
	}

	// Removing the gesture moves the entry; fetch the session after.
	session := components.Session.Get(sessionEntry)
	session.Score = 0
	session.ThrowsLeft = session.MaxThrows
	session.Phase = cfg.PhaseReady
	session.PrevPhase = cfg.PhaseReady

	wind := components.Wind.Get(sessionEntry)
	if wind.Enabled {
		wind.Speed = (rand.Float64()*2 - 1) * cfg.Wind.MaxSpeed
	} else {
		wind.Speed = 0
	}

	factory.PlaceBin(e)
	return nil
}

// UpdateSession advances the phase machine after the physics and scoring
// systems have run. A resolved throw returns the session to Ready while
// throws remain; the round ends when no throws remain and no ball is in
// flight. The round-over notification fires exactly once per round.
func UpdateSession(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	session.TickCount++

	_, ballPresent := components.Ball.First(e.World)

	switch session.Phase {
	case cfg.PhaseFlying, cfg.PhaseCapturing:
		if !ballPresent {
			if session.ThrowsLeft <= 0 {
				session.Phase = cfg.PhaseRoundOver
			} else {
				session.Phase = cfg.PhaseReady
			}
		}
	case cfg.PhaseReady:
		if session.ThrowsLeft <= 0 && !ballPresent {
			session.Phase = cfg.PhaseRoundOver
		}
	}

	if session.Phase == cfg.PhaseRoundOver && session.PrevPhase != cfg.PhaseRoundOver {
		events.RoundOver.Publish(e.World, events.RoundOverData{FinalScore: session.Score})
	}
	session.PrevPhase = session.Phase
}
