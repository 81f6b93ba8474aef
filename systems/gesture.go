package systems

import (
	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/MicahWalkerDesign/bintoss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Origin returns the fixed throw origin point.
func Origin() gamemath.Vec {
	return gamemath.Vec{X: cfg.C.OriginX, Y: cfg.C.OriginY}
}

// PressAt begins a drag if the press lands within the origin radius plus
// the modality's tolerance, the session is Ready, and no ball is present.
// Returns whether the press was accepted.
func PressAt(e *ecs.ECS, p gamemath.Vec, m cfg.Modality) bool {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return false
	}
	session := components.Session.Get(sessionEntry)
	if session.Phase != cfg.PhaseReady {
		return false
	}
	if _, ballPresent := components.Ball.First(e.World); ballPresent {
		return false
	}
	if p.Sub(Origin()).Len() > cfg.Input.OriginRadius+m.PressTolerance {
		return false
	}

	donburi.Add(sessionEntry, components.Gesture, &components.GestureData{
		Start:     p,
		Current:   p,
		StartTick: session.TickCount,
		Power:     1,
	})
	// Adding a component moves the entry to a new archetype; re-fetch
	// before writing.
	components.Session.Get(sessionEntry).Phase = cfg.PhaseDragging
	return true
}

// DragTo updates the active drag's current point and power level.
func DragTo(e *ecs.ECS, p gamemath.Vec) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)
	if session.Phase != cfg.PhaseDragging {
		return
	}
	gesture := components.Gesture.Get(sessionEntry)
	gesture.Current = p
	gesture.Power = gamemath.PowerLevel(
		gesture.Pull().Len(),
		cfg.Launch.MaxPullDistance,
		cfg.Launch.PowerSplitLow,
		cfg.Launch.PowerSplitHigh,
	)
}

// Release ends the drag. A pull at or above the minimum distance launches
// the ball and consumes a throw; a shorter pull is discarded and the
// session returns to Ready with the throw intact. Leaving the input
// surface mid-drag routes through here as well. Returns whether a ball
// was launched.
func Release(e *ecs.ECS) bool {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return false
	}
	if components.Session.Get(sessionEntry).Phase != cfg.PhaseDragging {
		return false
	}
	gesture := *components.Gesture.Get(sessionEntry)
	donburi.Remove[components.GestureData](sessionEntry, components.Gesture)
	session := components.Session.Get(sessionEntry)

	pull := gesture.Pull()
	if !gamemath.IsThrowGesture(pull, cfg.Launch.MinDragDistance) {
		session.Phase = cfg.PhaseReady
		return false
	}

	binEntry, ok := components.Bin.First(e.World)
	if !ok {
		session.Phase = cfg.PhaseReady
		return false
	}
	bin := components.Bin.Get(binEntry)
	target := gamemath.Vec{X: bin.CenterX, Y: bin.RimY}

	velocity := gamemath.LaunchVelocity(
		pull,
		target.Sub(Origin()),
		cfg.Launch.PowerSpeeds[gesture.Power-1],
		cfg.Launch.MaxSpeedX,
		cfg.Launch.MaxRiseVy,
		cfg.Launch.MaxDropVy,
	)

	factory.CreateBall(e, Origin(), velocity)

	// The throw is consumed here, at launch, never at resolution.
	if session.ThrowsLeft > 0 {
		session.ThrowsLeft--
	}
	session.Phase = cfg.PhaseFlying
	return true
}
