package systems

import (
	"testing"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/MicahWalkerDesign/bintoss/systems/factory"
)

func TestStepGravityAndDecay(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	ballEntry := factory.CreateBall(e, gamemath.Vec{X: 100, Y: 100}, gamemath.Vec{X: 2})

	UpdateBallPhysics(e)

	physics := components.Physics.Get(ballEntry)
	wantVX := 2 * cfg.Physics.FrictionDecay
	wantVY := cfg.Physics.Gravity * cfg.Physics.FrictionDecay
	if !near(physics.SpeedX, wantVX, 1e-9) {
		t.Errorf("vx = %v, want %v", physics.SpeedX, wantVX)
	}
	if !near(physics.SpeedY, wantVY, 1e-9) {
		t.Errorf("vy = %v, want %v", physics.SpeedY, wantVY)
	}

	obj := components.Object.Get(ballEntry)
	if !near(obj.X+obj.W/2, 100+wantVX, 1e-9) || !near(obj.Y+obj.H/2, 100+wantVY, 1e-9) {
		t.Errorf("center = (%v, %v), want (%v, %v)",
			obj.X+obj.W/2, obj.Y+obj.H/2, 100+wantVX, 100+wantVY)
	}

	ball := components.Ball.Get(ballEntry)
	if ball.PrevY != 100 {
		t.Errorf("PrevY = %v, want 100", ball.PrevY)
	}
}

func TestStepWindAcceleration(t *testing.T) {
	for _, dir := range []float64{1, -1} {
		e := newTestECS(t, 5, true)
		startRound(t, e)

		windEntry, _ := components.Wind.First(e.World)
		components.Wind.Get(windEntry).Speed = dir

		ballEntry := factory.CreateBall(e, gamemath.Vec{X: 100, Y: 100}, gamemath.Vec{})
		UpdateBallPhysics(e)

		want := dir * (cfg.Wind.Accel + cfg.Wind.Gustiness) * cfg.Physics.FrictionDecay
		got := components.Physics.Get(ballEntry).SpeedX
		if !near(got, want, 1e-9) {
			t.Errorf("wind %v: vx = %v, want %v", dir, got, want)
		}
	}
}

func TestStepIgnoresDisabledWind(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	ballEntry := factory.CreateBall(e, gamemath.Vec{X: 100, Y: 100}, gamemath.Vec{})

	UpdateBallPhysics(e)

	if got := components.Physics.Get(ballEntry).SpeedX; got != 0 {
		t.Fatalf("vx = %v with wind disabled, want 0", got)
	}
}

func TestStepSkipsCapturedBall(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	// Graze entry scores immediately and attaches the capture tween.
	factory.CreateBall(e, gamemath.Vec{X: 200, Y: 145}, gamemath.Vec{})
	sess(t, e).Phase = cfg.PhaseFlying
	tick(e)

	ballEntry, ok := ballOf(e)
	if !ok || !ballEntry.HasComponent(components.Tween) {
		t.Fatal("ball was not captured")
	}

	before := *components.Physics.Get(ballEntry)
	UpdateBallPhysics(e)
	after := *components.Physics.Get(ballEntry)
	if before != after {
		t.Fatalf("physics advanced a captured ball: %+v -> %+v", before, after)
	}
}

func TestTrailRecordsFlightPath(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	ballEntry := factory.CreateBall(e, gamemath.Vec{X: 100, Y: 100}, gamemath.Vec{X: 1})

	for i := 0; i < 3; i++ {
		UpdateBallPhysics(e)
	}

	trail := components.Trail.Get(ballEntry)
	if trail.Count != 3 {
		t.Fatalf("trail count = %d, want 3", trail.Count)
	}

	// Beyond capacity the ring keeps only the newest positions.
	for i := 0; i < cfg.Ball.TrailLength*2; i++ {
		UpdateBallPhysics(e)
	}
	if trail.Count != cfg.Ball.TrailLength {
		t.Fatalf("trail count = %d, want %d", trail.Count, cfg.Ball.TrailLength)
	}

	var prevX float64 = -1
	trail.Each(func(_ int, p gamemath.Vec) {
		if p.X <= prevX {
			t.Fatalf("trail not ordered oldest to newest: %v after %v", p.X, prevX)
		}
		prevX = p.X
	})
}

func TestSpinAccumulatesWithSpeed(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	ballEntry := factory.CreateBall(e, gamemath.Vec{X: 100, Y: 100}, gamemath.Vec{X: 3})

	UpdateBallPhysics(e)
	first := components.Ball.Get(ballEntry).Rotation
	if first <= 0 {
		t.Fatalf("rotation = %v after one tick, want > 0", first)
	}
	UpdateBallPhysics(e)
	if got := components.Ball.Get(ballEntry).Rotation; got <= first {
		t.Fatalf("rotation did not accumulate: %v then %v", first, got)
	}
}
