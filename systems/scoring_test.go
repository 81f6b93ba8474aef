package systems

import (
	"testing"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/events"
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/MicahWalkerDesign/bintoss/systems/factory"
	"github.com/yohamta/donburi"
)

// A full power-3 throw from a low origin toward a far bin drops through the
// opening, scores exactly once and plays the capture animation out.
func TestThrowThroughOpeningScores(t *testing.T) {
	setOrigin(t, 100, 400)
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	var scoreEvents []events.ScoreChangedData
	events.ScoreChanged.Subscribe(e.World, func(w donburi.World, ev events.ScoreChangedData) {
		scoreEvents = append(scoreEvents, ev)
	})

	if !PressAt(e, Origin(), cfg.Input.Pointer) {
		t.Fatal("press rejected")
	}
	dir := gamemath.Vec{X: 200, Y: 150}.Sub(Origin()).Normalized()
	DragTo(e, Origin().Add(dir.Scale(130)))
	if !Release(e) {
		t.Fatal("release did not launch")
	}

	scored := false
	for i := 0; i < 300; i++ {
		tick(e)
		if sess(t, e).Phase == cfg.PhaseCapturing {
			scored = true
			break
		}
		if _, ok := ballOf(e); !ok {
			t.Fatalf("ball resolved without scoring at tick %d, score %d", i, sess(t, e).Score)
		}
	}
	if !scored {
		t.Fatalf("ball never scored; phase %v", cfg.PhaseNames[sess(t, e).Phase])
	}
	if got := sess(t, e).Score; got != 1 {
		t.Fatalf("score = %d, want 1", got)
	}
	ballEntry, ok := ballOf(e)
	if !ok || !ballEntry.HasComponent(components.Tween) {
		t.Fatal("capture tween missing on scored ball")
	}

	// The capture runs its course, the ball disappears and the session is
	// ready for the next throw.
	for i := 0; i < cfg.Session.CaptureTicks+10; i++ {
		tick(e)
	}
	if _, ok := ballOf(e); ok {
		t.Fatal("ball survived the capture animation")
	}
	session := sess(t, e)
	if session.Phase != cfg.PhaseReady {
		t.Errorf("phase = %v, want ready", cfg.PhaseNames[session.Phase])
	}
	if session.Score != 1 {
		t.Errorf("score = %d after capture, want 1", session.Score)
	}
	if session.ThrowsLeft != 4 {
		t.Errorf("throws = %d, want 4", session.ThrowsLeft)
	}
	if len(scoreEvents) != 1 || scoreEvents[0].Score != 1 {
		t.Errorf("score events = %+v, want one event with total 1", scoreEvents)
	}
}

// A graze entry latches the score once; the latch holds even if the entry
// conditions remain satisfiable on later ticks.
func TestGrazeEntryScoresOnce(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	factory.CreateBall(e, gamemath.Vec{X: 200, Y: 145}, gamemath.Vec{})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	session := sess(t, e)
	if session.Score != 1 {
		t.Fatalf("score = %d after graze, want 1", session.Score)
	}
	if session.Phase != cfg.PhaseCapturing {
		t.Fatalf("phase = %v, want capturing", cfg.PhaseNames[session.Phase])
	}
	ballEntry, _ := ballOf(e)
	if !ballEntry.HasComponent(components.Tween) {
		t.Fatal("capture tween missing")
	}

	// Scoring must not have touched the velocity; no bounce or ground
	// branch runs on the same tick.
	wantVY := cfg.Physics.Gravity * cfg.Physics.FrictionDecay
	if got := components.Physics.Get(ballEntry).SpeedY; !near(got, wantVY, 1e-9) {
		t.Fatalf("vy = %v on the scoring tick, want %v", got, wantVY)
	}

	// Strip the tween so physics resumes with the ball still in the rim
	// band inside the opening. The latch must prevent a second score.
	donburi.Remove[components.TweenData](ballEntry, components.Tween)
	for i := 0; i < 5; i++ {
		tick(e)
	}
	if got := sess(t, e).Score; got != 1 {
		t.Fatalf("score = %d after latch, want 1", got)
	}

	// The ball falls through the bin and grounds eventually; the resolved
	// throw still reports as scored.
	var resolved []events.BallResolvedData
	events.BallResolved.Subscribe(e.World, func(w donburi.World, ev events.BallResolvedData) {
		resolved = append(resolved, ev)
	})
	for i := 0; i < 5000; i++ {
		if _, ok := ballOf(e); !ok {
			break
		}
		tick(e)
	}
	if _, ok := ballOf(e); ok {
		t.Fatal("ball never came to rest")
	}
	if len(resolved) != 1 || !resolved[0].Scored {
		t.Fatalf("resolved events = %+v, want one scored resolution", resolved)
	}
	if got := sess(t, e).Score; got != 1 {
		t.Fatalf("final score = %d, want 1", got)
	}
}

func TestRimBounceDoesNotScore(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	// Descending onto the left rim bar, outside the opening.
	ballEntry := factory.CreateBall(e, gamemath.Vec{X: 176, Y: 140}, gamemath.Vec{Y: 3})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	physics := components.Physics.Get(ballEntry)
	if physics.SpeedY >= 0 {
		t.Errorf("vy = %v after rim contact, want inverted (negative)", physics.SpeedY)
	}
	if physics.SpeedX >= 0 {
		t.Errorf("vx = %v after left rim contact, want pushed left (negative)", physics.SpeedX)
	}

	session := sess(t, e)
	if session.Score != 0 {
		t.Errorf("score = %d after rim bounce, want 0", session.Score)
	}
	if session.Phase != cfg.PhaseFlying {
		t.Errorf("phase = %v, want flying", cfg.PhaseNames[session.Phase])
	}
	if _, ok := ballOf(e); !ok {
		t.Error("ball removed by a rim bounce")
	}
}

// The collision space is cell-based: a ball can share a 16px grid cell
// with a rim solid while still being pixels away from it. Proximity alone
// must not deflect the ball.
func TestNearbyRimSolidDoesNotDeflect(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	// Rising just left of the bin: shares grid cells with the rim and wall
	// solids, touches none of them.
	ballEntry := factory.CreateBall(e, gamemath.Vec{X: 157, Y: 165}, gamemath.Vec{X: 1.5, Y: -3})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	physics := components.Physics.Get(ballEntry)
	wantVX := 1.5 * cfg.Physics.FrictionDecay
	wantVY := (-3 + cfg.Physics.Gravity) * cfg.Physics.FrictionDecay
	if !near(physics.SpeedX, wantVX, 1e-9) {
		t.Errorf("vx = %v, want %v (free flight, no contact)", physics.SpeedX, wantVX)
	}
	if !near(physics.SpeedY, wantVY, 1e-9) {
		t.Errorf("vy = %v, want %v (free flight, no contact)", physics.SpeedY, wantVY)
	}
	if got := sess(t, e).Score; got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

// A fast ground hit bounces off the ground solid: the ball snaps to the
// solid's top edge with vy inverted and damped, and stays in play.
func TestGroundBounceSnapsToGroundSolid(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	ballEntry := factory.CreateBall(e, gamemath.Vec{X: 100, Y: 476}, gamemath.Vec{Y: 5})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	if _, ok := ballOf(e); !ok {
		t.Fatal("fast ball rested on first ground contact")
	}
	obj := components.Object.Get(ballEntry)
	if !near(obj.Y, cfg.C.GroundY-obj.H, 1e-9) {
		t.Errorf("ball top = %v after ground bounce, want %v", obj.Y, cfg.C.GroundY-obj.H)
	}
	wantVY := -(5 + cfg.Physics.Gravity) * cfg.Physics.FrictionDecay * cfg.Physics.GroundBounce
	if got := components.Physics.Get(ballEntry).SpeedY; !near(got, wantVY, 1e-9) {
		t.Errorf("vy = %v after ground bounce, want %v", got, wantVY)
	}
}

// A ball that ends up below the play area resolves instead of falling
// forever.
func TestBallBelowPlayAreaResolves(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	factory.CreateBall(e, gamemath.Vec{X: -20, Y: 600}, gamemath.Vec{})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	if _, ok := ballOf(e); ok {
		t.Fatal("ball below the play area never resolved")
	}
	if got := sess(t, e).Phase; got != cfg.PhaseReady {
		t.Fatalf("phase = %v, want ready", cfg.PhaseNames[got])
	}
}

func TestGroundRestResolvesMiss(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	var resolved []events.BallResolvedData
	events.BallResolved.Subscribe(e.World, func(w donburi.World, ev events.BallResolvedData) {
		resolved = append(resolved, ev)
	})

	// Slow and grazing the ground: rests on the first contact.
	factory.CreateBall(e, gamemath.Vec{X: 100, Y: 474}, gamemath.Vec{X: 0.1, Y: 0.5})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	if _, ok := ballOf(e); ok {
		t.Fatal("slow grounded ball did not rest")
	}
	if len(resolved) != 1 || resolved[0].Scored {
		t.Fatalf("resolved events = %+v, want one miss", resolved)
	}
	session := sess(t, e)
	if session.Score != 0 {
		t.Errorf("score = %d, want 0", session.Score)
	}
	if session.Phase != cfg.PhaseReady {
		t.Errorf("phase = %v, want ready", cfg.PhaseNames[session.Phase])
	}
}

func TestOutOfBoundsResolvesMiss(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	var resolved []events.BallResolvedData
	events.BallResolved.Subscribe(e.World, func(w donburi.World, ev events.BallResolvedData) {
		resolved = append(resolved, ev)
	})

	factory.CreateBall(e, gamemath.Vec{X: -45, Y: 300}, gamemath.Vec{X: -2})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	if _, ok := ballOf(e); ok {
		t.Fatal("ball survived beyond the out-of-bounds margin")
	}
	if len(resolved) != 1 || resolved[0].Scored {
		t.Fatalf("resolved events = %+v, want one miss", resolved)
	}
	if got := sess(t, e).Score; got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestRimPlaneCrossingOutsideOpeningDoesNotScore(t *testing.T) {
	e := newTestECS(t, 5, false)
	startRound(t, e)
	factory.SetBinPosition(e, 200, 150)

	// Crosses the rim plane downward well left of the bin body.
	factory.CreateBall(e, gamemath.Vec{X: 80, Y: 145}, gamemath.Vec{Y: 6})
	sess(t, e).Phase = cfg.PhaseFlying

	tick(e)

	session := sess(t, e)
	if session.Score != 0 {
		t.Fatalf("score = %d for a crossing outside the opening, want 0", session.Score)
	}
	if session.Phase != cfg.PhaseFlying {
		t.Fatalf("phase = %v, want flying", cfg.PhaseNames[session.Phase])
	}
}
