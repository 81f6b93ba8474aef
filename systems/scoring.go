package systems

import (
	"math"
	"math/rand"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/events"
	"github.com/MicahWalkerDesign/bintoss/systems/factory"
	"github.com/MicahWalkerDesign/bintoss/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateScoring resolves the in-flight ball once per tick. Branches are
// mutually exclusive and run in a fixed order: capture animation, scoring
// entry, rim/wall bounce, ground rest, out-of-bounds.
func UpdateScoring(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	ballEntry, ok := components.Ball.First(e.World)
	if !ok {
		return
	}
	ball := components.Ball.Get(ballEntry)
	physics := components.Physics.Get(ballEntry)
	obj := components.Object.Get(ballEntry)

	if ballEntry.HasComponent(components.Tween) {
		updateCapture(e, ballEntry, obj)
		return
	}

	binEntry, ok := components.Bin.First(e.World)
	if !ok {
		return
	}
	bin := components.Bin.Get(binEntry)

	centerX := obj.X + obj.W/2
	centerY := obj.Y + obj.H/2

	// Scoring entry, evaluated only while no score has been recorded for
	// this throw. Two mutually exclusive conditions:
	//   A: the center crossed the rim plane downward inside the opening,
	//   B: the center grazes the rim band inside the opening without
	//      moving strongly upward.
	// Either one latches ValidEntry, so neither can fire twice.
	if !ball.ValidEntry {
		crossed := ball.PrevY < bin.RimY && centerY >= bin.RimY &&
			bin.OpeningContains(centerX)
		grazed := math.Abs(centerY-bin.RimY) <= cfg.Bin.GrazeBand &&
			bin.OpeningContains(centerX) &&
			physics.SpeedY > cfg.Bin.GrazeMaxVyUp
		if crossed || grazed {
			scoreThrow(e, session, ballEntry, ball, bin, obj)
			return
		}
	}

	if bounceBall(physics, obj) {
		return
	}

	if restBall(physics, obj) {
		resolveThrow(e, ballEntry, ball.ValidEntry)
		return
	}

	// Horizontal escape past the margin. A ball below the collision space
	// resolves too: the cell grid starts at x=0, so past the left edge no
	// ground cell can catch it.
	margin := cfg.Physics.OutOfBoundsMargin
	if centerX < -margin || centerX > float64(cfg.C.Width)+margin ||
		centerY > float64(cfg.C.Height)+margin {
		resolveThrow(e, ballEntry, ball.ValidEntry)
	}
}

func scoreThrow(e *ecs.ECS, session *components.SessionData, ballEntry *donburi.Entry, ball *components.BallData, bin *components.BinData, obj *components.ObjectData) {
	ball.ValidEntry = true
	session.Score++
	session.Phase = cfg.PhaseCapturing
	events.ScoreChanged.Publish(e.World, events.ScoreChangedData{Score: session.Score})

	d := float32(cfg.Session.CaptureTicks)
	donburi.Add(ballEntry, components.Tween, &components.TweenData{
		X: gween.New(float32(obj.X), float32(bin.CenterX-ball.Radius), d, ease.OutQuad),
		Y: gween.New(float32(obj.Y), float32(bin.FloorY()-2*ball.Radius), d, ease.OutQuad),
	})
}

func updateCapture(e *ecs.ECS, ballEntry *donburi.Entry, obj *components.ObjectData) {
	tween := components.Tween.Get(ballEntry)
	x, _ := tween.X.Update(1)
	y, done := tween.Y.Update(1)
	obj.X = float64(x)
	obj.Y = float64(y)
	obj.Update()
	if done {
		resolveThrow(e, ballEntry, true)
	}
}

// solidOverlap returns the first object under tag whose box truly
// intersects the ball's box. Check is cell-based and also reports
// neighbors that merely share a grid cell without touching.
func solidOverlap(check *resolv.Collision, ball *resolv.Object, tag string) *resolv.Object {
	for _, o := range check.ObjectsByTags(tag) {
		if ball.X < o.X+o.W && ball.X+ball.W > o.X &&
			ball.Y < o.Y+o.H && ball.Y+ball.H > o.Y {
			return o
		}
	}
	return nil
}

// bounceBall handles rim and side wall contact. Rim bars invert and damp
// the vertical speed and push the ball away from the struck side; walls
// invert and damp the horizontal speed. One positional step is applied so
// the ball separates from the solid it hit. Contact requires true box
// overlap, not just cell proximity.
func bounceBall(physics *components.PhysicsData, obj *components.ObjectData) bool {
	check := obj.Check(0, 0,
		tags.ResolvRimLeft, tags.ResolvRimRight,
		tags.ResolvWallLeft, tags.ResolvWallRight,
	)
	if check == nil {
		return false
	}

	switch {
	case solidOverlap(check, obj.Object, tags.ResolvRimLeft) != nil:
		physics.SpeedY = -physics.SpeedY * cfg.Physics.RimBounce
		physics.SpeedX -= cfg.Physics.RimSidePush
	case solidOverlap(check, obj.Object, tags.ResolvRimRight) != nil:
		physics.SpeedY = -physics.SpeedY * cfg.Physics.RimBounce
		physics.SpeedX += cfg.Physics.RimSidePush
	case solidOverlap(check, obj.Object, tags.ResolvWallLeft) != nil,
		solidOverlap(check, obj.Object, tags.ResolvWallRight) != nil:
		physics.SpeedX = -physics.SpeedX * cfg.Physics.WallBounce
	default:
		// Cell neighbors only, nothing actually touching.
		return false
	}

	obj.X += physics.SpeedX
	obj.Y += physics.SpeedY
	obj.Update()
	return true
}

// restBall handles ground contact, resolved against the ground solid in
// the collision space. Returns true once the ball has come to rest, which
// terminates the throw.
func restBall(physics *components.PhysicsData, obj *components.ObjectData) bool {
	check := obj.Check(0, 0, tags.ResolvGround)
	if check == nil {
		return false
	}
	ground := solidOverlap(check, obj.Object, tags.ResolvGround)
	if ground == nil {
		return false
	}

	obj.Y = ground.Y - obj.H
	physics.SpeedY = -physics.SpeedY * cfg.Physics.GroundBounce
	physics.SpeedX *= cfg.Physics.GroundGrip
	physics.SpeedX += (rand.Float64()*2 - 1) * cfg.Physics.GroundJitter
	obj.Update()

	if math.Hypot(physics.SpeedX, physics.SpeedY) < cfg.Physics.StopSpeed {
		physics.SpeedX = 0
		physics.SpeedY = 0
		return true
	}
	return false
}

// resolveThrow removes the ball and reports the outcome. The valid-entry
// latch decides whether a grounded or out-of-bounds ball still counts as a
// scored throw; the session system moves the phase forward next.
func resolveThrow(e *ecs.ECS, ballEntry *donburi.Entry, scored bool) {
	factory.DestroyBall(e, ballEntry)
	events.BallResolved.Publish(e.World, events.BallResolvedData{Scored: scored})
}
