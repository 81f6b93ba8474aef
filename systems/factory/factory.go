package factory

import (
	"math/rand"

	"github.com/MicahWalkerDesign/bintoss/archetypes"
	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/MicahWalkerDesign/bintoss/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the collision space covering the play area plus the
// out-of-bounds margin, and registers the ground as a static solid.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	margin := cfg.Physics.OutOfBoundsMargin
	w := float64(cfg.C.Width) + 2*margin
	h := float64(cfg.C.Height)

	spaceEntry := archetypes.Space.Spawn(ecs)
	space := resolv.NewSpace(int(w), int(h)+64, 16, 16)
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})

	ground := resolv.NewObject(-margin, cfg.C.GroundY, w, 64, tags.ResolvGround)
	space.Add(ground)

	return spaceEntry
}

// CreateSession spawns the session entity in the Idle phase. StartRound
// moves it to Ready.
func CreateSession(ecs *ecs.ECS, maxThrows int, windEnabled bool) *donburi.Entry {
	e := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(e, components.SessionData{
		MaxThrows: maxThrows,
		Phase:     cfg.PhaseIdle,
		PrevPhase: cfg.PhaseIdle,
	})
	components.Wind.SetValue(e, components.WindData{Enabled: windEnabled})
	return e
}

// CreateBin spawns the bin entity with the configured geometry, unplaced.
// PlaceBin must run before the first throw.
func CreateBin(ecs *ecs.ECS) *donburi.Entry {
	e := archetypes.Bin.Spawn(ecs)
	components.Bin.SetValue(e, components.BinData{
		BodyWidth:    cfg.Bin.BodyWidth,
		BodyHeight:   cfg.Bin.BodyHeight,
		OpeningWidth: cfg.Bin.OpeningWidth,
	})
	return e
}

// PlaceBin executes the lane placement policy: a uniformly random lane, a
// vertical offset uniform within the lane band (inset by half the bin
// height plus a safety margin, so the body never straddles the band), and
// horizontal jitter around the play-area center clamped to the playable
// width. Rebuilds the bin's collision solids.
func PlaceBin(e *ecs.ECS) {
	binEntry, ok := components.Bin.First(e.World)
	if !ok {
		return
	}
	bin := components.Bin.Get(binEntry)
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)

	lane := cfg.Placement.Lanes[rand.Intn(len(cfg.Placement.Lanes))]
	inset := bin.BodyHeight/2 + cfg.Placement.VerticalMargin
	centerY := lane.MinY + inset + rand.Float64()*(lane.MaxY-lane.MinY-2*inset)

	jitter := (rand.Float64()*2 - 1) * cfg.Placement.CenterJitterX
	minX := bin.BodyWidth/2 + cfg.Placement.EdgeMarginX
	maxX := float64(cfg.C.Width) - bin.BodyWidth/2 - cfg.Placement.EdgeMarginX
	centerX := gamemath.ClampRange(float64(cfg.C.Width)/2+jitter, minX, maxX)

	bin.Lane = lane.Name
	bin.CenterX = centerX
	bin.RimY = centerY - bin.BodyHeight/2

	rebuildBinSolids(bin, space.Space)
}

// SetBinPosition pins the bin at an exact center/rim position, bypassing
// the lane policy. Used by tests and debug tooling.
func SetBinPosition(e *ecs.ECS, centerX, rimY float64) {
	binEntry, ok := components.Bin.First(e.World)
	if !ok {
		return
	}
	bin := components.Bin.Get(binEntry)
	spaceEntry, _ := components.Space.First(e.World)
	space := components.Space.Get(spaceEntry)

	bin.CenterX = centerX
	bin.RimY = rimY
	rebuildBinSolids(bin, space.Space)
}

func rebuildBinSolids(bin *components.BinData, space *resolv.Space) {
	for _, obj := range bin.Solids {
		space.Remove(obj)
	}
	bin.Solids = bin.Solids[:0]

	barW := (bin.BodyWidth - bin.OpeningWidth) / 2
	barH := cfg.Bin.RimThickness
	barY := bin.RimY - barH/2

	// Two rim bars flanking the opening, then the side walls below them.
	add := func(x, y, w, h float64, tag string) {
		obj := resolv.NewObject(x, y, w, h, tag)
		space.Add(obj)
		bin.Solids = append(bin.Solids, obj)
	}
	add(bin.BodyLeft(), barY, barW, barH, tags.ResolvRimLeft)
	add(bin.OpeningRight(), barY, barW, barH, tags.ResolvRimRight)
	wallTop := bin.RimY + barH/2
	wallH := bin.FloorY() - wallTop
	add(bin.BodyLeft(), wallTop, barW, wallH, tags.ResolvWallLeft)
	add(bin.OpeningRight(), wallTop, barW, wallH, tags.ResolvWallRight)
}

// CreateBall spawns the projectile at a center position with an initial
// velocity and registers it in the collision space.
func CreateBall(e *ecs.ECS, center, velocity gamemath.Vec) *donburi.Entry {
	ballEntry := archetypes.Ball.Spawn(e)

	r := cfg.Ball.Radius
	obj := resolv.NewObject(center.X-r, center.Y-r, 2*r, 2*r, tags.ResolvBall)
	obj.Data = ballEntry

	spaceEntry, _ := components.Space.First(e.World)
	components.Space.Get(spaceEntry).Add(obj)

	components.Object.SetValue(ballEntry, components.ObjectData{Object: obj})
	components.Ball.SetValue(ballEntry, components.BallData{
		Radius:   r,
		InFlight: true,
		PrevY:    center.Y,
	})
	components.Physics.SetValue(ballEntry, components.PhysicsData{
		SpeedX: velocity.X,
		SpeedY: velocity.Y,
	})
	components.Trail.SetValue(ballEntry, components.TrailData{
		Positions: make([]gamemath.Vec, cfg.Ball.TrailLength),
	})

	return ballEntry
}

// DestroyBall removes the ball entity and its collision object.
func DestroyBall(e *ecs.ECS, ballEntry *donburi.Entry) {
	obj := components.Object.Get(ballEntry)
	if spaceEntry, ok := components.Space.First(e.World); ok {
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(ballEntry.Entity())
}
