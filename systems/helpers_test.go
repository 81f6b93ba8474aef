package systems

import (
	"math"
	"testing"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestECS builds a headless world with a space, a session and a bin.
// The session starts in the Idle phase; call startRound to make it playable.
func newTestECS(t *testing.T, maxThrows int, windEnabled bool) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateSession(e, maxThrows, windEnabled)
	factory.CreateBin(e)
	return e
}

func startRound(t *testing.T, e *ecs.ECS) {
	t.Helper()
	if err := StartRound(e); err != nil {
		t.Fatalf("StartRound: %v", err)
	}
}

// tick advances the engine by one fixed step in the production system order.
func tick(e *ecs.ECS) {
	UpdateBallPhysics(e)
	UpdateScoring(e)
	UpdateSession(e)
	ProcessEvents(e)
}

// sess fetches the session fresh; component pointers must not be held
// across ticks because archetype moves relocate them.
func sess(t *testing.T, e *ecs.ECS) *components.SessionData {
	t.Helper()
	entry, ok := components.Session.First(e.World)
	if !ok {
		t.Fatal("no session entity")
	}
	return components.Session.Get(entry)
}

func ballOf(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Ball.First(e.World)
}

// setOrigin overrides the throw origin for one test and restores it after.
func setOrigin(t *testing.T, x, y float64) {
	t.Helper()
	ox, oy := cfg.C.OriginX, cfg.C.OriginY
	cfg.C.OriginX, cfg.C.OriginY = x, y
	t.Cleanup(func() { cfg.C.OriginX, cfg.C.OriginY = ox, oy })
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
