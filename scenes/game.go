package scenes

import (
	"log"
	"sync"

	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/systems"
	"github.com/MicahWalkerDesign/bintoss/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene runs one toss session. Every Ebiten update is one fixed engine
// tick (60 ticks/second), so the per-tick physics constants are decoupled
// from display refresh.
type GameScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewGameScene creates a new game scene using the current config settings.
func NewGameScene(sc SceneChanger) *GameScene {
	return &GameScene{sceneChanger: sc}
}

func (gs *GameScene) Update() {
	gs.once.Do(gs.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		return
	}

	gs.ecs.Update()
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Input applies between ticks; physics, scoring and the session phase
	// machine run in that order; events flush last.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateBallPhysics)
	e.AddSystem(systems.UpdateScoring)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.ProcessEvents)

	e.AddRenderer(cfg.Default, systems.DrawScene)
	e.AddRenderer(cfg.Default, systems.DrawEffects)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	factory.CreateSpace(e)
	factory.CreateSession(e, cfg.Session.MaxThrows, cfg.Wind.Enabled)
	factory.CreateBin(e)

	systems.SubscribeEffects(e)

	if err := systems.StartRound(e); err != nil {
		log.Fatalf("start round: %v", err)
	}

	gs.ecs = e
}
