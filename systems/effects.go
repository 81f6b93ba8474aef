package systems

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/events"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render-side particle burst on score. Pure observer of the score event;
// the engine core never sees it.

type particle struct {
	x, y   float64
	vx, vy float64
	life   int
}

const particleLife = 36

var particles []particle

// SubscribeEffects registers the score-burst observer on the world.
func SubscribeEffects(e *ecs.ECS) {
	particles = particles[:0]
	events.ScoreChanged.Subscribe(e.World, func(w donburi.World, _ events.ScoreChangedData) {
		binEntry, ok := components.Bin.First(w)
		if !ok {
			return
		}
		bin := components.Bin.Get(binEntry)
		for i := 0; i < 16; i++ {
			angle := rand.Float64() * 2 * math.Pi
			speed := 1.0 + rand.Float64()*2.0
			particles = append(particles, particle{
				x:    bin.CenterX,
				y:    bin.RimY,
				vx:   math.Cos(angle) * speed,
				vy:   math.Sin(angle)*speed - 1.5,
				life: particleLife,
			})
		}
	})
}

func UpdateEffects(e *ecs.ECS) {
	alive := particles[:0]
	for _, p := range particles {
		p.x += p.vx
		p.y += p.vy
		p.vy += cfg.Physics.Gravity * 0.5
		p.life--
		if p.life > 0 {
			alive = append(alive, p)
		}
	}
	particles = alive
}

func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	for _, p := range particles {
		frac := float64(p.life) / particleLife
		clr := color.NRGBA{R: 255, G: 210, B: 90, A: uint8(255 * frac)}
		vector.DrawFilledCircle(screen, float32(p.x), float32(p.y), 2, clr, true)
	}
}
