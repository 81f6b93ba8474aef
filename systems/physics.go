package systems

import (
	"math"

	"github.com/MicahWalkerDesign/bintoss/components"
	cfg "github.com/MicahWalkerDesign/bintoss/config"
	"github.com/MicahWalkerDesign/bintoss/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBallPhysics advances the in-flight ball by one fixed tick: gravity,
// wind, uniform decay, integration, cosmetic spin. Balls being captured are
// driven by their tween instead.
func UpdateBallPhysics(e *ecs.ECS) {
	components.Ball.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Tween) {
			return
		}

		ball := components.Ball.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		physics.SpeedY += cfg.Physics.Gravity

		if windEntry, ok := components.Wind.First(e.World); ok {
			wind := components.Wind.Get(windEntry)
			if wind.Enabled && wind.Speed != 0 {
				physics.SpeedX += wind.Speed*cfg.Wind.Accel +
					math.Copysign(cfg.Wind.Gustiness, wind.Speed)
			}
		}

		physics.SpeedX *= cfg.Physics.FrictionDecay
		physics.SpeedY *= cfg.Physics.FrictionDecay

		ball.PrevY = obj.Y + obj.H/2
		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		obj.Update()

		speed := math.Hypot(physics.SpeedX, physics.SpeedY)
		ball.Rotation += cfg.Physics.SpinFactor * speed

		trail := components.Trail.Get(entry)
		trail.Push(gamemath.Vec{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2})
	})
}
