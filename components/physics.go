package components

import (
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX float64
	SpeedY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
