package components

import (
	"github.com/yohamta/donburi"
)

// WindData is rolled once per round. Speed is signed; positive blows right.
type WindData struct {
	Enabled bool
	Speed   float64
}

var Wind = donburi.NewComponentType[WindData]()
