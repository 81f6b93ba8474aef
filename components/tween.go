package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData interpolates the ball into the bin during the capture phase.
type TweenData struct {
	X *gween.Tween
	Y *gween.Tween
}

var Tween = donburi.NewComponentType[TweenData]()
