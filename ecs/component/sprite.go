package component

import "image/color"

// Sprite is a solid-color quad centered on the entity transform.
type Sprite struct {
	Width, Height float64
	Color         color.NRGBA
	// Layer orders drawing; lower draws first.
	Layer int
}

var SpriteComponent = NewComponent[Sprite]()
