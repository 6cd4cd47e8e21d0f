package component

import "image/color"

// Sprite is a solid colored rectangle centered on the entity transform.
type Sprite struct {
	Color  color.Color
	Width  float64
	Height float64
	Layer  int
}

var SpriteComponent = NewComponent[Sprite]()
