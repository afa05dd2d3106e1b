package component

// Transform is an entity's world-space position in pixels.
type Transform struct {
	X, Y     float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
