package component

// Camera follows a target entity with exponential smoothing.
type Camera struct {
	Target     uint64 // Entity handle of the followed entity
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
