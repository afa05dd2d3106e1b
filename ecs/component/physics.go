package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk runtime data and the collider configuration
// it was built from.
type PhysicsBody struct {
	Body  *cp.Body
	Shape *cp.Shape

	Width, Height float64
	Mass          float64
	Friction      float64
	Elasticity    float64
	FixedRotation bool
	Sensor        bool
	Static        bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
