package system

import (
	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

const physicsStep = 1.0 / 60.0

// PhysicsSystem steps the Chipmunk space and syncs transforms back from
// body positions.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}
	pw.Step(physicsStep)

	for _, e := range w.Query(component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		if pb == nil || tr == nil || pb.Body == nil {
			continue
		}
		pos := pb.Body.Position()
		tr.X = pos.X
		tr.Y = pos.Y
		tr.Rotation = pb.Body.Angle()
	}
}
