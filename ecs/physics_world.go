package ecs

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/hollowdrift/hollowdrift/common"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// CollisionKind selects a shape's Chipmunk collision type.
type CollisionKind int

const (
	CollideSolid CollisionKind = iota + 1
	CollidePlayer
	CollideProp
	CollidePickup
)

// Contact is one begin-contact event between two tracked entities. Static
// level geometry reports as the zero Entity.
type Contact struct {
	A, B Entity
}

// Involves reports whether the contact touches the entity.
func (c Contact) Involves(e Entity) bool {
	return c.A == e || c.B == e
}

// Other returns the contact's other participant.
func (c Contact) Other(e Entity) Entity {
	if c.A == e {
		return c.B
	}
	return c.A
}

// PhysicsWorld owns the Chipmunk space, the static level geometry, and the
// shape-to-entity bookkeeping. Begin-contact events queue up during Step and
// are drained once per frame by the reaction systems.
type PhysicsWorld struct {
	space         *cp.Space
	shapeToEntity map[*cp.Shape]Entity
	contacts      []Contact
}

// NewPhysicsWorld creates a space with the game's downward gravity.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: common.Gravity})

	pw := &PhysicsWorld{
		space:         space,
		shapeToEntity: make(map[*cp.Shape]Entity),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	return pw.space
}

func (pw *PhysicsWorld) setupHandlers() {
	begin := func(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
		sa, sb := arb.Shapes()
		pw.contacts = append(pw.contacts, Contact{
			A: pw.shapeToEntity[sa],
			B: pw.shapeToEntity[sb],
		})
		return true
	}

	for _, kind := range []CollisionKind{CollideProp, CollidePickup, CollideSolid} {
		h := pw.space.NewCollisionHandler(cp.CollisionType(CollidePlayer), cp.CollisionType(kind))
		h.BeginFunc = begin
	}
	propProp := pw.space.NewCollisionHandler(cp.CollisionType(CollideProp), cp.CollisionType(CollideProp))
	propProp.BeginFunc = begin
}

// AddStaticBox adds one axis-aligned static collision box (world pixels,
// top-left anchored) for level geometry.
func (pw *PhysicsWorld) AddStaticBox(x, y, w, h float64) {
	body := pw.space.StaticBody
	shape := cp.NewBox2(body, cp.BB{L: x, B: y, R: x + w, T: y + h}, 0)
	shape.SetFriction(0.8)
	shape.SetCollisionType(cp.CollisionType(CollideSolid))
	pw.space.AddShape(shape)
}

// AddBody creates a dynamic (or static) body and box shape for an entity
// from its physics component, registers it for contact lookup, and writes
// the runtime handles back into the component.
func (pw *PhysicsWorld) AddBody(e Entity, t *component.Transform, pb *component.PhysicsBody, kind CollisionKind) {
	if pb == nil || t == nil {
		return
	}

	var body *cp.Body
	if pb.Static {
		body = cp.NewStaticBody()
	} else {
		mass := pb.Mass
		if mass <= 0 {
			mass = 1
		}
		moment := cp.MomentForBox(mass, pb.Width, pb.Height)
		if pb.FixedRotation {
			moment = math.Inf(1)
		}
		body = cp.NewBody(mass, moment)
	}
	body.SetPosition(cp.Vector{X: t.X, Y: t.Y})

	shape := cp.NewBox(body, pb.Width, pb.Height, 0)
	friction := pb.Friction
	if friction == 0 {
		friction = 0.8
	}
	shape.SetFriction(friction)
	shape.SetElasticity(pb.Elasticity)
	shape.SetCollisionType(cp.CollisionType(kind))
	shape.SetSensor(pb.Sensor)

	pw.space.AddBody(body)
	pw.space.AddShape(shape)
	pw.shapeToEntity[shape] = e

	pb.Body = body
	pb.Shape = shape
}

// RemoveBody tears down an entity's body and shape, if registered.
func (pw *PhysicsWorld) RemoveBody(e Entity) {
	for shape, owner := range pw.shapeToEntity {
		if owner != e {
			continue
		}
		delete(pw.shapeToEntity, shape)
		pw.space.RemoveShape(shape)
		if body := shape.Body(); body != nil && body != pw.space.StaticBody {
			pw.space.RemoveBody(body)
		}
	}
}

// Step advances the simulation. Begin-contact events from the step replace
// the previous frame's queue.
func (pw *PhysicsWorld) Step(dt float64) {
	pw.contacts = pw.contacts[:0]
	pw.space.Step(dt)
}

// Contacts returns the begin-contact events of the latest Step. The slice
// is valid until the next Step.
func (pw *PhysicsWorld) Contacts() []Contact {
	return pw.contacts
}
