package ecs

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// System updates a world once per simulation frame.
type System interface {
	Update(w *World)
}

// DrawSystem renders a world. Systems that also implement DrawSystem are
// called during the draw pass in registration order.
type DrawSystem interface {
	Draw(w *World, screen *ebiten.Image)
}

// World owns entities, component stores, and system order.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	systems  []System

	physics *PhysicsWorld
	pending []Entity // destroyed during the current update pass
	inPass  bool
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*sparseSet)}
}

// CreateEntity allocates a new entity handle.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all its components. Destruction
// requested mid-pass is deferred to the end of the frame so systems never
// see a half-removed entity.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	if w.inPass {
		w.pending = append(w.pending, e)
		return true
	}
	w.destroyNow(e)
	return true
}

func (w *World) destroyNow(e Entity) {
	if !w.entities.destroy(e) {
		return
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	if w.physics != nil {
		w.physics.RemoveBody(e)
	}
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s != nil {
		w.systems = append(w.systems, s)
	}
}

// Update runs all systems once, then flushes deferred destruction.
func (w *World) Update() {
	w.inPass = true
	for _, s := range w.systems {
		s.Update(w)
	}
	w.inPass = false
	for _, e := range w.pending {
		w.destroyNow(e)
	}
	w.pending = w.pending[:0]
}

// Draw runs the draw pass over systems that render.
func (w *World) Draw(screen *ebiten.Image) {
	for _, s := range w.systems {
		if ds, ok := s.(DrawSystem); ok {
			ds.Draw(w, screen)
		}
	}
}

// SetPhysicsWorld attaches a physics world.
func (w *World) SetPhysicsWorld(pw *PhysicsWorld) {
	w.physics = pw
}

// PhysicsWorld returns the attached physics world, if any.
func (w *World) PhysicsWorld() *PhysicsWorld {
	return w.physics
}

func (w *World) store(id component.ComponentID) *sparseSet {
	s, ok := w.stores[id]
	if !ok {
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// Query returns entities that carry every given component kind.
func (w *World) Query(kinds ...component.Kind) []Entity {
	if len(kinds) == 0 {
		return nil
	}
	smallest := w.store(kinds[0].ID())
	for _, k := range kinds[1:] {
		if s := w.store(k.ID()); s.len() < smallest.len() {
			smallest = s
		}
	}
	out := make([]Entity, 0, smallest.len())
outer:
	for _, e := range smallest.entities() {
		for _, k := range kinds {
			if !w.store(k.ID()).has(e) {
				continue outer
			}
		}
		out = append(out, e)
	}
	return out
}

// First returns any one entity carrying the component kind.
func (w *World) First(kind component.Kind) (Entity, bool) {
	ents := w.store(kind.ID()).entities()
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}
