package system

import (
	"log"

	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// PickupSystem collects pickups the player touches.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	for _, contact := range pw.Contacts() {
		s.collect(w, contact.A, contact.B)
		s.collect(w, contact.B, contact.A)
	}
}

func (s *PickupSystem) collect(w *ecs.World, pickupEnt, playerEnt ecs.Entity) {
	if !pickupEnt.Valid() || !w.IsAlive(pickupEnt) {
		return
	}
	pickup, ok := ecs.Get(w, pickupEnt, component.PickupComponent)
	if !ok {
		return
	}
	player, ok := ecs.Get(w, playerEnt, component.PlayerComponent)
	if !ok {
		return
	}

	player.Score += pickup.Value
	log.Printf("pickup: collected %q (+%d), score=%d", pickup.Kind, pickup.Value, player.Score)
	w.DestroyEntity(pickupEnt)
}
