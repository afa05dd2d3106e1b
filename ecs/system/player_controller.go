package system

import (
	"github.com/jakecoffman/cp"

	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// PlayerControllerSystem turns intents into forces on the player body.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	for _, e := range w.Query(component.PlayerComponent.Kind(), component.IntentComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		player, _ := ecs.Get(w, e, component.PlayerComponent)
		intent, _ := ecs.Get(w, e, component.IntentComponent)
		pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if player == nil || intent == nil || pb == nil || pb.Body == nil {
			continue
		}

		player.Grounded = grounded(pb.Body)

		vel := pb.Body.Velocity()
		vel.X = intent.MoveX * player.MoveSpeed
		if intent.JumpPressed && player.Grounded {
			vel.Y = -player.JumpSpeed
		}
		pb.Body.SetVelocity(vel.X, vel.Y)
	}
}

// grounded checks the body's contacts for a supporting surface below it.
func grounded(body *cp.Body) bool {
	supported := false
	body.EachArbiter(func(arb *cp.Arbiter) {
		first, _ := arb.Bodies()
		n := arb.Normal()
		if first != body {
			n = n.Neg()
		}
		// Normal now points from the player toward the other shape; a
		// supporting contact is below the player (+Y, screen coords).
		if n.Y > 0.7 {
			supported = true
		}
	})
	return supported
}
