package main

import (
	"fmt"
	"log"

	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
	"github.com/hollowdrift/hollowdrift/levels"
	"github.com/hollowdrift/hollowdrift/prefabs"
)

// spawnPlayer builds the player entity from its prefab at the level spawn.
func spawnPlayer(w *ecs.World, lvl *levels.Level) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}

	x, y := lvl.SpawnPosition()
	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	ecs.Add(w, e, component.IntentComponent, &component.Intent{})
	ecs.Add(w, e, component.PlayerComponent, &component.Player{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
	})

	sprite, err := spriteFromSpec(spec.Sprite)
	if err != nil {
		return 0, fmt.Errorf("player sprite: %w", err)
	}
	ecs.Add(w, e, component.SpriteComponent, sprite)

	body := bodyFromSpec(spec.Body)
	ecs.Add(w, e, component.PhysicsBodyComponent, body)
	if tr, ok := ecs.Get(w, e, component.TransformComponent); ok {
		w.PhysicsWorld().AddBody(e, tr, body, ecs.CollidePlayer)
	}
	return e, nil
}

// spawnCamera builds the follow camera locked onto the target entity.
func spawnCamera(w *ecs.World, target ecs.Entity) error {
	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return err
	}

	e := w.CreateEntity()
	tx, ty := 0.0, 0.0
	if tr, ok := ecs.Get(w, target, component.TransformComponent); ok {
		tx, ty = tr.X, tr.Y
	}
	ecs.Add(w, e, component.TransformComponent, &component.Transform{X: tx, Y: ty})
	ecs.Add(w, e, component.CameraComponent, &component.Camera{
		Target:     uint64(target),
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
	return nil
}

// spawnProps instantiates every entity placement in the level from the
// prop catalog. Unknown prop names are logged and skipped so a typo in a
// level file doesn't take the whole level down.
func spawnProps(w *ecs.World, lvl *levels.Level) error {
	catalog, err := prefabs.LoadPropSpecs()
	if err != nil {
		return err
	}

	for _, pl := range lvl.Entities {
		spec, ok := catalog[pl.Type]
		if !ok {
			log.Printf("game: level places unknown prop %q at (%d,%d)", pl.Type, pl.X, pl.Y)
			continue
		}
		if err := spawnProp(w, spec, pl); err != nil {
			return fmt.Errorf("spawn %s: %w", pl.Type, err)
		}
	}
	return nil
}

func spawnProp(w *ecs.World, spec prefabs.PropSpec, pl levels.Placement) error {
	x := float64(pl.X)*levels.TileSize + levels.TileSize/2
	y := float64(pl.Y)*levels.TileSize + levels.TileSize/2

	e := w.CreateEntity()
	ecs.Add(w, e, component.TransformComponent, &component.Transform{X: x, Y: y})

	sprite, err := spriteFromSpec(spec.Sprite)
	if err != nil {
		return err
	}
	ecs.Add(w, e, component.SpriteComponent, sprite)

	if spec.Reaction != "" {
		ecs.Add(w, e, component.ReactionComponent, &component.Reaction{
			Script: spec.Reaction,
			Once:   spec.Once,
		})
	}

	kind := ecs.CollideProp
	if spec.Pickup != nil {
		kind = ecs.CollidePickup
		value := spec.Pickup.Value
		// Level placements may override the catalog value.
		if raw, ok := pl.Props["value"]; ok {
			if f, ok := raw.(float64); ok {
				value = int(f)
			}
		}
		ecs.Add(w, e, component.PickupComponent, &component.Pickup{
			Kind:  spec.Pickup.Kind,
			Value: value,
		})
	}

	body := bodyFromSpec(spec.Body)
	ecs.Add(w, e, component.PhysicsBodyComponent, body)
	if tr, ok := ecs.Get(w, e, component.TransformComponent); ok {
		w.PhysicsWorld().AddBody(e, tr, body, kind)
	}
	return nil
}

func spriteFromSpec(spec prefabs.SpriteSpec) (*component.Sprite, error) {
	tint, err := levels.ParseColor(spec.Color)
	if err != nil {
		return nil, err
	}
	return &component.Sprite{
		Width:  spec.Width,
		Height: spec.Height,
		Color:  tint,
		Layer:  spec.Layer,
	}, nil
}

func bodyFromSpec(spec prefabs.BodySpec) *component.PhysicsBody {
	return &component.PhysicsBody{
		Width:         spec.Width,
		Height:        spec.Height,
		Mass:          spec.Mass,
		Friction:      spec.Friction,
		Elasticity:    spec.Elasticity,
		FixedRotation: spec.FixedRotation,
		Sensor:        spec.Sensor,
		Static:        spec.Static,
	}
}
