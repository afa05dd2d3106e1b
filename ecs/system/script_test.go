package system

import (
	"fmt"
	"testing"

	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// contactFixture drops a player and a reactive prop on top of each other so
// the first physics step produces a begin contact.
func contactFixture(t *testing.T, script string, once bool) (*ecs.World, ecs.Entity, ecs.Entity) {
	t.Helper()

	w := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	player := w.CreateEntity()
	ptr := &component.Transform{X: 100, Y: 100}
	ecs.Add(w, player, component.TransformComponent, ptr)
	ecs.Add(w, player, component.PlayerComponent, &component.Player{})
	pbody := &component.PhysicsBody{Width: 20, Height: 20, Mass: 1}
	ecs.Add(w, player, component.PhysicsBodyComponent, pbody)
	pw.AddBody(player, ptr, pbody, ecs.CollidePlayer)

	prop := w.CreateEntity()
	rtr := &component.Transform{X: 105, Y: 100}
	ecs.Add(w, prop, component.TransformComponent, rtr)
	ecs.Add(w, prop, component.ReactionComponent, &component.Reaction{Script: script, Once: once})
	rbody := &component.PhysicsBody{Width: 20, Height: 20, Static: true}
	ecs.Add(w, prop, component.PhysicsBodyComponent, rbody)
	pw.AddBody(prop, rtr, rbody, ecs.CollideProp)

	pw.Step(1.0 / 60.0)
	if len(pw.Contacts()) == 0 {
		t.Fatal("expected an overlap contact after the first step")
	}
	return w, player, prop
}

func sourceLoader(sources map[string]string) LoadScript {
	return func(path string) ([]byte, error) {
		src, ok := sources[path]
		if !ok {
			return nil, fmt.Errorf("no script %s", path)
		}
		return []byte(src), nil
	}
}

func TestScriptAwardAndStatePersistence(t *testing.T) {
	const script = `
on_contact := func(engine, state) {
	if !engine.other_is_player() {
		return
	}
	hits := 0
	if state.hits != undefined {
		hits = state.hits
	}
	hits++
	state.hits = hits
	engine.award(3)
	if hits >= 2 {
		engine.destroy()
	}
}
`
	w, player, prop := contactFixture(t, "test.tengo", false)
	sys := NewScriptSystem(sourceLoader(map[string]string{"test.tengo": script}))

	sys.Update(w)
	p, _ := ecs.Get(w, player, component.PlayerComponent)
	if p.Score != 3 {
		t.Fatalf("expected score 3 after first contact, got %d", p.Score)
	}
	if !w.IsAlive(prop) {
		t.Fatal("prop should survive the first contact")
	}

	// The same begin contact is still pending, so a second pass refires
	// with the persisted state map.
	sys.Update(w)
	if p.Score != 6 {
		t.Fatalf("expected score 6 after second contact, got %d", p.Score)
	}
	if w.IsAlive(prop) {
		t.Fatal("prop should destroy itself on the second hit")
	}
}

func TestScriptOnceFiresOnce(t *testing.T) {
	const script = `
on_contact := func(engine, state) {
	engine.award(1)
}
`
	w, player, _ := contactFixture(t, "once.tengo", true)
	sys := NewScriptSystem(sourceLoader(map[string]string{"once.tengo": script}))

	sys.Update(w)
	sys.Update(w)

	p, _ := ecs.Get(w, player, component.PlayerComponent)
	if p.Score != 1 {
		t.Fatalf("once reaction fired %d times", p.Score)
	}
}

func TestScriptImpulseOtherPushesPlayer(t *testing.T) {
	const script = `
on_contact := func(engine, state) {
	if engine.other_is_player() {
		engine.impulse_other(0, -500)
	}
}
`
	w, player, _ := contactFixture(t, "bounce.tengo", false)
	sys := NewScriptSystem(sourceLoader(map[string]string{"bounce.tengo": script}))
	sys.Update(w)

	pb, _ := ecs.Get(w, player, component.PhysicsBodyComponent)
	if vy := pb.Body.Velocity().Y; vy > -400 {
		t.Fatalf("expected a strong upward velocity, got %v", vy)
	}
}

func TestScriptLoadFailureDoesNotPanic(t *testing.T) {
	w, _, prop := contactFixture(t, "missing.tengo", false)
	sys := NewScriptSystem(sourceLoader(nil))

	sys.Update(w)
	if !w.IsAlive(prop) {
		t.Fatal("load failure must leave the prop alone")
	}
}

func TestScriptCompileFailureDoesNotPanic(t *testing.T) {
	w, _, prop := contactFixture(t, "broken.tengo", false)
	sys := NewScriptSystem(sourceLoader(map[string]string{"broken.tengo": "on_contact := func("}))

	sys.Update(w)
	if !w.IsAlive(prop) {
		t.Fatal("compile failure must leave the prop alone")
	}
}
