package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/component"
)

// LoadScript reads a reaction script source by prefab-relative path.
type LoadScript func(path string) ([]byte, error)

// ScriptSystem runs tengo collision reactions. When a begin contact touches
// an entity with a Reaction component, the script's on_contact function
// fires with an engine table of gameplay verbs and a per-entity state map
// that persists across triggers.
type ScriptSystem struct {
	load  LoadScript
	cache map[ecs.Entity]*reactionRuntime
}

func NewScriptSystem(load LoadScript) *ScriptSystem {
	return &ScriptSystem{
		load:  load,
		cache: make(map[ecs.Entity]*reactionRuntime),
	}
}

// Invalidate drops all compiled scripts so edited sources reload lazily.
func (s *ScriptSystem) Invalidate() {
	clear(s.cache)
}

func (s *ScriptSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	for _, contact := range pw.Contacts() {
		s.fire(w, contact.A, contact.B)
		s.fire(w, contact.B, contact.A)
	}
}

func (s *ScriptSystem) fire(w *ecs.World, owner, other ecs.Entity) {
	if !owner.Valid() || !w.IsAlive(owner) {
		return
	}
	reaction, ok := ecs.Get(w, owner, component.ReactionComponent)
	if !ok || reaction.Script == "" || (reaction.Once && reaction.Fired) {
		return
	}

	rt, err := s.runtime(owner, reaction.Script)
	if err != nil {
		log.Printf("script: entity=%s load %s: %v", owner, reaction.Script, err)
		return
	}

	reaction.Fired = true
	engine := s.buildEngine(w, owner, other)
	if err := rt.run("contact", engine); err != nil {
		log.Printf("script: entity=%s on_contact error: %v", owner, err)
	}
}

func (s *ScriptSystem) runtime(e ecs.Entity, path string) (*reactionRuntime, error) {
	if rt, ok := s.cache[e]; ok && rt.scriptPath == path {
		return rt, nil
	}
	if s.load == nil {
		return nil, fmt.Errorf("no script loader configured")
	}
	src, err := s.load(path)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(append(src, []byte(reactionDispatchScript)...))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}

	rt := &reactionRuntime{
		scriptPath: path,
		compiled:   compiled,
		state:      &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.cache[e] = rt
	return rt, nil
}

const reactionDispatchScript = `
if __phase == "contact" {
	on_contact(__engine, __state)
}
`

type reactionRuntime struct {
	scriptPath string
	compiled   *tengo.Compiled
	state      *tengo.Map
}

func (rt *reactionRuntime) run(phase string, engine *tengo.ImmutableMap) error {
	if err := rt.compiled.Set("__phase", phase); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.state); err != nil {
		return err
	}
	return rt.compiled.Run()
}

// buildEngine exposes the gameplay verbs a reaction may use.
func (s *ScriptSystem) buildEngine(w *ecs.World, owner, other ecs.Entity) *tengo.ImmutableMap {
	verbs := map[string]tengo.Object{
		"destroy": &tengo.UserFunction{Name: "destroy", Value: func(_ ...tengo.Object) (tengo.Object, error) {
			w.DestroyEntity(owner)
			return tengo.UndefinedValue, nil
		}},
		"impulse": &tengo.UserFunction{Name: "impulse", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			x, _ := tengo.ToFloat64(args[0])
			y, _ := tengo.ToFloat64(args[1])
			if pb, ok := ecs.Get(w, owner, component.PhysicsBodyComponent); ok && pb.Body != nil {
				vel := pb.Body.Velocity()
				pb.Body.SetVelocity(vel.X+x, vel.Y+y)
			}
			return tengo.UndefinedValue, nil
		}},
		"impulse_other": &tengo.UserFunction{Name: "impulse_other", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			x, _ := tengo.ToFloat64(args[0])
			y, _ := tengo.ToFloat64(args[1])
			if pb, ok := ecs.Get(w, other, component.PhysicsBodyComponent); ok && pb.Body != nil {
				vel := pb.Body.Velocity()
				pb.Body.SetVelocity(vel.X+x, vel.Y+y)
			}
			return tengo.UndefinedValue, nil
		}},
		"other_is_player": &tengo.UserFunction{Name: "other_is_player", Value: func(_ ...tengo.Object) (tengo.Object, error) {
			if other.Valid() && ecs.Has(w, other, component.PlayerComponent) {
				return tengo.TrueValue, nil
			}
			return tengo.FalseValue, nil
		}},
		"award": &tengo.UserFunction{Name: "award", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			n, _ := tengo.ToInt(args[0])
			if player, ok := ecs.Get(w, other, component.PlayerComponent); ok {
				player.Score += n
			}
			return tengo.UndefinedValue, nil
		}},
		"log": &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) == 1 {
				msg, _ := tengo.ToString(args[0])
				log.Printf("script: entity=%s: %s", owner, msg)
			}
			return tengo.UndefinedValue, nil
		}},
	}
	return &tengo.ImmutableMap{Value: verbs}
}
