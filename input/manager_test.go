package input

import "testing"

func mustContext(t *testing.T, name string, priority int, consume bool, actions []Action) *Context {
	t.Helper()
	ctx, err := NewContext(name, priority, consume, actions)
	if err != nil {
		t.Fatalf("NewContext(%s): %v", name, err)
	}
	return ctx
}

func jumpContext(t *testing.T, name string, priority int, consume bool, key string) *Context {
	t.Helper()
	return mustContext(t, name, priority, consume, []Action{
		{Name: "Jump", Type: Button, Bindings: []Binding{ButtonBinding(Key(key))}},
	})
}

func TestManagerPriorityShadowing(t *testing.T) {
	m := NewManager()
	m.Enable(jumpContext(t, "onfoot", 0, false, "Space"))
	m.Enable(jumpContext(t, "vehicle", 10, false, "E"))

	// Only the low-priority context's key is held; the high one shadows
	// the name at the facade regardless.
	m.Resolve(snapshotWithKeys("Space"), NewSnapshot())
	if m.GetButton("Jump") {
		t.Fatalf("facade should serve the high-priority context's Jump")
	}
	// The shadowed context still sees its own value.
	st, ok := m.ContextAction("onfoot", "Jump")
	if !ok || !st.Value.Pressed {
		t.Fatalf("shadowed context lost its own resolution: ok=%v st=%+v", ok, st)
	}

	// High-priority key held: facade follows it.
	m.Resolve(snapshotWithKeys("E"), NewSnapshot())
	if !m.GetButton("Jump") {
		t.Fatalf("high-priority Jump should reach the facade")
	}
}

func TestManagerTieBreakMostRecentlyEnabled(t *testing.T) {
	m := NewManager()
	m.Enable(jumpContext(t, "first", 5, false, "A"))
	m.Enable(jumpContext(t, "second", 5, false, "B"))

	m.Resolve(snapshotWithKeys("A", "B"), NewSnapshot())
	st, _ := m.ContextAction("second", "Jump")
	if !st.Value.Pressed {
		t.Fatalf("sanity: second context should be pressed")
	}
	// Facade must reflect the most recently enabled of equal priorities.
	m.Resolve(snapshotWithKeys("A"), NewSnapshot())
	if m.GetButton("Jump") {
		t.Fatalf("older context of equal priority should be shadowed")
	}
	m.Resolve(snapshotWithKeys("B"), NewSnapshot())
	if !m.GetButton("Jump") {
		t.Fatalf("most recently enabled context should win the tie")
	}
}

func TestManagerConsumption(t *testing.T) {
	m := NewManager()
	m.Enable(jumpContext(t, "gameplay", 0, false, "Space"))
	menu := mustContext(t, "menu", 100, true, []Action{
		{Name: "Confirm", Type: Button, Bindings: []Binding{ButtonBinding(Key("Enter"))}},
	})

	held := snapshotWithKeys("Space")

	m.Resolve(held, NewSnapshot())
	if !m.GetButton("Jump") {
		t.Fatalf("sanity: Jump should resolve before the menu opens")
	}

	m.Enable(menu)
	m.Resolve(held, held)
	if m.GetButton("Jump") {
		t.Fatalf("consuming context must suppress lower contexts at the facade")
	}
	if _, ok := m.ContextAction("gameplay", "Jump"); ok {
		t.Fatalf("contexts below a consumer must not resolve at all")
	}

	m.Disable("menu")
	m.Resolve(held, held)
	if !m.GetButton("Jump") {
		t.Fatalf("Jump should come back once the consumer is disabled")
	}
}

func TestManagerEnableDisableIdempotent(t *testing.T) {
	m := NewManager()
	a := jumpContext(t, "a", 5, false, "A")
	b := jumpContext(t, "b", 5, false, "B")

	m.Enable(a)
	m.Enable(b)
	// Re-enabling must not move "a" above "b" in the tie-break order.
	m.Enable(a)

	m.Resolve(snapshotWithKeys("A", "B"), NewSnapshot())
	if len(m.stack) != 2 {
		t.Fatalf("duplicate enable grew the stack to %d", len(m.stack))
	}
	if m.stack[0].ctx.Name != "b" {
		t.Fatalf("re-enable changed stack position: top is %q", m.stack[0].ctx.Name)
	}

	// Disabling an absent context is a no-op.
	m.Disable("missing")
	if len(m.stack) != 2 {
		t.Fatalf("disabling an absent context changed the stack")
	}
}

func TestManagerUnknownActionNeutral(t *testing.T) {
	m := NewManager()
	m.Resolve(NewSnapshot(), NewSnapshot())

	if m.GetButton("Nope") || m.WasButtonPressed("Nope") || m.WasButtonReleased("Nope") {
		t.Fatalf("unknown button action should be neutral")
	}
	if x, y := m.GetAxis2D("Nope"); x != 0 || y != 0 {
		t.Fatalf("unknown axis action should be the zero vector")
	}
	if m.GetScalar("Nope") != 0 {
		t.Fatalf("unknown scalar action should be 0")
	}
}

func TestManagerMouseDeltaBypassesShaping(t *testing.T) {
	m := NewManager()
	// No contexts enabled at all: the raw delta still flows.
	m.Sampler().AddMouseDelta(12, -7)
	m.Tick()
	dx, dy := m.GetMouseDelta()
	if dx != 12 || dy != -7 {
		t.Fatalf("mouse delta = (%v, %v), want (12, -7)", dx, dy)
	}

	// Delta resets every tick.
	m.Tick()
	dx, dy = m.GetMouseDelta()
	if dx != 0 || dy != 0 {
		t.Fatalf("mouse delta should reset at swap, got (%v, %v)", dx, dy)
	}
}

func TestManagerTickEdgeSequence(t *testing.T) {
	m := NewManager()
	m.Enable(jumpContext(t, "gameplay", 0, false, "Space"))

	samp := m.Sampler()

	samp.SetKey("Space", true)
	m.Tick()
	if !m.WasButtonPressed("Jump") || !m.GetButton("Jump") {
		t.Fatalf("frame 1: want fresh press")
	}

	m.Tick() // still held
	if m.WasButtonPressed("Jump") {
		t.Fatalf("frame 2: held key must not re-edge")
	}
	if !m.GetButton("Jump") {
		t.Fatalf("frame 2: level state must persist")
	}

	samp.SetKey("Space", false)
	m.Tick()
	if !m.WasButtonReleased("Jump") || m.GetButton("Jump") {
		t.Fatalf("frame 3: want release edge")
	}
}

func TestNewContextValidation(t *testing.T) {
	jump := Action{Name: "Jump", Type: Button, Bindings: []Binding{ButtonBinding(Key("Space"))}}

	cases := []struct {
		name    string
		ctxName string
		actions []Action
		wantErr bool
	}{
		{"valid", "gameplay", []Action{jump}, false},
		{"empty_name", "", []Action{jump}, true},
		{"no_actions", "gameplay", nil, true},
		{"duplicate_action", "gameplay", []Action{jump, jump}, true},
		{"malformed_binding", "gameplay", []Action{
			{Name: "Move", Type: Axis2D, Bindings: []Binding{{Kind: BindingAnalogAxis2D}}},
		}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewContext(c.ctxName, 0, false, c.actions)
			if (err != nil) != c.wantErr {
				t.Fatalf("NewContext() err = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}
