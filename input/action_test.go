package input

import "testing"

func TestButtonActionEdgeAcrossFrames(t *testing.T) {
	a := Action{Name: "Jump", Type: Button, Bindings: []Binding{ButtonBinding(Key("Space"))}}

	held := snapshotWithKeys("Space")
	idle := NewSnapshot()

	// Held for N frames: pressed edge only on the first.
	frames := []struct {
		cur, prev        *Snapshot
		wantLevel        bool
		wantJustPressed  bool
		wantJustReleased bool
	}{
		{held, idle, true, true, false},
		{held, held, true, false, false},
		{held, held, true, false, false},
		{idle, held, false, false, true},
		{idle, idle, false, false, false},
	}

	for i, f := range frames {
		st := a.resolve(f.cur, f.prev)
		if st.Value.Pressed != f.wantLevel || st.JustPressed != f.wantJustPressed || st.JustReleased != f.wantJustReleased {
			t.Fatalf("frame %d: got level=%v pressed=%v released=%v, want %v/%v/%v",
				i, st.Value.Pressed, st.JustPressed, st.JustReleased,
				f.wantLevel, f.wantJustPressed, f.wantJustReleased)
		}
	}
}

func TestButtonActionAggregateEdge(t *testing.T) {
	// Two bound sources. Pressing the second while the first is held must
	// NOT produce a fresh action edge: edges are evaluated against the
	// action's previous aggregate, not per source.
	a := Action{Name: "Fire", Type: Button, Bindings: []Binding{
		ButtonBinding(Key("F")),
		ButtonBinding(PadButton(0, 0)),
	}}

	firstHeld := snapshotWithKeys("F")
	bothHeld := snapshotWithKeys("F")
	bothHeld.SetPadButton(0, 0, true)

	st := a.resolve(bothHeld, firstHeld)
	if !st.Value.Pressed {
		t.Fatalf("action should stay pressed")
	}
	if st.JustPressed {
		t.Fatalf("overlapping source must not re-trigger the action edge")
	}

	// Releasing one of two held sources is not a release edge either.
	st = a.resolve(firstHeld, bothHeld)
	if st.JustReleased || !st.Value.Pressed {
		t.Fatalf("partial release reported an edge: %+v", st)
	}
}

func TestAxisActionFirstNonZeroWins(t *testing.T) {
	a := Action{Name: "Move", Type: Axis2D, Bindings: []Binding{
		DiscreteAxisBinding(Key("D"), Key("A"), Key("W"), Key("S"), Modifiers{Normalize: true}),
		AnalogAxisBinding(PadAxis(0, PadAxisLeftX), PadAxis(0, PadAxisLeftY), Modifiers{Deadzone: 0.15}),
	}}

	t.Run("keyboard_shadows_active_stick", func(t *testing.T) {
		s := snapshotWithKeys("D")
		s.SetPadAxis(0, PadAxisLeftX, -1)
		st := a.resolve(s, NewSnapshot())
		if !almostEqual(st.Value.X, 1) || !almostEqual(st.Value.Y, 0) {
			t.Fatalf("first declared binding must win, got (%v, %v)", st.Value.X, st.Value.Y)
		}
	})

	t.Run("idle_keyboard_falls_through_to_stick", func(t *testing.T) {
		s := snapshotWithStick(0, 0.5, 0)
		st := a.resolve(s, NewSnapshot())
		if st.Value.X <= 0 {
			t.Fatalf("stick should win when keyboard is at rest, got %v", st.Value.X)
		}
	})

	t.Run("stick_inside_deadzone_is_not_a_winner", func(t *testing.T) {
		s := snapshotWithStick(0, 0.1, 0.1)
		st := a.resolve(s, NewSnapshot())
		if st.Value.Magnitude() != 0 {
			t.Fatalf("deadzoned stick must resolve to the zero vector, got %v", st.Value)
		}
	})

	t.Run("all_idle_zero_vector", func(t *testing.T) {
		st := a.resolve(NewSnapshot(), NewSnapshot())
		if st.Value.Magnitude() != 0 || st.JustPressed {
			t.Fatalf("idle action resolved to %+v", st)
		}
	})
}

func TestScalarAction(t *testing.T) {
	a := Action{Name: "Throttle", Type: Scalar, Bindings: []Binding{
		AnalogScalarBinding(PadAxis(0, PadAxisRightY), Modifiers{Deadzone: 0.1, InvertY: false}),
		ButtonBinding(Key("W")),
	}}

	s := NewSnapshot()
	s.SetPadAxis(0, PadAxisRightY, 0.8)
	st := a.resolve(s, NewSnapshot())
	if st.Value.X <= 0 {
		t.Fatalf("analog scalar should resolve, got %v", st.Value.X)
	}

	st = a.resolve(snapshotWithKeys("W"), NewSnapshot())
	if !almostEqual(st.Value.X, 1) {
		t.Fatalf("button fallback scalar = %v, want 1", st.Value.X)
	}
}

func TestActionValidate(t *testing.T) {
	cases := []struct {
		name    string
		action  Action
		wantErr bool
	}{
		{"valid_button", Action{Name: "Jump", Type: Button, Bindings: []Binding{ButtonBinding(Key("Space"))}}, false},
		{"empty_name", Action{Type: Button, Bindings: []Binding{ButtonBinding(Key("Space"))}}, true},
		{"no_bindings", Action{Name: "Jump", Type: Button}, true},
		{"axis_binding_on_button_action", Action{Name: "Jump", Type: Button, Bindings: []Binding{AnalogAxisBinding(PadAxis(0, 0), PadAxis(0, 1), Modifiers{})}}, true},
		{"button_binding_on_axis_action", Action{Name: "Move", Type: Axis2D, Bindings: []Binding{ButtonBinding(Key("W"))}}, true},
		{"malformed_binding_fails_fast", Action{Name: "Move", Type: Axis2D, Bindings: []Binding{{Kind: BindingAnalogAxis2D}}}, true},
		{"2d_binding_on_scalar_action", Action{Name: "Throttle", Type: Scalar, Bindings: []Binding{AnalogAxisBinding(PadAxis(0, 0), PadAxis(0, 1), Modifiers{})}}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.action.validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("validate() = %v, wantErr %v", err, c.wantErr)
			}
		})
	}
}
