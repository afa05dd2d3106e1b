package input

import "fmt"

// ValueType is the semantic type of an action's resolved value.
type ValueType uint8

const (
	Button ValueType = iota
	Scalar
	Axis2D
)

func (t ValueType) String() string {
	switch t {
	case Button:
		return "button"
	case Scalar:
		return "scalar"
	case Axis2D:
		return "axis2d"
	}
	return "unknown"
}

// Action is a named, typed gameplay signal backed by one or more bindings.
// Actions are immutable descriptors; resolved values are transient and
// recomputed every frame.
type Action struct {
	Name     string
	Type     ValueType
	Bindings []Binding
}

// State is an action's resolved value for one frame.
type State struct {
	Value Value
	// JustPressed is true only on the frame the action's aggregate
	// boolean went false -> true; JustReleased the reverse. Edges are
	// evaluated against the action's own previous-frame aggregate, not
	// per source, so overlapping held sources never produce spurious
	// repeat edges.
	JustPressed  bool
	JustReleased bool
}

func (a *Action) validate() error {
	if a.Name == "" {
		return fmt.Errorf("input: action with empty name")
	}
	if len(a.Bindings) == 0 {
		return fmt.Errorf("input: action %q has no bindings", a.Name)
	}
	for i := range a.Bindings {
		b := &a.Bindings[i]
		if err := b.validate(); err != nil {
			return fmt.Errorf("input: action %q binding %d: %w", a.Name, i, err)
		}
		switch a.Type {
		case Button:
			if b.Kind != BindingButton {
				return fmt.Errorf("input: action %q: %s binding on button action", a.Name, b.Kind)
			}
		case Scalar:
			// Buttons read as 0/1, analog bindings contribute their X
			// component. A full 2D binding has no scalar meaning.
			if b.Kind == BindingDiscreteAxis2D {
				return fmt.Errorf("input: action %q: %s binding on scalar action", a.Name, b.Kind)
			}
			if b.Kind == BindingAnalogAxis2D && b.Y.isSet() {
				return fmt.Errorf("input: action %q: 2D analog binding on scalar action", a.Name)
			}
		case Axis2D:
			if b.Kind == BindingButton {
				return fmt.Errorf("input: action %q: %s binding on axis2d action", a.Name, b.Kind)
			}
		default:
			return fmt.Errorf("input: action %q: unknown value type %d", a.Name, a.Type)
		}
	}
	return nil
}

// resolve computes the action's state for the frame from the snapshot pair.
//
// Button actions OR their bindings. Axis2D and Scalar actions walk bindings
// in declaration order and keep the first one with non-zero magnitude;
// simultaneously active devices are deliberately not summed, which keeps a
// resting keyboard from diluting a deflected stick and can never produce an
// over-unit vector. If every binding is at rest the zero value wins.
func (a *Action) resolve(cur, prev *Snapshot) State {
	switch a.Type {
	case Button:
		level, was := false, false
		for i := range a.Bindings {
			b := &a.Bindings[i]
			level = level || b.level(cur)
			was = was || b.level(prev)
		}
		return State{
			Value:        Value{Pressed: level, X: boolAxis(level)},
			JustPressed:  level && !was,
			JustReleased: !level && was,
		}
	case Scalar, Axis2D:
		var v Value
		active, was := false, false
		for i := range a.Bindings {
			b := &a.Bindings[i]
			s := b.sample(cur)
			if !active && s.Magnitude() != 0 {
				v = s
				active = true
			}
			was = was || b.sample(prev).active()
		}
		return State{
			Value:        v,
			JustPressed:  active && !was,
			JustReleased: !active && was,
		}
	}
	return State{}
}

func boolAxis(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
