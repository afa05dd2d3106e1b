package input

import (
	"errors"
	"fmt"
)

// BindingKind tags how a binding assembles its value from device sources.
type BindingKind uint8

const (
	// BindingButton ORs one or more button-like sources into a boolean.
	BindingButton BindingKind = iota
	// BindingDiscreteAxis2D builds a 2D vector from four button-like
	// sources, one per signed axis direction.
	BindingDiscreteAxis2D
	// BindingAnalogAxis2D reads one or two native analog sources.
	BindingAnalogAxis2D
)

func (k BindingKind) String() string {
	switch k {
	case BindingButton:
		return "button"
	case BindingDiscreteAxis2D:
		return "discrete-axis2d"
	case BindingAnalogAxis2D:
		return "analog-axis2d"
	}
	return "unknown"
}

// Modifiers shape a binding's resolved value. The zero value is a no-op:
// deadzone 0, sensitivity 1 (0 means unspecified), no inversion, no
// normalization.
type Modifiers struct {
	// Deadzone is the radial magnitude below which an analog value clamps
	// to zero. The remaining [Deadzone, 1] range rescales to [0, 1] so the
	// deadzone edge does not produce a value step.
	Deadzone float64
	// Sensitivity multiplies the shaped value. 0 means 1.
	Sensitivity float64
	// InvertY negates the Y component, applied after all other shaping.
	InvertY bool
	// Normalize rescales a discrete 2D vector to unit length when any
	// component is active, so diagonals carry no speed advantage.
	Normalize bool
}

func (m Modifiers) sensitivity() float64 {
	if m.Sensitivity == 0 {
		return 1
	}
	return m.Sensitivity
}

// Binding maps one or more device sources to a value, shaped by modifiers.
// Bindings are immutable authoring-time data; resolution against a snapshot
// pair is pure.
type Binding struct {
	Kind BindingKind

	// Sources feed a BindingButton; any pressed source makes it true.
	Sources []Source

	// Discrete axis pairs: each pressed source contributes +1 or -1 to its
	// component.
	XPos, XNeg, YPos, YNeg Source

	// Analog sources. Y may be unset for scalar use.
	X, Y Source

	Mod Modifiers
}

// ButtonBinding ORs the given button-like sources.
func ButtonBinding(sources ...Source) Binding {
	return Binding{Kind: BindingButton, Sources: sources}
}

// DiscreteAxisBinding assembles a 2D vector from four button-like sources.
func DiscreteAxisBinding(xPos, xNeg, yPos, yNeg Source, mod Modifiers) Binding {
	return Binding{Kind: BindingDiscreteAxis2D, XPos: xPos, XNeg: xNeg, YPos: yPos, YNeg: yNeg, Mod: mod}
}

// AnalogAxisBinding reads a 2D vector from two native analog sources.
func AnalogAxisBinding(x, y Source, mod Modifiers) Binding {
	return Binding{Kind: BindingAnalogAxis2D, X: x, Y: y, Mod: mod}
}

// AnalogScalarBinding reads a 1D value from one native analog source.
func AnalogScalarBinding(x Source, mod Modifiers) Binding {
	return Binding{Kind: BindingAnalogAxis2D, X: x, Mod: mod}
}

var errNoSources = errors.New("input: binding has no sources")

func (b *Binding) validate() error {
	switch b.Kind {
	case BindingButton:
		if len(b.Sources) == 0 {
			return errNoSources
		}
		for _, src := range b.Sources {
			if err := src.validate(); err != nil {
				return err
			}
			if !src.isButton() {
				return fmt.Errorf("input: button binding on non-button %s", src)
			}
		}
	case BindingDiscreteAxis2D:
		for _, src := range []Source{b.XPos, b.XNeg, b.YPos, b.YNeg} {
			if !src.isSet() {
				continue
			}
			if err := src.validate(); err != nil {
				return err
			}
			if !src.isButton() {
				return fmt.Errorf("input: discrete axis binding on non-button %s", src)
			}
		}
		if !b.XPos.isSet() && !b.XNeg.isSet() && !b.YPos.isSet() && !b.YNeg.isSet() {
			return errNoSources
		}
	case BindingAnalogAxis2D:
		if !b.X.isSet() {
			return errNoSources
		}
		if err := b.X.validate(); err != nil {
			return err
		}
		if !b.X.isAxis() {
			return fmt.Errorf("input: analog binding on non-axis %s", b.X)
		}
		if b.Y.isSet() {
			if err := b.Y.validate(); err != nil {
				return err
			}
			if !b.Y.isAxis() {
				return fmt.Errorf("input: analog binding on non-axis %s", b.Y)
			}
		}
	default:
		return fmt.Errorf("input: unknown binding kind %d", b.Kind)
	}
	if b.Mod.Deadzone < 0 || b.Mod.Deadzone >= 1 {
		return fmt.Errorf("input: deadzone %v outside [0, 1)", b.Mod.Deadzone)
	}
	return nil
}

// Value is one resolved binding or action sample.
type Value struct {
	X, Y    float64
	Pressed bool
}

// Magnitude returns the vector length of the value.
func (v Value) Magnitude() float64 {
	return Vec2{X: v.X, Y: v.Y}.Len()
}

func (v Value) active() bool {
	return v.Pressed || v.X != 0 || v.Y != 0
}

// Edge marks a boolean transition of a binding or action across the frame
// boundary.
type Edge struct {
	Pressed  bool
	Released bool
}

// resolve evaluates the binding against a current and previous snapshot
// pair. It is a pure function: the edge falls out of sampling both
// snapshots, no state is carried between calls.
func (b *Binding) resolve(cur, prev *Snapshot) (Value, Edge) {
	v := b.sample(cur)
	p := b.sample(prev)
	return v, Edge{
		Pressed:  v.active() && !p.active(),
		Released: !v.active() && p.active(),
	}
}

// level returns the binding's boolean aggregate at one snapshot.
func (b *Binding) level(s *Snapshot) bool {
	return b.sample(s).active()
}

func (b *Binding) sample(s *Snapshot) Value {
	switch b.Kind {
	case BindingButton:
		for _, src := range b.Sources {
			if s.Pressed(src) {
				return Value{X: 1, Pressed: true}
			}
		}
		return Value{}
	case BindingDiscreteAxis2D:
		var x, y float64
		if s.Pressed(b.XPos) {
			x++
		}
		if s.Pressed(b.XNeg) {
			x--
		}
		if s.Pressed(b.YPos) {
			y++
		}
		if s.Pressed(b.YNeg) {
			y--
		}
		if b.Mod.Normalize {
			if mag := (Vec2{X: x, Y: y}).Len(); mag > 0 {
				x /= mag
				y /= mag
			}
		}
		return b.shape(x, y)
	case BindingAnalogAxis2D:
		x := s.Axis(b.X)
		y := s.Axis(b.Y)
		mag := Vec2{X: x, Y: y}.Len()
		if mag <= b.Mod.Deadzone {
			return Value{}
		}
		// Radial deadzone: clamp deflection to 1, then rescale the live
		// [deadzone, 1] band to [0, 1] along the original direction.
		scaled := (clamp(mag, 0, 1) - b.Mod.Deadzone) / (1 - b.Mod.Deadzone)
		x = x / mag * scaled
		y = y / mag * scaled
		return b.shape(x, y)
	}
	return Value{}
}

// shape applies sensitivity then invertY, the tail of both axis pipelines.
func (b *Binding) shape(x, y float64) Value {
	sens := b.Mod.sensitivity()
	x *= sens
	y *= sens
	if b.Mod.InvertY {
		y = -y
	}
	return Value{X: x, Y: y}
}
