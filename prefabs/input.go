package prefabs

import (
	"fmt"

	"github.com/hollowdrift/hollowdrift/input"
)

// InputSpec is the root of input.yaml: the authored control schemes.
type InputSpec struct {
	Contexts []ContextSpec `yaml:"contexts"`
}

// ContextSpec authors one input context.
type ContextSpec struct {
	Name         string       `yaml:"name"`
	Priority     int          `yaml:"priority"`
	ConsumeInput bool         `yaml:"consume_input"`
	Actions      []ActionSpec `yaml:"actions"`
}

// ActionSpec authors one named action.
type ActionSpec struct {
	Name     string        `yaml:"name"`
	Type     string        `yaml:"type"` // button | scalar | axis2d
	Bindings []BindingSpec `yaml:"bindings"`
}

// BindingSpec authors one binding of any kind.
type BindingSpec struct {
	Kind    string       `yaml:"kind"` // button | discrete | analog
	Sources []SourceSpec `yaml:"sources"`

	XPositive *SourceSpec `yaml:"x_positive"`
	XNegative *SourceSpec `yaml:"x_negative"`
	YPositive *SourceSpec `yaml:"y_positive"`
	YNegative *SourceSpec `yaml:"y_negative"`

	X *SourceSpec `yaml:"x"`
	Y *SourceSpec `yaml:"y"`

	Modifiers ModifierSpec `yaml:"modifiers"`
}

// ModifierSpec authors binding modifiers; zero values mean unshaped.
type ModifierSpec struct {
	Deadzone    float64 `yaml:"deadzone"`
	Sensitivity float64 `yaml:"sensitivity"`
	InvertY     bool    `yaml:"invert_y"`
	Normalize   bool    `yaml:"normalize"`
}

// SourceSpec authors one device source. Exactly one of the channel fields
// must be set.
type SourceSpec struct {
	Key         string `yaml:"key"`
	MouseButton *int   `yaml:"mouse_button"`
	MouseAxis   string `yaml:"mouse_axis"` // x | y
	PadButton   *int   `yaml:"pad_button"`
	PadAxis     *int   `yaml:"pad_axis"`
	Pad         int    `yaml:"pad"`
}

// LoadInputContexts reads input.yaml and builds validated contexts. Any
// authoring mistake surfaces here, at load time, through input.NewContext's
// fail-fast construction.
func LoadInputContexts() (map[string]*input.Context, error) {
	spec, err := LoadSpec[InputSpec]("input.yaml")
	if err != nil {
		return nil, err
	}
	return BuildInputContexts(spec)
}

// BuildInputContexts converts an InputSpec into runtime contexts keyed by
// name.
func BuildInputContexts(spec InputSpec) (map[string]*input.Context, error) {
	out := make(map[string]*input.Context, len(spec.Contexts))
	for _, cs := range spec.Contexts {
		actions := make([]input.Action, 0, len(cs.Actions))
		for _, as := range cs.Actions {
			action, err := buildAction(as)
			if err != nil {
				return nil, fmt.Errorf("prefabs: input.yaml: context %q: %w", cs.Name, err)
			}
			actions = append(actions, action)
		}
		ctx, err := input.NewContext(cs.Name, cs.Priority, cs.ConsumeInput, actions)
		if err != nil {
			return nil, fmt.Errorf("prefabs: input.yaml: %w", err)
		}
		if _, dup := out[cs.Name]; dup {
			return nil, fmt.Errorf("prefabs: input.yaml: duplicate context %q", cs.Name)
		}
		out[cs.Name] = ctx
	}
	return out, nil
}

func buildAction(as ActionSpec) (input.Action, error) {
	var t input.ValueType
	switch as.Type {
	case "button":
		t = input.Button
	case "scalar":
		t = input.Scalar
	case "axis2d":
		t = input.Axis2D
	default:
		return input.Action{}, fmt.Errorf("action %q: unknown type %q", as.Name, as.Type)
	}

	bindings := make([]input.Binding, 0, len(as.Bindings))
	for i, bs := range as.Bindings {
		b, err := buildBinding(bs)
		if err != nil {
			return input.Action{}, fmt.Errorf("action %q binding %d: %w", as.Name, i, err)
		}
		bindings = append(bindings, b)
	}
	return input.Action{Name: as.Name, Type: t, Bindings: bindings}, nil
}

func buildBinding(bs BindingSpec) (input.Binding, error) {
	mod := input.Modifiers{
		Deadzone:    bs.Modifiers.Deadzone,
		Sensitivity: bs.Modifiers.Sensitivity,
		InvertY:     bs.Modifiers.InvertY,
		Normalize:   bs.Modifiers.Normalize,
	}

	switch bs.Kind {
	case "button":
		sources := make([]input.Source, 0, len(bs.Sources))
		for _, ss := range bs.Sources {
			src, err := buildSource(ss)
			if err != nil {
				return input.Binding{}, err
			}
			sources = append(sources, src)
		}
		b := input.ButtonBinding(sources...)
		b.Mod = mod
		return b, nil
	case "discrete":
		var pairs [4]input.Source
		for i, ss := range []*SourceSpec{bs.XPositive, bs.XNegative, bs.YPositive, bs.YNegative} {
			if ss == nil {
				continue
			}
			src, err := buildSource(*ss)
			if err != nil {
				return input.Binding{}, err
			}
			pairs[i] = src
		}
		return input.DiscreteAxisBinding(pairs[0], pairs[1], pairs[2], pairs[3], mod), nil
	case "analog":
		if bs.X == nil {
			return input.Binding{}, fmt.Errorf("analog binding without x source")
		}
		x, err := buildSource(*bs.X)
		if err != nil {
			return input.Binding{}, err
		}
		if bs.Y == nil {
			return input.AnalogScalarBinding(x, mod), nil
		}
		y, err := buildSource(*bs.Y)
		if err != nil {
			return input.Binding{}, err
		}
		return input.AnalogAxisBinding(x, y, mod), nil
	}
	return input.Binding{}, fmt.Errorf("unknown binding kind %q", bs.Kind)
}

func buildSource(ss SourceSpec) (input.Source, error) {
	set := 0
	var src input.Source
	if ss.Key != "" {
		src = input.Key(ss.Key)
		set++
	}
	if ss.MouseButton != nil {
		src = input.MouseButton(*ss.MouseButton)
		set++
	}
	if ss.MouseAxis != "" {
		switch ss.MouseAxis {
		case "x":
			src = input.MouseAxis(input.MouseAxisX)
		case "y":
			src = input.MouseAxis(input.MouseAxisY)
		default:
			return input.Source{}, fmt.Errorf("unknown mouse axis %q", ss.MouseAxis)
		}
		set++
	}
	if ss.PadButton != nil {
		src = input.PadButton(ss.Pad, *ss.PadButton)
		set++
	}
	if ss.PadAxis != nil {
		src = input.PadAxis(ss.Pad, *ss.PadAxis)
		set++
	}
	if set != 1 {
		return input.Source{}, fmt.Errorf("source must set exactly one channel, got %d", set)
	}
	return src, nil
}
