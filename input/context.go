package input

import "fmt"

// Context bundles the actions of one coherent control scheme (on-foot,
// vehicle, menu, ...). A context is an immutable descriptor; only its stack
// membership changes at runtime.
//
// Action names are unique within a context but may repeat across contexts:
// the same "Jump" can carry different bindings per scheme, and the stack
// decides which one the facade serves.
type Context struct {
	Name string
	// Priority orders the stack; higher resolves first.
	Priority int
	// ConsumeInput makes the context modal: while it is enabled, no
	// lower-priority context resolves at all for the frame.
	ConsumeInput bool
	Actions      []Action
}

// NewContext validates and builds a context. Malformed bindings, duplicate
// action names, and type/kind mismatches are construction-time errors; the
// per-frame resolution path never validates and never fails.
func NewContext(name string, priority int, consumeInput bool, actions []Action) (*Context, error) {
	if name == "" {
		return nil, fmt.Errorf("input: context with empty name")
	}
	if len(actions) == 0 {
		return nil, fmt.Errorf("input: context %q has no actions", name)
	}
	seen := make(map[string]struct{}, len(actions))
	for i := range actions {
		a := &actions[i]
		if err := a.validate(); err != nil {
			return nil, fmt.Errorf("input: context %q: %w", name, err)
		}
		if _, dup := seen[a.Name]; dup {
			return nil, fmt.Errorf("input: context %q: duplicate action %q", name, a.Name)
		}
		seen[a.Name] = struct{}{}
	}
	return &Context{
		Name:         name,
		Priority:     priority,
		ConsumeInput: consumeInput,
		Actions:      actions,
	}, nil
}
