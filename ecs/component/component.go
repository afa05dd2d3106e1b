package component

import "sync/atomic"

// ComponentID identifies a component type at runtime.
type ComponentID uint32

var nextComponentID atomic.Uint32

// Kind is the untyped view of a component kind, used where heterogeneous
// kinds travel together (queries, storage keys).
type Kind interface {
	ID() ComponentID
}

// ComponentKind ties a ComponentID to its Go type.
type ComponentKind[T any] struct {
	id ComponentID
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

// ComponentHandle is the package-level registration a component declares
// once, e.g. `var TransformComponent = NewComponent[Transform]()`.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers a new component type.
func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}
