package ecs

import "github.com/hollowdrift/hollowdrift/ecs/component"

// Add attaches a component value to an entity. Components are stored as
// pointers so systems mutate them in place.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) {
	if w == nil || !w.IsAlive(e) || value == nil {
		return
	}
	w.store(handle.Kind().ID()).set(e, value)
}

// Remove detaches a component from an entity.
func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if w == nil {
		return false
	}
	return w.store(handle.Kind().ID()).remove(e)
}

// Has reports whether an entity carries the component.
func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w != nil && w.store(handle.Kind().ID()).has(e)
}

// Get returns the entity's component, or (nil, false).
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if w == nil {
		return nil, false
	}
	v := w.store(handle.Kind().ID()).get(e)
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

// ForEach visits every entity carrying the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(e Entity, v *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(handle.Kind().ID())
	for i, e := range s.denseEntities {
		if v, ok := s.denseValues[i].(*T); ok {
			fn(e, v)
		}
	}
}
