package ecs

import "github.com/milk9111/voxelcam/ecs/component"

// Add inserts or replaces the component of the given kind on e and marks it
// changed.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if w == nil || !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	w.storeFor(kind.ID(), true).Set(int(e.id()), value, w.tick)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.storeFor(kind.ID(), false).Remove(int(e.id()))
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.storeFor(kind.ID(), false).Has(int(e.id()))
}

// Get returns the stored component. Mutating it in place does not mark it
// changed; call MarkChanged for that.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if w == nil || !w.entities.isAlive(e) {
		return nil, false
	}
	value, ok := w.storeFor(kind.ID(), false).Get(int(e.id())).(*T)
	if !ok || value == nil {
		return nil, false
	}
	return value, true
}

// MarkChanged stamps the component of e with the current change tick.
func MarkChanged[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	return w.storeFor(kind.ID(), false).Touch(int(e.id()), w.tick)
}

// ChangedSince reports whether the component of e was written after tick.
func ChangedSince[T any](w *World, e Entity, kind component.ComponentKind[T], tick uint64) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	stamp, ok := w.storeFor(kind.ID(), false).Tick(int(e.id()))
	return ok && stamp > tick
}

// ForEach calls fn for every live entity with a component of the given kind.
// The entity list is snapshotted first, so fn may add or remove components.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	forEachSince(w, kind, 0, false, fn)
}

// ForEachChanged is ForEach restricted to components written after tick.
func ForEachChanged[T any](w *World, kind component.ComponentKind[T], tick uint64, fn func(Entity, *T)) {
	forEachSince(w, kind, tick, true, fn)
}

func forEachSince[T any](w *World, kind component.ComponentKind[T], tick uint64, onlyChanged bool, fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	set := w.storeFor(kind.ID(), false)
	if set.Len() == 0 {
		return
	}
	ids := append([]int(nil), set.Entities()...)
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		if onlyChanged {
			stamp, ok := set.Tick(id)
			if !ok || stamp <= tick {
				continue
			}
		}
		value, ok := set.Get(id).(*T)
		if !ok || value == nil {
			continue
		}
		fn(e, value)
	}
}

// ForEach2 calls fn for every live entity that has both components.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sb := w.storeFor(kb.ID(), false)
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := sb.Get(int(e.id())).(*B)
		if !ok || b == nil {
			return
		}
		fn(e, a, b)
	})
}
