package ecs

import "github.com/milk9111/voxelcam/ecs/component"

// World owns entities, component stores, the system order and the frame's
// event queue.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue

	// tick is the current change tick. It starts at 1 so components written
	// before the first frame count as changed for every system.
	tick uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*SparseSet),
		tick:   1,
	}
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs all systems once, then closes the frame: the change tick is
// advanced so writes made between frames are seen by every system, and the
// event queue is flushed.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.scheduler.Update(w)
	w.tick++
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// ChangeTick returns the current change tick. Systems that react to changes
// remember the tick they last ran at and compare against it.
func (w *World) ChangeTick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// First returns the first live entity that has a component of the given kind.
func (w *World) First(kind interface{ ID() component.ComponentID }) (Entity, bool) {
	set := w.storeFor(kind.ID(), false)
	for _, id := range set.Entities() {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return 0, false
}

func (w *World) storeFor(id component.ComponentID, create bool) *SparseSet {
	if w == nil || id == 0 {
		return nil
	}
	set := w.stores[id]
	if set == nil && create {
		if w.stores == nil {
			w.stores = make(map[component.ComponentID]*SparseSet)
		}
		set = &SparseSet{}
		w.stores[id] = set
	}
	return set
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity removes every component of e and invalidates the handle.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, set := range w.stores {
		set.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entities.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.live()
}
