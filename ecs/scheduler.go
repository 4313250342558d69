package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// Scheduler runs systems in insertion order. Every system run opens a new
// change tick, so writes made by one system are visible as changes to the
// systems that run after it in the same frame and to the systems before it
// in the next frame. A system that remembers the tick it ran at never sees
// its own writes as changes.
type Scheduler struct {
	systems []System
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		w.tick++
		system.Update(w)
	}
}
