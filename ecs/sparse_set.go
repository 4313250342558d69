package ecs

// SparseSet is a cache-friendly storage for components keyed by entity slot id.
// Alongside each value it keeps the change tick of the last write.
type SparseSet struct {
	denseEntities []int
	denseValues   []any
	denseTicks    []uint64
	sparse        []int
}

// Has returns true if the entity id exists in the set.
func (s *SparseSet) Has(id int) bool {
	if s == nil || id <= 0 || id-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == id
}

// Get returns the component for id, or nil.
func (s *SparseSet) Get(id int) any {
	if !s.Has(id) {
		return nil
	}
	idx := s.sparse[id-1]
	return s.denseValues[idx]
}

// Tick returns the change tick recorded for id.
func (s *SparseSet) Tick(id int) (uint64, bool) {
	if !s.Has(id) {
		return 0, false
	}
	return s.denseTicks[s.sparse[id-1]], true
}

// Set inserts or updates a component for id and stamps it with tick.
func (s *SparseSet) Set(id int, v any, tick uint64) {
	if s == nil || id <= 0 {
		return
	}
	for id-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		idx := s.sparse[id-1]
		s.denseValues[idx] = v
		s.denseTicks[idx] = tick
		return
	}
	s.denseEntities = append(s.denseEntities, id)
	s.denseValues = append(s.denseValues, v)
	s.denseTicks = append(s.denseTicks, tick)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Touch restamps the component for id without replacing it.
func (s *SparseSet) Touch(id int, tick uint64) bool {
	if !s.Has(id) {
		return false
	}
	s.denseTicks[s.sparse[id-1]] = tick
	return true
}

// Remove deletes the component for id if present.
func (s *SparseSet) Remove(id int) bool {
	if s == nil || !s.Has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastID := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.denseTicks[idx] = s.denseTicks[last]
	s.sparse[lastID-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.denseTicks = s.denseTicks[:last]
	s.sparse[id-1] = -1
	return true
}

// Entities returns the dense entity id list.
func (s *SparseSet) Entities() []int {
	if s == nil {
		return nil
	}
	return s.denseEntities
}

// Len returns the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}
