package entity

// Slot holds at most one value. An empty slot is not an error: callers skip
// whatever they would have done with the value.
type Slot[T any] struct {
	value T
	set   bool
}

// Set stores v, replacing any previous value.
func (s *Slot[T]) Set(v T) {
	s.value = v
	s.set = true
}

// Clear empties the slot.
func (s *Slot[T]) Clear() {
	var zero T
	s.value = zero
	s.set = false
}

// Get returns the value and whether the slot is filled.
func (s *Slot[T]) Get() (T, bool) {
	return s.value, s.set
}
