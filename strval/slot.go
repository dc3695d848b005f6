package strval

// Slot is a destination that holds one reference to a value, such as a
// register in the host's frame.
//
// Assigning into a slot releases the value it held before, unless the slot
// was empty or protected. A protected slot refers to a value owned elsewhere
// (a literal in a constant table, for example) and must never release it.
type Slot struct {
	v         *Value
	protected bool
}

// Protected returns a slot that refers to v without owning it.
func Protected(v *Value) Slot {
	return Slot{v: v, protected: true}
}

// Value returns the held value, or nil for an empty slot.
func (s *Slot) Value() *Value {
	return s.v
}

// IsNil reports whether the slot is empty.
func (s *Slot) IsNil() bool {
	return s.v == nil
}

// IsProtected reports whether the slot refers to a value it does not own.
func (s *Slot) IsProtected() bool {
	return s.protected
}

// Assign stores v in the slot, taking over the caller's reference.
func (s *Slot) Assign(v *Value) {
	if s.v != nil && !s.protected {
		s.v.Release()
	}
	s.v = v
	s.protected = false
}

// Share stores a new reference to v in the slot.
func (s *Slot) Share(v *Value) {
	if v != nil {
		v.Retain()
	}
	s.Assign(v)
}

// Clear releases the held value (if owned) and empties the slot.
func (s *Slot) Clear() {
	s.Assign(nil)
}
