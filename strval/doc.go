// Package strval provides the immutable, reference-counted string value used
// by the strkit operations, together with the allocator it draws from.
//
// # Lifecycle
//
// A value is created with a reference count of one:
//
//	v, err := strval.FromString(alloc, "hello")
//	if err != nil {
//	    // err wraps strval.ErrOutOfMemory
//	}
//
// Every additional holder calls Retain; every holder calls Release when done.
// The buffer goes back to the allocator when the count reaches zero.
//
// # Destinations
//
// Slot models a destination register. Assign releases the previous occupant
// before storing the new one, except when the slot is empty or protected:
//
//	var dst strval.Slot
//	dst.Assign(result) // takes over the caller's reference
//
// # Errors
//
// Operations fail with *Error wrapping one of two sentinels: ErrBadValue for a
// missing (nil) argument, ErrOutOfMemory for an allocation failure.
package strval
