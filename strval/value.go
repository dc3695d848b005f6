package strval

// Value is an immutable, reference-counted byte string.
//
// The stored buffer always ends with a NUL byte that is not part of the
// content, so Len() == len(buffer)-1. Content is written exactly once, by the
// fill function passed to Make, and never changes afterwards.
type Value struct {
	buf   []byte
	refs  int
	alloc Allocator
}

// Make allocates a value holding n content bytes plus the NUL terminator and
// lets fill write the content. fill may be nil for an all-zero value.
//
// Allocation failure returns an error wrapping ErrOutOfMemory; no partially
// built value is ever returned. A nil allocator uses Heap.
func Make(a Allocator, n int, fill func(dst []byte)) (*Value, error) {
	if a == nil {
		a = Heap{}
	}
	buf, err := a.Alloc(n + 1)
	if err != nil {
		return nil, err
	}
	if fill != nil {
		fill(buf[:n])
	}
	buf[n] = 0
	return &Value{buf: buf, refs: 1, alloc: a}, nil
}

// FromBytes copies b into a new value.
func FromBytes(a Allocator, b []byte) (*Value, error) {
	return Make(a, len(b), func(dst []byte) { copy(dst, b) })
}

// FromString copies s into a new value.
func FromString(a Allocator, s string) (*Value, error) {
	return Make(a, len(s), func(dst []byte) { copy(dst, s) })
}

// Len returns the content length in bytes.
func (v *Value) Len() int {
	return len(v.buf) - 1
}

// Bytes returns the content without the terminator. Callers must not modify
// the returned slice.
func (v *Value) Bytes() []byte {
	return v.buf[:len(v.buf)-1]
}

// Terminated returns the content followed by its NUL sentinel.
func (v *Value) Terminated() []byte {
	return v.buf
}

// String returns a copy of the content as a Go string.
func (v *Value) String() string {
	return string(v.Bytes())
}

// Refcount returns the number of live references.
func (v *Value) Refcount() int {
	return v.refs
}

// Retain records a new reference to v and returns it.
func (v *Value) Retain() *Value {
	if v.refs <= 0 {
		panic("strval: retain of released value")
	}
	v.refs++
	return v
}

// Release drops one reference. The buffer is returned to the allocator when
// the last reference goes away.
func (v *Value) Release() {
	if v.refs <= 0 {
		panic("strval: release of released value")
	}
	v.refs--
	if v.refs == 0 {
		v.alloc.Free(v.buf)
		v.buf = nil
	}
}

// Equal reports whether v and o hold the same bytes.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	return string(v.Bytes()) == string(o.Bytes())
}
