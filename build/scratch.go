package build

import "github.com/randalmurphal/strkit/strval"

const (
	// DefaultScratchSize is the initial capacity used when none is given.
	DefaultScratchSize = 64

	// MinScratchSize is the smallest capacity a Scratch starts with.
	MinScratchSize = 8

	// headroom is the longest single write HTMLEncode performs ("&amp;").
	headroom = 5
)

// Scratch is a growable byte buffer reused across calls. Its storage comes
// from an allocator and doubles whenever fewer than headroom bytes remain.
type Scratch struct {
	alloc strval.Allocator
	data  []byte
	n     int
	grows int
}

// NewScratch allocates a scratch buffer with the given initial capacity.
// Sizes below MinScratchSize are raised to it.
func NewScratch(a strval.Allocator, size int) (*Scratch, error) {
	if a == nil {
		a = strval.Heap{}
	}
	if size < MinScratchSize {
		size = MinScratchSize
	}
	data, err := a.Alloc(size)
	if err != nil {
		return nil, err
	}
	return &Scratch{alloc: a, data: data}, nil
}

// Reset discards the content but keeps the capacity.
func (s *Scratch) Reset() {
	s.n = 0
}

// Len returns the number of bytes written since the last Reset.
func (s *Scratch) Len() int {
	return s.n
}

// Cap returns the current capacity.
func (s *Scratch) Cap() int {
	return len(s.data)
}

// Grows returns how many times the buffer has doubled.
func (s *Scratch) Grows() int {
	return s.grows
}

// Bytes returns the content written since the last Reset. The slice is only
// valid until the next write.
func (s *Scratch) Bytes() []byte {
	return s.data[:s.n]
}

// Release returns the storage to the allocator. A released Scratch, like the
// zero value, starts again from MinScratchSize on its next write.
func (s *Scratch) Release() {
	if s.data != nil {
		s.alloc.Free(s.data)
		s.data = nil
		s.n = 0
	}
}

// reserve makes sure at least headroom bytes are free, doubling the storage
// as needed. On failure the existing content is left intact.
func (s *Scratch) reserve() error {
	if s.alloc == nil {
		s.alloc = strval.Heap{}
	}
	for len(s.data)-s.n < headroom {
		next, err := s.alloc.Alloc(max(2*len(s.data), MinScratchSize))
		if err != nil {
			return err
		}
		copy(next, s.data[:s.n])
		if s.data != nil {
			s.alloc.Free(s.data)
		}
		s.data = next
		s.grows++
	}
	return nil
}

func (s *Scratch) writeByte(c byte) {
	s.data[s.n] = c
	s.n++
}

func (s *Scratch) writeString(str string) {
	s.n += copy(s.data[s.n:], str)
}
