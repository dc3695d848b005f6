package strval

import (
	"fmt"
	"log/slog"
	"sync"
)

// Allocator provides the byte storage behind string values.
// Alloc may fail; the returned error should wrap ErrOutOfMemory.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
}

// Heap allocates from the Go heap and never fails.
type Heap struct{}

// Alloc implements Allocator.
func (Heap) Alloc(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// Free implements Allocator. The garbage collector reclaims the buffer.
func (Heap) Free([]byte) {}

// LimitAllocator caps the number of bytes held by live buffers.
// It also counts live buffers, which makes leaks visible in tests.
type LimitAllocator struct {
	limit  int
	logger *slog.Logger

	mu    sync.Mutex
	inUse int
	live  int
	fails int
}

// NewLimitAllocator creates an allocator that refuses requests once limit
// bytes are in use. A limit of 0 disables the cap. logger may be nil.
func NewLimitAllocator(limit int, logger *slog.Logger) *LimitAllocator {
	return &LimitAllocator{limit: limit, logger: logger}
}

// Alloc implements Allocator.
func (a *LimitAllocator) Alloc(size int) ([]byte, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.limit > 0 && a.inUse+size > a.limit {
		a.fails++
		if a.logger != nil {
			a.logger.Warn("allocation refused",
				slog.Int("requested", size),
				slog.Int("in_use", a.inUse),
				slog.Int("limit", a.limit))
		}
		return nil, fmt.Errorf("%w: requested %d bytes with %d of %d in use",
			ErrOutOfMemory, size, a.inUse, a.limit)
	}
	a.inUse += size
	a.live++
	return make([]byte, size), nil
}

// Free implements Allocator.
func (a *LimitAllocator) Free(buf []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.inUse -= cap(buf)
	a.live--
}

// InUse returns the number of bytes held by live buffers.
func (a *LimitAllocator) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inUse
}

// Live returns the number of buffers allocated and not yet freed.
func (a *LimitAllocator) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.live
}

// Failures returns how many requests were refused.
func (a *LimitAllocator) Failures() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fails
}

// Limit returns the configured cap (0 means unlimited).
func (a *LimitAllocator) Limit() int {
	return a.limit
}
