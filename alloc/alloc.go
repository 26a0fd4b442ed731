// Package alloc defines the memory-allocation capability the logging core
// routes its dynamic allocations through, so that embedders control the
// memory strategy instead of the core hardcoding one.
package alloc

import (
	"fmt"
	"os"
)

// Allocator is a capability set of allocation operations plus opaque state
// threaded through every call. All four operations must be set for the
// allocator to be valid; use Default for one backed by the Go heap.
type Allocator struct {
	Allocate     func(size int, state any) []byte
	Deallocate   func(buf []byte, state any)
	Reallocate   func(buf []byte, size int, state any) []byte
	ZeroAllocate func(count, sizeOf int, state any) []byte
	State        any
}

// ZeroInitialized returns an allocator with no operations set. It is not
// valid; it exists so callers can hold an allocator slot before one is
// supplied.
func ZeroInitialized() Allocator {
	return Allocator{}
}

// Default returns an allocator backed by the Go heap. Its Deallocate is a
// no-op; released buffers are left to the garbage collector.
func Default() Allocator {
	return Allocator{
		Allocate: func(size int, _ any) []byte {
			return make([]byte, size)
		},
		Deallocate: func(_ []byte, _ any) {},
		Reallocate: func(buf []byte, size int, _ any) []byte {
			if size <= cap(buf) {
				return buf[:size]
			}
			grown := make([]byte, size)
			copy(grown, buf)
			return grown
		},
		ZeroAllocate: func(count, sizeOf int, _ any) []byte {
			return make([]byte, count*sizeOf)
		},
	}
}

// IsZeroInitialized reports whether no operation of the capability set is
// present, distinguishing "no allocator supplied" from a partially wired,
// invalid one.
func (a Allocator) IsZeroInitialized() bool {
	return a.Allocate == nil &&
		a.Deallocate == nil &&
		a.Reallocate == nil &&
		a.ZeroAllocate == nil &&
		a.State == nil
}

// IsValid reports whether every operation of the capability set is present.
func (a Allocator) IsValid() bool {
	return a.Allocate != nil &&
		a.Deallocate != nil &&
		a.Reallocate != nil &&
		a.ZeroAllocate != nil
}

// Reallocf grows buf to size through a, deallocating buf when the
// reallocation fails so the caller never leaks it. An allocator missing
// the needed operations yields nil after a diagnostic; buf is then not
// released.
func Reallocf(buf []byte, size int, a *Allocator) []byte {
	if a == nil || a.Reallocate == nil || a.Deallocate == nil {
		fmt.Fprintln(os.Stderr, "gatelog: Reallocf: invalid allocator, buffer not released")
		return nil
	}
	grown := a.Reallocate(buf, size, a.State)
	if grown == nil {
		a.Deallocate(buf, a.State)
	}
	return grown
}
