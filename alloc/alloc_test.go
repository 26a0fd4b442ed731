package alloc

import (
	"bytes"
	"testing"
)

func TestAllocator_IsValid(t *testing.T) {
	if ZeroInitialized().IsValid() {
		t.Error("zero-initialized allocator must not be valid")
	}
	if !Default().IsValid() {
		t.Error("default allocator must be valid")
	}

	partial := Default()
	partial.Reallocate = nil
	if partial.IsValid() {
		t.Error("allocator missing an operation must not be valid")
	}
}

func TestDefault_Allocate(t *testing.T) {
	a := Default()

	buf := a.Allocate(16, a.State)
	if len(buf) != 16 {
		t.Fatalf("Allocate(16) returned %d bytes", len(buf))
	}

	copy(buf, "hello")
	grown := a.Reallocate(buf, 64, a.State)
	if len(grown) != 64 {
		t.Fatalf("Reallocate(64) returned %d bytes", len(grown))
	}
	if !bytes.Equal(grown[:5], []byte("hello")) {
		t.Errorf("Reallocate did not preserve contents: %q", grown[:5])
	}

	shrunk := a.Reallocate(grown, 8, a.State)
	if len(shrunk) != 8 {
		t.Fatalf("Reallocate(8) returned %d bytes", len(shrunk))
	}
}

func TestDefault_ZeroAllocate(t *testing.T) {
	a := Default()
	buf := a.ZeroAllocate(4, 8, a.State)
	if len(buf) != 32 {
		t.Fatalf("ZeroAllocate(4, 8) returned %d bytes", len(buf))
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %d", i, b)
		}
	}
}

func TestReallocf(t *testing.T) {
	a := Default()
	buf := a.Allocate(4, a.State)
	copy(buf, "abcd")

	grown := Reallocf(buf, 32, &a)
	if len(grown) != 32 || !bytes.Equal(grown[:4], []byte("abcd")) {
		t.Errorf("Reallocf did not grow and preserve: len=%d", len(grown))
	}
}

func TestReallocf_FailureReleases(t *testing.T) {
	released := false
	a := Allocator{
		Allocate: func(size int, _ any) []byte { return make([]byte, size) },
		Deallocate: func(_ []byte, _ any) {
			released = true
		},
		Reallocate: func(_ []byte, _ int, _ any) []byte {
			return nil
		},
		ZeroAllocate: func(count, sizeOf int, _ any) []byte { return make([]byte, count*sizeOf) },
	}

	if got := Reallocf(make([]byte, 4), 32, &a); got != nil {
		t.Errorf("Reallocf = %v, want nil on failed reallocation", got)
	}
	if !released {
		t.Error("Reallocf must deallocate the original buffer on failure")
	}
}

func TestReallocf_InvalidAllocator(t *testing.T) {
	if got := Reallocf(make([]byte, 4), 32, nil); got != nil {
		t.Errorf("Reallocf(nil allocator) = %v, want nil", got)
	}
	a := Allocator{}
	if got := Reallocf(make([]byte, 4), 32, &a); got != nil {
		t.Errorf("Reallocf(zero allocator) = %v, want nil", got)
	}
}
