package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned for reads outside the allocated region.
var ErrOutOfRange = errors.New("arena: address out of range")

const arenaAlignment = 8

// Arena is a growable linear memory region that stages input bytes for the
// compute primitive. Addresses are byte offsets into the region and remain
// valid until the next Reset. An Arena performs no synchronization of its
// own - the owning engine serializes access.
type Arena struct {
	mem []byte
}

// NewArena creates an arena with the given initial capacity.
func NewArena(capacity int) *Arena {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena{mem: make([]byte, 0, capacity)}
}

// Alloc reserves size bytes and returns their address. Allocations are
// 8-byte aligned.
func (a *Arena) Alloc(size int) (Addr, error) {
	if size < 0 {
		return 0, fmt.Errorf("arena: negative allocation size %d", size)
	}
	mask := arenaAlignment - 1
	start := (len(a.mem) + mask) &^ mask
	end := start + size
	if end > cap(a.mem) {
		grown := make([]byte, end, max(end, 2*cap(a.mem)))
		copy(grown, a.mem)
		a.mem = grown
	} else {
		a.mem = a.mem[:end]
	}
	return Addr(start), nil
}

// Bytes returns a view over size bytes at addr.
func (a *Arena) Bytes(addr Addr, size int) ([]byte, error) {
	end := int(addr) + size
	if size < 0 || int(addr) > len(a.mem) || end > len(a.mem) {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrOutOfRange, addr, end, len(a.mem))
	}
	return a.mem[addr:end:end], nil
}

// Size returns the number of bytes currently reserved.
func (a *Arena) Size() int {
	return len(a.mem)
}

// Reset discards all allocations, retaining capacity. Previously returned
// addresses become invalid.
func (a *Arena) Reset() {
	a.mem = a.mem[:0]
}
