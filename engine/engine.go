// Package engine hosts the wide-hash compute primitive: a 64-bit seeded
// hash computed over input bytes staged in a linear memory arena. The
// primitive is treated as non-reentrant, so a single lock per engine
// serializes every arena and compute operation.
package engine

import (
	"sync"

	"github.com/zeebo/wyhash"
)

// Addr is a byte offset into an engine's linear memory.
type Addr uint64

// Engine is the compute primitive contract: stage bytes into linear memory,
// then compute a 64-bit seeded hash over a staged region. A region is
// transient - it is released by the compute call that consumes it and must
// not be reused afterwards.
type Engine interface {
	// Allocate reserves size bytes of linear memory.
	Allocate(size int) (Addr, error)
	// Write copies data into linear memory at addr.
	Write(addr Addr, data []byte) error
	// ComputeFixedHash computes the 64-bit hash of size bytes at addr with
	// the given seed, releasing the region.
	ComputeFixedHash(addr Addr, size int, seed uint64) (uint64, error)
}

// DefaultArenaCapacity is the initial linear memory capacity of an engine.
var DefaultArenaCapacity = 64 * 1024

// arenaHighWater bounds retained arena growth. Once all staged regions are
// released and the arena exceeds this size, it is reset.
const arenaHighWater = 1 << 20

// WyhashEngine computes wyhash over arena-staged input. The zero value is
// not usable; construct with New.
type WyhashEngine struct {
	mu      sync.Mutex
	arena   *Arena
	pending int
}

var _ Engine = (*WyhashEngine)(nil)

// Option configures a WyhashEngine.
type Option func(*WyhashEngine)

// WithArenaCapacity sets the initial linear memory capacity.
func WithArenaCapacity(capacity int) Option {
	return func(e *WyhashEngine) {
		e.arena = NewArena(capacity)
	}
}

// New creates a wyhash compute engine.
func New(opts ...Option) *WyhashEngine {
	e := &WyhashEngine{arena: NewArena(DefaultArenaCapacity)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Allocate reserves size bytes of linear memory.
func (e *WyhashEngine) Allocate(size int) (Addr, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	addr, err := e.arena.Alloc(size)
	if err != nil {
		return 0, err
	}
	e.pending++
	return addr, nil
}

// Write copies data into linear memory at addr.
func (e *WyhashEngine) Write(addr Addr, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	region, err := e.arena.Bytes(addr, len(data))
	if err != nil {
		return err
	}
	copy(region, data)
	return nil
}

// ComputeFixedHash computes wyhash over size bytes at addr with the given
// seed and releases the region.
func (e *WyhashEngine) ComputeFixedHash(addr Addr, size int, seed uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	region, err := e.arena.Bytes(addr, size)
	if err != nil {
		return 0, err
	}
	v := wyhash.Hash(region, seed)
	e.release()
	return v, nil
}

// release marks one staged region as consumed and resets the arena when no
// regions remain outstanding, keeping growth bounded.
func (e *WyhashEngine) release() {
	if e.pending > 0 {
		e.pending--
	}
	if e.pending == 0 && e.arena.Size() > arenaHighWater {
		e.arena.Reset()
	}
}

// Sum64 stages data and computes its wyhash in one scoped acquisition.
func (e *WyhashEngine) Sum64(data []byte, seed uint64) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	addr, err := e.arena.Alloc(len(data))
	if err != nil {
		// Alloc only fails for negative sizes, which len cannot produce.
		panic(err)
	}
	e.pending++
	region, _ := e.arena.Bytes(addr, len(data))
	copy(region, data)
	v := wyhash.Hash(region, seed)
	e.release()
	return v
}

var defaultEngine *WyhashEngine
var defaultEngineOnce sync.Once

// Default returns the process-wide shared engine.
func Default() *WyhashEngine {
	defaultEngineOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}
