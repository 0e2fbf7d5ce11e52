// Package seeded dispatches non-cryptographic, seeded hash requests to their
// backends, normalizing each backend's seed and return-width semantics into
// one 64-bit signature.
package seeded

import (
	"errors"
	"fmt"
	"hash/adler32"
	"hash/crc32"

	"github.com/go-faster/city"
	"github.com/spaolacci/murmur3"

	"github.com/storacha/go-hasher/engine"
)

var (
	// ErrUnknownHashFunction is returned for a name outside the dispatch
	// table.
	ErrUnknownHashFunction = errors.New("unknown hash function")
	// ErrNotImplemented is returned for a recognized but intentionally
	// unimplemented operation.
	ErrNotImplemented = errors.New("not implemented")
)

// Wyhash computes the 64-bit wyhash of data via the shared compute engine.
func Wyhash(data []byte, seed uint64) uint64 {
	return engine.Default().Sum64(data, seed)
}

// WyhashString computes the 64-bit wyhash of the UTF-8 bytes of s.
func WyhashString(s string, seed uint64) uint64 {
	return Wyhash([]byte(s), seed)
}

// Adler32 computes the Adler-32 checksum of data with the standard initial
// value.
func Adler32(data []byte) uint32 {
	return adler32.Checksum(data)
}

// Adler32Seeded computes the Adler-32 checksum of data starting from seed
// as the initial checksum state. Adler32Seeded(data, 1) equals
// Adler32(data).
func Adler32Seeded(data []byte, seed uint32) uint32 {
	return adlerUpdate(seed, data)
}

// crc32Table is pre-computed for the IEEE polynomial, avoiding repeated
// MakeTable calls.
var crc32Table = crc32.MakeTable(crc32.IEEE)

// CRC32 computes the CRC-32 (IEEE) checksum of data. The seed parameter is
// accepted but ignored - the mirrored runtime behaved this way and callers
// depend on it, so it is preserved as a documented quirk rather than fixed.
func CRC32(data []byte, seed uint32) uint32 {
	_ = seed
	return crc32.Checksum(data, crc32Table)
}

// CityHash32 computes the 32-bit CityHash fingerprint of data.
func CityHash32(data []byte) uint32 {
	return city.Hash32(data)
}

// CityHash64 computes the 64-bit CityHash fingerprint of data.
func CityHash64(data []byte) uint64 {
	return city.Hash64(data)
}

// Murmur32v3 computes the 32-bit MurmurHash3 of data with the given seed.
func Murmur32v3(data []byte, seed uint32) uint32 {
	return murmur3.Sum32WithSeed(data, seed)
}

// Murmur64v2 is recognized by the dispatch table but has no backend. It
// always fails with ErrNotImplemented and never returns a coerced value.
func Murmur64v2(data []byte, seed uint32) (uint64, error) {
	return 0, fmt.Errorf("%w: murmur64v2", ErrNotImplemented)
}

// Spec describes one dispatch table entry.
type Spec struct {
	// Name is the dispatch name.
	Name string
	// SeedBits is the accepted seed width: 0 (none), 32 or 64.
	SeedBits int
	// ReturnBits is the result width: 32 or 64.
	ReturnBits int

	fn func(data []byte, seed uint64) (uint64, error)
}

// table is the closed catalog of seeded hash functions. Results and seeds
// are widened to 64 bits; ReturnBits records the true width.
var table = map[string]Spec{
	"wyhash": {"wyhash", 64, 64, func(data []byte, seed uint64) (uint64, error) {
		return Wyhash(data, seed), nil
	}},
	"adler32": {"adler32", 32, 32, func(data []byte, seed uint64) (uint64, error) {
		return uint64(Adler32Seeded(data, uint32(seed))), nil
	}},
	"crc32": {"crc32", 32, 32, func(data []byte, seed uint64) (uint64, error) {
		return uint64(CRC32(data, uint32(seed))), nil
	}},
	"cityHash32": {"cityHash32", 0, 32, func(data []byte, seed uint64) (uint64, error) {
		return uint64(CityHash32(data)), nil
	}},
	"cityHash64": {"cityHash64", 0, 64, func(data []byte, seed uint64) (uint64, error) {
		return CityHash64(data), nil
	}},
	"murmur32v3": {"murmur32v3", 32, 32, func(data []byte, seed uint64) (uint64, error) {
		return uint64(Murmur32v3(data, uint32(seed))), nil
	}},
	"murmur64v2": {"murmur64v2", 32, 64, func(data []byte, seed uint64) (uint64, error) {
		return Murmur64v2(data, uint32(seed))
	}},
}

// Lookup returns the dispatch table entry for name.
func Lookup(name string) (Spec, bool) {
	s, ok := table[name]
	return s, ok
}

// Hash routes by name to the matching backend. Seeds wider than the entry's
// accepted width are truncated; entries that take no seed ignore it. The
// result occupies the low ReturnBits bits of the returned value.
func Hash(name string, data []byte, seed uint64) (uint64, error) {
	s, ok := table[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownHashFunction, name)
	}
	return s.fn(data, seed)
}

// HashString is Hash over the UTF-8 bytes of s. It must agree with Hash for
// the same logical bytes.
func HashString(name string, s string, seed uint64) (uint64, error) {
	return Hash(name, []byte(s), seed)
}
