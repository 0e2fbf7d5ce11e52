// Package hasher exposes cryptographic digest computation behind one
// accumulate/finalize session contract, with output rendering delegated to
// the render package.
package hasher

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"github.com/multiformats/go-multicodec"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"

	"github.com/storacha/go-hasher/digest"
	"github.com/storacha/go-hasher/render"
)

var (
	// ErrUnsupportedAlgorithm is returned when constructing a hasher for an
	// algorithm outside the registry.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")
	// ErrFinalized is returned when a session is written to or finalized
	// again after a terminal digest call.
	ErrFinalized = errors.New("hash session already finalized")
)

// Algorithm describes one supported hash algorithm. Instances live in the
// package registry, are created once at init and never mutated.
type Algorithm struct {
	// Name is the registry name, e.g. "sha256".
	Name string
	// Code is the multicodec code for the algorithm.
	Code multicodec.Code
	// Size is the digest length in bytes.
	Size int
	// New constructs the backend state.
	New func() hash.Hash
}

func blake2bNew256() hash.Hash {
	h, _ := blake2b.New256(nil)
	return h
}

func blake2bNew512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

// registry is the closed catalog of supported algorithms. MD4 and RIPEMD-160
// are absent from the standard crypto packages so they come from
// golang.org/x/crypto.
var registry = map[string]Algorithm{
	"md4":        {"md4", multicodec.Md4, md4.Size, md4.New},
	"md5":        {"md5", multicodec.Md5, md5.Size, md5.New},
	"sha1":       {"sha1", multicodec.Sha1, sha1.Size, sha1.New},
	"sha224":     {"sha224", multicodec.Sha2_224, sha256.Size224, sha256.New224},
	"sha256":     {"sha256", multicodec.Sha2_256, sha256.Size, sha256.New},
	"sha384":     {"sha384", multicodec.Sha2_384, sha512.Size384, sha512.New384},
	"sha512":     {"sha512", multicodec.Sha2_512, sha512.Size, sha512.New},
	"sha512-224": {"sha512-224", multicodec.Sha2_512_224, sha512.Size224, sha512.New512_224},
	"sha512-256": {"sha512-256", multicodec.Sha2_512_256, sha512.Size256, sha512.New512_256},
	"blake2b256": {"blake2b256", multicodec.Blake2b256, blake2b.Size256, blake2bNew256},
	"blake2b512": {"blake2b512", multicodec.Blake2b512, blake2b.Size, blake2bNew512},
	"ripemd160":  {"ripemd160", multicodec.Ripemd160, ripemd160.Size, ripemd160.New},
}

// LookupAlgorithm returns the registry entry for name (case-insensitive).
func LookupAlgorithm(name string) (Algorithm, error) {
	a, ok := registry[strings.ToLower(name)]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return a, nil
}

// Algorithms returns the sorted names of all supported algorithms.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Hasher is a single-use digest session. It accumulates input via Write or
// Update and is consumed by exactly one terminal Digest call. A Hasher is
// owned by its creator and is not safe for concurrent use.
type Hasher struct {
	algo      Algorithm
	backend   hash.Hash
	err       error
	finalized bool
}

// New creates a session for the named algorithm.
func New(name string) (*Hasher, error) {
	algo, err := LookupAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return &Hasher{algo: algo, backend: algo.New()}, nil
}

// Algorithm returns the descriptor for this session's algorithm.
func (h *Hasher) Algorithm() Algorithm {
	return h.algo
}

// Write implements io.Writer. It fails with ErrFinalized once the session
// has produced a digest.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		return 0, ErrFinalized
	}
	return h.backend.Write(p)
}

// Update accumulates data and returns the session for chaining. Misuse
// after finalization is recorded and surfaced by the terminal call.
func (h *Hasher) Update(data []byte) *Hasher {
	if h.finalized {
		h.err = ErrFinalized
		return h
	}
	h.backend.Write(data)
	return h
}

// UpdateString accumulates the UTF-8 bytes of s.
func (h *Hasher) UpdateString(s string) *Hasher {
	return h.Update([]byte(s))
}

// finalize transitions the session to its terminal state and returns the
// raw sum. Any further Write, Update or Digest call fails.
func (h *Hasher) finalize() ([]byte, error) {
	if h.err != nil {
		return nil, h.err
	}
	if h.finalized {
		return nil, ErrFinalized
	}
	h.finalized = true
	return h.backend.Sum(nil), nil
}

// Digest finalizes the session and returns the digest.
func (h *Hasher) Digest() (digest.Digest, error) {
	sum, err := h.finalize()
	if err != nil {
		return nil, err
	}
	return digest.New(uint64(h.algo.Code), sum)
}

// DigestBytes finalizes the session and returns the raw digest bytes.
func (h *Hasher) DigestBytes() ([]byte, error) {
	return h.finalize()
}

// DigestText finalizes the session and renders the digest in the named text
// encoding.
func (h *Hasher) DigestText(encoding string) (string, error) {
	sum, err := h.finalize()
	if err != nil {
		return "", err
	}
	return render.Text(sum, encoding)
}

// DigestInto finalizes the session and copies the digest into dst, which
// must be one of []byte, []uint16, []uint32 or []uint64.
func (h *Hasher) DigestInto(dst any) error {
	sum, err := h.finalize()
	if err != nil {
		return err
	}
	return render.Into(sum, dst)
}
