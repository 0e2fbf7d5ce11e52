package digest

import (
	"bytes"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
)

// Digest is the fixed-length output of a hash computation, tagged with the
// multicodec code of the algorithm that produced it.
type Digest interface {
	// Code is the multicodec code of the hash algorithm.
	Code() uint64
	// Size is the length of the raw digest in bytes.
	Size() uint64
	// Digest is the raw digest bytes.
	Digest() []byte
	// Bytes is the digest in multihash form - varint code, varint length,
	// then the raw digest.
	Bytes() []byte
}

type digest struct {
	code  uint64
	size  uint64
	sum   []byte
	bytes []byte
}

func (d *digest) Code() uint64 {
	return d.code
}

func (d *digest) Size() uint64 {
	return d.size
}

func (d *digest) Digest() []byte {
	return d.sum
}

func (d *digest) Bytes() []byte {
	return d.bytes
}

// New creates a Digest from a raw sum, encoding the multihash form.
func New(code uint64, sum []byte) (Digest, error) {
	mh, err := multihash.Encode(sum, code)
	if err != nil {
		return nil, fmt.Errorf("encoding multihash: %w", err)
	}
	return &digest{code, uint64(len(sum)), sum, mh}, nil
}

// FromBytes parses a multihash encoded digest.
func FromBytes(b []byte) (Digest, error) {
	r := bytes.NewReader(b)
	code, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading multihash code: %w", err)
	}
	size, err := varint.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("reading multihash length: %w", err)
	}
	offset := varint.UvarintSize(code) + varint.UvarintSize(size)
	sum := b[offset:]
	if uint64(len(sum)) != size {
		return nil, fmt.Errorf("multihash length %d does not match %d remaining bytes", size, len(sum))
	}
	return &digest{code, size, sum, b}, nil
}

// ToCID wraps the digest in a CIDv1 with the given content codec.
func ToCID(d Digest, codec multicodec.Code) cid.Cid {
	return cid.NewCidV1(uint64(codec), multihash.Multihash(d.Bytes()))
}

// Format renders the multihash bytes as a multibase string in the named base
// (e.g. "base32", "base58btc").
func Format(d Digest, base string) (string, error) {
	enc, err := multibase.EncoderByName(base)
	if err != nil {
		return "", fmt.Errorf("unknown multibase %q: %w", base, err)
	}
	return enc.Encode(d.Bytes()), nil
}
