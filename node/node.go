// Package node computes digests and links for IPLD data: dag-cbor encoded
// nodes, or arbitrary CBOR-marshalable Go values.
package node

import (
	"github.com/ipld/go-ipld-prime"
	"github.com/ipld/go-ipld-prime/codec/dagcbor"
	"github.com/ipld/go-ipld-prime/datamodel"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/pkg/errors"

	cbornode "github.com/ipfs/go-ipld-cbor"

	"github.com/storacha/go-hasher/digest"
	"github.com/storacha/go-hasher/hasher"
)

// Digest encodes n as dag-cbor and digests the encoded bytes with the named
// algorithm.
func Digest(n datamodel.Node, algo string) (digest.Digest, error) {
	b, err := ipld.Encode(n, dagcbor.Encode)
	if err != nil {
		return nil, errors.Wrap(err, "encoding dag-cbor")
	}
	return hasher.Sum(algo, b)
}

// Link returns the CIDv1 dag-cbor link of n, using sha256.
func Link(n datamodel.Node) (datamodel.Link, error) {
	d, err := Digest(n, "sha256")
	if err != nil {
		return nil, err
	}
	return cidlink.Link{Cid: digest.ToCID(d, multicodec.DagCbor)}, nil
}

// WrapCBOR encodes a CBOR-marshalable Go value as dag-cbor and returns its
// sha256 link alongside the encoded bytes.
func WrapCBOR(v any) (datamodel.Link, []byte, error) {
	nd, err := cbornode.WrapObject(v, multihash.SHA2_256, -1)
	if err != nil {
		return nil, nil, errors.Wrap(err, "wrapping cbor object")
	}
	return cidlink.Link{Cid: nd.Cid()}, nd.RawData(), nil
}
