// Package carcheck verifies the blocks of a CAR archive against their CIDs
// by recomputing each block's digest.
package carcheck

import (
	"io"

	"github.com/ipfs/go-cid"
	car "github.com/ipld/go-car"
	"github.com/pkg/errors"
)

// Result summarizes a verified archive.
type Result struct {
	// Blocks is the number of blocks verified.
	Blocks int
	// Roots are the archive roots.
	Roots []cid.Cid
}

// Verify reads a CAR archive and recomputes every block's digest, failing
// on the first block whose bytes do not hash to its CID.
func Verify(r io.Reader) (*Result, error) {
	cr, err := car.NewCarReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading CAR header")
	}

	res := &Result{Roots: cr.Header.Roots}
	for {
		blk, err := cr.Next()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading block %d", res.Blocks)
		}

		c, err := blk.Cid().Prefix().Sum(blk.RawData())
		if err != nil {
			return nil, errors.Wrapf(err, "hashing block %d (%s)", res.Blocks, blk.Cid())
		}
		if !c.Equals(blk.Cid()) {
			return nil, errors.Errorf("block %d (%s): digest mismatch, bytes hash to %s", res.Blocks, blk.Cid(), c)
		}
		res.Blocks++
	}
}
