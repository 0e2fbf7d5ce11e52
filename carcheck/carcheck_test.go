package carcheck

import (
	"bytes"
	"testing"

	"github.com/ipfs/go-cid"
	car "github.com/ipld/go-car"
	"github.com/ipld/go-car/util"
	"github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"

	"github.com/storacha/go-hasher/testing/helpers"
)

var rawPrefix = cid.Prefix{
	Version:  1,
	Codec:    cid.Raw,
	MhType:   multihash.SHA2_256,
	MhLength: -1,
}

func writeCar(t *testing.T, blocks map[cid.Cid][]byte, roots []cid.Cid) []byte {
	t.Helper()
	var buf bytes.Buffer
	err := car.WriteHeader(&car.CarHeader{Roots: roots, Version: 1}, &buf)
	require.NoError(t, err)
	for c, data := range blocks {
		require.NoError(t, util.LdWrite(&buf, c.Bytes(), data))
	}
	return buf.Bytes()
}

func TestVerify(t *testing.T) {
	one := helpers.RandomBytes(64)
	two := helpers.RandomBytes(128)
	c1 := helpers.Must(rawPrefix.Sum(one))
	c2 := helpers.Must(rawPrefix.Sum(two))

	archive := writeCar(t, map[cid.Cid][]byte{c1: one, c2: two}, []cid.Cid{c1})

	res, err := Verify(bytes.NewReader(archive))
	require.NoError(t, err)
	require.Equal(t, 2, res.Blocks)
	require.Equal(t, []cid.Cid{c1}, res.Roots)
}

func TestVerifyRejectsCorruptBlock(t *testing.T) {
	data := helpers.RandomBytes(64)
	other := helpers.RandomBytes(64)
	// the block claims the CID of different bytes
	c := helpers.Must(rawPrefix.Sum(other))

	archive := writeCar(t, map[cid.Cid][]byte{c: data}, []cid.Cid{c})

	_, err := Verify(bytes.NewReader(archive))
	require.ErrorContains(t, err, "digest mismatch")
}

func TestVerifyEmptyInput(t *testing.T) {
	_, err := Verify(bytes.NewReader(nil))
	require.Error(t, err)
}
