package hasher

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storacha/go-hasher/testing/helpers"
)

// Published "abc" test vectors for every registry algorithm.
var abcVectors = map[string]string{
	"md4":        "a448017aaf21d8525fc10ae87aa6729d",
	"md5":        "900150983cd24fb0d6963f7d28e17f72",
	"sha1":       "a9993e364706816aba3e25717850c26c9cd0d89d",
	"sha224":     "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7",
	"sha256":     "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
	"sha384":     "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7",
	"sha512":     "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	"sha512-224": "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa",
	"sha512-256": "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23",
	"blake2b256": "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319",
	"blake2b512": "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923",
	"ripemd160":  "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc",
}

func TestKnownVectors(t *testing.T) {
	for name, want := range abcVectors {
		t.Run(name, func(t *testing.T) {
			got, err := SumText(name, []byte("abc"), "hex")
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestEmptyInput(t *testing.T) {
	got, err := SumText("sha256", nil, "hex")
	require.NoError(t, err)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", got)
}

func TestDigestLengths(t *testing.T) {
	for _, name := range Algorithms() {
		t.Run(name, func(t *testing.T) {
			algo := helpers.Must(LookupAlgorithm(name))
			sum := helpers.Must(SumBytes(name, []byte("abc")))
			require.Len(t, sum, algo.Size)
		})
	}
}

func TestSplitInvariance(t *testing.T) {
	data := helpers.Must(hexBytes("000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"))
	whole := helpers.Must(SumBytes("sha256", data))

	for split := 0; split <= len(data); split++ {
		h := helpers.Must(New("sha256"))
		sum := helpers.Must(h.Update(data[:split]).Update(data[split:]).DigestBytes())
		require.Equal(t, whole, sum, "split at %d", split)
	}
}

func TestWriterMatchesUpdate(t *testing.T) {
	h := helpers.Must(New("sha1"))
	n, err := h.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	sum := helpers.Must(h.DigestBytes())
	require.Equal(t, abcVectors["sha1"], hex.EncodeToString(sum))
}

func TestUpdateStringMatchesBytes(t *testing.T) {
	a := helpers.Must(New("md5")).UpdateString("hello world")
	b := helpers.Must(New("md5")).Update([]byte("hello world"))
	require.Equal(t, helpers.Must(a.DigestBytes()), helpers.Must(b.DigestBytes()))
}

func TestFinalizedReuse(t *testing.T) {
	t.Run("double digest", func(t *testing.T) {
		h := helpers.Must(New("sha256"))
		_, err := h.Update([]byte("abc")).Digest()
		require.NoError(t, err)
		_, err = h.Digest()
		require.ErrorIs(t, err, ErrFinalized)
	})

	t.Run("write after digest", func(t *testing.T) {
		h := helpers.Must(New("sha256"))
		_ = helpers.Must(h.DigestBytes())
		_, err := h.Write([]byte("more"))
		require.ErrorIs(t, err, ErrFinalized)
	})

	t.Run("update after digest", func(t *testing.T) {
		h := helpers.Must(New("sha256"))
		_ = helpers.Must(h.DigestBytes())
		_, err := h.Update([]byte("more")).Digest()
		require.ErrorIs(t, err, ErrFinalized)
	})
}

func TestUnsupportedAlgorithm(t *testing.T) {
	_, err := New("sha3-971")
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)

	_, err = Sum("", []byte("abc"))
	require.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}

func TestHexTextMatchesBufferView(t *testing.T) {
	text := helpers.Must(SumText("sha256", []byte("abc"), "hex"))

	buf := make([]byte, 32)
	require.NoError(t, SumInto("sha256", []byte("abc"), buf))

	require.Equal(t, buf, helpers.Must(hexBytes(text)))
}

func TestDigestMultihash(t *testing.T) {
	d := helpers.Must(Sum("sha256", []byte("abc")))
	require.EqualValues(t, 0x12, d.Code())
	require.EqualValues(t, 32, d.Size())
	require.Equal(t, abcVectors["sha256"], hex.EncodeToString(d.Digest()))
	// multihash framing: code, length, then the raw digest
	require.Equal(t, append([]byte{0x12, 0x20}, d.Digest()...), d.Bytes())
}

func hexBytes(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
