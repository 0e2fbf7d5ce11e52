// Package render converts raw digest bytes into caller-requested output
// shapes: text encodings, typed numeric buffers, or 64-bit wide lanes with
// host endianness correction.
package render

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/multiformats/go-multibase"
)

var (
	// ErrUnknownEncoding is returned for an unrecognized text encoding name.
	// An unknown name never degrades to raw bytes.
	ErrUnknownEncoding = errors.New("unknown text encoding")
	// ErrBufferTooSmall is returned when a destination buffer cannot hold
	// the digest.
	ErrBufferTooSmall = errors.New("destination buffer too small")
	// ErrMisalignedWidth is returned when the digest length is not a
	// multiple of the destination element width.
	ErrMisalignedWidth = errors.New("digest length misaligned with element width")
	// ErrUnsupportedBuffer is returned for destination types outside the
	// supported set.
	ErrUnsupportedBuffer = errors.New("unsupported destination buffer type")
)

// hostLittle reports whether the host stores integers least significant
// byte first.
var hostLittle = binary.NativeEndian.Uint16([]byte{0x01, 0x00}) == 0x0001

// Text re-encodes raw digest bytes in the named text encoding. "hex",
// "base64" and "base64url" are handled natively; any other name is resolved
// as a multibase base name and yields the multibase string (prefix
// included).
func Text(raw []byte, encoding string) (string, error) {
	switch encoding {
	case "hex":
		return hex.EncodeToString(raw), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(raw), nil
	case "base64url":
		return base64.RawURLEncoding.EncodeToString(raw), nil
	}
	enc, err := multibase.EncoderByName(encoding)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	return enc.Encode(raw), nil
}

// Into copies raw digest bytes into the destination buffer, reinterpreting
// them as elements of the destination's width. This is the single dispatch
// point over the supported destination shapes. []uint16 and []uint32
// elements take the host byte order and require the digest length to be a
// multiple of the element width. []uint64 destinations use wide-lane
// packing, which permits a partial final lane.
func Into(raw []byte, dst any) error {
	switch d := dst.(type) {
	case []byte:
		if len(d) < len(raw) {
			return fmt.Errorf("%w: %d < %d", ErrBufferTooSmall, len(d), len(raw))
		}
		copy(d, raw)
		return nil
	case []uint16:
		if len(raw)%2 != 0 {
			return fmt.Errorf("%w: %d bytes into uint16", ErrMisalignedWidth, len(raw))
		}
		if len(d)*2 < len(raw) {
			return fmt.Errorf("%w: %d < %d", ErrBufferTooSmall, len(d)*2, len(raw))
		}
		for i := 0; i < len(raw)/2; i++ {
			d[i] = binary.NativeEndian.Uint16(raw[i*2:])
		}
		return nil
	case []uint32:
		if len(raw)%4 != 0 {
			return fmt.Errorf("%w: %d bytes into uint32", ErrMisalignedWidth, len(raw))
		}
		if len(d)*4 < len(raw) {
			return fmt.Errorf("%w: %d < %d", ErrBufferTooSmall, len(d)*4, len(raw))
		}
		for i := 0; i < len(raw)/4; i++ {
			d[i] = binary.NativeEndian.Uint32(raw[i*4:])
		}
		return nil
	case []uint64:
		return Lanes(raw, d)
	}
	return fmt.Errorf("%w: %T", ErrUnsupportedBuffer, dst)
}

// Lanes reassembles raw digest bytes into 64-bit lanes honoring host
// endianness. On little-endian hosts byte i of a lane occupies bit position
// 8*i, so bytes 01..08 pack to 0x0807060504030201. On big-endian hosts
// bytes map in array order from the most significant byte. A partial final
// lane places only the bytes present; the remaining positions stay zero.
func Lanes(raw []byte, dst []uint64) error {
	lanes := (len(raw) + 7) / 8
	if len(dst) < lanes {
		return fmt.Errorf("%w: %d lanes < %d", ErrBufferTooSmall, len(dst), lanes)
	}
	for lane := 0; lane < lanes; lane++ {
		var v uint64
		for i := 0; i < 8; i++ {
			off := lane*8 + i
			if off >= len(raw) {
				break
			}
			if hostLittle {
				v |= uint64(raw[off]) << (8 * i)
			} else {
				v |= uint64(raw[off]) << (56 - 8*i)
			}
		}
		dst[lane] = v
	}
	return nil
}
