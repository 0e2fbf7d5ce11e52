package hasher

import "github.com/storacha/go-hasher/digest"

// Sum computes a one-shot digest of data with the named algorithm. It is
// equivalent to constructing a session, updating once and finalizing.
func Sum(name string, data []byte) (digest.Digest, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	return h.Update(data).Digest()
}

// SumBytes computes a one-shot digest and returns the raw bytes.
func SumBytes(name string, data []byte) ([]byte, error) {
	h, err := New(name)
	if err != nil {
		return nil, err
	}
	return h.Update(data).DigestBytes()
}

// SumText computes a one-shot digest rendered in the named text encoding.
func SumText(name string, data []byte, encoding string) (string, error) {
	h, err := New(name)
	if err != nil {
		return "", err
	}
	return h.Update(data).DigestText(encoding)
}

// SumInto computes a one-shot digest into the destination buffer.
func SumInto(name string, data []byte, dst any) error {
	h, err := New(name)
	if err != nil {
		return err
	}
	return h.Update(data).DigestInto(dst)
}
