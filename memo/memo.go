// Package memo caches one-shot digests in an LRU, for workloads that
// re-hash the same small payloads repeatedly (recomputing content addresses
// for hot blocks).
package memo

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/storacha/go-hasher/digest"
	"github.com/storacha/go-hasher/hasher"
)

// DefaultCacheSize is used when a non-positive size is given.
var DefaultCacheSize = 128

// Cache memoizes digests of one algorithm, keyed by input bytes. Hashing is
// pure, so a hit is always byte-identical to recomputation.
type Cache struct {
	algo string
	data *lru.Cache[string, digest.Digest]
}

// New creates a memoizing digest cache for the named algorithm. The size
// parameter controls the maximum number of cached digests. Pass a value
// less than 1 to use [DefaultCacheSize].
func New(algo string, size int) (*Cache, error) {
	if _, err := hasher.LookupAlgorithm(algo); err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	data, err := lru.New[string, digest.Digest](size)
	if err != nil {
		return nil, fmt.Errorf("creating digest LRU: %w", err)
	}
	return &Cache{algo: algo, data: data}, nil
}

// Sum returns the digest of data, from cache when present.
func (c *Cache) Sum(data []byte) (digest.Digest, error) {
	key := string(data)
	if d, ok := c.data.Get(key); ok {
		return d, nil
	}
	d, err := hasher.Sum(c.algo, data)
	if err != nil {
		return nil, err
	}
	c.data.Add(key, d)
	return d, nil
}

// Len returns the number of cached digests.
func (c *Cache) Len() int {
	return c.data.Len()
}
