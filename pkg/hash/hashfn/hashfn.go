package hashfn

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

var ErrUnknownHash = errors.New("hashfn: unknown hash function")

// HashFunc is a type definition for what a hash function should look like.
// It must be deterministic for a given key.
type HashFunc func(key string) uint64

// Default is the HashFunc used when none is supplied
var Default HashFunc = Murmur3

// Additive sums the byte values of the key. Anagrams collide, which makes
// it handy for exercising collision paths.
func Additive(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash += uint64(key[i])
	}
	return hash
}

// Weighted sums each byte value multiplied by its one-based position
func Weighted(key string) uint64 {
	var hash uint64
	for i := 0; i < len(key); i++ {
		hash += uint64(i+1) * uint64(key[i])
	}
	return hash
}

func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

func Murmur3(key string) uint64 {
	return murmur3.Sum64([]byte(key))
}

var registry = map[string]HashFunc{
	"additive": Additive,
	"weighted": Weighted,
	"xxhash":   XXHash,
	"murmur3":  Murmur3,
}

// ByName looks up one of the registered hash functions
func ByName(name string) (HashFunc, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHash, name)
	}
	return fn, nil
}

// Names returns the registered hash function names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
