//go:build go1.22

package kv

import (
	randv2 "math/rand/v2"
	"unsafe"
)

// Hasher hashes keys of type K with the hash function the Go runtime
// generated for the built-in map[K]..., so custom tables get the same
// quality and AES acceleration as the native map. Each Hasher carries
// its own seed, two tables never share a bucket layout.
type Hasher[K comparable] struct {
	hash rtHashFn
	seed uintptr
}

type rtHashFn func(key unsafe.Pointer, seed uintptr) uintptr

// Layout prefix of the runtime map type descriptor, pinned by the
// go1.22 build constraint (go/src/internal/abi/type.go, MapType).
// Only the hasher slot is read. The leading words cover abi.Type
// (48 bytes) plus the key, elem and bucket type pointers.
type rtMapType struct {
	_      [9]uint64
	hasher rtHashFn
	_      uint64 // key size, value size, bucket size, flags
}

type rtMapIface struct {
	typ *rtMapType
	_   uint64 // hmap pointer
}

//go:nosplit
//go:nocheckptr
func noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

func (h Hasher[K]) Hash(key K) uint64 {
	// Keeps the key argument off the heap.
	p := noescape(unsafe.Pointer(&key))
	return uint64(h.hash(p, h.seed))
}

// rtHasherOf pulls the hash function out of a throwaway map value
// through the eface type descriptor.
func rtHasherOf[K comparable]() rtHashFn {
	i := (any)(make(map[K]struct{}))
	return (*rtMapIface)(unsafe.Pointer(&i)).typ.hasher
}

func newHasher[K comparable]() Hasher[K] {
	return Hasher[K]{
		hash: rtHasherOf[K](),
		seed: uintptr(randv2.Uint64()),
	}
}

// newSeedHasher reuses the hash function under a fresh seed.
func newSeedHasher[K comparable](h Hasher[K]) Hasher[K] {
	return Hasher[K]{
		hash: h.hash,
		seed: uintptr(randv2.Uint64()),
	}
}
