package Go_HashTable

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher holds the seeds of the default hash policies. Create it with MakeHasher; the zero value panics in
// HashComparable. The receivers are safe for concurrent use.
type Hasher struct {
	seed maphash.Seed
	salt uint64
}

func MakeHasher() Hasher {
	s := maphash.MakeSeed()
	return Hasher{s, maphash.String(s, "")}
}

// HashBytes hashes b with xxhash seeded by u.
func (u Hasher) HashBytes(b []byte) uint {
	var d xxhash.Digest
	d.ResetWithSeed(u.salt)
	d.Write(b)
	return uint(d.Sum64())
}

// HashString hashes v the same way as HashBytes([]byte(v)) without copying it.
func (u Hasher) HashString(v string) uint {
	var d xxhash.Digest
	d.ResetWithSeed(u.salt)
	d.WriteString(v)
	return uint(d.Sum64())
}

// HashInt hashes the little endian bytes of v.
func (u Hasher) HashInt(v int) uint {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return u.HashBytes(b[:])
}

// HashComparable hashes any comparable value consistently with ==.
func HashComparable[E comparable](u Hasher, e E) uint {
	return uint(maphash.Comparable(u.seed, e))
}
