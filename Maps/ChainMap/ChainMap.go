package ChainMap

import (
	"iter"

	Go_HashTable "github.com/g-m-twostay/go-hashtable"
	"github.com/g-m-twostay/go-hashtable/Maps"
	"github.com/g-m-twostay/go-hashtable/Tables/HashTable"
)

var _ Maps.Map[int, int] = (*ChainMap[int, int])(nil)

// ChainMap is a map backed by a HashTable.Table of Pairs.
type ChainMap[K, V any] struct {
	t *HashTable.Table[K, Pair[K, V]]
}

// MakeChainMap creates a map hashed with seed that should hold size pairs without growing.
func MakeChainMap[K comparable, V any](size uint, seed Go_HashTable.Hasher) *ChainMap[K, V] {
	return MakeChainMapFunc[K, V](size, func(k K) uint { return Go_HashTable.HashComparable(seed, k) }, func(a, b K) bool { return a == b })
}

func MakeChainMapFunc[K, V any](size uint, hash func(K) uint, eq func(K, K) bool) *ChainMap[K, V] {
	return &ChainMap[K, V]{HashTable.New[K, Pair[K, V]](size, hash, eq, key[K, V])}
}

func (u *ChainMap[K, V]) Table() *HashTable.Table[K, Pair[K, V]] {
	return u.t
}

func (u *ChainMap[K, V]) Size() uint {
	return u.t.Size()
}

// LoadOrStore returns the value stored for key and true if there is one; otherwise it stores val and returns it with
// false.
func (u *ChainMap[K, V]) LoadOrStore(key K, val V) (V, bool, error) {
	it, stored, err := u.t.InsertUnique(Pair[K, V]{key, val})
	if err != nil {
		return val, false, err
	}
	return it.Value().Val, !stored, nil
}

func (u *ChainMap[K, V]) Load(key K) (val V, ok bool) {
	if it := u.t.Find(key); !it.End() {
		val, ok = it.Value().Val, true
	}
	return
}

func (u *ChainMap[K, V]) HasKey(key K) bool {
	return !u.t.Find(key).End()
}

// Range calls f on every pair until it returns false. f must not modify the map.
func (u *ChainMap[K, V]) Range(f func(K, V) bool) {
	for p := range u.t.All() {
		if !f(p.Key, p.Val) {
			return
		}
	}
}

func (u *ChainMap[K, V]) Pairs() iter.Seq2[K, V] {
	return u.Range
}

func (u *ChainMap[K, V]) Clear() {
	u.t.Clear()
}

func (u *ChainMap[K, V]) Clone() (*ChainMap[K, V], error) {
	t, err := u.t.Clone()
	if err != nil {
		return nil, err
	}
	return &ChainMap[K, V]{t}, nil
}
