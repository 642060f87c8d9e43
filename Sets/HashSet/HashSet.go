package HashSet

import (
	"iter"

	Go_HashTable "github.com/g-m-twostay/go-hashtable"
	"github.com/g-m-twostay/go-hashtable/Sets"
	"github.com/g-m-twostay/go-hashtable/Tables/HashTable"
)

var _ Sets.ExtendedSet[int] = (*HashSet[int])(nil)

func identity[E any](e E) E {
	return e
}

// New HashSet of type E hashed with seed.
// size is used to calculate the initial table size that should handle size elements without resizing.
func New[E comparable](size uint, seed Go_HashTable.Hasher) *HashSet[E] {
	return NewFunc(size, func(e E) uint { return Go_HashTable.HashComparable(seed, e) }, func(a, b E) bool { return a == b })
}

// NewFunc creates a HashSet using hash and eq as the hash and equality policies.
func NewFunc[E any](size uint, hash func(E) uint, eq func(E, E) bool) *HashSet[E] {
	return &HashSet[E]{HashTable.New[E, E](size, hash, eq, identity[E]), hash, eq}
}

type HashSet[E any] struct {
	t    *HashTable.Table[E, E]
	hash func(E) uint
	eq   func(E, E) bool
}

// Table exposes the backing table, mainly for inspecting its buckets and setting its policies.
func (u *HashSet[E]) Table() *HashTable.Table[E, E] {
	return u.t
}

// Size of the set.
func (u *HashSet[E]) Size() uint {
	return u.t.Size()
}

func (u *HashSet[E]) BucketCount() uint {
	return u.t.BucketCount()
}

// Put e into the set. Returns true if e wasn't in the set.
func (u *HashSet[E]) Put(e E) (bool, error) {
	_, ok, err := u.t.InsertUnique(e)
	return ok, err
}

// PutAll elements of s into u. Returns the number of elements that weren't in u.
func (u *HashSet[E]) PutAll(s Sets.Set[E]) (n uint, err error) {
	s.Range(func(e E) bool {
		var ok bool
		if ok, err = u.Put(e); ok {
			n++
		}
		return err == nil
	})
	return
}

// Has e in the set. Returns true if e is present in the set.
func (u *HashSet[E]) Has(e E) bool {
	return !u.t.Find(e).End()
}

func (u *HashSet[E]) Find(e E) HashTable.Iterator[E, E] {
	return u.t.Find(e)
}

func (u *HashSet[E]) Count(e E) uint {
	return u.t.Count(e)
}

// Eq reports whether u and s hold the same elements.
func (u *HashSet[E]) Eq(s Sets.Set[E]) bool {
	if u.Size() != s.Size() {
		return false
	}
	eq := true
	s.Range(func(e E) bool {
		eq = u.Has(e)
		return eq
	})
	return eq
}

// Filter returns a new set holding the elements of u for which f returns true.
func (u *HashSet[E]) Filter(f func(E) bool) (Sets.Set[E], error) {
	v := NewFunc(0, u.hash, u.eq)
	v.t.Alloc, v.t.Copy, v.t.Log = u.t.Alloc, u.t.Copy, u.t.Log
	var err error
	u.Range(func(e E) bool {
		if f(e) {
			_, err = v.Put(e)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Take an arbitrary element from the set. Returns zero value if the set is empty.
// The element stays in the set.
func (u *HashSet[E]) Take() (e E) {
	if it := u.t.Begin(); !it.End() {
		e = it.Value()
	}
	return
}

// Range calls f on every element until it returns false. f must not modify the set.
func (u *HashSet[E]) Range(f func(E) bool) {
	for e := range u.t.All() {
		if !f(e) {
			return
		}
	}
}

func (u *HashSet[E]) All() iter.Seq[E] {
	return u.t.All()
}

// Resize the backing table to hold at least n elements without growing.
func (u *HashSet[E]) Resize(n uint) error {
	return u.t.Resize(n)
}

func (u *HashSet[E]) Clear() {
	u.t.Clear()
}

// Clone returns an independent copy of the set.
func (u *HashSet[E]) Clone() (*HashSet[E], error) {
	t, err := u.t.Clone()
	if err != nil {
		return nil, err
	}
	return &HashSet[E]{t, u.hash, u.eq}, nil
}
