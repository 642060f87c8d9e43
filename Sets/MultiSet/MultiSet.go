package MultiSet

import (
	"iter"

	Go_HashTable "github.com/g-m-twostay/go-hashtable"
	"github.com/g-m-twostay/go-hashtable/Sets"
	"github.com/g-m-twostay/go-hashtable/Tables/HashTable"
)

var _ Sets.MultiSet[int] = (*MultiSet[int])(nil)

func identity[E any](e E) E {
	return e
}

// New MultiSet of type E hashed with seed. size is the number of elements it should hold without growing.
func New[E comparable](size uint, seed Go_HashTable.Hasher) *MultiSet[E] {
	return NewFunc(size, func(e E) uint { return Go_HashTable.HashComparable(seed, e) }, func(a, b E) bool { return a == b })
}

func NewFunc[E any](size uint, hash func(E) uint, eq func(E, E) bool) *MultiSet[E] {
	return &MultiSet[E]{HashTable.New[E, E](size, hash, eq, identity[E]), eq}
}

// MultiSet keeps equal elements next to each other in its chains, so they are visited in a row.
type MultiSet[E any] struct {
	t  *HashTable.Table[E, E]
	eq func(E, E) bool
}

func (u *MultiSet[E]) Table() *HashTable.Table[E, E] {
	return u.t
}

func (u *MultiSet[E]) Size() uint {
	return u.t.Size()
}

// Add e to the set, even if an equal element is already present.
func (u *MultiSet[E]) Add(e E) error {
	_, err := u.t.InsertEqual(e)
	return err
}

// Count the elements equal to e.
func (u *MultiSet[E]) Count(e E) uint {
	return u.t.Count(e)
}

func (u *MultiSet[E]) Has(e E) bool {
	return !u.t.Find(e).End()
}

// EqualRange yields every element equal to e.
func (u *MultiSet[E]) EqualRange(e E) iter.Seq[E] {
	return func(yield func(E) bool) {
		for it := u.t.Find(e); !it.End() && u.eq(it.Value(), e); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

func (u *MultiSet[E]) Range(f func(E) bool) {
	for e := range u.t.All() {
		if !f(e) {
			return
		}
	}
}

func (u *MultiSet[E]) All() iter.Seq[E] {
	return u.t.All()
}

func (u *MultiSet[E]) Clear() {
	u.t.Clear()
}

func (u *MultiSet[E]) Clone() (*MultiSet[E], error) {
	t, err := u.t.Clone()
	if err != nil {
		return nil, err
	}
	return &MultiSet[E]{t, u.eq}, nil
}
