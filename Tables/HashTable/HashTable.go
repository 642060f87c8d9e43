/*
Package HashTable implements a generic open-chaining hash table meant as the backing store of set and map containers.

# Layout
Nodes live in a single arena slice and are addressed by index; a bucket holds the index of the first node of its
chain. The bucket count is always one of the primes returned by NextPrime, so hash(key)%BucketCount() spreads keys
that only differ in their high bits.

# Growth
Every InsertUnique/InsertEqual first calls Resize(Size()+1), so the load factor never exceeds 1. The bucket array only
grows; Clear empties the chains but keeps the array.

# Concurrency
A Table isn't safe for concurrent use. Reads must be synchronized as well, since inserts may rehash the table.
*/
package HashTable

import (
	"fmt"
	"iter"

	"go.uber.org/zap"
)

var nop = zap.NewNop()

// Table is a chained hash table storing values of type V identified by keys of type K.
// Public fields are policies and can be set any time the table isn't in use.
type Table[K, V any] struct {
	buckets []int     //head of each chain, none for an empty bucket.
	nodes   []node[V] //every node in the arena is linked into exactly one chain.
	gen     uint      //bumped whenever outstanding iterators become invalid.
	hash    func(K) uint
	equal   func(K, K) bool
	key     func(V) K

	Alloc Allocator          //nil means storage is never refused.
	Copy  func(V) (V, error) //used by CopyFrom and Clone. nil means plain assignment.
	Log   *zap.Logger        //nil means no logging.
}

// New creates a table with NextPrime(n) buckets. key extracts the key of a stored value; hash and equal must agree
// on the keys they consider equal.
func New[K, V any](n uint, hash func(K) uint, equal func(K, K) bool, key func(V) K) *Table[K, V] {
	return &Table[K, V]{buckets: emptyBuckets(NextPrime(n)), hash: hash, equal: equal, key: key}
}

func emptyBuckets(n uint) []int {
	b := make([]int, n)
	for i := range b {
		b[i] = none
	}
	return b
}

func (t *Table[K, V]) logger() *zap.Logger {
	if t.Log == nil {
		return nop
	}
	return t.Log
}

func (t *Table[K, V]) bkt(k K, n uint) uint {
	return t.hash(k) % n
}

func (t *Table[K, V]) at(i int) Iterator[K, V] {
	return Iterator[K, V]{t: t, cur: i, gen: t.gen}
}

func (t *Table[K, V]) newNode(v V, next int) (int, error) {
	if t.Alloc != nil {
		if err := t.Alloc.Nodes(uint(len(t.nodes)) + 1); err != nil {
			return none, err
		}
	}
	t.nodes = append(t.nodes, node[V]{v, next})
	return len(t.nodes) - 1, nil
}

// Size is the number of stored values.
func (t *Table[K, V]) Size() uint {
	return uint(len(t.nodes))
}

func (t *Table[K, V]) Empty() bool {
	return len(t.nodes) == 0
}

func (t *Table[K, V]) BucketCount() uint {
	return uint(len(t.buckets))
}

func (t *Table[K, V]) MaxBucketCount() uint {
	return MaxSize()
}

// LoadFactor is Size()/BucketCount().
func (t *Table[K, V]) LoadFactor() float64 {
	return float64(len(t.nodes)) / float64(len(t.buckets))
}

// Bucket returns the index of the bucket k belongs to under the current bucket count.
func (t *Table[K, V]) Bucket(k K) uint {
	return t.bkt(k, uint(len(t.buckets)))
}

// BucketSize returns the length of the chain in bucket i.
func (t *Table[K, V]) BucketSize(i uint) (n uint) {
	for cur := t.buckets[i]; cur != none; cur = t.nodes[cur].next {
		n++
	}
	return
}

// Find returns an iterator to the first value whose key equals k, or End() if there is none.
func (t *Table[K, V]) Find(k K) Iterator[K, V] {
	for cur := t.buckets[t.Bucket(k)]; cur != none; cur = t.nodes[cur].next {
		if t.equal(t.key(t.nodes[cur].val), k) {
			return t.at(cur)
		}
	}
	return t.End()
}

// Count returns the number of values whose key equals k.
func (t *Table[K, V]) Count(k K) (n uint) {
	for cur := t.buckets[t.Bucket(k)]; cur != none; cur = t.nodes[cur].next {
		if t.equal(t.key(t.nodes[cur].val), k) {
			n++
		}
	}
	return
}

// InsertUnique grows the table if needed and inserts v unless a value with an equal key is present.
// It returns an iterator to the value with v's key and whether v was inserted.
func (t *Table[K, V]) InsertUnique(v V) (Iterator[K, V], bool, error) {
	if err := t.Resize(t.Size() + 1); err != nil {
		return t.End(), false, err
	}
	return t.InsertUniqueNoResize(v)
}

// InsertUniqueNoResize is InsertUnique without the growth check. New values are put at the head of their chain.
func (t *Table[K, V]) InsertUniqueNoResize(v V) (Iterator[K, V], bool, error) {
	k := t.key(v)
	b := t.Bucket(k)
	first := t.buckets[b]
	for cur := first; cur != none; cur = t.nodes[cur].next {
		if t.equal(t.key(t.nodes[cur].val), k) {
			return t.at(cur), false, nil
		}
	}
	i, err := t.newNode(v, first)
	if err != nil {
		return t.End(), false, err
	}
	t.buckets[b] = i
	return t.at(i), true, nil
}

// InsertEqual grows the table if needed and always inserts v. It returns an iterator to the new value.
func (t *Table[K, V]) InsertEqual(v V) (Iterator[K, V], error) {
	if err := t.Resize(t.Size() + 1); err != nil {
		return t.End(), err
	}
	return t.InsertEqualNoResize(v)
}

// InsertEqualNoResize is InsertEqual without the growth check. v is linked right after the first value with an equal
// key, so equal keys stay contiguous in the chain; otherwise it goes to the head of the chain.
func (t *Table[K, V]) InsertEqualNoResize(v V) (Iterator[K, V], error) {
	k := t.key(v)
	b := t.Bucket(k)
	first := t.buckets[b]
	for cur := first; cur != none; cur = t.nodes[cur].next {
		if t.equal(t.key(t.nodes[cur].val), k) {
			i, err := t.newNode(v, t.nodes[cur].next)
			if err != nil {
				return t.End(), err
			}
			t.nodes[cur].next = i
			return t.at(i), nil
		}
	}
	i, err := t.newNode(v, first)
	if err != nil {
		return t.End(), err
	}
	t.buckets[b] = i
	return t.at(i), nil
}

// Resize grows the bucket array to NextPrime(hint) buckets and rehashes every node into it. It does nothing if hint,
// or the prime it rounds to, isn't larger than BucketCount(). On error the table is left untouched.
// The order of values within a chain isn't preserved.
func (t *Table[K, V]) Resize(hint uint) error {
	old := uint(len(t.buckets))
	if hint <= old {
		return nil
	}
	n := NextPrime(hint)
	if n <= old {
		return nil
	}
	if t.Alloc != nil {
		if err := t.Alloc.Buckets(n); err != nil {
			t.logger().Debug("resize refused", zap.Uint("from", old), zap.Uint("to", n), zap.Error(err))
			return err
		}
	}
	nb := emptyBuckets(n)
	for b := range t.buckets {
		for first := t.buckets[b]; first != none; first = t.buckets[b] {
			d := t.bkt(t.key(t.nodes[first].val), n)
			t.buckets[b] = t.nodes[first].next
			t.nodes[first].next = nb[d]
			nb[d] = first
		}
	}
	t.buckets = nb
	t.gen++
	t.logger().Debug("rehashed", zap.Uint("from", old), zap.Uint("to", n), zap.Uint("size", t.Size()))
	return nil
}

// Clear removes every value. The bucket count stays the same.
func (t *Table[K, V]) Clear() {
	for b, first := range t.buckets {
		for cur := first; cur != none; {
			next := t.nodes[cur].next
			t.nodes[cur] = node[V]{next: none} //drop the reference to the value.
			cur = next
		}
		t.buckets[b] = none
	}
	t.nodes = t.nodes[:0]
	t.gen++
}

// CopyFrom replaces the content of t with copies of the values in o, keeping o's bucket count and the order within
// each chain. Values are copied with t.Copy. If it fails, t is left empty, not in its previous state.
func (t *Table[K, V]) CopyFrom(o *Table[K, V]) error {
	if t == o {
		return nil
	}
	t.Clear()
	n := uint(len(o.buckets))
	if t.Alloc != nil {
		if err := t.Alloc.Buckets(n); err != nil {
			return t.abortCopy(err)
		}
	}
	t.buckets = emptyBuckets(n)
	for b, first := range o.buckets {
		prev := none
		for cur := first; cur != none; cur = o.nodes[cur].next {
			v, err := t.copyValue(o.nodes[cur].val)
			if err != nil {
				return t.abortCopy(err)
			}
			i, err := t.newNode(v, none)
			if err != nil {
				return t.abortCopy(err)
			}
			if prev == none {
				t.buckets[b] = i
			} else {
				t.nodes[prev].next = i
			}
			prev = i
		}
	}
	t.gen++
	return nil
}

func (t *Table[K, V]) copyValue(v V) (V, error) {
	if t.Copy == nil {
		return v, nil
	}
	c, err := t.Copy(v)
	if err != nil {
		return c, fmt.Errorf("%w: %w", ErrCopy, err)
	}
	return c, nil
}

func (t *Table[K, V]) abortCopy(err error) error {
	t.Clear()
	t.logger().Debug("copy aborted", zap.Uint("buckets", t.BucketCount()), zap.Error(err))
	return err
}

// Clone returns a deep copy of t sharing its policies.
func (t *Table[K, V]) Clone() (*Table[K, V], error) {
	c := &Table[K, V]{hash: t.hash, equal: t.equal, key: t.key, Alloc: t.Alloc, Copy: t.Copy, Log: t.Log}
	if err := c.CopyFrom(t); err != nil {
		return nil, err
	}
	return c, nil
}

// Begin returns an iterator to the first value, or End() if t is empty.
func (t *Table[K, V]) Begin() Iterator[K, V] {
	for _, first := range t.buckets {
		if first != none {
			return t.at(first)
		}
	}
	return t.End()
}

func (t *Table[K, V]) End() Iterator[K, V] {
	return t.at(none)
}

// All yields every value in iteration order. t must not be modified during the iteration.
func (t *Table[K, V]) All() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := t.Begin(); !it.End(); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
