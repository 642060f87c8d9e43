package HashTable

// Iterator points at a value in a Table, or at the end of it.
//
// Iterators are invalidated by Resize (and so by any insert that grows the table), Clear and CopyFrom; inserts that
// don't grow the table keep them valid. Using an invalidated iterator panics.
type Iterator[K, V any] struct {
	t   *Table[K, V]
	cur int
	gen uint
}

func (it Iterator[K, V]) check() {
	if !it.Valid() {
		panic("HashTable: iterator used after the table was resized, cleared or copied into")
	}
}

// Valid reports whether it can still be used.
func (it Iterator[K, V]) Valid() bool {
	return it.t != nil && it.gen == it.t.gen
}

// End reports whether it points past the last value.
func (it Iterator[K, V]) End() bool {
	return it.t == nil || it.cur == none
}

// Equal reports whether it and o point at the same value, or are both at the end of the same table.
func (it Iterator[K, V]) Equal(o Iterator[K, V]) bool {
	return it.t == o.t && it.cur == o.cur
}

// Value returns the value it points at.
func (it Iterator[K, V]) Value() V {
	it.check()
	if it.cur == none {
		panic("HashTable: Value called on end iterator")
	}
	return it.t.nodes[it.cur].val
}

// Next moves it to the next value. When the current chain is exhausted, it continues with the first non-empty bucket
// after the current one.
func (it *Iterator[K, V]) Next() {
	it.check()
	if it.cur == none {
		return
	}
	t, old := it.t, it.cur
	if it.cur = t.nodes[old].next; it.cur == none {
		for b := t.Bucket(t.key(t.nodes[old].val)) + 1; it.cur == none && b < uint(len(t.buckets)); b++ {
			it.cur = t.buckets[b]
		}
	}
}
