package HashTable

import (
	"errors"
	"math/rand"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func hasher(x int) uint {
	return uint(x)
}

func cmp(x, y int) bool {
	return x == y
}

func identity(x int) int {
	return x
}

func newInts(n uint) *Table[int, int] {
	return New[int, int](n, hasher, cmp, identity)
}

// checkTopology verifies that Size matches the chains and that every node sits in the bucket of its key.
func checkTopology[K, V any](t *testing.T, tb *Table[K, V]) {
	t.Helper()
	var total uint
	for b := range tb.buckets {
		for cur := tb.buckets[b]; cur != none; cur = tb.nodes[cur].next {
			if got := tb.Bucket(tb.key(tb.nodes[cur].val)); got != uint(b) {
				t.Errorf("node %d in bucket %d, belongs to %d", cur, b, got)
			}
			total++
		}
	}
	if total != tb.Size() {
		t.Errorf("size %d, chains hold %d", tb.Size(), total)
	}
}

func TestTable_InsertUnique(t *testing.T) {
	T := newInts(0)
	it1, ok, err := T.InsertUnique(5)
	if err != nil || !ok || it1.Value() != 5 || T.Size() != 1 {
		t.Error("wrong insert 1")
	}
	it2, ok, err := T.InsertUnique(5)
	if err != nil || ok || it2.Value() != 5 || T.Size() != 1 {
		t.Error("wrong insert 2")
	}
	if !it1.Equal(it2) {
		t.Error("different nodes for equal keys")
	}
	for i := 0; i < 1000; i++ {
		if _, ok, _ := T.InsertUnique(i); ok == (i == 5) {
			t.Errorf("wrong insert of %d", i)
		}
	}
	if T.Size() != 1000 {
		t.Errorf("wrong size %d", T.Size())
	}
	for i := 0; i < 1000; i++ {
		if T.Find(i).End() || T.Count(i) != 1 {
			t.Errorf("lost %d", i)
		}
	}
	if !T.Find(1000).End() || T.Count(-1) != 0 {
		t.Error("found absent key")
	}
	checkTopology(t, T)
}

func TestTable_Collisions(t *testing.T) {
	T := newInts(7)
	if T.BucketCount() != 7 {
		t.Fatalf("wrong bucket count %d", T.BucketCount())
	}
	for _, v := range []int{3, 10, 17} {
		T.InsertUnique(v)
	}
	if T.BucketSize(3) != 3 {
		t.Errorf("values not in the same bucket")
	}
	for _, v := range []int{3, 10, 17} {
		if it := T.Find(v); it.End() || it.Value() != v {
			t.Errorf("wrong find %d", v)
		}
		if T.Count(v) != 1 {
			t.Errorf("wrong count %d", v)
		}
	}
	if it := T.Begin(); it.Value() != 17 { //chains are built from the head.
		t.Errorf("wrong head %d", it.Value())
	}
}

func TestTable_InsertEqual(t *testing.T) {
	T := newInts(64)
	T.InsertEqual(1)
	T.InsertEqual(98) //same bucket as 1
	its := make([]Iterator[int, int], 0, 5)
	for i := 0; i < 5; i++ {
		it, err := T.InsertEqual(1)
		if err != nil {
			t.Fatal(err)
		}
		its = append(its, it)
	}
	if T.Count(1) != 6 || T.Count(98) != 1 || T.Size() != 7 {
		t.Errorf("wrong count %d", T.Count(1))
	}
	for i := range its {
		for j := range its {
			if i != j && its[i].Equal(its[j]) {
				t.Errorf("iterators %d and %d are equal", i, j)
			}
		}
	}
	seen := map[int]bool{}
	run := 0
	for it := T.Find(1); !it.End() && it.Value() == 1; it.Next() {
		seen[it.cur] = true
		run++
	}
	if run != 6 {
		t.Errorf("equal keys aren't contiguous, run of %d", run)
	}
	for i, it := range its {
		if !seen[it.cur] {
			t.Errorf("iterator %d not reachable", i)
		}
	}
	checkTopology(t, T)
}

func TestTable_Resize(t *testing.T) {
	T := newInts(0)
	for _, v := range []int{1, 2, 3} {
		T.InsertUnique(v)
	}
	before := T.BucketCount()
	if T.Resize(before) != nil || T.Resize(2) != nil || T.BucketCount() != before {
		t.Error("resize shrank or changed the table")
	}
	if err := T.Resize(1000); err != nil {
		t.Fatal(err)
	}
	if T.BucketCount() != 1543 || T.Size() != 3 {
		t.Errorf("wrong resize %d %d", T.BucketCount(), T.Size())
	}
	for _, v := range []int{1, 2, 3} {
		if T.Find(v).End() {
			t.Errorf("lost %d", v)
		}
	}
	if err := T.Resize(1500); err != nil || T.BucketCount() != 1543 {
		t.Error("resize to a smaller prime")
	}
	checkTopology(t, T)
}

func TestTable_Rehash(t *testing.T) {
	T := newInts(0)
	r := rand.New(rand.NewSource(1))
	vals := make([]int, 5000)
	for i := range vals {
		vals[i] = r.Int()
		T.InsertEqual(vals[i])
	}
	last := T.BucketCount()
	for _, h := range []uint{10000, 30000, 100000} {
		T.Resize(h)
		if T.BucketCount() < last || T.BucketCount() < h {
			t.Errorf("bucket count %d after resize(%d)", T.BucketCount(), h)
		}
		last = T.BucketCount()
		if T.Size() != uint(len(vals)) {
			t.Errorf("size changed to %d", T.Size())
		}
		for _, v := range vals {
			if T.Find(v).End() {
				t.Fatalf("lost %d", v)
			}
		}
		checkTopology(t, T)
	}
}

func TestTable_Iterate(t *testing.T) {
	T := newInts(0)
	if !T.Begin().End() || !T.Begin().Equal(T.End()) {
		t.Error("empty table has a first value")
	}
	for i := 0; i < 3000; i++ {
		T.InsertEqual(i % 1000)
	}
	seen := make(map[int]bool, T.Size())
	for it := T.Begin(); !it.End(); it.Next() {
		if seen[it.cur] {
			t.Fatalf("node %d visited twice", it.cur)
		}
		seen[it.cur] = true
	}
	if uint(len(seen)) != T.Size() {
		t.Errorf("visited %d of %d", len(seen), T.Size())
	}
	n := 0
	for v := range T.All() {
		if v < 0 || v >= 1000 {
			t.Errorf("wrong value %d", v)
		}
		n++
	}
	if n != 3000 {
		t.Errorf("All yielded %d", n)
	}
	n = 0
	for range T.All() {
		if n++; n == 10 {
			break
		}
	}
}

func TestTable_Invalidate(t *testing.T) {
	T := newInts(0)
	T.InsertUnique(1)
	it := T.Find(1)
	T.InsertUnique(2) //doesn't grow.
	if !it.Valid() || it.Value() != 1 {
		t.Error("non-growing insert invalidated the iterator")
	}
	T.Resize(100)
	if it.Valid() {
		t.Error("resize didn't invalidate the iterator")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Error("stale iterator didn't panic")
			}
		}()
		it.Next()
	}()
	it = T.Begin()
	T.Clear()
	if it.Valid() {
		t.Error("clear didn't invalidate the iterator")
	}
}

func TestTable_Clear(t *testing.T) {
	T := newInts(0)
	for i := 0; i < 100; i++ {
		T.InsertEqual(i)
	}
	b := T.BucketCount()
	T.Clear()
	if T.Size() != 0 || !T.Empty() || T.BucketCount() != b || !T.Begin().End() {
		t.Error("wrong clear")
	}
	for i := range T.buckets {
		if T.buckets[i] != none {
			t.Fatalf("bucket %d not reset", i)
		}
	}
	if _, ok, _ := T.InsertUnique(3); !ok || T.Count(3) != 1 {
		t.Error("wrong insert after clear")
	}
	checkTopology(t, T)
}

func TestTable_ResizeRefused(t *testing.T) {
	T := newInts(0)
	T.Alloc = Limit{MaxBuckets: 13}
	for i := 0; i < 13; i++ {
		if _, _, err := T.InsertUnique(i); err != nil {
			t.Fatal(err)
		}
	}
	it := T.Find(4)
	if _, ok, err := T.InsertUnique(13); !errors.Is(err, ErrNoMemory) || ok {
		t.Errorf("wrong error %v", err)
	}
	if T.Size() != 13 || T.BucketCount() != 13 || !it.Valid() {
		t.Error("failed resize changed the table")
	}
	if _, err := T.InsertEqual(1); !errors.Is(err, ErrNoMemory) {
		t.Errorf("wrong error %v", err)
	}
	if _, ok, err := T.InsertUniqueNoResize(13); err != nil || !ok {
		t.Error("no-resize insert failed")
	}
	checkTopology(t, T)
}

func TestTable_NodeRefused(t *testing.T) {
	T := newInts(0)
	T.Alloc = Limit{MaxNodes: 3}
	for i := 0; i < 3; i++ {
		T.InsertEqual(i)
	}
	if _, ok, err := T.InsertUnique(9); !errors.Is(err, ErrNoMemory) || ok {
		t.Errorf("wrong error %v", err)
	}
	if _, err := T.InsertEqual(1); !errors.Is(err, ErrNoMemory) {
		t.Errorf("wrong error %v", err)
	}
	if _, ok, err := T.InsertUnique(2); err != nil || ok {
		t.Error("existing key needs no node")
	}
	if T.Size() != 3 || T.Count(1) != 1 || !T.Find(9).End() {
		t.Error("failed insert changed the table")
	}
	checkTopology(t, T)
}

func TestTable_Log(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	T := newInts(0)
	T.Log = zap.New(core)
	for i := 0; i < 8; i++ {
		T.InsertUnique(i)
	}
	if e := logs.FilterMessage("rehashed").All(); len(e) != 1 || e[0].ContextMap()["to"] != uint64(13) {
		t.Errorf("wrong logs %v", e)
	}
	T.Alloc = Limit{MaxBuckets: 13}
	T.Resize(14)
	if logs.FilterMessage("resize refused").Len() != 1 {
		t.Error("refusal not logged")
	}
}

func BenchmarkTable_InsertUnique(b *testing.B) {
	for range b.N {
		T := newInts(0)
		for i := range 1 << 12 {
			T.InsertUnique(i)
		}
	}
}

func BenchmarkTable_Find(b *testing.B) {
	T := newInts(1 << 12)
	for i := range 1 << 12 {
		T.InsertUnique(i)
	}
	b.ResetTimer()
	for range b.N {
		for i := range 1 << 12 {
			T.Find(i)
		}
	}
}
