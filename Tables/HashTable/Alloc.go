package HashTable

import "fmt"

// Allocator is consulted before a table acquires storage. Returning an error aborts the operation before any state of
// the table changes.
type Allocator interface {
	// Buckets is called before a bucket array of length n is acquired.
	Buckets(n uint) error
	// Nodes is called before a node is acquired; live is the number of nodes held once it is.
	Nodes(live uint) error
}

// Limit is an Allocator that caps the bucket array length and the number of nodes. A zero field means no cap.
type Limit struct {
	MaxBuckets, MaxNodes uint
}

func (l Limit) Buckets(n uint) error {
	if l.MaxBuckets != 0 && n > l.MaxBuckets {
		return fmt.Errorf("%w: %d buckets requested, limit is %d", ErrNoMemory, n, l.MaxBuckets)
	}
	return nil
}

func (l Limit) Nodes(live uint) error {
	if l.MaxNodes != 0 && live > l.MaxNodes {
		return fmt.Errorf("%w: %d nodes requested, limit is %d", ErrNoMemory, live, l.MaxNodes)
	}
	return nil
}
