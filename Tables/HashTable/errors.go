package HashTable

import "errors"

var (
	// ErrNoMemory is returned when the Allocator refuses storage for buckets or nodes.
	ErrNoMemory = errors.New("HashTable: out of memory")
	// ErrCopy is returned when the Copy policy of a table fails during CopyFrom.
	ErrCopy = errors.New("HashTable: value copy failed")
)
