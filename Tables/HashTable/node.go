package HashTable

// none marks the end of a chain or an empty bucket.
const none = -1

// node lives in Table.nodes and is addressed by its index there.
type node[V any] struct {
	val  V
	next int
}
