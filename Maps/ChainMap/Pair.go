package ChainMap

import "fmt"

// Pair is the value stored in the backing table; Key is the part that is hashed.
type Pair[K, V any] struct {
	Key K
	Val V
}

func key[K, V any](p Pair[K, V]) K {
	return p.Key
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("key: %#v; val: %#v", p.Key, p.Val)
}
