package Maps

// Map associates each key with one value. Keys are never replaced once stored.
type Map[K, V any] interface {
	LoadOrStore(K, V) (V, bool, error)
	Load(K) (V, bool)
	HasKey(K) bool
	Size() uint
	Range(func(K, V) bool)
	Clear()
}
