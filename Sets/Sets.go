package Sets

// Set stores each element at most once.
type Set[E any] interface {
	Put(E) (bool, error)
	Has(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}

type ExtendedSet[E any] interface {
	Set[E]
	PutAll(Set[E]) (uint, error)
	Eq(Set[E]) bool
	Filter(func(E) bool) (Set[E], error)
}

// MultiSet stores every element added to it, equal ones included.
type MultiSet[E any] interface {
	Add(E) error
	Count(E) uint
	Size() uint
	Range(func(E) bool)
}
