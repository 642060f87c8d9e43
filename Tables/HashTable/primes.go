package HashTable

import "sort"

// primes are the supported bucket counts, roughly doubling each step.
var primes = [...]uint{
	7, 13, 29, 53, 97, 193, 389, 769, 1543, 3079, 6151, 12289, 24593,
	49157, 98317, 196613, 393241, 786433, 1572869, 3145739, 6291469,
	12582917, 25165843, 50331653, 100663319, 201326611, 402653189,
	805306457, 1610612741, 3221225473, 4294967291,
}

// NextPrime returns the smallest supported bucket count that is >= n, or MaxSize if n is larger than all of them.
func NextPrime(n uint) uint {
	if i := sort.Search(len(primes), func(i int) bool { return primes[i] >= n }); i < len(primes) {
		return primes[i]
	}
	return MaxSize()
}

// MaxSize is the largest supported bucket count.
func MaxSize() uint {
	return primes[len(primes)-1]
}
