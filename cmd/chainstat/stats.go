package main

import (
	"cmp"
	"slices"

	"github.com/g-m-twostay/go-hashtable/Tables/HashTable"
	"go.uber.org/zap"
)

// Chain is the length of the chain in one bucket.
type Chain struct {
	Bucket, Len uint
}

// Stats describes the topology of a table.
type Stats struct {
	Size, Buckets, Empty, Longest uint
	LoadFactor                    float64
	Top                           []Chain //fullest buckets, longest first.
}

// Collect walks every bucket of t and keeps the top fullest ones.
func Collect[K, V any](t *HashTable.Table[K, V], top int) Stats {
	s := Stats{Size: t.Size(), Buckets: t.BucketCount(), LoadFactor: t.LoadFactor()}
	var chains []Chain
	for b := uint(0); b < s.Buckets; b++ {
		n := t.BucketSize(b)
		if n == 0 {
			s.Empty++
			continue
		}
		s.Longest = max(s.Longest, n)
		chains = append(chains, Chain{b, n})
	}
	slices.SortFunc(chains, func(a, b Chain) int {
		if c := cmp.Compare(b.Len, a.Len); c != 0 {
			return c
		}
		return cmp.Compare(a.Bucket, b.Bucket)
	})
	if top >= 0 && len(chains) > top {
		chains = chains[:top]
	}
	s.Top = chains
	return s
}

func (s Stats) Log(logger *zap.Logger) {
	logger.Info("table",
		zap.Uint("size", s.Size),
		zap.Uint("buckets", s.Buckets),
		zap.Uint("empty", s.Empty),
		zap.Uint("longest", s.Longest),
		zap.Float64("load", s.LoadFactor))
	for _, c := range s.Top {
		logger.Info("chain", zap.Uint("bucket", c.Bucket), zap.Uint("len", c.Len))
	}
}
