package kmeans

import (
	"math/rand"
	"time"
)

// Source draws uniformly distributed indices.
//
// Intn must return a value in [0, n). *rand.Rand satisfies Source.
type Source interface {
	Intn(n int) int
}

// NewTimeSource returns a Source seeded from the wall clock, so successive
// runs start from different centroids.
func NewTimeSource() Source {
	return NewSeededSource(time.Now().UnixNano())
}

// NewSeededSource returns a deterministic Source.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
