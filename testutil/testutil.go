package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/lloyd/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe and satisfies kmeans.Source.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates unassigned points with both coordinates in [minVal, maxVal).
func (r *RNG) UniformPoints(num int, minVal, maxVal float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	points := make([]model.Point, num)
	for i := range points {
		points[i] = model.NewPoint(minVal+r.rand.Float64()*span, minVal+r.rand.Float64()*span)
	}
	return points
}

// ClusteredPoints generates points scattered around the given centers with
// Gaussian noise of standard deviation spread. Points are assigned to centers
// round-robin; truth[i] is the index of the center that generated points[i].
func (r *RNG) ClusteredPoints(num int, centers []model.Centroid, spread float64) (points []model.Point, truth []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points = make([]model.Point, num)
	truth = make([]int, num)
	for i := range num {
		c := i % len(centers)
		points[i] = model.NewPoint(
			centers[c].X+r.rand.NormFloat64()*spread,
			centers[c].Y+r.rand.NormFloat64()*spread,
		)
		truth[i] = c
	}
	return points, truth
}

// FixedSource replays a fixed sequence of indices, cycling when exhausted.
// It makes centroid seeding fully predictable in tests.
type FixedSource struct {
	mu      sync.Mutex
	indices []int
	next    int
	calls   int
}

// NewFixedSource creates a FixedSource. At least one index is required.
func NewFixedSource(indices ...int) *FixedSource {
	if len(indices) == 0 {
		panic("testutil: NewFixedSource requires at least one index")
	}
	return &FixedSource{indices: indices}
}

// Intn returns the next index in the sequence. n is ignored, so a sequence
// may deliberately produce out-of-range values.
func (s *FixedSource) Intn(_ int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indices[s.next]
	s.next = (s.next + 1) % len(s.indices)
	s.calls++
	return idx
}

// Calls returns how many indices have been drawn.
func (s *FixedSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Labels returns the cluster label of every point in order.
func Labels(points []model.Point) []int {
	labels := make([]int, len(points))
	for i := range points {
		labels[i] = points[i].Cluster
	}
	return labels
}

// Clone returns a deep copy of points.
func Clone(points []model.Point) []model.Point {
	if points == nil {
		return nil
	}
	out := make([]model.Point, len(points))
	copy(out, points)
	return out
}

// SamePartition reports whether two labelings group the points identically,
// regardless of which label number each group carries.
func SamePartition(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	ab := make(map[int]int)
	ba := make(map[int]int)
	for i := range a {
		if x, ok := ab[a[i]]; ok && x != b[i] {
			return false
		}
		if y, ok := ba[b[i]]; ok && y != a[i] {
			return false
		}
		ab[a[i]] = b[i]
		ba[b[i]] = a[i]
	}
	return true
}
