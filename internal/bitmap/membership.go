package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/lloyd/model"
)

// Membership maps each cluster label to the positions of its points.
type Membership struct {
	clusters   []*roaring.Bitmap
	unassigned *roaring.Bitmap
}

// Build indexes the labels of points for k clusters.
// Points whose label is outside [0, k) are recorded as unassigned.
func Build(points []model.Point, k int) *Membership {
	m := &Membership{
		clusters:   make([]*roaring.Bitmap, k),
		unassigned: roaring.New(),
	}
	for c := range m.clusters {
		m.clusters[c] = roaring.New()
	}

	for i := range points {
		c := points[i].Cluster
		if c < 0 || c >= k {
			m.unassigned.Add(uint32(i))
			continue
		}
		m.clusters[c].Add(uint32(i))
	}

	for _, rb := range m.clusters {
		rb.RunOptimize()
	}
	return m
}

// K returns the number of clusters.
func (m *Membership) K() int {
	return len(m.clusters)
}

// Len returns the number of indexed points, assigned or not.
func (m *Membership) Len() int {
	n := m.unassigned.GetCardinality()
	for _, rb := range m.clusters {
		n += rb.GetCardinality()
	}
	return int(n)
}

// Cardinality returns the number of points in cluster c.
func (m *Membership) Cardinality(c int) uint64 {
	if c < 0 || c >= len(m.clusters) {
		return 0
	}
	return m.clusters[c].GetCardinality()
}

// Sizes returns the number of points per cluster, indexed by label.
func (m *Membership) Sizes() []int {
	sizes := make([]int, m.K())
	for c := range sizes {
		sizes[c] = int(m.Cardinality(c))
	}
	return sizes
}

// Empty returns the labels of clusters without points.
func (m *Membership) Empty() []int {
	var empty []int
	for c, rb := range m.clusters {
		if rb.IsEmpty() {
			empty = append(empty, c)
		}
	}
	return empty
}

// Unassigned returns the number of points without a valid label.
func (m *Membership) Unassigned() int {
	return int(m.unassigned.GetCardinality())
}

// Contains reports whether the point at pos belongs to cluster c.
func (m *Membership) Contains(c int, pos uint32) bool {
	if c < 0 || c >= len(m.clusters) {
		return false
	}
	return m.clusters[c].Contains(pos)
}

// Members iterates over the positions of the points in cluster c in
// ascending order.
func (m *Membership) Members(c int) iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if c < 0 || c >= len(m.clusters) {
			return
		}
		it := m.clusters[c].Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// SizeInBytes returns the memory used by the bitmaps.
func (m *Membership) SizeInBytes() uint64 {
	n := m.unassigned.GetSizeInBytes()
	for _, rb := range m.clusters {
		n += rb.GetSizeInBytes()
	}
	return n
}
