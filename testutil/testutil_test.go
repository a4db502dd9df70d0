package testutil

import (
	"testing"

	"github.com/hupe1980/lloyd/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformPoints(t *testing.T) {
	rng := NewRNG(4711)

	pts := rng.UniformPoints(64, -1, 1)

	require.Len(t, pts, 64)
	for _, p := range pts {
		assert.GreaterOrEqual(t, p.X, -1.0)
		assert.Less(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, -1.0)
		assert.Less(t, p.Y, 1.0)
		assert.Equal(t, model.Unassigned, p.Cluster)
	}
}

func TestRNG_Reset(t *testing.T) {
	rng := NewRNG(42)
	first := rng.UniformPoints(4, 0, 1)

	rng.Reset()
	second := rng.UniformPoints(4, 0, 1)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(42), rng.Seed())
}

func TestClusteredPoints(t *testing.T) {
	rng := NewRNG(4711)
	centers := []model.Centroid{{X: 0, Y: 0}, {X: 100, Y: 100}}

	pts, truth := rng.ClusteredPoints(10, centers, 0.1)

	require.Len(t, pts, 10)
	require.Len(t, truth, 10)
	for i, p := range pts {
		c := centers[truth[i]]
		assert.InDelta(t, c.X, p.X, 1)
		assert.InDelta(t, c.Y, p.Y, 1)
	}
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}, truth)
}

func TestFixedSource(t *testing.T) {
	src := NewFixedSource(3, 1)

	assert.Equal(t, 3, src.Intn(10))
	assert.Equal(t, 1, src.Intn(10))
	assert.Equal(t, 3, src.Intn(10))
	assert.Equal(t, 3, src.Calls())

	assert.Panics(t, func() { NewFixedSource() })
}

func TestSamePartition(t *testing.T) {
	assert.True(t, SamePartition([]int{0, 0, 1, 1}, []int{1, 1, 0, 0}))
	assert.True(t, SamePartition([]int{0, 1, 2}, []int{2, 0, 1}))
	assert.False(t, SamePartition([]int{0, 0, 1, 1}, []int{0, 1, 1, 1}))
	assert.False(t, SamePartition([]int{0, 1}, []int{0, 0}))
	assert.False(t, SamePartition([]int{0}, []int{0, 0}))
}

func TestLabelsAndClone(t *testing.T) {
	pts := []model.Point{model.NewPoint(0, 0), model.NewPoint(1, 1)}
	pts[1].Cluster = 3

	cp := Clone(pts)
	cp[0].Cluster = 9

	assert.Equal(t, []int{model.Unassigned, 3}, Labels(pts))
	assert.Equal(t, []int{9, 3}, Labels(cp))
}
