package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPoint(t *testing.T) {
	p := NewPoint(1.5, -2)

	assert.Equal(t, 1.5, p.X)
	assert.Equal(t, -2.0, p.Y)
	assert.Equal(t, Unassigned, p.Cluster)
	assert.True(t, math.IsInf(p.MinDist, 1))
	assert.False(t, p.Assigned())

	p.Cluster = 0
	assert.True(t, p.Assigned())
}

func TestCentroidOf(t *testing.T) {
	p := NewPoint(3, 4)
	p.Cluster = 2

	assert.Equal(t, Centroid{X: 3, Y: 4}, CentroidOf(p))
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "Point(1,2 c=-1)", NewPoint(1, 2).String())
	assert.Equal(t, "Centroid(0,0.5)", Centroid{X: 0, Y: 0.5}.String())
}
