package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/lloyd/model"
	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by float64
		expected       float64
	}{
		{"Zero", 0, 0, 0, 0, 0},
		{"Identical", 1.5, -2, 1.5, -2, 0},
		{"Unit", 0, 0, 0, 1, 1},
		{"Pythagorean", 0, 0, 3, 4, 25},
		{"Mixed", 1, -1, -1, 1, 8},
		{"Symmetric", 3, 4, 0, 0, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.ax, tt.ay, tt.bx, tt.by), 1e-12)
		})
	}
}

func TestSquaredL2_Overflow(t *testing.T) {
	assert.True(t, math.IsInf(SquaredL2(-1e200, 0, 1e200, 0), 1))
}

func TestPointToCentroid(t *testing.T) {
	p := model.NewPoint(10, 11)
	c := model.Centroid{X: 10, Y: 10.5}

	assert.InDelta(t, 0.25, PointToCentroid(p, c), 1e-12)
	assert.InDelta(t, 0.0, Centroids(c, c), 1e-12)
	assert.InDelta(t, 2.0, Centroids(model.Centroid{}, model.Centroid{X: 1, Y: 1}), 1e-12)
}

func TestBetween(t *testing.T) {
	a := model.NewPoint(1, 2)
	b := model.NewPoint(4, 6)

	assert.InDelta(t, 25.0, Between(a, b), 1e-12)
	assert.InDelta(t, Between(a, b), Between(b, a), 1e-12)
}
