package model

import (
	"fmt"
	"math"
)

// Unassigned is the cluster label of a point that has not been assigned yet.
const Unassigned = -1

// Point is a 2D observation together with its clustering state.
//
// X and Y must not change once the point has been handed to the engine.
// Cluster and MinDist are owned by the engine for the duration of a run.
type Point struct {
	X, Y float64

	// Cluster is the index of the nearest centroid, or Unassigned.
	Cluster int

	// MinDist is the smallest squared distance to a centroid seen so far in
	// the current assignment pass.
	MinDist float64
}

// NewPoint returns an unassigned point at (x, y).
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y, Cluster: Unassigned, MinDist: math.Inf(1)}
}

// Assigned reports whether the point carries a cluster label.
func (p Point) Assigned() bool {
	return p.Cluster != Unassigned
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("Point(%g,%g c=%d)", p.X, p.Y, p.Cluster)
}

// Centroid is the representative coordinate of a cluster.
type Centroid struct {
	X, Y float64
}

// CentroidOf copies the coordinates of p.
func CentroidOf(p Point) Centroid {
	return Centroid{X: p.X, Y: p.Y}
}

// String returns a string representation of the Centroid.
func (c Centroid) String() string {
	return fmt.Sprintf("Centroid(%g,%g)", c.X, c.Y)
}
