package distance

import "github.com/hupe1980/lloyd/model"

// Func is a function type for distance calculation between a point and a centroid.
type Func func(p model.Point, c model.Centroid) float64

// SquaredL2 calculates the squared Euclidean distance between (ax, ay) and (bx, by).
func SquaredL2(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// PointToCentroid calculates the squared Euclidean distance between p and c.
func PointToCentroid(p model.Point, c model.Centroid) float64 {
	return SquaredL2(c.X, c.Y, p.X, p.Y)
}

// Centroids calculates the squared Euclidean distance between two centroids.
func Centroids(a, b model.Centroid) float64 {
	return SquaredL2(a.X, a.Y, b.X, b.Y)
}

// Between calculates the squared Euclidean distance between two points.
func Between(a, b model.Point) float64 {
	return SquaredL2(a.X, a.Y, b.X, b.Y)
}
