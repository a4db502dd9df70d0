// Package distance provides the distance calculation used by the clustering
// engine.
//
// Only the squared Euclidean distance is supported. The square root is never
// taken: the engine only compares distances, and the monotonic transform does
// not change which centroid is nearest.
//
// # Usage
//
//	d := distance.SquaredL2(ax, ay, bx, by)
//	d = distance.PointToCentroid(p, c)
package distance
