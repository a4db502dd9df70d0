package kmeans

import (
	"sync"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
)

// assign labels every point with the index of its nearest centroid.
// It returns the number of points whose label changed and the sum of the
// resulting squared distances.
func (r *run) assign() (reassigned int, inertia float64) {
	n := len(r.points)
	workers := min(r.opts.Workers, n)

	if workers <= 1 {
		return r.assignRange(0, n)
	}

	chunk := (n + workers - 1) / workers
	changed := make([]int, workers)
	sums := make([]float64, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			changed[w], sums[w] = r.assignRange(lo, hi)
		}()
	}
	wg.Wait()

	for w := range changed {
		reassigned += changed[w]
		inertia += sums[w]
	}
	return reassigned, inertia
}

// assignRange runs the assignment step for points[lo:hi].
//
// Centroids are visited in index order and a point only moves on a strictly
// smaller distance, so the lowest index wins ties. A point that is still
// unassigned is always taken by centroid 0, which keeps labels in range even
// when a squared distance overflows to +Inf.
func (r *run) assignRange(lo, hi int) (reassigned int, inertia float64) {
	pts := r.points[lo:hi]
	prev := r.prev[lo:hi]

	for i := range pts {
		prev[i] = pts[i].Cluster
	}

	for c, centroid := range r.centroids {
		for i := range pts {
			p := &pts[i]
			d := distance.PointToCentroid(*p, centroid)
			if d < p.MinDist || p.Cluster == model.Unassigned {
				p.MinDist = d
				p.Cluster = c
			}
		}
	}

	for i := range pts {
		if pts[i].Cluster != prev[i] {
			reassigned++
		}
		inertia += pts[i].MinDist
	}
	return reassigned, inertia
}
