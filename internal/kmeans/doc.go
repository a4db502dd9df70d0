// Package kmeans implements Lloyd's k-means clustering of 2D points.
//
// The engine seeds k centroids from randomly drawn input points and then runs
// a fixed number of epochs. Each epoch is an assignment step (label every
// point with its nearest centroid, lowest index winning ties) followed by an
// update step (move every centroid to the mean of its points). There is no
// convergence check: the engine always runs the requested number of epochs.
//
// Points are mutated in place. Centroids are private to a single Run call.
//
//	eng := kmeans.New(func(o *kmeans.Options) {
//	    o.EmptyCluster = kmeans.Reseed
//	})
//	if err := eng.Run(points, 100, 5); err != nil {
//	    return err
//	}
package kmeans
