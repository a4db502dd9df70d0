// Package lloyd partitions two-dimensional points into a fixed number of
// clusters with Lloyd's algorithm (k-means).
//
// # Quick Start
//
// In memory:
//
//	points := []model.Point{model.NewPoint(0, 0), model.NewPoint(0, 1), model.NewPoint(10, 10)}
//	if err := lloyd.Run(points, 100, 2, lloyd.WithSeed(42)); err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range points {
//	    fmt.Println(p.X, p.Y, p.Cluster)
//	}
//
// From storage:
//
//	store := blobstore.NewLocalStore("./data")
//	p := lloyd.NewPipeline(store, store, lloyd.WithLogLevel(slog.LevelInfo))
//	summary, err := p.Execute(ctx, lloyd.Job{
//	    Input:  "mall_data.csv",
//	    Output: "output.csv",
//	})
//
// # Algorithm
//
// Run seeds k centroids from points drawn uniformly with replacement, then
// performs exactly the requested number of epochs. Each epoch assigns every
// point to its nearest centroid by squared Euclidean distance, ties going to
// the lowest label, and moves every centroid to the mean of its points.
// There is no convergence check.
//
// A cluster can end an epoch without points, for example when the same point
// was drawn twice during seeding. WithEmptyClusterPolicy decides whether its
// centroid stays put (EmptyClusterFreeze, default), jumps onto a random point
// (EmptyClusterReseed) or fails the run (EmptyClusterReject).
//
// # Determinism
//
// Runs are seeded from the wall clock unless WithSeed or WithSource is given.
// For a fixed source the labels are fully deterministic and independent of
// WithWorkers.
//
// # Storage
//
// Pipelines read and write through blobstore.BlobStore, so the same job runs
// against the local filesystem, Amazon S3 (blobstore/s3) or MinIO
// (blobstore/minio). Tables are CSV or JSON lines, optionally zstd or lz4
// compressed according to the blob name.
package lloyd
