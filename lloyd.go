package lloyd

import (
	"context"
	"errors"
	"time"

	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/model"
)

const (
	// DefaultEpochs is the number of passes used when a Job leaves Epochs unset.
	DefaultEpochs = 100
	// DefaultK is the number of clusters used when a Job leaves K unset.
	DefaultK = 5
)

// Run clusters points into k clusters for exactly epochs passes.
//
// Points are mutated in place: on success each point's Cluster holds its
// final label in [0, k). Invalid arguments yield an error matching
// ErrInvalidConfiguration and leave points untouched.
func Run(points []model.Point, epochs, k int, optFns ...Option) error {
	return run(context.Background(), applyOptions(optFns), points, epochs, k)
}

func run(ctx context.Context, o options, points []model.Point, epochs, k int) error {
	start := time.Now()
	err := translateError(kmeans.New(o.engineOptions()).Run(points, epochs, k))
	d := time.Since(start)

	var ee *EmptyClusterError
	if errors.As(err, &ee) {
		o.logger.LogEmptyCluster(ctx, ee.Epoch, ee.Cluster, o.emptyCluster)
	}

	o.metricsCollector.RecordRun(len(points), k, epochs, d, err)
	o.logger.LogRun(ctx, len(points), k, epochs, d, err)
	return err
}
