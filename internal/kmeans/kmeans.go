package kmeans

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/hupe1980/lloyd/model"
	"golang.org/x/time/rate"
)

// Engine runs Lloyd's algorithm over a slice of points.
//
// An Engine holds no per-run state and may be reused, but Run must not be
// called concurrently when the configured Source is not safe for concurrent use.
type Engine struct {
	opts   Options
	source Source
	logger *slog.Logger
}

// New creates an Engine.
func New(optFns ...func(o *Options)) *Engine {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Workers < 1 {
		opts.Workers = 1
	}

	source := opts.Source
	if source == nil {
		if opts.Seed != nil {
			source = NewSeededSource(*opts.Seed)
		} else {
			source = NewTimeSource()
		}
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		opts:   opts,
		source: source,
		logger: logger,
	}
}

// Run clusters points into k clusters for exactly epochs passes.
//
// On return every point's Cluster holds its final label in [0, k), unless
// epochs is 0, in which case points are left untouched. Invalid arguments
// yield an error matching ErrInvalidConfiguration before any point is modified.
func (e *Engine) Run(points []model.Point, epochs, k int) error {
	if err := validate(points, epochs, k); err != nil {
		return err
	}

	centroids, err := e.seed(points, k)
	if err != nil {
		return err
	}

	return e.newRun(points, centroids).loop(epochs)
}

func validate(points []model.Point, epochs, k int) error {
	if len(points) == 0 {
		return &ConfigError{Field: "points", Value: 0, Reason: "no points to cluster"}
	}
	if k <= 0 {
		return &ConfigError{Field: "k", Value: k, Reason: "must be positive"}
	}
	if k > len(points) {
		return &ConfigError{Field: "k", Value: k, Reason: fmt.Sprintf("exceeds number of points (%d)", len(points))}
	}
	if epochs < 0 {
		return &ConfigError{Field: "epochs", Value: epochs, Reason: "must not be negative"}
	}
	for i := range points {
		p := &points[i]
		if !isFinite(p.X) || !isFinite(p.Y) {
			return &ConfigError{Field: fmt.Sprintf("points[%d]", i), Value: *p, Reason: "coordinates must be finite"}
		}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// seed draws k points with replacement and copies their coordinates.
// Draw order defines the cluster labels.
func (e *Engine) seed(points []model.Point, k int) ([]model.Centroid, error) {
	centroids := make([]model.Centroid, k)
	for i := range centroids {
		idx, err := e.draw(len(points))
		if err != nil {
			return nil, err
		}
		centroids[i] = model.CentroidOf(points[idx])
	}
	return centroids, nil
}

func (e *Engine) draw(n int) (int, error) {
	idx := e.source.Intn(n)
	if idx < 0 || idx >= n {
		return 0, &ConfigError{Field: "source", Value: idx, Reason: fmt.Sprintf("index outside [0, %d)", n)}
	}
	return idx, nil
}

// run is the state of a single Run call.
type run struct {
	*Engine

	points    []model.Point
	centroids []model.Centroid

	// scratch, reused across epochs
	prev   []int
	counts []int
	means  []model.Centroid

	progress rate.Sometimes
}

func (e *Engine) newRun(points []model.Point, centroids []model.Centroid) *run {
	k := len(centroids)
	return &run{
		Engine:    e,
		points:    points,
		centroids: centroids,
		prev:      make([]int, len(points)),
		counts:    make([]int, k),
		means:     make([]model.Centroid, k),
		progress:  rate.Sometimes{First: 1, Interval: e.opts.ProgressInterval},
	}
}

func (r *run) loop(epochs int) error {
	if epochs == 0 {
		return nil
	}

	for i := range r.points {
		r.points[i].Cluster = model.Unassigned
		r.points[i].MinDist = math.Inf(1)
	}

	r.logger.Debug("kmeans run started",
		"points", len(r.points),
		"k", len(r.centroids),
		"epochs", epochs,
		"workers", r.opts.Workers,
		"empty_cluster", r.opts.EmptyCluster.String(),
	)

	for epoch := 0; epoch < epochs; epoch++ {
		start := time.Now()

		reassigned, inertia := r.assign()

		empty, err := r.update(epoch)
		if err != nil {
			return err
		}

		stats := EpochStats{
			Epoch:      epoch,
			Reassigned: reassigned,
			Empty:      empty,
			Inertia:    inertia,
			Duration:   time.Since(start),
		}
		r.report(stats, epochs)
	}

	return nil
}

func (r *run) report(stats EpochStats, epochs int) {
	if r.opts.Observer != nil {
		r.opts.Observer.OnEpoch(stats)
	}

	for _, c := range stats.Empty {
		r.logger.Debug("empty cluster", "epoch", stats.Epoch, "cluster", c, "policy", r.opts.EmptyCluster.String())
	}

	r.progress.Do(func() {
		r.logger.Info("kmeans progress",
			"epoch", stats.Epoch+1,
			"epochs", epochs,
			"reassigned", stats.Reassigned,
			"inertia", stats.Inertia,
		)
	})
}

// update resets every point's running distance, then moves each centroid to
// the mean of its points. Empty clusters are handled by the configured policy.
//
// Means are accumulated as a running average whose terms are scaled by the
// count before they are combined, so finite coordinates always yield a finite
// centroid even where a plain sum would overflow.
func (r *run) update(epoch int) ([]int, error) {
	clear(r.counts)
	clear(r.means)

	for i := range r.points {
		p := &r.points[i]
		p.MinDist = math.Inf(1)

		c := p.Cluster
		r.counts[c]++
		n := float64(r.counts[c])
		m := &r.means[c]
		m.X += p.X/n - m.X/n
		m.Y += p.Y/n - m.Y/n
	}

	var empty []int
	for c := range r.centroids {
		if r.counts[c] == 0 {
			empty = append(empty, c)
			continue
		}
		r.centroids[c] = r.means[c]
	}

	if len(empty) == 0 {
		return nil, nil
	}

	switch r.opts.EmptyCluster {
	case Reject:
		return empty, &EmptyClusterError{Epoch: epoch, Cluster: empty[0]}
	case Reseed:
		for _, c := range empty {
			idx, err := r.draw(len(r.points))
			if err != nil {
				return empty, err
			}
			r.centroids[c] = model.CentroidOf(r.points[idx])
		}
	}

	return empty, nil
}
