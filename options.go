package lloyd

import (
	"log/slog"
	"time"

	"github.com/hupe1980/lloyd/internal/kmeans"
)

// Source draws uniformly distributed indices in [0, n).
// *rand.Rand satisfies Source.
type Source = kmeans.Source

// EmptyClusterPolicy decides what happens to a centroid without points.
type EmptyClusterPolicy = kmeans.EmptyClusterPolicy

const (
	// EmptyClusterFreeze keeps an empty centroid where it is (default).
	EmptyClusterFreeze = kmeans.Freeze
	// EmptyClusterReseed moves an empty centroid onto a randomly drawn point.
	EmptyClusterReseed = kmeans.Reseed
	// EmptyClusterReject aborts the run with an *EmptyClusterError.
	EmptyClusterReject = kmeans.Reject
)

// ParseEmptyClusterPolicy parses "freeze", "reseed" or "reject".
// The empty string selects EmptyClusterFreeze.
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	return kmeans.ParseEmptyClusterPolicy(s)
}

// EpochStats describes one completed epoch.
type EpochStats = kmeans.EpochStats

// Observer receives per-epoch statistics.
type Observer = kmeans.Observer

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc = kmeans.ObserverFunc

type options struct {
	source           Source
	seed             *int64
	emptyCluster     EmptyClusterPolicy
	workers          int
	observer         Observer
	progressInterval time.Duration
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Run and NewPipeline.
type Option func(*options)

// WithSource sets the randomness used for seeding and reseeding centroids.
// It takes precedence over WithSeed.
func WithSource(src Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithSeed makes runs reproducible.
//
// Without WithSeed or WithSource every run is seeded from the wall clock.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithEmptyClusterPolicy selects how empty clusters are handled.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

// WithWorkers sets the number of goroutines used by the assignment step.
// Labels do not depend on the number of workers.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithObserver registers an observer called after every epoch.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithProgressInterval bounds how often epoch progress is logged at info level.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		o.progressInterval = d
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &lloyd.BasicMetricsCollector{}
//	err := lloyd.Run(points, 100, 5, lloyd.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := lloyd.NewJSONLogger(slog.LevelInfo)
//	err := lloyd.Run(points, 100, 5, lloyd.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		emptyCluster:     EmptyClusterFreeze,
		workers:          kmeans.DefaultOptions.Workers,
		progressInterval: kmeans.DefaultOptions.ProgressInterval,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

// engineOptions maps root options onto the engine, routing epoch statistics
// through the logger and metrics collector before the user observer.
func (o options) engineOptions() func(*kmeans.Options) {
	return func(ko *kmeans.Options) {
		ko.Source = o.source
		ko.Seed = o.seed
		ko.EmptyCluster = o.emptyCluster
		ko.Workers = o.workers
		ko.ProgressInterval = o.progressInterval
		ko.Logger = o.logger.Logger
		ko.Observer = kmeans.ObserverFunc(func(stats EpochStats) {
			o.metricsCollector.RecordEpoch(stats)
			o.logger.LogEpoch(stats)
			if o.observer != nil {
				o.observer.OnEpoch(stats)
			}
		})
	}
}
