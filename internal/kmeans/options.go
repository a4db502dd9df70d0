package kmeans

import (
	"fmt"
	"log/slog"
	"time"
)

// EmptyClusterPolicy decides what happens to a centroid that has no points
// after an assignment step.
type EmptyClusterPolicy int

const (
	// Freeze keeps the centroid where it is for the epoch.
	Freeze EmptyClusterPolicy = iota
	// Reseed moves the centroid onto a randomly drawn point.
	Reseed
	// Reject aborts the run with an *EmptyClusterError.
	Reject
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case Freeze:
		return "freeze"
	case Reseed:
		return "reseed"
	case Reject:
		return "reject"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseEmptyClusterPolicy parses the names returned by EmptyClusterPolicy.String.
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch s {
	case "", "freeze":
		return Freeze, nil
	case "reseed":
		return Reseed, nil
	case "reject":
		return Reject, nil
	default:
		return Freeze, fmt.Errorf("unknown empty cluster policy %q", s)
	}
}

// EpochStats describes one completed epoch.
type EpochStats struct {
	// Epoch is the zero-based epoch number.
	Epoch int
	// Reassigned is the number of points whose label changed.
	Reassigned int
	// Empty lists the cluster indices that had no points.
	Empty []int
	// Inertia is the sum of squared distances from each point to its centroid
	// after the assignment step.
	Inertia  float64
	Duration time.Duration
}

// Observer receives per-epoch statistics. It cannot influence the run.
type Observer interface {
	OnEpoch(stats EpochStats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(stats EpochStats)

// OnEpoch implements Observer.
func (f ObserverFunc) OnEpoch(stats EpochStats) { f(stats) }

// Options configures an Engine.
type Options struct {
	// Source drives centroid seeding and reseeding.
	// If nil, Seed is used; if Seed is nil too, a wall-clock seeded source.
	Source Source

	// Seed makes runs reproducible when Source is nil.
	Seed *int64

	// EmptyCluster selects the empty-cluster policy.
	EmptyCluster EmptyClusterPolicy

	// Workers is the number of goroutines used by the assignment step.
	// Values <= 1 run the assignment serially.
	Workers int

	// Observer is notified after every epoch. May be nil.
	Observer Observer

	// Logger receives debug and progress output. May be nil.
	Logger *slog.Logger

	// ProgressInterval bounds how often epoch progress is logged at info level.
	ProgressInterval time.Duration
}

// DefaultOptions contains the default configuration for an Engine.
var DefaultOptions = Options{
	EmptyCluster:     Freeze,
	Workers:          1,
	ProgressInterval: 5 * time.Second,
}
