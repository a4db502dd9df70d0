package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when Run is called with arguments
	// that cannot produce a clustering. The input points are left untouched.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyCluster is returned under the Reject policy when an update step
	// finds a cluster without points.
	ErrEmptyCluster = errors.New("empty cluster")
)

// ConfigError describes which argument made a run invalid.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfiguration }

// EmptyClusterError reports the first cluster found empty during an update step.
type EmptyClusterError struct {
	Epoch   int
	Cluster int
}

func (e *EmptyClusterError) Error() string {
	return fmt.Sprintf("%s: cluster %d has no points after epoch %d", ErrEmptyCluster, e.Cluster, e.Epoch)
}

func (e *EmptyClusterError) Unwrap() error { return ErrEmptyCluster }
