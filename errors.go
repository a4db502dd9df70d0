package lloyd

import (
	"errors"
	"fmt"

	"github.com/hupe1980/lloyd/internal/kmeans"
)

var (
	// ErrInvalidConfiguration is returned when a run is requested with
	// arguments that cannot produce a clustering, e.g. k <= 0 or k larger
	// than the number of points. Points are left untouched.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrEmptyCluster is returned under EmptyClusterReject when a cluster
	// ends an epoch without points.
	ErrEmptyCluster = errors.New("empty cluster")
)

// ConfigError describes which argument made a run invalid.
//
// It matches both errors.Is(err, ErrInvalidConfiguration) and the
// underlying engine error via errors.As.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
	cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidConfiguration, e.cause}
}

// EmptyClusterError reports the first cluster found empty under EmptyClusterReject.
type EmptyClusterError struct {
	Epoch   int
	Cluster int
	cause   error
}

func (e *EmptyClusterError) Error() string {
	return fmt.Sprintf("%s: cluster %d has no points after epoch %d", ErrEmptyCluster, e.Cluster, e.Epoch)
}

func (e *EmptyClusterError) Unwrap() []error {
	return []error{ErrEmptyCluster, e.cause}
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ce *kmeans.ConfigError
	if errors.As(err, &ce) {
		return &ConfigError{Field: ce.Field, Value: ce.Value, Reason: ce.Reason, cause: err}
	}
	var ee *kmeans.EmptyClusterError
	if errors.As(err, &ee) {
		return &EmptyClusterError{Epoch: ee.Epoch, Cluster: ee.Cluster, cause: err}
	}

	if errors.Is(err, kmeans.ErrInvalidConfiguration) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if errors.Is(err, kmeans.ErrEmptyCluster) {
		return fmt.Errorf("%w: %w", ErrEmptyCluster, err)
	}

	return err
}
