package lloyd

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/lloyd/blobstore"
	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/internal/bitmap"
	"github.com/hupe1980/lloyd/model"
	"golang.org/x/sync/errgroup"
)

// Job describes one clustering of a stored point table.
type Job struct {
	// Input is the blob name of the point table. A .zst, .zstd or .lz4
	// suffix selects decompression.
	Input string
	// Output is the blob name of the labeled table. A compression suffix
	// selects compression.
	Output string
	// Epochs is the number of passes. Zero selects DefaultEpochs.
	Epochs int
	// K is the number of clusters. Zero selects DefaultK.
	K int
	// Format is the table encoding of both input and output.
	Format codec.Format
}

// Summary describes a completed Job.
type Summary struct {
	Points int
	K      int
	Epochs int
	// Sizes holds the number of points per cluster label.
	Sizes []int
	// Empty lists the labels that ended without points.
	Empty []int
	// Unassigned is the number of points without a valid label after the run.
	Unassigned int
	// IndexBytes is the in-memory size of the cluster membership index.
	IndexBytes uint64
	Duration   time.Duration
}

// Pipeline loads point tables from a source store, clusters them and writes
// the labeled points to a destination store.
type Pipeline struct {
	src  blobstore.BlobStore
	dst  blobstore.BlobStore
	opts options
}

// NewPipeline creates a Pipeline. src and dst may be the same store.
func NewPipeline(src, dst blobstore.BlobStore, optFns ...Option) *Pipeline {
	return &Pipeline{
		src:  src,
		dst:  dst,
		opts: applyOptions(optFns),
	}
}

// Execute runs job. Output rows are written in input order.
//
// Cancellation is checked between loading, clustering and storing; the
// clustering itself always runs to completion once started.
func (p *Pipeline) Execute(ctx context.Context, job Job) (*Summary, error) {
	start := time.Now()

	if job.Epochs == 0 {
		job.Epochs = DefaultEpochs
	}
	if job.K == 0 {
		job.K = DefaultK
	}

	points, err := p.load(ctx, job.Input, job.Format)
	p.opts.logger.LogLoad(ctx, job.Input, len(points), err)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := run(ctx, p.opts, points, job.Epochs, job.K); err != nil {
		return nil, err
	}

	m := bitmap.Build(points, job.K)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	err = p.store(ctx, job.Output, job.Format, points)
	p.opts.logger.LogStore(ctx, job.Output, len(points), err)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Points:     m.Len(),
		K:          m.K(),
		Epochs:     job.Epochs,
		Sizes:      m.Sizes(),
		Empty:      m.Empty(),
		Unassigned: m.Unassigned(),
		IndexBytes: m.SizeInBytes(),
		Duration:   time.Since(start),
	}, nil
}

// ExecuteAll runs jobs concurrently with at most limit jobs in flight; a limit
// of zero or less runs all of them at once. Summaries are returned in job
// order. The first failure cancels the context of the remaining jobs and is
// returned; jobs that already stored their output are not rolled back.
//
// A Source configured with WithSource is shared by all jobs and must be safe
// for concurrent use.
func (p *Pipeline) ExecuteAll(ctx context.Context, jobs []Job, limit int) ([]*Summary, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	summaries := make([]*Summary, len(jobs))
	for i, job := range jobs {
		g.Go(func() error {
			s, err := p.Execute(ctx, job)
			if err != nil {
				return fmt.Errorf("job %d (%s): %w", i, job.Input, err)
			}
			summaries[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (p *Pipeline) load(ctx context.Context, name string, f codec.Format) ([]model.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	blob, err := p.src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer blob.Close()

	r, err := codec.NewReader(blobstore.NewReader(ctx, blob), codec.CompressionFromPath(name))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer r.Close()

	points, err := codec.ReadPoints(r, f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return points, nil
}

// store encodes into memory and publishes with a single Put, so a failed
// encode never leaves a partial output blob.
func (p *Pipeline) store(ctx context.Context, name string, f codec.Format, points []model.Point) error {
	var buf bytes.Buffer

	w, err := codec.NewWriter(&buf, codec.CompressionFromPath(name))
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := codec.WritePoints(w, f, points); err != nil {
		_ = w.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := p.dst.Put(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}
	return nil
}
