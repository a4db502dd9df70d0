package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies `errors.Is(err, ErrNotFound)`.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for reading and writing point tables.
type BlobStore interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create creates a blob for streaming writes. The blob becomes visible on Close.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names of all blobs with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob.
type Blob interface {
	io.Closer
	// ReadAt reads len(p) bytes starting at off.
	ReadAt(ctx context.Context, p []byte, off int64) (int, error)
	// Size returns the size of the blob in bytes.
	Size() int64
	// ReadRange returns a reader for length bytes starting at off.
	// It returns io.EOF if off is at or past the end of the blob.
	ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error)
}

// WritableBlob is a handle to a blob being written.
type WritableBlob interface {
	io.WriteCloser
	// Sync flushes buffered data to stable storage where supported.
	Sync() error
}

// NewReader returns a sequential reader over the whole blob.
func NewReader(ctx context.Context, b Blob) io.Reader {
	return &blobReader{ctx: ctx, blob: b}
}

type blobReader struct {
	ctx  context.Context
	blob Blob
	off  int64
}

func (r *blobReader) Read(p []byte) (int, error) {
	if r.off >= r.blob.Size() {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := r.blob.ReadAt(r.ctx, p, r.off)
	r.off += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}
