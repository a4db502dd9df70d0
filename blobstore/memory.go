package blobstore

import (
	"bytes"
	"context"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"
)

// MemoryStore keeps point tables in process memory. It is safe for concurrent
// use and is intended for tests, benchmarks and single-process pipelines.
//
// Stored tables are immutable: Put and Close copy the caller's bytes once, and
// every Open shares that snapshot.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]byte
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string][]byte)}
}

// Open returns a snapshot of the named table.
func (m *MemoryStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	data, ok := m.tables[name]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return &memoryBlob{r: bytes.NewReader(data)}, nil
}

// Create buffers writes and publishes the table on Close.
func (m *MemoryStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &memoryWritableBlob{store: m, name: name}, nil
}

// Put replaces the named table.
func (m *MemoryStore) Put(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.publish(name, bytes.Clone(data))
	return nil
}

func (m *MemoryStore) publish(name string, data []byte) {
	if data == nil {
		data = []byte{}
	}

	m.mu.Lock()
	m.tables[name] = data
	m.mu.Unlock()
}

// Delete removes the named table.
func (m *MemoryStore) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.tables, name)
	m.mu.Unlock()
	return nil
}

// List returns the sorted names of the tables starting with prefix.
func (m *MemoryStore) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	names := slices.Sorted(maps.Keys(m.tables))
	m.mu.RUnlock()

	return slices.DeleteFunc(names, func(name string) bool {
		return !strings.HasPrefix(name, prefix)
	}), nil
}

type memoryBlob struct {
	r *bytes.Reader
}

func (b *memoryBlob) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(p) == 0 {
		return 0, nil
	}
	if off < 0 {
		return 0, io.EOF
	}
	return b.r.ReadAt(p, off)
}

func (b *memoryBlob) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if off < 0 || off >= b.r.Size() {
		return nil, io.EOF
	}
	return io.NopCloser(io.NewSectionReader(b.r, off, min(length, b.r.Size()-off))), nil
}

func (b *memoryBlob) Size() int64 {
	return b.r.Size()
}

func (b *memoryBlob) Close() error {
	return nil
}

type memoryWritableBlob struct {
	store  *MemoryStore
	name   string
	buf    bytes.Buffer
	closed bool
}

func (w *memoryWritableBlob) Write(p []byte) (int, error) {
	if w.closed {
		return 0, io.ErrClosedPipe
	}
	return w.buf.Write(p)
}

func (w *memoryWritableBlob) Sync() error {
	if w.closed {
		return io.ErrClosedPipe
	}
	return nil
}

func (w *memoryWritableBlob) Close() error {
	if w.closed {
		return io.ErrClosedPipe
	}
	w.closed = true
	w.store.publish(w.name, w.buf.Bytes())
	return nil
}
