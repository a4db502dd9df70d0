package blobstore

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Open(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	data := []byte("1,2\n3,4\n")
	require.NoError(t, store.Put(ctx, "in/points.csv", data))
	data[0] = '9' // store keeps its own copy

	w, err := store.Create(ctx, "out/labels.csv")
	require.NoError(t, err)
	_, err = io.WriteString(w, "x,y,c\n")
	require.NoError(t, err)
	require.NoError(t, w.Sync())
	require.NoError(t, w.Close())
	require.ErrorIs(t, w.Close(), io.ErrClosedPipe)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"in/points.csv", "out/labels.csv"}, names)

	blob, err := store.Open(ctx, "in/points.csv")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(8), blob.Size())

	got, err := io.ReadAll(NewReader(ctx, blob))
	require.NoError(t, err)
	assert.Equal(t, "1,2\n3,4\n", string(got))

	r, err := blob.ReadRange(ctx, 4, 100)
	require.NoError(t, err)
	got, err = io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "3,4\n", string(got))

	_, err = blob.ReadRange(ctx, 8, 1)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, store.Delete(ctx, "in/points.csv"))
	names, err = store.List(ctx, "in/")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNewReader_SmallBuffer(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	payload := strings.Repeat("abcdefghij", 10)
	require.NoError(t, store.Put(ctx, "blob", []byte(payload)))

	blob, err := store.Open(ctx, "blob")
	require.NoError(t, err)

	r := NewReader(ctx, blob)
	var sb strings.Builder
	buf := make([]byte, 7)
	for {
		n, err := r.Read(buf)
		sb.Write(buf[:n])
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
	}
	assert.Equal(t, payload, sb.String())
}

func TestNewReader_EmptyBlob(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "empty", nil))

	blob, err := store.Open(ctx, "empty")
	require.NoError(t, err)

	got, err := io.ReadAll(NewReader(ctx, blob))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryStore_SharedSnapshot(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "points.csv", []byte("x,y\n1,2\n")))

	old, err := store.Open(ctx, "points.csv")
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "points.csv", []byte("x,y\n5,6\n7,8\n")))

	got, err := io.ReadAll(NewReader(ctx, old))
	require.NoError(t, err)
	assert.Equal(t, "x,y\n1,2\n", string(got), "open handles keep the table they opened")

	buf := make([]byte, 4)
	n, err := old.ReadAt(ctx, buf, 6)
	assert.Equal(t, 2, n)
	assert.ErrorIs(t, err, io.EOF)

	w, err := store.Create(ctx, "out.csv")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Sync(), io.ErrClosedPipe)

	blob, err := store.Open(ctx, "out.csv")
	require.NoError(t, err)
	assert.Zero(t, blob.Size())
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), "points.csv", []byte("1,2\n")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Open(ctx, "points.csv")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = store.Create(ctx, "out.csv")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Put(ctx, "out.csv", nil), context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx, "points.csv"), context.Canceled)
	_, err = store.List(ctx, "")
	assert.ErrorIs(t, err, context.Canceled)
}
