package minio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/hupe1980/lloyd/blobstore"
	"github.com/minio/minio-go/v7"
)

// Store keeps point tables as objects in a MinIO bucket.
//
// Table names are joined under the root prefix; List returns them relative to
// it. Every object is tagged with the media type of its table.
type Store struct {
	client *minio.Client
	bucket string
	root   string
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore creates a Store for bucket. rootPrefix may be empty.
func NewStore(client *minio.Client, bucket, rootPrefix string) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		root:   strings.Trim(rootPrefix, "/"),
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.root, name)
}

// listPrefix maps a name prefix to an object key prefix. A trailing slash on
// prefix restricts the listing to that directory; the root is always matched
// as a directory.
func (s *Store) listPrefix(prefix string) string {
	full := s.key(prefix)
	if full != "" && (prefix == "" || strings.HasSuffix(prefix, "/")) {
		full += "/"
	}
	return full
}

func (s *Store) name(key string) string {
	if s.root == "" {
		return key
	}
	return strings.TrimPrefix(key, s.root+"/")
}

func (s *Store) putOptions(key string) minio.PutObjectOptions {
	return minio.PutObjectOptions{ContentType: blobstore.ContentType(key)}
}

// translate maps missing-object responses onto blobstore.ErrNotFound.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NotFound":
		return blobstore.ErrNotFound
	}
	return err
}

// Open stats the table and returns a handle that reads it with ranged GETs.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, translate(err)
	}
	return &table{store: s, key: key, size: info.Size}, nil
}

// Put uploads data as a single object.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	key := s.key(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), s.putOptions(key))
	return err
}

// Create streams writes into an upload of unknown size. The table becomes
// visible once Close returns nil.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := s.key(name)
	pr, pw := io.Pipe()
	w := &upload{pw: pw, done: make(chan error, 1)}

	go func() {
		_, err := s.client.PutObject(ctx, s.bucket, key, pr, -1, s.putOptions(key))
		_ = pr.CloseWithError(err)
		w.done <- err
	}()

	return w, nil
}

// Delete removes a table. Missing tables are ignored.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := translate(s.client.RemoveObject(ctx, s.bucket, s.key(name), minio.RemoveObjectOptions{}))
	if errors.Is(err, blobstore.ErrNotFound) {
		return nil
	}
	return err
}

// List returns the sorted table names under prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.listPrefix(prefix),
		Recursive: true,
	})

	var names []string
	for obj := range objects {
		if obj.Err != nil {
			return nil, obj.Err
		}
		if name := s.name(obj.Key); name != "" {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// table reads a stored point table.
type table struct {
	store *Store
	key   string
	size  int64
}

func (t *table) Size() int64 {
	return t.size
}

func (t *table) Close() error {
	return nil
}

// ReadRange returns the bytes [off, off+length) clipped to the table size.
func (t *table) ReadRange(ctx context.Context, off, length int64) (io.ReadCloser, error) {
	if off < 0 || off >= t.size {
		return nil, io.EOF
	}

	opts := minio.GetObjectOptions{}
	if err := opts.SetRange(off, min(off+length, t.size)-1); err != nil {
		return nil, err
	}
	obj, err := t.store.client.GetObject(ctx, t.store.bucket, t.key, opts)
	if err != nil {
		return nil, translate(err)
	}
	return obj, nil
}

func (t *table) ReadAt(ctx context.Context, p []byte, off int64) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	rc, err := t.ReadRange(ctx, off, int64(len(p)))
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	want := int(min(int64(len(p)), t.size-off))
	n, err := io.ReadFull(rc, p[:want])
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF):
		return n, io.EOF
	case err != nil:
		return n, translate(err)
	case n < len(p):
		return n, io.EOF
	}
	return n, nil
}

// upload is a streaming write into a background PutObject.
type upload struct {
	pw     *io.PipeWriter
	done   chan error
	closed bool
}

func (u *upload) Write(p []byte) (int, error) {
	if u.closed {
		return 0, io.ErrClosedPipe
	}
	return u.pw.Write(p)
}

// Sync is a no-op; data is committed by Close.
func (u *upload) Sync() error {
	return nil
}

func (u *upload) Close() error {
	if u.closed {
		return io.ErrClosedPipe
	}
	u.closed = true
	if err := u.pw.Close(); err != nil {
		return err
	}
	return <-u.done
}
