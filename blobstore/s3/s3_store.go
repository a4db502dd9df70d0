package s3

import (
	"bytes"
	"context"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/hupe1980/lloyd/blobstore"
)

// Options configures a Store.
type Options struct {
	// PartSize is the minimum part size for multipart uploads.
	PartSize int64
	// Concurrency is the number of concurrent part uploads.
	Concurrency int
	// EnableChecksum requests CRC32C integrity validation on uploads.
	EnableChecksum bool
}

// DefaultOptions contains the default upload settings.
var DefaultOptions = Options{
	PartSize:       8 * 1024 * 1024,
	Concurrency:    5,
	EnableChecksum: true,
}

// Store implements blobstore.BlobStore for S3.
type Store struct {
	client   Client
	bucket   string
	prefix   string
	opts     Options
	uploader *manager.Uploader
}

var _ blobstore.BlobStore = (*Store)(nil)

// NewStore creates a new S3 blob store.
// rootPrefix is prepended to all keys (e.g. "clustering/").
func NewStore(client Client, bucket, rootPrefix string, optFns ...func(o *Options)) *Store {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Store{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(rootPrefix, "/"),
		opts:   opts,
		uploader: manager.NewUploader(client, func(u *manager.Uploader) {
			u.PartSize = max(opts.PartSize, manager.MinUploadPartSize)
			u.Concurrency = max(opts.Concurrency, 1)
		}),
	}
}

func (s *Store) key(name string) string {
	return path.Join(s.prefix, name)
}

func (s *Store) putInput(key string, body io.Reader) *s3.PutObjectInput {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(blobstore.ContentType(key)),
	}
	if s.opts.EnableChecksum {
		input.ChecksumAlgorithm = types.ChecksumAlgorithmCrc32c
	}
	return input
}

// Open opens a blob for reading.
func (s *Store) Open(ctx context.Context, name string) (blobstore.Blob, error) {
	key := s.key(name)

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, mapError(err)
	}

	return &s3Blob{
		client: s.client,
		bucket: s.bucket,
		key:    key,
		size:   aws.ToInt64(head.ContentLength),
	}, nil
}

// Create starts a streaming upload. The object appears when Close returns nil.
func (s *Store) Create(ctx context.Context, name string) (blobstore.WritableBlob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pr, pw := io.Pipe()
	blob := &s3WritableBlob{
		pw:   pw,
		done: make(chan error, 1),
	}

	input := s.putInput(s.key(name), pr)
	go func() {
		_, err := s.uploader.Upload(ctx, input)
		_ = pr.CloseWithError(err)
		blob.done <- err
	}()

	return blob, nil
}

// Put writes a blob with a single PutObject call.
func (s *Store) Put(ctx context.Context, name string, data []byte) error {
	input := s.putInput(s.key(name), bytes.NewReader(data))
	input.ContentLength = aws.Int64(int64(len(data)))
	_, err := s.client.PutObject(ctx, input)
	return err
}

// Delete removes a blob.
func (s *Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	return err
}

// List returns all blob names with the given prefix, relative to the root prefix.
func (s *Store) List(ctx context.Context, prefix string) ([]string, error) {
	full := s.key(prefix)
	if full != "" && (prefix == "" || strings.HasSuffix(prefix, "/")) {
		full += "/"
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(full),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			rel := aws.ToString(obj.Key)
			if s.prefix != "" {
				rel = strings.TrimPrefix(rel, s.prefix+"/")
			}
			if rel != "" {
				keys = append(keys, rel)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}
