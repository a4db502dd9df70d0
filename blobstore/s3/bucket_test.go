package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeBucket is an in-memory single-bucket S3 backend for round-trip tests.
// Multipart calls fail; uploads below the part size never issue them.
type fakeBucket struct {
	mu           sync.Mutex
	objects      map[string][]byte
	contentTypes map[string]string
	ranges       []string
}

var _ Client = (*fakeBucket)(nil)

func newFakeBucket() *fakeBucket {
	return &fakeBucket{
		objects:      make(map[string][]byte),
		contentTypes: make(map[string]string),
	}
}

func (b *fakeBucket) object(key string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.objects[key]
	return data, ok
}

func (b *fakeBucket) HeadObject(_ context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	data, ok := b.object(aws.ToString(params.Key))
	if !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{ContentLength: aws.Int64(int64(len(data)))}, nil
}

func (b *fakeBucket) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := b.object(aws.ToString(params.Key))
	if !ok {
		return nil, &types.NoSuchKey{}
	}

	rng := aws.ToString(params.Range)
	b.mu.Lock()
	b.ranges = append(b.ranges, rng)
	b.mu.Unlock()

	var lo, hi int
	if _, err := fmt.Sscanf(rng, "bytes=%d-%d", &lo, &hi); err != nil {
		return nil, fmt.Errorf("bad range %q: %w", rng, err)
	}
	hi = min(hi, len(data)-1)
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data[lo : hi+1]))}, nil
}

func (b *fakeBucket) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}

	key := aws.ToString(params.Key)
	b.mu.Lock()
	b.objects[key] = data
	b.contentTypes[key] = aws.ToString(params.ContentType)
	b.mu.Unlock()
	return &s3.PutObjectOutput{}, nil
}

func (b *fakeBucket) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	b.mu.Lock()
	delete(b.objects, aws.ToString(params.Key))
	b.mu.Unlock()
	return &s3.DeleteObjectOutput{}, nil
}

func (b *fakeBucket) ListObjectsV2(_ context.Context, params *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var contents []types.Object
	for _, key := range slices.Sorted(maps.Keys(b.objects)) {
		if strings.HasPrefix(key, aws.ToString(params.Prefix)) {
			contents = append(contents, types.Object{Key: aws.String(key)})
		}
	}
	return &s3.ListObjectsV2Output{Contents: contents, IsTruncated: aws.Bool(false)}, nil
}

var errMultipart = errors.New("fake bucket: multipart upload not supported")

func (b *fakeBucket) UploadPart(context.Context, *s3.UploadPartInput, ...func(*s3.Options)) (*s3.UploadPartOutput, error) {
	return nil, errMultipart
}

func (b *fakeBucket) CreateMultipartUpload(context.Context, *s3.CreateMultipartUploadInput, ...func(*s3.Options)) (*s3.CreateMultipartUploadOutput, error) {
	return nil, errMultipart
}

func (b *fakeBucket) CompleteMultipartUpload(context.Context, *s3.CompleteMultipartUploadInput, ...func(*s3.Options)) (*s3.CompleteMultipartUploadOutput, error) {
	return nil, errMultipart
}

func (b *fakeBucket) AbortMultipartUpload(context.Context, *s3.AbortMultipartUploadInput, ...func(*s3.Options)) (*s3.AbortMultipartUploadOutput, error) {
	return nil, errMultipart
}
