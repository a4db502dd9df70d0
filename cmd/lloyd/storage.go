package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/hupe1980/lloyd/blobstore"
	minioblob "github.com/hupe1980/lloyd/blobstore/minio"
	s3blob "github.com/hupe1980/lloyd/blobstore/s3"
	"github.com/hupe1980/lloyd/internal/config"
)

func newStore(ctx context.Context, sc config.StorageConfig) (blobstore.BlobStore, error) {
	switch sc.Backend {
	case config.BackendLocal, "":
		return blobstore.NewLocalStore(sc.Root), nil
	case config.BackendS3:
		return newS3Store(ctx, sc)
	case config.BackendMinIO:
		return newMinIOStore(sc)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", sc.Backend)
	}
}

func newS3Store(ctx context.Context, sc config.StorageConfig) (blobstore.BlobStore, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if sc.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(sc.Region))
	}
	if sc.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
			o.UsePathStyle = true
		}
	})
	return s3blob.NewStore(client, sc.Bucket, sc.Prefix), nil
}

func newMinIOStore(sc config.StorageConfig) (blobstore.BlobStore, error) {
	client, err := minio.New(sc.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(sc.AccessKey, sc.SecretKey, ""),
		Secure: sc.Secure,
		Region: sc.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return minioblob.NewStore(client, sc.Bucket, sc.Prefix), nil
}
