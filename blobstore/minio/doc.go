// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works with MinIO and other S3-compatible storage systems like Ceph,
// SeaweedFS, and Garage without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "clustering/")
//	summary, err := lloyd.NewPipeline(store, store).Execute(ctx, lloyd.Job{
//	    Input:  "mall_data.csv",
//	    Output: "output.csv",
//	})
package minio
