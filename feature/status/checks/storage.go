package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bme-wacoisd/google-classroom/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// RequiredPrefixes lists the bucket folders the archiver writes under.
var RequiredPrefixes = []string{"exports"}

// StorageReport strictly types the result of the archive-bucket check.
type StorageReport struct {
	BucketExists    bool     `json:"bucket_exists"`
	MissingPrefixes []string `json:"missing_prefixes"`
	Status          string   `json:"status"` // "ok", "error"
}

// CheckStorage verifies the archive bucket and its folder layout. A missing
// bucket is reported, not an error: FixStorage can create it.
func CheckStorage(ctx context.Context, client storage.Client, bucket string) (*StorageReport, error) {
	report := &StorageReport{
		MissingPrefixes: []string{},
		Status:          "ok",
	}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Status = "error"
		report.MissingPrefixes = append(report.MissingPrefixes, RequiredPrefixes...)
		return report, nil
	}

	for _, prefix := range RequiredPrefixes {
		prefixPath := prefix
		if !strings.HasSuffix(prefixPath, "/") {
			prefixPath += "/"
		}

		opts := minio.ListObjectsOptions{
			Prefix:    prefixPath,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			report.MissingPrefixes = append(report.MissingPrefixes, prefix)
			report.Status = "error"
		}
	}

	return report, nil
}

// FixStorage creates the bucket and the missing prefixes.
func FixStorage(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, report *StorageReport) error {
	if !report.BucketExists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			logger.Error("Failed to create bucket", zap.String("bucket", bucket), zap.Error(err))
			return err
		}
		logger.Info("Created archive bucket", zap.String("bucket", bucket))
	}

	for _, prefix := range report.MissingPrefixes {
		prefixPath := prefix
		if !strings.HasSuffix(prefixPath, "/") {
			prefixPath += "/"
		}

		_, err := client.PutObject(ctx, bucket, prefixPath, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create prefix", zap.String("prefix", prefix), zap.Error(err))
			return err
		}
		logger.Info("Created missing prefix", zap.String("prefix", prefix))
	}
	return nil
}
