package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/reconcile"
	"github.com/bme-wacoisd/google-classroom/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// objectPrefix is the bucket folder holding archived runs.
const objectPrefix = "exports/"

// Archiver uploads reconciliation exports to object storage.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchiver creates an archiver writing to the given bucket.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// EnsureBucket creates the archive bucket when missing.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", a.bucket, err)
	}
	a.logger.Info("Created archive bucket", zap.String("bucket", a.bucket))
	return nil
}

// Archive uploads the diff report and the missing-students CSV for one run.
// It returns the object names written.
func (a *Archiver) Archive(ctx context.Context, runID string, diff *reconcile.RosterDiff) ([]string, error) {
	if err := a.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	var jsonBuf bytes.Buffer
	if err := WriteDiffJSON(&jsonBuf, diff); err != nil {
		return nil, fmt.Errorf("failed to render diff JSON: %w", err)
	}
	var csvBuf bytes.Buffer
	if err := WriteMissingCSV(&csvBuf, diff); err != nil {
		return nil, fmt.Errorf("failed to render missing CSV: %w", err)
	}

	uploads := []struct {
		name        string
		contentType string
		data        []byte
	}{
		{objectPrefix + runID + "/diff.json", "application/json", jsonBuf.Bytes()},
		{objectPrefix + runID + "/missing.csv", "text/csv", csvBuf.Bytes()},
	}

	written := make([]string, 0, len(uploads))
	for _, up := range uploads {
		_, err := a.client.PutObject(ctx, a.bucket, up.name, bytes.NewReader(up.data), int64(len(up.data)), minio.PutObjectOptions{
			ContentType: up.contentType,
		})
		if err != nil {
			return written, fmt.Errorf("failed to upload %s: %w", up.name, err)
		}
		written = append(written, up.name)
	}

	a.logger.Info("Archived audit run",
		zap.String("run_id", runID),
		zap.Strings("objects", written))
	return written, nil
}

// Entry describes one archived run.
type Entry struct {
	// RunID is the run identifier the objects were archived under.
	RunID string `json:"run_id"`
	// Objects lists the object names belonging to the run.
	Objects []string `json:"objects"`
	// Size is the total byte size of the run's objects.
	Size int64 `json:"size"`
	// LastModified is the newest object timestamp in the run.
	LastModified time.Time `json:"last_modified"`
}

// List returns the archived runs, newest first.
func (a *Archiver) List(ctx context.Context) ([]Entry, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    objectPrefix,
		Recursive: true,
	}

	byRun := make(map[string]*Entry)
	var order []string
	for obj := range a.client.ListObjects(ctx, a.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archives: %w", obj.Err)
		}
		rest := strings.TrimPrefix(obj.Key, objectPrefix)
		runID, _, found := strings.Cut(rest, "/")
		if !found || runID == "" {
			continue
		}
		entry, ok := byRun[runID]
		if !ok {
			entry = &Entry{RunID: runID}
			byRun[runID] = entry
			order = append(order, runID)
		}
		entry.Objects = append(entry.Objects, obj.Key)
		entry.Size += obj.Size
		if obj.LastModified.After(entry.LastModified) {
			entry.LastModified = obj.LastModified
		}
	}

	entries := make([]Entry, 0, len(order))
	for _, runID := range order {
		entries = append(entries, *byRun[runID])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LastModified.After(entries[j].LastModified)
	})
	return entries, nil
}

// Open streams one archived file back. Name is the bare file name within the
// run folder, e.g. "missing.csv".
func (a *Archiver) Open(ctx context.Context, runID, name string) (io.ReadCloser, error) {
	if runID == "" || name == "" || strings.Contains(runID, "/") || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid archive path %q/%q", runID, name)
	}
	return a.client.GetObject(ctx, a.bucket, objectPrefix+runID+"/"+name, minio.GetObjectOptions{})
}

// Remove deletes every object archived for one run and returns how many were
// removed.
func (a *Archiver) Remove(ctx context.Context, runID string) (int, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    objectPrefix + runID + "/",
		Recursive: true,
	}

	var objects []minio.ObjectInfo
	for obj := range a.client.ListObjects(ctx, a.bucket, opts) {
		if obj.Err != nil {
			return 0, fmt.Errorf("failed to list archives: %w", obj.Err)
		}
		objects = append(objects, minio.ObjectInfo{Key: obj.Key})
	}
	if len(objects) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(objects))
	for _, obj := range objects {
		objectsCh <- obj
	}
	close(objectsCh)

	removed := len(objects)
	for rErr := range a.client.RemoveObjects(ctx, a.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		removed--
		a.logger.Error("Failed to remove archived object",
			zap.String("object", rErr.ObjectName),
			zap.Error(rErr.Err))
	}

	a.logger.Info("Removed archived run",
		zap.String("run_id", runID),
		zap.Int("objects", removed))
	return removed, nil
}
