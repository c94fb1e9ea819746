package audit

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	clsmocks "github.com/bme-wacoisd/google-classroom/core/classroom/mocks"
	"github.com/bme-wacoisd/google-classroom/core/export"
	"github.com/bme-wacoisd/google-classroom/core/roster"
	stomocks "github.com/bme-wacoisd/google-classroom/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const rosterCSV = `Student,Course,Section,Period,Day,Teacher
"Doe, John",Algebra I,A1,1,M,Rivera
"Smith, Jane",Algebra I,A1,1,M,Rivera
`

// platformMock wires one course claiming period 1 with John Doe enrolled.
func platformMock() *clsmocks.Client {
	mockClient := new(clsmocks.Client)
	mockClient.On("ListCourses", mock.Anything).Return([]roster.Course{
		{ID: "c1", Name: "Algebra I (1)"},
	}, nil)
	mockClient.On("ListStudents", mock.Anything, "c1").Return([]roster.Student{
		{FullName: "John Doe"},
	}, nil)
	return mockClient
}

func setupService(t *testing.T, convention string) *Service {
	cache := classroom.NewSnapshotCache(platformMock(), time.Minute)
	return NewService(setupStore(t), cache, nil, convention, zap.NewNop())
}

// TestServiceRun tests the full pipeline: parse, snapshot, reconcile,
// persist.
func TestServiceRun(t *testing.T) {
	svc := setupService(t, "auto")

	result, err := svc.Run(context.Background(), strings.NewReader(rosterCSV), "text/csv", RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, "roster", result.Run.Convention)
	assert.Equal(t, 2, result.Run.TotalSource)
	assert.Equal(t, 1, result.Run.TotalMatched)
	assert.Equal(t, 1, result.Run.TotalMissing)
	assert.Equal(t, 0, result.Run.TotalExtra)
	assert.Empty(t, result.RowErrors)
	assert.Nil(t, result.Delta)

	require.Len(t, result.Diff.Results, 1)
	assert.Equal(t, []string{"Doe, John"}, result.Diff.Results[0].Matched)
	assert.Equal(t, []string{"Smith, Jane"}, result.Diff.Results[0].MissingFromPlatform)

	// The run should be persisted with the diff blob.
	latest, err := svc.store.Latest()
	require.NoError(t, err)
	assert.Equal(t, result.Run.ID, latest.ID)
	assert.NotEmpty(t, latest.Diff)
}

// TestServiceRunDelta tests that the second run reports movement against the
// first.
func TestServiceRunDelta(t *testing.T) {
	svc := setupService(t, "auto")

	_, err := svc.Run(context.Background(), strings.NewReader(rosterCSV), "text/csv", RunOptions{})
	require.NoError(t, err)

	// Second export gained one student.
	grownCSV := rosterCSV + `"Lopez, Ana",Algebra I,A1,1,M,Rivera` + "\n"
	result, err := svc.Run(context.Background(), strings.NewReader(grownCSV), "text/csv", RunOptions{})
	require.NoError(t, err)

	require.NotNil(t, result.Delta)
	assert.Equal(t, 1, result.Delta.Source)
	assert.Equal(t, 1, result.Delta.Missing)
	assert.Equal(t, 0, result.Delta.Matched)
}

// TestServiceRunJSON tests the extractor-JSON ingestion path.
func TestServiceRunJSON(t *testing.T) {
	svc := setupService(t, "auto")

	body := `[{"student_name":"Doe, John","course_name":"Algebra I","period":1}]`
	result, err := svc.Run(context.Background(), strings.NewReader(body), "application/json", RunOptions{})
	require.NoError(t, err)

	assert.Equal(t, "json", result.Run.Convention)
	assert.Equal(t, 1, result.Run.TotalSource)
	assert.Equal(t, 1, result.Run.TotalMatched)
}

// TestServiceRunPinnedConvention tests that a pinned layout rejects exports
// with a different header set.
func TestServiceRunPinnedConvention(t *testing.T) {
	svc := setupService(t, "schedule")

	_, err := svc.Run(context.Background(), strings.NewReader(rosterCSV), "text/csv", RunOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schedule")
}

// TestServiceRunArchive tests that archiving uploads both objects and flags
// the run.
func TestServiceRunArchive(t *testing.T) {
	storageMock := new(stomocks.Client)
	storageMock.On("BucketExists", mock.Anything, "classroom-audit").Return(true, nil)
	storageMock.On("PutObject", mock.Anything, "classroom-audit", mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	cache := classroom.NewSnapshotCache(platformMock(), time.Minute)
	archiver := export.NewArchiver(storageMock, "classroom-audit", zap.NewNop())
	svc := NewService(setupStore(t), cache, archiver, "auto", zap.NewNop())

	result, err := svc.Run(context.Background(), strings.NewReader(rosterCSV), "text/csv", RunOptions{Archive: true})
	require.NoError(t, err)

	assert.True(t, result.Run.Archived)
	assert.Len(t, result.ArchivedObjects, 2)
	storageMock.AssertNumberOfCalls(t, "PutObject", 2)

	latest, err := svc.store.Latest()
	require.NoError(t, err)
	assert.True(t, latest.Archived)
}

// TestServiceRunArchiveWithoutStorage tests that an explicit archive request
// fails fast when no storage is configured.
func TestServiceRunArchiveWithoutStorage(t *testing.T) {
	svc := setupService(t, "auto")

	_, err := svc.Run(context.Background(), strings.NewReader(rosterCSV), "text/csv", RunOptions{Archive: true})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "object storage")
}

// TestServiceGet tests that a stored diff decodes back intact.
func TestServiceGet(t *testing.T) {
	svc := setupService(t, "auto")

	result, err := svc.Run(context.Background(), strings.NewReader(rosterCSV), "text/csv", RunOptions{})
	require.NoError(t, err)

	run, diff, err := svc.Get(result.Run.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Run.ID, run.ID)
	assert.Equal(t, result.Diff.Summary, diff.Summary)
	assert.Equal(t, result.Diff.Results[0].Matched, diff.Results[0].Matched)
}
