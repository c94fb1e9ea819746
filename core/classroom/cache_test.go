package classroom

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bme-wacoisd/google-classroom/core/classroom/mocks"
	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// TestSnapshotCache_Hit tests that a fresh snapshot is reused.
func TestSnapshotCache_Hit(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListCourses", mock.Anything).Return([]roster.Course{}, nil)

	cache := NewSnapshotCache(mockClient, 5*time.Minute)

	first, err := cache.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)

	mockClient.AssertNumberOfCalls(t, "ListCourses", 1)
}

// TestSnapshotCache_ZeroTTL tests that caching is off when TTL is zero.
func TestSnapshotCache_ZeroTTL(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListCourses", mock.Anything).Return([]roster.Course{}, nil)

	cache := NewSnapshotCache(mockClient, 0)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)
	_, err = cache.Get(context.Background())
	require.NoError(t, err)

	mockClient.AssertNumberOfCalls(t, "ListCourses", 2)
}

// TestSnapshotCache_Expiration tests that an expired snapshot is replaced.
func TestSnapshotCache_Expiration(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListCourses", mock.Anything).Return([]roster.Course{}, nil)

	cache := NewSnapshotCache(mockClient, 10*time.Millisecond)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	// Wait for expiration
	time.Sleep(20 * time.Millisecond)

	_, err = cache.Get(context.Background())
	require.NoError(t, err)

	mockClient.AssertNumberOfCalls(t, "ListCourses", 2)
}

// TestSnapshotCache_Invalidate tests that invalidation forces a re-crawl.
func TestSnapshotCache_Invalidate(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListCourses", mock.Anything).Return([]roster.Course{}, nil)

	cache := NewSnapshotCache(mockClient, 5*time.Minute)

	_, err := cache.Get(context.Background())
	require.NoError(t, err)

	cache.Invalidate()

	_, err = cache.Get(context.Background())
	require.NoError(t, err)

	mockClient.AssertNumberOfCalls(t, "ListCourses", 2)
}

// TestSnapshotCache_ErrorNotCached tests that a failed crawl is retried on
// the next Get instead of being served from cache.
func TestSnapshotCache_ErrorNotCached(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("ListCourses", mock.Anything).Return(nil, fmt.Errorf("upstream down")).Once()
	mockClient.On("ListCourses", mock.Anything).Return([]roster.Course{}, nil)

	cache := NewSnapshotCache(mockClient, 5*time.Minute)

	_, err := cache.Get(context.Background())
	require.Error(t, err)

	snapshot, err := cache.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snapshot)

	mockClient.AssertNumberOfCalls(t, "ListCourses", 2)
}
