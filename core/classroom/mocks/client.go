package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// Client is a mock implementation of classroom.Client
type Client struct {
	mock.Mock
}

func (m *Client) ListCourses(ctx context.Context) ([]roster.Course, error) {
	args := m.Called(ctx)
	if courses, ok := args.Get(0).([]roster.Course); ok {
		return courses, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListStudents(ctx context.Context, courseID string) ([]roster.Student, error) {
	args := m.Called(ctx, courseID)
	if students, ok := args.Get(0).([]roster.Student); ok {
		return students, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
