package courses

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/bme-wacoisd/google-classroom/core/classroom"
	"github.com/bme-wacoisd/google-classroom/core/roster"

	"go.uber.org/zap"
)

// ErrCourseNotFound is returned when a course ID is absent from the
// snapshot.
var ErrCourseNotFound = errors.New("course not found")

// Service reads the platform snapshot for browsing.
type Service struct {
	snapshot *classroom.SnapshotCache
	logger   *zap.Logger
}

// NewService creates a new courses service.
func NewService(snapshot *classroom.SnapshotCache, logger *zap.Logger) *Service {
	return &Service{snapshot: snapshot, logger: logger}
}

// CourseView is one platform course annotated with its extracted period.
type CourseView struct {
	// ID is the platform course identifier.
	ID string `json:"id"`
	// Name is the course display name.
	Name string `json:"name"`
	// Period is the normalized period extracted from the name, empty when no
	// naming convention matched.
	Period string `json:"period,omitempty"`
	// Students is the roster size.
	Students int `json:"students"`
}

// PeriodClaim maps one period to the courses whose names claim it.
type PeriodClaim struct {
	// Period is the normalized period label.
	Period string `json:"period"`
	// Courses lists the claimants in course-list order. The audit aligns the
	// first one.
	Courses []CourseView `json:"courses"`
	// Ambiguous is true when more than one course claims the period.
	Ambiguous bool `json:"ambiguous"`
}

// Courses returns every active course with its extracted period and roster
// size, plus the snapshot timestamp.
func (s *Service) Courses(ctx context.Context, refresh bool) ([]CourseView, time.Time, error) {
	if refresh {
		s.snapshot.Invalidate()
	}
	snap, err := s.snapshot.Get(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}

	views := make([]CourseView, 0, len(snap.Courses))
	for _, course := range snap.Courses {
		views = append(views, courseView(course, snap))
	}
	return views, snap.FetchedAt, nil
}

// Students returns the roster of one course.
func (s *Service) Students(ctx context.Context, courseID string) ([]roster.Student, error) {
	snap, err := s.snapshot.Get(ctx)
	if err != nil {
		return nil, err
	}

	for _, course := range snap.Courses {
		if course.ID == courseID {
			return snap.StudentsByCourse[courseID], nil
		}
	}
	return nil, ErrCourseNotFound
}

// Periods resolves every period claimed by at least one course name, in
// presentation order.
func (s *Service) Periods(ctx context.Context) ([]PeriodClaim, error) {
	snap, err := s.snapshot.Get(ctx)
	if err != nil {
		return nil, err
	}

	byPeriod := make(map[string][]CourseView)
	for _, course := range snap.Courses {
		extracted, ok := roster.ExtractPeriod(course.Name)
		if !ok {
			continue
		}
		period := roster.NormalizePeriod(extracted)
		byPeriod[period] = append(byPeriod[period], courseView(course, snap))
	}

	claims := make([]PeriodClaim, 0, len(byPeriod))
	for period, views := range byPeriod {
		claims = append(claims, PeriodClaim{
			Period:    period,
			Courses:   views,
			Ambiguous: len(views) > 1,
		})
	}
	sort.Slice(claims, func(i, j int) bool {
		return roster.PeriodLess(claims[i].Period, claims[j].Period)
	})
	return claims, nil
}

func courseView(course roster.Course, snap *classroom.Snapshot) CourseView {
	view := CourseView{
		ID:       course.ID,
		Name:     course.Name,
		Students: len(snap.StudentsByCourse[course.ID]),
	}
	if extracted, ok := roster.ExtractPeriod(course.Name); ok {
		view.Period = roster.NormalizePeriod(extracted)
	}
	return view
}
