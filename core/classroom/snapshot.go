package classroom

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// rosterFetchConcurrency bounds the parallel per-course roster requests so
// a large course list does not hammer the API.
const rosterFetchConcurrency = 4

// Snapshot is one complete platform roster state: every course the token
// can see plus each course's student list.
type Snapshot struct {
	// Courses in the order the platform listed them.
	Courses []roster.Course `json:"courses"`

	// StudentsByCourse maps course id to that course's roster.
	StudentsByCourse map[string][]roster.Student `json:"students_by_course"`

	// FetchedAt records when the crawl happened, UTC.
	FetchedAt time.Time `json:"fetched_at"`
}

// FetchSnapshot crawls the full platform state: the course list first, then
// every course's roster with bounded concurrency. Any failed request fails
// the whole snapshot; a partial platform state would silently skew the
// reconciliation counts.
func FetchSnapshot(ctx context.Context, client Client) (*Snapshot, error) {
	courses, err := client.ListCourses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	snapshot := &Snapshot{
		Courses:          courses,
		StudentsByCourse: make(map[string][]roster.Student, len(courses)),
		FetchedAt:        time.Now().UTC(),
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rosterFetchConcurrency)
	for _, course := range courses {
		g.Go(func() error {
			students, err := client.ListStudents(gctx, course.ID)
			if err != nil {
				return fmt.Errorf("failed to list students for course %s: %w", course.ID, err)
			}
			for i := range students {
				students[i].CourseName = course.Name
			}
			mu.Lock()
			snapshot.StudentsByCourse[course.ID] = students
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// WriteSnapshot saves a snapshot as indented JSON, for later offline runs.
func WriteSnapshot(path string, snapshot *Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot file: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot previously saved with WriteSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file %s: %w", path, err)
	}
	if snapshot.StudentsByCourse == nil {
		snapshot.StudentsByCourse = map[string][]roster.Student{}
	}
	return &snapshot, nil
}
