package classroom

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// Client defines the interface for platform roster reads.
type Client interface {
	// ListCourses returns every active course visible to the token, in the
	// order the platform supplies them.
	ListCourses(ctx context.Context) ([]roster.Course, error)
	// ListStudents returns the roster of a single course.
	ListStudents(ctx context.Context, courseID string) ([]roster.Student, error)
	// Ping probes reachability with a single one-item course page.
	Ping(ctx context.Context) error
}

// NewClient creates a platform API client from the configuration.
func NewClient(cfg Config) (Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("classroom base URL is empty")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid classroom base URL: %w", err)
	}

	// Ensure timeout defaults if not set
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		cfg:  cfg,
		http: &http.Client{Transport: transport},
	}, nil
}

type httpClient struct {
	cfg  Config
	http *http.Client
}

func (c *httpClient) ListCourses(ctx context.Context) ([]roster.Course, error) {
	courses := []roster.Course{}
	pageToken := ""
	for {
		query := url.Values{}
		query.Set("courseStates", "ACTIVE")
		if c.cfg.PageSize > 0 {
			query.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
		}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		var page courseList
		if err := c.get(ctx, "/courses", query, &page); err != nil {
			return nil, err
		}
		for _, course := range page.Courses {
			courses = append(courses, roster.Course{ID: course.ID, Name: course.Name})
		}
		if page.NextPageToken == "" {
			return courses, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *httpClient) ListStudents(ctx context.Context, courseID string) ([]roster.Student, error) {
	students := []roster.Student{}
	pageToken := ""
	path := "/courses/" + url.PathEscape(courseID) + "/students"
	for {
		query := url.Values{}
		if c.cfg.PageSize > 0 {
			query.Set("pageSize", strconv.Itoa(c.cfg.PageSize))
		}
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		var page studentList
		if err := c.get(ctx, path, query, &page); err != nil {
			return nil, err
		}
		for _, student := range page.Students {
			students = append(students, roster.Student{
				FullName: student.Profile.Name.FullName,
				Email:    student.Profile.EmailAddress,
				CourseID: courseID,
			})
		}
		if page.NextPageToken == "" {
			return students, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c *httpClient) Ping(ctx context.Context) error {
	query := url.Values{}
	query.Set("courseStates", "ACTIVE")
	query.Set("pageSize", "1")

	var page courseList
	return c.get(ctx, "/courses", query, &page)
}

// get performs one API request and decodes the JSON response into out.
func (c *httpClient) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%s returned status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}
	return nil
}
