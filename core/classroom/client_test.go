package classroom

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bme-wacoisd/google-classroom/core/roster"
)

// TestNewClient_Validation tests config validation at construction.
func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)

	_, err = NewClient(Config{BaseURL: "   "})
	assert.Error(t, err)

	client, err := NewClient(Config{BaseURL: "https://classroom.googleapis.com/v1"})
	assert.NoError(t, err)
	assert.NotNil(t, client)
}

// TestListCourses_Pagination tests that the client follows nextPageToken
// and sends the bearer token.
func TestListCourses_Pagination(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.Equal(t, "/courses", r.URL.Path)
		assert.Equal(t, "ACTIVE", r.URL.Query().Get("courseStates"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			fmt.Fprint(w, `{"courses":[{"id":"c1","name":"3 Chemistry"}],"nextPageToken":"page2"}`)
			return
		}
		assert.Equal(t, "page2", r.URL.Query().Get("pageToken"))
		fmt.Fprint(w, `{"courses":[{"id":"c2","name":"4 Biology"}]}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL, Token: "tok", PageSize: 1})
	require.NoError(t, err)

	courses, err := client.ListCourses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []roster.Course{
		{ID: "c1", Name: "3 Chemistry"},
		{ID: "c2", Name: "4 Biology"},
	}, courses)
	assert.Equal(t, "Bearer tok", gotAuth)
}

// TestListStudents_ProfileMapping tests the wire-to-domain mapping of the
// nested student profile.
func TestListStudents_ProfileMapping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses/c1/students", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"students":[
			{"courseId":"c1","userId":"u1","profile":{"id":"u1","name":{"givenName":"John","familyName":"Doe","fullName":"John Doe"},"emailAddress":"jdoe@school.test"}},
			{"courseId":"c1","userId":"u2","profile":{"name":{"fullName":"Jane Smith"}}}
		]}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	students, err := client.ListStudents(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, students, 2)

	assert.Equal(t, "John Doe", students[0].FullName)
	assert.Equal(t, "jdoe@school.test", students[0].Email)
	assert.Equal(t, "c1", students[0].CourseID)

	// Email is optional on the wire.
	assert.Equal(t, "Jane Smith", students[1].FullName)
	assert.Equal(t, "", students[1].Email)
}

// TestClient_HTTPError tests that non-200 responses surface as errors with
// the status code.
func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"code":403,"message":"insufficient scopes"}}`, http.StatusForbidden)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.ListCourses(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

// TestClient_BadJSON tests that an unparseable body is an error, not a
// silent empty result.
func TestClient_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.ListCourses(context.Background())
	assert.Error(t, err)
}

// TestClient_Ping tests that the probe requests a single course page and
// succeeds on a 200.
func TestClient_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/courses", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("pageSize"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"courses":[]}`)
	}))
	defer server.Close()

	client, err := NewClient(Config{BaseURL: server.URL})
	require.NoError(t, err)

	assert.NoError(t, client.Ping(context.Background()))

	server.Close()
	assert.Error(t, client.Ping(context.Background()))
}
