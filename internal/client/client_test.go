package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/api", srv.Client())
	require.NoError(t, err)
	return c
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := New("/api", nil)
	assert.Error(t, err)
}

func TestFetchList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/jobs", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.Write([]byte(`[{"id":1,"title":"Engineer","company":"Acme"},{"id":2,"title":"SRE","company":"Initech"}]`))
	})

	jobs, err := Fetch[models.List[models.JobPosting]](context.Background(), c, Jobs(5))
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Engineer", jobs[0].Title)
	assert.Equal(t, models.ID("2"), jobs[1].ID)
}

func TestDoSendsJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/crawl", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		var req models.CrawlRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "linkedin", req.Platform)
		assert.Equal(t, "https://x.com/job/1", req.URL)

		w.Write([]byte(`{"success":true,"jobs":[]}`))
	})

	res, err := Fetch[models.CrawlResult](context.Background(), c, Crawl("", models.CrawlRequest{Platform: "linkedin", URL: "https://x.com/job/1"}))
	require.NoError(t, err)
	assert.False(t, res.Failed())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "message", status: 500, body: `{"message":"timeout"}`, expected: "timeout"},
		{name: "detail string", status: 404, body: `{"detail":"Job not found"}`, expected: "Job not found"},
		{name: "detail list", status: 422, body: `{"detail":[{"loc":["body","url"],"msg":"field required"},{"msg":"bad platform"}]}`, expected: "field required; bad platform"},
		{name: "message wins", status: 400, body: `{"message":"first","detail":"second"}`, expected: "first"},
		{name: "plain text", status: 502, body: `Bad Gateway`, expected: ""},
		{name: "empty", status: 500, body: ``, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.Do(context.Background(), Applications())
			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.expected, apiErr.Message)
		})
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	})

	_, err := Fetch[models.List[models.Resume]](context.Background(), c, Resumes())
	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestDoHonoursContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Do(ctx, Applications())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCallURLs(t *testing.T) {
	c, err := New("http://localhost:8000/api/", nil)
	require.NoError(t, err)

	tests := []struct {
		call     Call
		expected string
	}{
		{Jobs(0), "http://localhost:8000/api/jobs"},
		{Job("12"), "http://localhost:8000/api/jobs/12"},
		{Resume("a b"), "http://localhost:8000/api/resumes/a%20b"},
		{Feedbacks(3), "http://localhost:8000/api/feedbacks?limit=3"},
		{Feedback("4"), "http://localhost:8000/api/feedbacks/4"},
		{Compare("1", "2"), "http://localhost:8000/api/compare?job_id=1&resume_id=2"},
		{Crawl("/crawl/saramin", models.CrawlRequest{}), "http://localhost:8000/api/crawl/saramin"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, c.URL(tt.call), tt.call.String())
	}
}
