package pages

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/internal/logging"
	"github.com/khrees2412/jobdesk/internal/pipeline"
	"github.com/khrees2412/jobdesk/internal/render"
	"github.com/khrees2412/jobdesk/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	doc     *ui.Document
	loaders *Loaders
	nav     *Navigator
}

func newFixture(t *testing.T, mux *http.ServeMux) fixture {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL+"/api", srv.Client())
	require.NoError(t, err)
	r, err := render.New("ko")
	require.NoError(t, err)

	doc := ui.NewDocument()
	loaders := NewLoaders(pipeline.New(c, r, logging.Discard()), doc, Limits{DashboardJobs: 5, DashboardFeedbacks: 3})
	return fixture{doc: doc, loaders: loaders, nav: NewNavigator(doc, loaders, "linkedin-crawler")}
}

func (f fixture) content(t *testing.T, id string) string {
	t.Helper()
	c, err := f.doc.Lookup(id)
	require.NoError(t, err)
	return string(c.Content())
}

func (f fixture) hidden(t *testing.T, page string) bool {
	t.Helper()
	c, err := f.doc.Lookup(SectionID(page))
	require.NoError(t, err)
	return c.Hidden()
}

func dashboardMux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/jobs", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"id":1,"title":"Engineer","company":"Acme"}]`))
	})
	mux.HandleFunc("GET /api/applications", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"database is locked"}`))
	})
	mux.HandleFunc("GET /api/feedbacks", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"id":3,"resume_title":"백엔드 자소서","feedback_text":"좋아요","created_at":"2024-05-01T10:00:00"}]`))
	})
	return mux
}

func TestDashboardFailureIsIsolated(t *testing.T) {
	f := newFixture(t, dashboardMux(t))

	res, err := f.loaders.Dashboard(context.Background())
	require.NoError(t, err)

	assert.True(t, res[RecentJobsList].OK())
	assert.True(t, res[RecentFeedbacks].OK())
	assert.False(t, res[ApplicationStats].OK())
	assert.Equal(t, []string{ApplicationStats}, res.Failed())

	assert.Contains(t, f.content(t, RecentJobsList), "Engineer")
	assert.Contains(t, f.content(t, RecentFeedbacks), "백엔드 자소서")
	assert.Contains(t, f.content(t, ApplicationStats), "database is locked")
}

func TestListPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/jobs", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.Query().Get("limit"))
		w.Write([]byte(`{"jobs":[{"id":1,"title":"Engineer","company":"Acme"}]}`))
	})
	mux.HandleFunc("GET /api/resumes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("GET /api/applications", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"company":"Acme","job_title":"Engineer","resume_title":"r","status":"서류 합격","job_id":1,"resume_id":2}]`))
	})
	mux.HandleFunc("GET /api/feedbacks", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})
	f := newFixture(t, mux)

	tests := []struct {
		page      Page
		container string
		ok        bool
		contains  string
	}{
		{Jobs, JobsList, true, "Engineer"},
		{Resumes, ResumesList, true, "등록된 자소서가 없습니다."},
		{Applications, ApplicationsList, true, "status-document-passed"},
		{Feedbacks, FeedbacksList, false, "피드백 목록을 불러오는 중 오류가 발생했습니다."},
	}

	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			res, err := f.loaders.Load(context.Background(), tt.page)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, res[tt.container].OK())
			assert.Contains(t, f.content(t, tt.container), tt.contains)
		})
	}
}

func TestLoadUnknownPage(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	_, err := f.loaders.Load(context.Background(), "settings")
	assert.True(t, errors.Is(err, ErrUnknownPage))
}

func TestDetailLoaders(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/jobs/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":` + r.PathValue("id") + `,"title":"Engineer","company":"Acme","description":"Go 개발"}`))
	})
	mux.HandleFunc("GET /api/resumes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Resume not found"}`))
	})
	mux.HandleFunc("GET /api/feedbacks/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":4,"resume_title":"r1","feedback_text":"보완 필요"}`))
	})
	mux.HandleFunc("GET /api/compare", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("job_id"))
		assert.Equal(t, "9", r.URL.Query().Get("resume_id"))
		w.Write([]byte(`{"job":{"id":7,"title":"Engineer","company":"Acme","description":"Go"},"resume":{"id":9,"title":"r1","text_content":"저는"}}`))
	})
	f := newFixture(t, mux)
	ctx := context.Background()

	out, err := f.loaders.JobDetail(ctx, "7")
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Contains(t, f.content(t, JobDetailContent), "Go 개발")

	out, err = f.loaders.ResumeDetail(ctx, "1")
	require.NoError(t, err)
	assert.False(t, out.OK())
	assert.Contains(t, f.content(t, ResumeDetailContent), "Resume not found")

	out, err = f.loaders.FeedbackDetail(ctx, "4")
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Contains(t, f.content(t, FeedbackDetailContent), "보완 필요")

	out, err = f.loaders.Compare(ctx, "7", "9")
	require.NoError(t, err)
	assert.True(t, out.OK())
	assert.Contains(t, f.content(t, CompareContent), "저는")
}

func TestNavigatorShow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/resumes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"title":"백엔드","text_content":"...","uploaded_at":"2024-05-01"}]`))
	})
	f := newFixture(t, mux)

	assert.Equal(t, "dashboard", f.nav.Active())
	assert.False(t, f.hidden(t, "dashboard"))
	assert.True(t, f.hidden(t, "resumes"))

	res, err := f.nav.Show(context.Background(), "resumes")
	require.NoError(t, err)
	assert.True(t, res[ResumesList].OK())
	assert.Equal(t, "resumes", f.nav.Active())
	assert.False(t, f.hidden(t, "resumes"))
	for _, p := range []string{"dashboard", "jobs", "applications", "feedbacks", "linkedin-crawler"} {
		assert.True(t, f.hidden(t, p), p)
	}

	res, err = f.nav.Show(context.Background(), "linkedin-crawler")
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.True(t, f.hidden(t, "resumes"))
	assert.False(t, f.hidden(t, "linkedin-crawler"))

	_, err = f.nav.Show(context.Background(), "settings")
	assert.True(t, errors.Is(err, ErrUnknownPage))
	assert.Equal(t, "linkedin-crawler", f.nav.Active())
}

func TestNavigatingAwayDropsLateResponse(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/jobs", func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`[{"id":1,"title":"late","company":"Acme"}]`))
	})
	mux.HandleFunc("GET /api/resumes", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	f := newFixture(t, mux)
	jobs, err := f.doc.Lookup(JobsList)
	require.NoError(t, err)

	done := make(chan Result, 1)
	go func() {
		res, _ := f.nav.Show(context.Background(), "jobs")
		done <- res
	}()
	require.Eventually(t, func() bool { return jobs.Generation() == 1 }, 2*time.Second, 5*time.Millisecond)

	_, err = f.nav.Show(context.Background(), "resumes")
	require.NoError(t, err)

	close(release)
	res := <-done
	assert.True(t, res[JobsList].Stale)
	assert.NotContains(t, f.content(t, JobsList), "late")
}
