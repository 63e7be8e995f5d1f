package crawler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/khrees2412/jobdesk/internal/render"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveSuccess(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/jobs", r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var job models.JobPosting
		require.NoError(t, json.Unmarshal(body, &job))
		assert.Equal(t, "Engineer", job.Title)

		w.Write([]byte(`{"job_id":"42"}`))
	})

	button, err := render.NewSaveButton(models.JobPosting{ID: "1", Title: "Engineer", Company: "Acme"})
	require.NoError(t, err)

	next, err := f.saver.Save(context.Background(), button.Payload)
	require.NoError(t, err)
	assert.True(t, next.Saved)
	assert.Empty(t, next.Alert)
	assert.Equal(t, button.Payload, next.Payload)
}

func TestSaveFailure(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		payload string
		alert   string
	}{
		{name: "server message", status: 409, body: `{"detail":"이미 저장된 채용 공고입니다."}`, payload: `{"title":"Engineer","company":"Acme"}`, alert: "이미 저장된 채용 공고입니다."},
		{name: "no message", status: 500, body: ``, payload: `{"title":"Engineer","company":"Acme"}`, alert: "채용 공고 저장 중 오류가 발생했습니다."},
		{name: "bad payload", status: 200, body: `{}`, payload: `{not json`, alert: "채용 공고 저장 중 오류가 발생했습니다."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			next, err := f.saver.Save(context.Background(), tt.payload)
			assert.Error(t, err)
			assert.False(t, next.Saved)
			assert.Equal(t, tt.alert, next.Alert)
			assert.Equal(t, tt.payload, next.Payload)
		})
	}
}
