package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/khrees2412/jobdesk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	cfg.LogLevel = "error"

	a, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, "http://localhost:8000/api", a.Client.BaseURL())
	assert.Equal(t, "ko", a.Renderer.Lang())
	assert.Len(t, a.Registry.All(), 6)
	assert.Equal(t, "dashboard", a.Navigator.Active())

	_, err = a.Document.Lookup("linkedin-jobs-list")
	assert.NoError(t, err)

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBuildRejectsBadLogging(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.LogFormat = "xml"

	_, err = Build(context.Background(), cfg)
	assert.Error(t, err)

	_, err = Build(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestContext(t *testing.T) {
	_, err := FromContext(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)

	a := &App{}
	got, err := FromContext(SetAppInContext(context.Background(), a))
	require.NoError(t, err)
	assert.Same(t, a, got)
}
