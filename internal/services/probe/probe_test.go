package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"relic-search/internal/api"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_AgainstRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	// Health never reaches the service, so no store is needed.
	srv := httptest.NewServer(api.NewRouter(nil))
	defer srv.Close()

	health, err := NewClient(srv.URL, 5*time.Second).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "/relics", health.Endpoints["all_relics"])
}

func TestHealth_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"down"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, 5*time.Second).Health(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHealth_UnhealthyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"degraded"}`))
	}))
	defer srv.Close()

	health, err := NewClient(srv.URL, 5*time.Second).Health(context.Background())
	require.Error(t, err)
	assert.Equal(t, "degraded", health.Status)
}

func TestHealth_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Health(context.Background())
	assert.Error(t, err)
}
