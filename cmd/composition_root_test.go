package cmd

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositionRoot_RouterServesStatelessRoutes(t *testing.T) {
	var logs bytes.Buffer
	root := NewCompositionRoot(Config{}, nil, slog.New(slog.NewTextHandler(&logs, nil)))

	router, err := root.CreateRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sort/length", strings.NewReader(`{"values":["abc","ab","a"]}`))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"values":["a","ab","abc"]}`, rec.Body.String())
}

func TestCompositionRoot_JobManager(t *testing.T) {
	var logs bytes.Buffer
	root := NewCompositionRoot(Config{DigestSchedule: "@every 1h"}, nil, slog.New(slog.NewTextHandler(&logs, nil)))

	manager := root.CreateJobManager()
	require.NoError(t, manager.StartAll())
	manager.StopAll()

	assert.Contains(t, logs.String(), "schedule=\"@every 1h\"")
}
