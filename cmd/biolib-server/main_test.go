package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aria-lang/biolib-go/internal/config"
)

func TestRouterServesAPI(t *testing.T) {
	srv := httptest.NewServer(newRouter(config.DefaultConfig(), zaptest.NewLogger(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/sequence/transcribe", "application/json",
		strings.NewReader(`{"sequence": "GATTACA"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}

func TestRouterRejectsOversizedBody(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Server.MaxBodyBytes = 16

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/palindromes",
		strings.NewReader(`{"sequence": "TCAATGCATGCGGGTCTATATGCAT"}`))
	newRouter(cfg, zaptest.NewLogger(t)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
