package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docfoundry/docgen-mcp/storage"
)

func testRouter(t *testing.T, store *storage.ArtifactStore) http.Handler {
	t.Helper()
	mcpStub := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return NewRouter(store, mcpStub)
}

func TestDownloadFile(t *testing.T) {
	store := storage.NewArtifactStore(time.Hour)
	pdf := []byte("%PDF-1.7 test")
	id := store.Store(pdf, "jane-doe-resume.pdf")

	router := testRouter(t, store)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/"+id.String(), nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `inline; filename="jane-doe-resume.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, pdf, rec.Body.Bytes())
}

func TestDownloadInvalidID(t *testing.T) {
	router := testRouter(t, storage.NewArtifactStore(time.Hour))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid file ID")
}

func TestDownloadUnknownID(t *testing.T) {
	router := testRouter(t, storage.NewArtifactStore(time.Hour))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/files/"+uuid.NewString(), nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "File not found or expired")
}

func TestHealthz(t *testing.T) {
	router := testRouter(t, storage.NewArtifactStore(time.Hour))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestMCPMount(t *testing.T) {
	router := testRouter(t, storage.NewArtifactStore(time.Hour))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/mcp", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
