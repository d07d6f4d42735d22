package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func reasonOf(t *testing.T, err error) Reason {
	t.Helper()
	require.Error(t, err)
	xerr, ok := err.(*ExtractionError)
	require.True(t, ok, "expected *ExtractionError, got %T", err)
	return xerr.Reason
}

func TestExtractFromURL_Success(t *testing.T) {
	srv := textServer(t, http.StatusOK, "hello from the document")
	e := NewExtractor(srv.Client(), 5*time.Second)

	text, err := e.ExtractFromURL(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "hello from the document", text)
}

func TestExtractFromURL_NotFound(t *testing.T) {
	srv := textServer(t, http.StatusNotFound, "")
	e := NewExtractor(srv.Client(), 5*time.Second)

	_, err := e.ExtractFromURL(context.Background(), srv.URL)
	assert.Equal(t, ReasonNotFound, reasonOf(t, err))
}

func TestExtractFromURL_ServerErrorIsDownloadFailure(t *testing.T) {
	srv := textServer(t, http.StatusInternalServerError, "")
	e := NewExtractor(srv.Client(), 5*time.Second)

	_, err := e.ExtractFromURL(context.Background(), srv.URL)
	assert.Equal(t, ReasonDownload, reasonOf(t, err))
}

func TestExtractFromURL_DeadHostIsDownloadFailure(t *testing.T) {
	e := NewExtractor(&http.Client{}, 2*time.Second)

	_, err := e.ExtractFromURL(context.Background(), "http://127.0.0.1:1/doc.pdf")
	assert.Equal(t, ReasonDownload, reasonOf(t, err))
}

func TestExtractFromURL_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)

	e := NewExtractor(srv.Client(), 50*time.Millisecond)

	_, err := e.ExtractFromURL(context.Background(), srv.URL)
	assert.Equal(t, ReasonTimeout, reasonOf(t, err))
}

func TestExtractFromURL_WhitespaceOnlyIsEmptyContent(t *testing.T) {
	srv := textServer(t, http.StatusOK, "   \n\t  ")
	e := NewExtractor(srv.Client(), 5*time.Second)

	_, err := e.ExtractFromURL(context.Background(), srv.URL)
	assert.Equal(t, ReasonEmptyContent, reasonOf(t, err))
}

func TestExtractFromPath_Success(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("text from disk"), 0o644))

	e := NewExtractor(nil, 0)
	text, err := e.ExtractFromPath(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "text from disk", text)
}

func TestExtractFromPath_MissingFile(t *testing.T) {
	e := NewExtractor(nil, 0)

	_, err := e.ExtractFromPath(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Equal(t, ReasonFileNotFound, reasonOf(t, err))
}
