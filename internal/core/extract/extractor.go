package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"code.sajari.com/docconv"

	"github.com/oluwaseyi-a/DocuQuery/internal/core"
)

// maxDocumentBytes caps how much of a remote document we will buffer.
const maxDocumentBytes = 50 << 20

type Extractor struct {
	client  *http.Client
	timeout time.Duration
}

func NewExtractor(client *http.Client, timeout time.Duration) *Extractor {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Extractor{client: client, timeout: timeout}
}

// ExtractFromURL fetches the document bytes and converts them to text.
// Transport failures are classified so the caller can log not-found,
// timeout and generic download trouble distinctly.
func (e *Extractor) ExtractFromURL(ctx context.Context, rawURL string) (string, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", failure(ReasonDownload, fmt.Errorf("build request: %w", err))
	}

	resp, err := e.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", failure(ReasonTimeout, err)
		}
		return "", failure(ReasonDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", failure(ReasonNotFound, fmt.Errorf("document returned 404"))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", failure(ReasonDownload, fmt.Errorf("document returned status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		if isTimeout(err) {
			return "", failure(ReasonTimeout, err)
		}
		return "", failure(ReasonDownload, fmt.Errorf("read body: %w", err))
	}

	contentType := responseMimeType(resp, rawURL)
	return e.parse(data, contentType)
}

// ExtractFromPath converts a previously staged local file to text.
// The read is local and fast; ctx is accepted for interface symmetry.
func (e *Extractor) ExtractFromPath(_ context.Context, filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", failure(ReasonFileNotFound, err)
	}

	return e.parse(data, docconv.MimeTypeByExtension(filePath))
}

// parse runs docconv and applies the shared empty-content check.
func (e *Extractor) parse(data []byte, contentType string) (string, error) {
	res, err := docconv.Convert(bytes.NewReader(data), contentType, false)
	if err != nil {
		return "", failure(ReasonParseFailure, err)
	}

	text := strings.TrimSpace(res.Body)
	if text == "" {
		return "", failure(ReasonEmptyContent, fmt.Errorf("document yielded no text"))
	}
	return text, nil
}

// responseMimeType prefers the Content-Type header and falls back to the
// URL's file extension when the server sends nothing usable.
func responseMimeType(resp *http.Response, rawURL string) string {
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil && mt != "application/octet-stream" {
			return mt
		}
	}
	if u, err := url.Parse(rawURL); err == nil {
		return docconv.MimeTypeByExtension(path.Base(u.Path))
	}
	return "application/pdf"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

var _ core.TextExtractor = (*Extractor)(nil)
