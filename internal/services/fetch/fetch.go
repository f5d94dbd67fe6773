// Package fetch resolves report source references into readable local
// PDF files. A reference beginning with "http" is downloaded into the
// OS temp directory with retry on transient failures; anything else is
// treated as a path on disk and returned untouched (a missing file
// surfaces later, when the extractor opens it).
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyReference is returned when a report's source reference is blank.
var ErrEmptyReference = errors.New("empty source reference")

// retryDelays is the wait schedule between download attempts. The last
// entry repeats if the configured retry count outruns the schedule.
var retryDelays = []time.Duration{0, 1 * time.Second, 5 * time.Second, 30 * time.Second}

// Local is a resolved reference: a path on disk that can be opened for
// reading. Remote is true when the file was downloaded by the loader.
type Local struct {
	Path   string
	Remote bool
	keep   bool
}

// Cleanup removes the downloaded temp file. It is a no-op for local
// paths, when the loader was built with keepDownloads, and on repeat
// calls.
func (l *Local) Cleanup() {
	if !l.Remote || l.keep {
		return
	}
	if err := os.Remove(l.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️  Failed to remove temp file %s: %v", l.Path, err)
	}
}

// Loader turns source references into local files.
type Loader struct {
	client  *http.Client
	retries int
	keep    bool
}

// New creates a Loader. timeout bounds each individual HTTP attempt;
// retries is the number of re-attempts after a failed download (0 means
// a single attempt); keepDownloads leaves temp files on disk after the
// run, for debugging.
func New(timeout time.Duration, retries int, keepDownloads bool) *Loader {
	return &Loader{
		client: &http.Client{
			Timeout: timeout,
		},
		retries: retries,
		keep:    keepDownloads,
	}
}

// IsRemote reports whether ref names a URL to download rather than a
// file on disk. The test is a plain prefix match on "http", so both
// http:// and https:// count.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "http")
}

// Resolve turns a report source reference into a readable local file.
// Local paths come back unchanged with no filesystem check. Remote
// references are fetched exactly once per attempt; the caller owns the
// returned handle and must call Cleanup when done with the file.
func (l *Loader) Resolve(ctx context.Context, ref string) (*Local, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, ErrEmptyReference
	}
	if !IsRemote(ref) {
		return &Local{Path: ref}, nil
	}

	path, err := l.download(ctx, ref)
	if err != nil {
		return nil, err
	}
	return &Local{Path: path, Remote: true, keep: l.keep}, nil
}

// download fetches url with retries. Transport errors and 5xx responses
// are retried on the delay schedule; 4xx responses fail immediately
// since the request itself is wrong and will not heal.
func (l *Loader) download(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= l.retries; attempt++ {
		if attempt > 0 {
			delay := retryDelays[min(attempt, len(retryDelays)-1)]
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			log.Printf("⚠️  Retrying download (attempt %d/%d): %s", attempt+1, l.retries+1, url)
		}

		path, err := l.fetchOnce(ctx, url)
		if err == nil {
			return path, nil
		}
		lastErr = err
		if !retryable(err) {
			break
		}
	}
	return "", lastErr
}

// fetchOnce performs a single GET and streams the body to a temp file.
func (l *Loader) fetchOnce(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request for %s: %w", url, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &statusError{URL: url, Code: resp.StatusCode}
	}

	path := filepath.Join(os.TempDir(), "cotm-"+uuid.NewString()+".pdf")
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		out.Close()
		os.Remove(path)
		return "", fmt.Errorf("saving download from %s: %w", url, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	log.Printf("📥 Downloaded %s (%d bytes)", url, n)
	return path, nil
}

// statusError reports a non-2xx HTTP response.
type statusError struct {
	URL  string
	Code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.Code, e.URL)
}

// retryable reports whether another attempt could plausibly succeed.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.Code >= 500
	}
	return true
}
