package imagefetch

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	// Decoders for header validation. APOD serves jpeg almost always, the
	// rest show up in archive entries.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/five82/apodwall/internal/faults"
)

// Downloader stores a remote image at a local path.
type Downloader interface {
	Download(ctx context.Context, imageURL, destination string) (Result, error)
}

// Ensure Fetcher implements Downloader at compile time.
var _ Downloader = (*Fetcher)(nil)

// Result describes a completed download.
type Result struct {
	Path   string
	Bytes  int64
	Format string
	Width  int
	Height int
}

// Fetcher downloads images over HTTP.
type Fetcher struct {
	http      *http.Client
	userAgent string
	maxBytes  int64
}

const (
	defaultUserAgent = "apodwall/0.1"
	requestTimeout   = 2 * time.Minute
	defaultMaxBytes  = 100 << 20
	fallbackExt      = ".jpg"
)

var knownExts = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {},
	".bmp": {}, ".tif": {}, ".tiff": {}, ".webp": {},
}

// Option customizes a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(f *Fetcher) {
		if hc != nil {
			f.http = hc
		}
	}
}

// WithMaxBytes caps the accepted image size.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBytes = n
		}
	}
}

// New builds a Fetcher.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
		maxBytes:  defaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// DestinationFor returns <dir>/apod-<date><ext>, taking ext from the URL path
// when it names a known image type. Each day gets its own file name so
// desktops that cache by path notice the change.
func DestinationFor(dir, date, imageURL string) string {
	ext := fallbackExt
	if u, err := url.Parse(imageURL); err == nil {
		candidate := strings.ToLower(path.Ext(u.Path))
		if _, ok := knownExts[candidate]; ok {
			ext = candidate
		}
	}
	name := "apod"
	if tag := sanitizeDate(date); tag != "" {
		name += "-" + tag
	}
	return filepath.Join(dir, name+ext)
}

func sanitizeDate(date string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(date))
}

// Prune removes downloaded images in dir other than keep and returns how many
// it removed. Files that do not look like downloads are left alone.
func Prune(dir, keep string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, faults.Wrap(faults.ErrIO, "image", "prune", dir, err)
	}
	keepName := filepath.Base(keep)
	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == keepName || !isDownloadName(name) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return removed, faults.Wrap(faults.ErrIO, "image", "prune", name, err)
		}
		removed++
	}
	return removed, nil
}

func isDownloadName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := knownExts[ext]; !ok {
		return false
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return stem == "apod" || strings.HasPrefix(stem, "apod-")
}

// Download fetches imageURL and replaces destination only after the bytes
// decode as an image. A failed download leaves destination untouched.
func (f *Fetcher) Download(ctx context.Context, imageURL, destination string) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrNetwork, "image", "create request", "", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrNetwork, "image", "execute request", "", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Result{}, faults.Wrap(faults.ErrNetwork, "image", "", fmt.Sprintf("%s returned status %d", imageURL, resp.StatusCode), nil)
	}

	dir := filepath.Dir(destination)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, faults.Wrap(faults.ErrIO, "image", "create dir", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".apod-*.part")
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrIO, "image", "create temp file", dir, err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err := io.Copy(tmp, io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrNetwork, "image", "read body", "", err)
	}
	if n > f.maxBytes {
		return Result{}, faults.Wrap(faults.ErrNetwork, "image", "", fmt.Sprintf("body exceeds %d bytes", f.maxBytes), nil)
	}

	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return Result{}, faults.Wrap(faults.ErrIO, "image", "rewind", "", err)
	}
	cfg, format, err := image.DecodeConfig(tmp)
	if err != nil {
		return Result{}, faults.Wrap(faults.ErrParse, "image", "decode header", resp.Header.Get("Content-Type"), err)
	}

	if err := tmp.Sync(); err != nil {
		return Result{}, faults.Wrap(faults.ErrIO, "image", "sync", "", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, faults.Wrap(faults.ErrIO, "image", "close", "", err)
	}
	if err := os.Rename(tmp.Name(), destination); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true
		return Result{}, faults.Wrap(faults.ErrIO, "image", "rename", destination, err)
	}
	committed = true

	return Result{
		Path:   destination,
		Bytes:  n,
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}, nil
}
