package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultUserAgent = "skinnova/0.1"
	requestTimeout   = 5 * time.Second
)

// Fetcher reads the static catalog resource from a URL or a local file.
type Fetcher struct {
	http      *http.Client
	userAgent string
}

// NewFetcher builds a Fetcher with the default timeout and user agent.
func NewFetcher() *Fetcher {
	return &Fetcher{
		http:      &http.Client{Timeout: requestTimeout},
		userAgent: defaultUserAgent,
	}
}

// Fetch retrieves and decodes the catalog at source. Sources starting with
// http:// or https:// are fetched with GET; anything else is a file path.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*Catalog, error) {
	if f == nil {
		return nil, fmt.Errorf("fetcher is nil")
	}
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog source is empty")
	}

	var (
		payload Payload
		err     error
	)
	if isRemote(trimmed) {
		payload, err = f.fetchURL(ctx, trimmed)
	} else {
		payload, err = readFile(trimmed)
	}
	if err != nil {
		return nil, err
	}
	return New(payload.Products), nil
}

// Load fetches the catalog and degrades to an empty one on any failure. No
// retry is attempted; downstream rendering tolerates zero products.
func Load(ctx context.Context, fetcher *Fetcher, source string, logger zerolog.Logger) *Catalog {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	cat, err := fetcher.Fetch(ctx, source)
	if err != nil {
		logger.Error().Err(err).Str("source", source).Msg("failed to load products")
		return Empty()
	}
	if n := cat.Dropped(); n > 0 {
		logger.Warn().Int("dropped", n).Msg("catalog contained entries with missing or duplicate id/slug")
	}
	logger.Info().Int("products", cat.Len()).Str("source", source).Msg("catalog loaded")
	return cat
}

func (f *Fetcher) fetchURL(ctx context.Context, rawURL string) (Payload, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Payload{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.http.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return Payload{}, fmt.Errorf("catalog %s returned status %d", rawURL, resp.StatusCode)
	}
	return decode(resp.Body)
}

func readFile(path string) (Payload, error) {
	resolved, err := expandPath(path)
	if err != nil {
		return Payload{}, err
	}
	file, err := os.Open(resolved)
	if err != nil {
		return Payload{}, fmt.Errorf("open catalog: %w", err)
	}
	defer file.Close()
	return decode(file)
}

func decode(r io.Reader) (Payload, error) {
	var payload Payload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return Payload{}, fmt.Errorf("decode catalog: %w", err)
	}
	return payload, nil
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
