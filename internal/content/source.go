package content

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"strings"

	"github.com/jonathan/portfolio/internal/fetch"
	"github.com/jonathan/portfolio/internal/types"
)

// Dir is the directory holding one bundle per language, relative to the site root.
const Dir = "content"

// Path returns the site-relative path of the bundle for lang.
func Path(lang types.Lang) string {
	return path.Join(Dir, string(lang)+".json")
}

// Source retrieves the raw bytes of a content bundle.
type Source interface {
	Fetch(ctx context.Context, lang types.Lang) ([]byte, error)
}

// HTTPSource fetches bundles from a site served over HTTP.
type HTTPSource struct {
	BaseURL string
	Options *fetch.Options
}

// URL returns the absolute bundle URL for lang.
func (s *HTTPSource) URL(lang types.Lang) (string, error) {
	base, err := url.Parse(strings.TrimSuffix(s.BaseURL, "/") + "/")
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", s.BaseURL, err)
	}
	return base.ResolveReference(&url.URL{Path: Path(lang)}).String(), nil
}

// Fetch retrieves the bundle for lang. Any status other than 200 is an error.
func (s *HTTPSource) Fetch(ctx context.Context, lang types.Lang) ([]byte, error) {
	u, err := s.URL(lang)
	if err != nil {
		return nil, err
	}
	result, err := fetch.URL(ctx, u, s.Options)
	if err != nil {
		return nil, err
	}
	return result.Body, nil
}

// FSSource reads bundles from a filesystem laid out like the site root.
type FSSource struct {
	FS fs.FS
}

// Fetch reads the bundle for lang.
func (s *FSSource) Fetch(ctx context.Context, lang types.Lang) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.FS, Path(lang))
}
