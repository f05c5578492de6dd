package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/jonathan/portfolio/internal/config"
	"github.com/jonathan/portfolio/internal/content"
	"github.com/jonathan/portfolio/internal/fetch"
	"github.com/jonathan/portfolio/internal/storage"
	"github.com/jonathan/portfolio/web"
)

// siteFS returns the configured site root, or the bundled site.
func siteFS(c config.Config) fs.FS {
	if c.SiteDir != "" {
		return os.DirFS(c.SiteDir)
	}
	return web.FS
}

// skeleton reads the HTML page of the site.
func skeleton(c config.Config) ([]byte, error) {
	data, err := fs.ReadFile(siteFS(c), web.SkeletonPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read page skeleton: %w", err)
	}
	return data, nil
}

// contentSource fetches bundles over HTTP when a content URL is configured,
// and from the site root otherwise.
func contentSource(c config.Config) content.Source {
	if c.ContentURL != "" {
		opts := fetch.DefaultOptions()
		if d := c.Timeout(); d > 0 {
			opts.Timeout = d
		}
		return &content.HTTPSource{BaseURL: c.ContentURL, Options: opts}
	}
	return &content.FSSource{FS: siteFS(c)}
}

// openPrefs opens the preference state file.
func openPrefs(c config.Config) (*storage.FileStore, error) {
	prefs, err := storage.NewFileStore(c.StateFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open state file: %w", err)
	}
	return prefs, nil
}
