// Package content loads localized content bundles and holds the active one.
package content

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/jonathan/portfolio/internal/schemas"
	"github.com/jonathan/portfolio/internal/types"
	"go.uber.org/zap"
)

// Store fetches content documents and holds the one currently displayed.
type Store struct {
	source Source
	logger *zap.Logger

	mu      sync.RWMutex
	current *types.ContentDocument
}

// NewStore creates a Store reading bundles from source.
func NewStore(source Source, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{source: source, logger: logger}
}

// Load fetches and parses the bundle for lang. An unsupported lang is
// replaced by the default language. Load has no side effects besides the
// fetch: it neither touches preferences nor changes Current.
func (s *Store) Load(ctx context.Context, lang types.Lang) (*types.ContentDocument, error) {
	lang = types.ParseLang(string(lang))

	data, err := s.source.Fetch(ctx, lang)
	if err != nil {
		return nil, &LoadError{Lang: string(lang), Message: "failed to fetch bundle", Cause: err}
	}

	doc, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Lang = string(lang)
		}
		return nil, err
	}

	s.logger.Debug("Content bundle loaded",
		zap.String("lang", string(lang)),
		zap.Int("bytes", len(data)))
	return doc, nil
}

// Parse validates data against the content schema and decodes it.
func Parse(data []byte) (*types.ContentDocument, error) {
	if err := schemas.ValidateContent(data); err != nil {
		return nil, &ParseError{Message: "bundle does not match the content schema", Cause: err}
	}

	var doc types.ContentDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Message: "failed to decode bundle", Cause: err}
	}
	if err := doc.Validate(); err != nil {
		return nil, &ParseError{Message: "invalid bundle", Cause: err}
	}
	return &doc, nil
}

// Current returns the active document, or nil before the first successful load.
func (s *Store) Current() *types.ContentDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// SetCurrent replaces the active document.
func (s *Store) SetCurrent(doc *types.ContentDocument) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = doc
}
