// Package i18n selects the display language, loads its content and applies it to the page.
//
// Loads may overlap. Each call takes a token from a monotonically
// increasing sequence and only the holder of the latest token may commit
// its document, so a slow earlier response can never replace a later one.
package i18n

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jonathan/portfolio/internal/dom"
	"github.com/jonathan/portfolio/internal/storage"
	"github.com/jonathan/portfolio/internal/types"
	"go.uber.org/zap"
)

// ErrSuperseded is returned by a load whose result was discarded because a
// newer load was requested while it was in flight.
var ErrSuperseded = errors.New("language load superseded by a newer request")

// State is the loading state of the controller.
type State int

const (
	Idle State = iota
	Loading
)

func (s State) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

// ContentStore fetches content documents and holds the active one.
type ContentStore interface {
	Load(ctx context.Context, lang types.Lang) (*types.ContentDocument, error)
	SetCurrent(doc *types.ContentDocument)
}

// Renderer applies a document to the page. Render runs inside Document.Update.
type Renderer interface {
	Render(data *types.ContentDocument) error
}

// Controller orchestrates language detection, loading and rendering.
type Controller struct {
	doc      *dom.Document
	store    ContentStore
	renderer Renderer
	prefs    storage.Store
	logger   *zap.Logger

	seq atomic.Uint64

	mu        sync.Mutex
	requested types.Lang
	current   types.Lang
	pending   int
}

// New creates a Controller. Before the first load both the requested and
// the displayed language are the default.
func New(doc *dom.Document, store ContentStore, renderer Renderer, prefs storage.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		doc:       doc,
		store:     store,
		renderer:  renderer,
		prefs:     prefs,
		logger:    logger,
		requested: types.DefaultLang,
		current:   types.DefaultLang,
	}
}

// Detect picks the initial language: a valid persisted preference, else
// the first supported language of locale, else the default.
func (c *Controller) Detect(locale string) types.Lang {
	if saved, ok := c.prefs.Get(types.PrefLang); ok && types.IsSupported(saved) {
		return types.Lang(saved)
	}
	if lang, ok := MatchLocale(locale); ok {
		return lang
	}
	return types.DefaultLang
}

// Load fetches lang and, unless a newer load was requested meanwhile,
// renders it and makes it current. An unsupported lang is replaced by the
// default. The preference is persisted when the load is requested. On
// failure the page keeps showing the previous document.
func (c *Controller) Load(ctx context.Context, lang types.Lang) error {
	lang = types.ParseLang(string(lang))
	token := c.begin(lang)
	defer c.end()

	if err := c.prefs.Set(types.PrefLang, string(lang)); err != nil {
		c.logger.Warn("Failed to persist language", zap.String("lang", string(lang)), zap.Error(err))
	}

	log := c.logger.With(zap.String("load_id", uuid.NewString()), zap.String("lang", string(lang)))
	log.Debug("Loading language", zap.Uint64("token", token))

	data, err := c.store.Load(ctx, lang)
	if err != nil {
		log.Error("Failed to load language", zap.Error(err))
		return err
	}

	var (
		superseded bool
		renderErr  error
	)
	c.doc.Update(func() {
		if c.seq.Load() != token {
			superseded = true
			return
		}
		if renderErr = c.renderer.Render(data); renderErr != nil {
			return
		}
		c.store.SetCurrent(data)
		c.mu.Lock()
		c.current = lang
		c.mu.Unlock()
	})

	switch {
	case superseded:
		log.Debug("Discarding superseded language load", zap.Uint64("token", token))
		return ErrSuperseded
	case renderErr != nil:
		log.Error("Failed to render language", zap.Error(renderErr))
		return renderErr
	}
	log.Info("Language applied")
	return nil
}

// Toggle loads the other supported language, relative to the most
// recently requested one.
func (c *Controller) Toggle(ctx context.Context) error {
	return c.Load(ctx, types.OtherLang(c.Requested()))
}

// Current returns the language of the displayed document.
func (c *Controller) Current() types.Lang {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Requested returns the language of the most recent load request.
func (c *Controller) Requested() types.Lang {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requested
}

// State reports whether any load is in flight.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending > 0 {
		return Loading
	}
	return Idle
}

func (c *Controller) begin(lang types.Lang) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requested = lang
	c.pending++
	return c.seq.Add(1)
}

func (c *Controller) end() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending--
}
