// Package app wires the page controllers together and runs the page load sequence.
package app

import (
	"bytes"
	"context"
	"sync"

	"github.com/jonathan/portfolio/internal/content"
	"github.com/jonathan/portfolio/internal/dom"
	"github.com/jonathan/portfolio/internal/i18n"
	"github.com/jonathan/portfolio/internal/modal"
	"github.com/jonathan/portfolio/internal/nav"
	"github.com/jonathan/portfolio/internal/render"
	"github.com/jonathan/portfolio/internal/storage"
	"github.com/jonathan/portfolio/internal/theme"
	"github.com/jonathan/portfolio/internal/types"
	"go.uber.org/zap"
)

// SubjectSelectID is the select enhanced with the searchable dropdown.
const SubjectSelectID = "subject"

// Options configures a page.
type Options struct {
	// Skeleton is the HTML page the content is applied to.
	Skeleton []byte
	// Source provides the content bundles.
	Source content.Source
	// Prefs persists the language and theme preferences.
	// Defaults to an empty in-memory store.
	Prefs storage.Store
	// DropdownClass is passed to the searchable select widget.
	DropdownClass string
	Logger        *zap.Logger
}

// Page is one loaded page with its controllers.
type Page struct {
	Doc      *dom.Document
	Content  *content.Store
	Theme    *theme.Controller
	Nav      *nav.Controller
	Modals   *modal.Controller
	Renderer *render.Renderer
	Language *i18n.Controller

	enhancer render.SelectEnhancer
	logger   *zap.Logger

	// toggles started from the page itself, such as a click on the language toggle
	wg      sync.WaitGroup
	baseCtx context.Context
	cancel  context.CancelFunc
}

// New parses the skeleton and builds every controller. Nothing is bound
// until Boot runs.
func New(opts Options) (*Page, error) {
	doc, err := dom.Parse(bytes.NewReader(opts.Skeleton))
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	prefs := opts.Prefs
	if prefs == nil {
		prefs = storage.NewMemoryStore(nil)
	}

	p := &Page{
		Doc:      doc,
		Content:  content.NewStore(opts.Source, logger.Named("content")),
		Theme:    theme.New(doc, prefs, logger.Named("theme")),
		Modals:   modal.New(doc, logger.Named("modal")),
		enhancer: render.SearchableSelect{DropdownClass: opts.DropdownClass},
		logger:   logger,
	}
	p.baseCtx, p.cancel = context.WithCancel(context.Background())
	p.Renderer = render.New(doc, p.Modals, p.enhancer, logger.Named("render"))
	p.Language = i18n.New(doc, p.Content, p.Renderer, prefs, logger.Named("i18n"))
	p.Nav = nav.New(doc, p.ToggleLanguage, logger.Named("nav"))
	return p, nil
}

// Boot runs the page load sequence: theme, navigation and modals are
// initialized, the subject select is enhanced, then the detected language
// is loaded and rendered. A failed load is logged and returned; the page
// keeps its skeleton content.
func (p *Page) Boot(ctx context.Context, locale string) error {
	p.Theme.Init()
	p.Nav.Init()
	p.Modals.Init()

	var enhanceErr error
	p.Doc.Update(func() {
		if sel, ok := p.Doc.ByID(SubjectSelectID); ok {
			enhanceErr = p.enhancer.Enhance(sel)
		}
	})
	if enhanceErr != nil {
		p.logger.Warn("Failed to enhance subject select", zap.Error(enhanceErr))
	}

	lang := p.Language.Detect(locale)
	p.logger.Debug("Detected language", zap.String("lang", string(lang)), zap.String("locale", locale))
	return p.Language.Load(ctx, lang)
}

// ToggleLanguage switches language in the background, the way a click on
// the toggle does. Use Wait to join the pending switches.
func (p *Page) ToggleLanguage() {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		// failures are logged by the controller
		_ = p.Language.Toggle(p.baseCtx)
	}()
}

// Wait blocks until every background language switch has finished.
func (p *Page) Wait() {
	p.wg.Wait()
}

// Close cancels background switches and waits for them.
func (p *Page) Close() {
	p.cancel()
	p.wg.Wait()
}

// Click dispatches a click on the first element matching selector. It
// reports false when nothing matches.
func (p *Page) Click(selector string) bool {
	var (
		el dom.Element
		ok bool
	)
	p.Doc.Update(func() { el, ok = p.Doc.Query(selector) })
	if !ok {
		return false
	}
	p.Doc.Dispatch(el, dom.Click)
	return true
}

// SelectTheme changes the theme as the theme selector would.
func (p *Page) SelectTheme(t types.Theme) error {
	return p.Theme.Select(t)
}

// HTML serializes the page.
func (p *Page) HTML() (string, error) {
	return p.Doc.Render()
}
