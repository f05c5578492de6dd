// Package theme applies one of the enumerated color themes to the document root and persists the choice.
package theme

import (
	"github.com/jonathan/portfolio/internal/dom"
	"github.com/jonathan/portfolio/internal/storage"
	"github.com/jonathan/portfolio/internal/types"
	"go.uber.org/zap"
)

// RadioSelector matches the theme selector controls.
const RadioSelector = `input[name="theme"]`

// Controller owns the theme class of the document root.
type Controller struct {
	doc    *dom.Document
	prefs  storage.Store
	logger *zap.Logger
}

// New creates a theme Controller.
func New(doc *dom.Document, prefs storage.Store, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{doc: doc, prefs: prefs, logger: logger}
}

// Init applies the persisted theme, if it is a known one, and binds the selector controls.
// An unknown stored value leaves the root unthemed.
func (c *Controller) Init() {
	saved, ok := c.prefs.Get(types.PrefTheme)

	c.doc.Update(func() {
		if ok && types.IsTheme(saved) {
			c.apply(types.Theme(saved))
		} else if ok {
			c.logger.Debug("Ignoring unknown stored theme", zap.String("theme", saved))
		}

		for _, radio := range c.doc.QueryAll(RadioSelector) {
			c.doc.On(radio, dom.Change, func(ev *dom.Event) {
				value := ev.Target.AttrOr("value", "")
				if err := c.Select(types.Theme(value)); err != nil {
					c.logger.Warn("Failed to persist theme", zap.String("theme", value), zap.Error(err))
				}
			})
		}
	})
}

// Select makes theme the only enumerated class on the root and persists it.
// Values outside the enumerated set are ignored.
func (c *Controller) Select(theme types.Theme) error {
	if !types.IsTheme(string(theme)) {
		c.logger.Debug("Ignoring unknown theme", zap.String("theme", string(theme)))
		return nil
	}

	c.doc.Update(func() {
		c.apply(theme)
	})
	return c.prefs.Set(types.PrefTheme, string(theme))
}

// Current returns the enumerated theme on the root, or "" when unthemed.
func (c *Controller) Current() types.Theme {
	var current types.Theme
	c.doc.Update(func() {
		root := c.doc.Root()
		for _, t := range types.Themes() {
			if root.HasClass(string(t)) {
				current = t
				return
			}
		}
	})
	return current
}

// apply must run inside Update.
func (c *Controller) apply(theme types.Theme) {
	root := c.doc.Root()
	for _, t := range types.Themes() {
		root.RemoveClass(string(t))
	}
	root.AddClass(string(theme))

	for _, radio := range c.doc.QueryAll(RadioSelector) {
		radio.SetFlag("checked", radio.AttrOr("value", "") == string(theme))
	}
}
