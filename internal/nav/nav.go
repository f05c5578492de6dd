// Package nav wires the mobile navigation menu and the language toggle actuator.
package nav

import (
	"github.com/jonathan/portfolio/internal/dom"
	"go.uber.org/zap"
)

// Selectors of the navigation contract.
const (
	HamburgerID  = "hamburgerBtn"
	NavLinksID   = "navLinks"
	LangToggleID = "langToggle"
	OpenClass    = "open"
)

// Controller handles the presentational state of the navigation bar.
type Controller struct {
	doc      *dom.Document
	onToggle func()
	logger   *zap.Logger
}

// New creates a Controller. onToggle runs when the language toggle is
// activated and may be nil.
func New(doc *dom.Document, onToggle func(), logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{doc: doc, onToggle: onToggle, logger: logger}
}

// Init binds the menu toggle, close-on-select and language toggle behaviors.
func (c *Controller) Init() {
	c.doc.Update(func() {
		links, hasLinks := c.doc.ByID(NavLinksID)

		if btn, ok := c.doc.ByID(HamburgerID); ok && hasLinks {
			c.doc.On(btn, dom.Click, func(*dom.Event) {
				c.doc.Update(func() { links.ToggleClass(OpenClass) })
			})
		}

		if hasLinks {
			for _, a := range links.FindAll("a") {
				c.doc.On(a, dom.Click, func(*dom.Event) {
					c.doc.Update(func() { links.RemoveClass(OpenClass) })
				})
			}
		}

		if toggle, ok := c.doc.ByID(LangToggleID); ok {
			c.doc.On(toggle, dom.Click, func(ev *dom.Event) {
				ev.PreventDefault()
				if c.onToggle != nil {
					c.onToggle()
				}
			})
		}
	})
	c.logger.Debug("Navigation initialized")
}

// IsOpen reports whether the mobile menu is expanded.
func (c *Controller) IsOpen() bool {
	var open bool
	c.doc.Update(func() {
		if links, ok := c.doc.ByID(NavLinksID); ok {
			open = links.HasClass(OpenClass)
		}
	})
	return open
}
