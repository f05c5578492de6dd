// Package dom provides a typed access layer over an in-memory HTML document.
//
// Lookups return an optional handle: callers receive (Element, bool) and must
// handle absence explicitly. The document is single-writer: every mutation
// runs inside Update, which plays the role of the browser event loop.
// Listeners registered with On and OnWindow are invoked by Dispatch outside
// that lock, so they are free to call Update themselves.
package dom

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document is a parsed HTML page plus its event listener registry.
type Document struct {
	mu  sync.Mutex
	doc *goquery.Document

	lmu       sync.Mutex
	listeners map[*html.Node]map[string][]Listener
	window    map[string][]Listener
}

// Parse reads an HTML page from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Message: "failed to parse HTML", Cause: err}
	}
	return &Document{
		doc:       doc,
		listeners: make(map[*html.Node]map[string][]Listener),
		window:    make(map[string][]Listener),
	}, nil
}

// ParseString parses an HTML page held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Update runs fn while holding the document lock. All reads and writes of
// elements must happen inside fn. Update must not be called from inside fn.
func (d *Document) Update(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// Root returns the document element (<html>).
func (d *Document) Root() Element {
	el, ok := d.Query("html")
	if !ok {
		// the HTML parser always synthesizes <html>
		panic("dom: document has no root element")
	}
	return el
}

// Query returns the first element matching selector.
func (d *Document) Query(selector string) (Element, bool) {
	return d.wrap(d.doc.Find(selector).First())
}

// QueryAll returns every element matching selector, in document order.
func (d *Document) QueryAll(selector string) []Element {
	return d.wrapAll(d.doc.Find(selector))
}

// ByID returns the element with the given id.
func (d *Document) ByID(id string) (Element, bool) {
	return d.Query("#" + id)
}

// Render serializes the whole document, doctype included.
func (d *Document) Render() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.renderLocked()
}

func (d *Document) renderLocked() (string, error) {
	var sb strings.Builder
	for _, n := range d.doc.Nodes {
		if err := html.Render(&sb, n); err != nil {
			return "", fmt.Errorf("failed to render document: %w", err)
		}
	}
	return sb.String(), nil
}

// ListenerCount reports how many element listeners are registered.
func (d *Document) ListenerCount() int {
	d.lmu.Lock()
	defer d.lmu.Unlock()
	count := 0
	for _, byType := range d.listeners {
		for _, fns := range byType {
			count += len(fns)
		}
	}
	return count
}

func (d *Document) wrap(sel *goquery.Selection) (Element, bool) {
	if sel == nil || sel.Length() == 0 {
		return Element{}, false
	}
	return Element{doc: d, sel: sel.First()}, true
}

func (d *Document) wrapAll(sel *goquery.Selection) []Element {
	elements := make([]Element, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		elements = append(elements, Element{doc: d, sel: s})
	})
	return elements
}

// elementFor wraps n, which may already be detached from the tree.
func (d *Document) elementFor(n *html.Node) Element {
	sel := d.doc.FindNodes(n)
	if sel.Length() == 0 {
		sel = goquery.NewDocumentFromNode(n).Selection
	}
	return Element{doc: d, sel: sel}
}

// forgetSubtree drops listeners bound to the descendants of n, which are
// about to be detached from the tree.
func (d *Document) forgetSubtree(n *html.Node) {
	d.lmu.Lock()
	defer d.lmu.Unlock()
	if len(d.listeners) == 0 {
		return
	}
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			delete(d.listeners, c)
			walk(c)
		}
	}
	walk(n)
}
