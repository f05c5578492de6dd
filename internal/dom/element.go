package dom

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Element is a handle to exactly one node of a Document.
// The zero Element is not valid; lookups report absence with a bool instead.
type Element struct {
	doc *Document
	sel *goquery.Selection
}

// Node returns the underlying HTML node.
func (e Element) Node() *html.Node {
	return e.sel.Get(0)
}

// Is reports whether e and other refer to the same node.
func (e Element) Is(other Element) bool {
	if e.sel == nil || other.sel == nil {
		return false
	}
	return e.Node() == other.Node()
}

// Tag returns the lower-case tag name.
func (e Element) Tag() string {
	return goquery.NodeName(e.sel)
}

// ID returns the id attribute.
func (e Element) ID() string {
	return e.sel.AttrOr("id", "")
}

// Attr returns the named attribute.
func (e Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// AttrOr returns the named attribute or def when absent.
func (e Element) AttrOr(name, def string) string {
	return e.sel.AttrOr(name, def)
}

// SetAttr sets the named attribute.
func (e Element) SetAttr(name, value string) {
	e.sel.SetAttr(name, value)
}

// RemoveAttr removes the named attribute.
func (e Element) RemoveAttr(name string) {
	e.sel.RemoveAttr(name)
}

// SetFlag sets or clears a boolean attribute such as checked or selected.
func (e Element) SetFlag(name string, on bool) {
	if on {
		e.sel.SetAttr(name, name)
		return
	}
	e.sel.RemoveAttr(name)
}

// HasFlag reports whether a boolean attribute is present.
func (e Element) HasFlag(name string) bool {
	_, ok := e.sel.Attr(name)
	return ok
}

// Text returns the combined text of the element and its descendants.
func (e Element) Text() string {
	return e.sel.Text()
}

// SetText replaces the element's children with a single text node.
func (e Element) SetText(text string) {
	e.doc.forgetSubtree(e.Node())
	e.sel.SetText(text)
}

// InnerHTML serializes the element's children.
func (e Element) InnerHTML() (string, error) {
	return e.sel.Html()
}

// OuterHTML serializes the element itself.
func (e Element) OuterHTML() (string, error) {
	return goquery.OuterHtml(e.sel)
}

// SetHTML replaces the element's children with the parsed fragment.
// Listeners bound to the previous children are dropped.
func (e Element) SetHTML(fragment string) {
	e.doc.forgetSubtree(e.Node())
	e.sel.SetHtml(fragment)
}

// Empty removes all children.
func (e Element) Empty() {
	e.doc.forgetSubtree(e.Node())
	e.sel.Empty()
}

// HasClass reports whether the class attribute contains name.
func (e Element) HasClass(name string) bool {
	return e.sel.HasClass(name)
}

// AddClass adds class names.
func (e Element) AddClass(names ...string) {
	e.sel.AddClass(names...)
}

// RemoveClass removes class names.
func (e Element) RemoveClass(names ...string) {
	e.sel.RemoveClass(names...)
}

// ToggleClass flips name and reports whether it is now present.
func (e Element) ToggleClass(name string) bool {
	e.sel.ToggleClass(name)
	return e.sel.HasClass(name)
}

// Find returns the first descendant matching selector.
func (e Element) Find(selector string) (Element, bool) {
	return e.doc.wrap(e.sel.Find(selector).First())
}

// FindAll returns every descendant matching selector.
func (e Element) FindAll(selector string) []Element {
	return e.doc.wrapAll(e.sel.Find(selector))
}

// Matches reports whether the element matches selector.
func (e Element) Matches(selector string) bool {
	return e.sel.Is(selector)
}

// Parent returns the parent element, if it is an element.
func (e Element) Parent() (Element, bool) {
	p := e.Node().Parent
	if p == nil || p.Type != html.ElementNode {
		return Element{}, false
	}
	return e.doc.elementFor(p), true
}

// Next returns the immediately following sibling element if it matches selector.
func (e Element) Next(selector string) (Element, bool) {
	return e.doc.wrap(e.sel.NextFiltered(selector))
}

// After inserts the parsed fragment right after the element.
func (e Element) After(fragment string) {
	e.sel.AfterHtml(fragment)
}

// Remove detaches the element and drops the listeners of its subtree.
func (e Element) Remove() {
	n := e.Node()
	e.doc.lmu.Lock()
	delete(e.doc.listeners, n)
	e.doc.lmu.Unlock()
	e.doc.forgetSubtree(n)
	e.sel.Remove()
}
