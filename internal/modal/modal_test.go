package modal

import (
	"testing"

	"github.com/jonathan/portfolio/internal/dom"
	"github.com/jonathan/portfolio/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPage(t *testing.T) (*dom.Document, *Controller) {
	t.Helper()
	skeleton, err := web.FS.ReadFile(web.SkeletonPath)
	require.NoError(t, err)
	doc, err := dom.ParseString(string(skeleton))
	require.NoError(t, err)

	c := New(doc, nil)
	c.Init()
	return doc, c
}

func element(t *testing.T, doc *dom.Document, selector string) dom.Element {
	t.Helper()
	var el dom.Element
	var ok bool
	doc.Update(func() { el, ok = doc.Query(selector) })
	require.True(t, ok, "missing %s", selector)
	return el
}

func TestEmbedURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/embed/abc123?autoplay=1", EmbedURL("abc123"))
}

func TestVideoLifecycle(t *testing.T) {
	_, c := newPage(t)

	assert.False(t, c.VideoOpen())
	assert.Empty(t, c.VideoSource())

	c.OpenVideo("abc123")
	assert.True(t, c.VideoOpen())
	assert.Contains(t, c.VideoSource(), "abc123")
	assert.Contains(t, c.VideoSource(), "autoplay=1")

	c.CloseVideo()
	assert.False(t, c.VideoOpen())
	assert.Empty(t, c.VideoSource())
}

func TestInfoModalLifecycle(t *testing.T) {
	_, c := newPage(t)

	assert.False(t, c.InfoOpen())
	c.OpenInfoModal()
	assert.True(t, c.InfoOpen())
	assert.False(t, c.VideoOpen(), "modals are independent")
	c.CloseInfoModal()
	assert.False(t, c.InfoOpen())
}

func TestBackdropClickClosesOnlyThatModal(t *testing.T) {
	doc, c := newPage(t)

	c.OpenVideo("abc123")
	c.OpenInfoModal()

	doc.Dispatch(element(t, doc, "#videoModal"), dom.Click)
	assert.False(t, c.VideoOpen())
	assert.Empty(t, c.VideoSource())
	assert.True(t, c.InfoOpen())

	doc.Dispatch(element(t, doc, "#infoModal"), dom.Click)
	assert.False(t, c.InfoOpen())
}

func TestClickInsideContentDoesNotClose(t *testing.T) {
	doc, c := newPage(t)

	c.OpenVideo("abc123")
	doc.Dispatch(element(t, doc, "#videoModal .modal-content"), dom.Click)
	assert.True(t, c.VideoOpen())

	c.OpenInfoModal()
	doc.Dispatch(element(t, doc, "#infoModalText"), dom.Click)
	assert.True(t, c.InfoOpen())
}

func TestCloseButtons(t *testing.T) {
	doc, c := newPage(t)

	c.OpenVideo("abc123")
	doc.Dispatch(element(t, doc, "#videoModal .close"), dom.Click)
	assert.False(t, c.VideoOpen())
	assert.Empty(t, c.VideoSource())

	c.OpenInfoModal()
	doc.Dispatch(element(t, doc, "#infoModal .close"), dom.Click)
	assert.False(t, c.InfoOpen())
}

func TestInitResetsModalsToClosed(t *testing.T) {
	doc, err := dom.ParseString(`<html><body>
<div id="videoModal" style="display:flex;"><iframe id="videoFrame" src="https://www.youtube.com/embed/x?autoplay=1"></iframe></div>
<div id="infoModal" style="display:flex;"></div>
</body></html>`)
	require.NoError(t, err)

	c := New(doc, nil)
	c.Init()
	assert.False(t, c.VideoOpen())
	assert.Empty(t, c.VideoSource())
	assert.False(t, c.InfoOpen())
}

func TestMissingMarkupIsIgnored(t *testing.T) {
	doc, err := dom.ParseString(`<html><body><p>no modals</p></body></html>`)
	require.NoError(t, err)

	c := New(doc, nil)
	c.Init()

	assert.NotPanics(t, func() {
		c.OpenVideo("abc123")
		c.CloseVideo()
		c.OpenInfoModal()
		c.CloseInfoModal()
	})
	assert.False(t, c.VideoOpen())
	assert.False(t, c.InfoOpen())
	assert.Empty(t, c.VideoSource())
}
