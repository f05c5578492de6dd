package render

import (
	"html/template"
	"testing"

	"github.com/jonathan/portfolio/internal/dom"
	"github.com/jonathan/portfolio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fragment parses markup into a throwaway page and returns the wrapper.
func fragment(t *testing.T, markup template.HTML) (*dom.Document, dom.Element) {
	t.Helper()
	page, err := dom.ParseString(`<html><body><div id="wrap">` + string(markup) + `</div></body></html>`)
	require.NoError(t, err)
	var wrap dom.Element
	page.Update(func() {
		var ok bool
		wrap, ok = page.ByID("wrap")
		require.True(t, ok)
	})
	return page, wrap
}

func TestBuildLinks_Video(t *testing.T) {
	out, err := BuildLinks([]types.LinkSpec{
		{Action: types.ActionVideo, VideoID: "abc123", Icon: "fa fa-play", Title: "Watch"},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		assert.Empty(t, wrap.FindAll("a"))
		btn, ok := wrap.Find("button")
		require.True(t, ok)
		assert.False(t, btn.HasFlag("href"))
		assert.Equal(t, "video", btn.AttrOr("data-action", ""))
		assert.Equal(t, "abc123", btn.AttrOr("data-video-id", ""))
		assert.Equal(t, "Watch", btn.AttrOr("title", ""))
		assert.True(t, btn.HasClass("btn-link"))
		_, ok = btn.Find("i.fa-play")
		assert.True(t, ok)
	})
}

func TestBuildLinks_IconOnlyURL(t *testing.T) {
	out, err := BuildLinks([]types.LinkSpec{
		{Href: "https://github.com/example", Icon: "fa fa-github"},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		a, ok := wrap.Find("a")
		require.True(t, ok)
		assert.Equal(t, "https://github.com/example", a.AttrOr("href", ""))
		assert.Equal(t, "_blank", a.AttrOr("target", ""))
		assert.Equal(t, IconOnlyStyle, a.AttrOr("style", ""))
		assert.Equal(t, "#000", a.Style("color"))
		assert.False(t, a.HasFlag("title"))
		assert.Empty(t, a.Text())
	})
}

func TestBuildLinks_UnknownActionIsURL(t *testing.T) {
	out, err := BuildLinks([]types.LinkSpec{
		{Action: "download", Href: "https://example.com/app.apk", Icon: "fa fa-download", Label: "APK"},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		a, ok := wrap.Find("a")
		require.True(t, ok)
		assert.Equal(t, "https://example.com/app.apk", a.AttrOr("href", ""))
		assert.Equal(t, "_blank", a.AttrOr("target", ""))
		assert.False(t, a.HasFlag("data-action"))
	})
}

func TestBuildLinks_StyleRules(t *testing.T) {
	tests := []struct {
		name      string
		link      types.LinkSpec
		wantStyle string
		hasStyle  bool
	}{
		{
			name:     "labeled without style",
			link:     types.LinkSpec{Href: "https://x.example", Icon: "fa fa-link", Label: "Visit"},
			hasStyle: false,
		},
		{
			name:      "explicit style wins over icon-only default",
			link:      types.LinkSpec{Href: "https://x.example", Icon: "fa fa-link", Style: "color:#fff;"},
			wantStyle: "color:#fff;",
			hasStyle:  true,
		},
		{
			name:      "labeled with style",
			link:      types.LinkSpec{Href: "https://x.example", Icon: "fa fa-link", Label: "Visit", Style: "color:#fff;"},
			wantStyle: "color:#fff;",
			hasStyle:  true,
		},
		{
			name:      "icon-only info link",
			link:      types.LinkSpec{Action: types.ActionInfoModal, Icon: "fa fa-info"},
			wantStyle: IconOnlyStyle,
			hasStyle:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := BuildLinks([]types.LinkSpec{tt.link})
			require.NoError(t, err)

			page, wrap := fragment(t, out)
			page.Update(func() {
				a, ok := wrap.Find("a")
				require.True(t, ok)
				style, present := a.Attr("style")
				assert.Equal(t, tt.hasStyle, present)
				assert.Equal(t, tt.wantStyle, style)
			})
		})
	}
}

func TestBuildLinks_InfoModal(t *testing.T) {
	out, err := BuildLinks([]types.LinkSpec{
		{Action: types.ActionInfoModal, Icon: "fa fa-info-circle", Label: "Details", Title: "More"},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		a, ok := wrap.Find("a")
		require.True(t, ok)
		assert.Equal(t, "#", a.AttrOr("href", ""))
		assert.Equal(t, "info-modal", a.AttrOr("data-action", ""))
		assert.False(t, a.HasFlag("target"))
		assert.Equal(t, "Details", a.Text()[1:])
	})
}

func TestBuildLinks_EscapesContent(t *testing.T) {
	out, err := BuildLinks([]types.LinkSpec{
		{Href: "https://x.example/?a=1&b=2", Icon: "fa", Label: `<script>alert(1)</script>`, Title: `"quoted"`},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		assert.Empty(t, wrap.FindAll("script"))
		a, _ := wrap.Find("a")
		assert.Equal(t, "https://x.example/?a=1&b=2", a.AttrOr("href", ""))
		assert.Equal(t, `"quoted"`, a.AttrOr("title", ""))
		assert.Contains(t, a.Text(), "<script>")
	})
}

func TestBuildProjectCard_Standard(t *testing.T) {
	out, err := BuildProjectCard(types.ProjectItem{
		TypeIcon:  "fa fa-mobile",
		TypeLabel: "App",
		Title:     "Planner",
		Desc:      "Planner app.",
		Links: []types.LinkSpec{
			{Href: "https://example.com", Icon: "fa fa-link", Label: "Open"},
		},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		card, ok := wrap.Find("article")
		require.True(t, ok)
		assert.Equal(t, DefaultCardClass, card.AttrOr("class", ""))

		title, _ := card.Find(".project-title")
		assert.Equal(t, "Planner", title.Text())
		desc, _ := card.Find(".project-desc")
		assert.Equal(t, "Planner app.", desc.Text())
		badge, _ := card.Find(".project-type")
		assert.Equal(t, " App", badge.Text())

		links, ok := card.Find("." + DefaultLinksClass)
		require.True(t, ok)
		assert.Len(t, links.FindAll("a.btn-link"), 1)
	})
}

func TestBuildProjectCard_CustomClassesAndNoLinks(t *testing.T) {
	out, err := BuildProjectCard(types.ProjectItem{
		TypeIcon:   "fa",
		TypeLabel:  "CLI",
		Title:      "Tools",
		Desc:       "Utilities.",
		CardClass:  "project-card featured",
		LinksClass: "video-links",
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		card, _ := wrap.Find("article")
		assert.True(t, card.HasClass("featured"))
		assert.Empty(t, card.FindAll(".video-links"))
		assert.Empty(t, card.FindAll(".project-links"))
	})
}

func TestBuildProjectCard_Publication(t *testing.T) {
	out, err := BuildProjectCard(types.ProjectItem{
		TypeIcon:  "fa fa-newspaper-o",
		TypeLabel: "Publications",
		Title:     "External links",
		Desc:      "ignored",
		Links:     []types.LinkSpec{{Href: "https://ignored.example", Icon: "fa"}},
		ExternalGroups: []types.LinkGroup{
			{Links: []types.GroupLink{{Href: "https://medium.com/@x", Icon: "fa fa-medium", Label: "Medium"}}},
		},
		PublishedArticlesTitle: "Published articles",
		PublishedGroups: []types.LinkGroup{
			{Links: []types.GroupLink{
				{Href: "https://dev.to/x/a", Icon: "fa fa-file", Label: "A"},
				{Href: "https://dev.to/x/b", Icon: "fa fa-file", Label: "B"},
			}},
		},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		assert.Empty(t, wrap.FindAll(".project-desc"))
		assert.Empty(t, wrap.FindAll(".btn-link"))

		containers := wrap.FindAll(".external-links-container")
		require.Len(t, containers, 2)
		assert.Len(t, containers[0].FindAll("a.external-link"), 1)
		assert.Len(t, containers[1].FindAll("a.external-link"), 2)

		titles := wrap.FindAll(".project-title")
		require.Len(t, titles, 2)
		assert.Equal(t, "External links", titles[0].Text())
		assert.Equal(t, "Published articles", titles[1].Text())

		link, _ := wrap.Find("a.external-link")
		assert.Equal(t, "_blank", link.AttrOr("target", ""))
		assert.Equal(t, "justify-content:flex-start;text-align:left;", link.AttrOr("style", ""))
	})
}

func TestBuildProjectCard_EmptyExternalGroupsIsPublication(t *testing.T) {
	out, err := BuildProjectCard(types.ProjectItem{
		Title:          "Empty",
		Desc:           "ignored",
		ExternalGroups: []types.LinkGroup{},
	})
	require.NoError(t, err)

	page, wrap := fragment(t, out)
	page.Update(func() {
		assert.Empty(t, wrap.FindAll(".project-desc"))
		assert.Len(t, wrap.FindAll(".project-title"), 2)
	})
}
