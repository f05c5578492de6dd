package render

import (
	"embed"
	"html/template"
	"strings"
	"sync"

	"github.com/jonathan/portfolio/internal/types"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// IconOnlyStyle is applied to links without a label and without an explicit style.
const IconOnlyStyle = "color:#000;"

// Default classes of a standard project card.
const (
	DefaultCardClass  = "project-card"
	DefaultLinksClass = "project-links"
)

var (
	parseOnce sync.Once
	markup    *template.Template
	parseErr  error
)

func templates() (*template.Template, error) {
	parseOnce.Do(func() {
		markup, parseErr = template.New("render").ParseFS(templateFS, "templates/*.tmpl")
	})
	if parseErr != nil {
		return nil, &TemplateError{Name: "templates", Message: "failed to parse templates", Cause: parseErr}
	}
	return markup, nil
}

func execute(name string, data any) (string, error) {
	tmpl, err := templates()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, name, data); err != nil {
		return "", &TemplateError{Name: name, Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// linkView is the template input for one link control.
type linkView struct {
	Kind    string
	Href    string
	VideoID string
	Icon    string
	Label   string
	Title   string
	Style   template.CSS
}

// heroTitleView is the template input for the hero heading.
type heroTitleView struct {
	Title    template.HTML
	Subtitle template.HTML
}

// langToggleView is the template input for the language toggle.
type langToggleView struct {
	Flag  string
	Alt   string
	Label template.HTML
}

// cardView is the template input for one project card.
type cardView struct {
	CardClass  string
	LinksClass string
	TypeIcon   string
	TypeLabel  string
	Title      string
	Desc       string
	Links      template.HTML

	Publication    bool
	External       []types.LinkGroup
	Published      []types.LinkGroup
	PublishedTitle string
}

// linkStyle returns the inline style of a link: the explicit one, the
// fixed icon-only color, or none.
func linkStyle(l types.LinkSpec) string {
	if l.Style != "" {
		return l.Style
	}
	if l.IconOnly() {
		return IconOnlyStyle
	}
	return ""
}

// BuildLinks renders one control per link. Video links become buttons
// carrying their video id; info links become anchors that open the info
// modal; everything else is an outbound anchor opened in a new tab.
// The controls are inert until bound with BindActions.
func BuildLinks(links []types.LinkSpec) (template.HTML, error) {
	views := make([]linkView, 0, len(links))
	for _, l := range links {
		views = append(views, linkView{
			Kind:    string(l.Action),
			Href:    l.Href,
			VideoID: l.VideoID,
			Icon:    l.Icon,
			Label:   l.Label,
			Title:   l.Title,
			//nolint:gosec // styles come from the trusted content bundle
			Style: template.CSS(linkStyle(l)),
		})
	}
	out, err := execute("links", views)
	if err != nil {
		return "", err
	}
	//nolint:gosec // produced by html/template
	return template.HTML(out), nil
}

// BuildProjectCard renders a project card. Items with external groups
// render as publication cards and ignore their description and links.
func BuildProjectCard(item types.ProjectItem) (template.HTML, error) {
	view := cardView{
		CardClass:  item.CardClass,
		LinksClass: item.LinksClass,
		TypeIcon:   item.TypeIcon,
		TypeLabel:  item.TypeLabel,
		Title:      item.Title,
	}
	if view.CardClass == "" {
		view.CardClass = DefaultCardClass
	}
	if view.LinksClass == "" {
		view.LinksClass = DefaultLinksClass
	}

	if item.IsPublication() {
		view.Publication = true
		view.External = item.ExternalGroups
		view.Published = item.PublishedGroups
		view.PublishedTitle = item.PublishedArticlesTitle
	} else {
		view.Desc = item.Desc
		if len(item.Links) > 0 {
			links, err := BuildLinks(item.Links)
			if err != nil {
				return "", err
			}
			view.Links = links
		}
	}

	out, err := execute("card", view)
	if err != nil {
		return "", err
	}
	//nolint:gosec // produced by html/template
	return template.HTML(out), nil
}

// trusted marks a bundle field as HTML. Only fields that carry inline
// markup or entities in the bundle go through here.
func trusted(s string) template.HTML {
	//nolint:gosec // the content bundle is first-party
	return template.HTML(s)
}

// trustedParagraphs marks about paragraphs as HTML; they may carry inline markup.
func trustedParagraphs(paragraphs []string) []template.HTML {
	out := make([]template.HTML, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = trusted(p)
	}
	return out
}
