//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ContentDocument is the full localized payload describing all page text and structure for one language.
// It is immutable once fetched and replaced wholesale on the next language switch.
type ContentDocument struct {
	Meta               Meta      `json:"meta"`
	ThemeSwitcherTitle string    `json:"themeSwitcherTitle,omitempty"`
	Nav                Nav       `json:"nav"`
	Hero               Hero      `json:"hero"`
	About              About     `json:"about"`
	Expertise          Expertise `json:"expertise"`
	Projects           Projects  `json:"projects"`
	Contact            Contact   `json:"contact"`
	Footer             Footer    `json:"footer"`
	InfoModal          InfoModal `json:"infoModal"`
}

// Meta holds document-level metadata
type Meta struct {
	Lang        string `json:"lang" validate:"required"`
	Description string `json:"description"`
	FlagIcon    string `json:"flagIcon"`
}

// Nav holds the navigation labels and the language toggle presentation
type Nav struct {
	Home            string `json:"home"`
	About           string `json:"about"`
	Expertise       string `json:"expertise"`
	Projects        string `json:"projects"`
	Contact         string `json:"contact"`
	LangToggleFlag  string `json:"langToggleFlag"`
	LangToggleAlt   string `json:"langToggleAlt"`
	LangToggleLabel string `json:"langToggleLabel"`
}

// Hero holds the landing section text
type Hero struct {
	Greeting     string `json:"greeting"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Description  string `json:"description"`
	BtnProjects  string `json:"btnProjects"`
	BtnGitHub    string `json:"btnGitHub"`
	BtnLinkedIn  string `json:"btnLinkedIn"`
	BtnInstagram string `json:"btnInstagram"`
}

// About holds the about section. Paragraphs are trusted HTML fragments.
type About struct {
	SectionTitle string   `json:"sectionTitle"`
	Paragraphs   []string `json:"paragraphs"`
	Stats        []Stat   `json:"stats"`
}

// Stat is a single number/label card in the about section
type Stat struct {
	Number string `json:"number"`
	Label  string `json:"label"`
}

// Expertise holds the services grid
type Expertise struct {
	SectionTitle string        `json:"sectionTitle"`
	Cards        []ServiceCard `json:"cards"`
}

// ServiceCard is one card of the expertise grid
type ServiceCard struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Projects holds the projects section and its subsections
type Projects struct {
	SectionTitle string     `json:"sectionTitle"`
	Intro        string     `json:"intro"`
	Mobile       Subsection `json:"mobile"`
	Web          Subsection `json:"web"`
	Other        Subsection `json:"other"`
	Articles     Subsection `json:"articles"`
	Videos       Subsection `json:"videos"`
}

// Subsection is a titled grid of project cards
type Subsection struct {
	Title string        `json:"title"`
	Items []ProjectItem `json:"items" validate:"dive"`
}

// ProjectItem describes one project card.
// A card with ExternalGroups set (even to an empty list) is a publication card and ignores Desc and Links.
type ProjectItem struct {
	TypeIcon               string      `json:"typeIcon"`
	TypeLabel              string      `json:"typeLabel"`
	Title                  string      `json:"title"`
	Desc                   string      `json:"desc,omitempty"`
	CardClass              string      `json:"cardClass,omitempty"`
	LinksClass             string      `json:"linksClass,omitempty"`
	Links                  []LinkSpec  `json:"links,omitempty" validate:"dive"`
	ExternalGroups         []LinkGroup `json:"externalGroups,omitempty" validate:"dive"`
	PublishedGroups        []LinkGroup `json:"publishedGroups,omitempty" validate:"dive"`
	PublishedArticlesTitle string      `json:"publishedArticlesTitle,omitempty"`
}

// IsPublication reports whether the item renders as a publication card.
func (p ProjectItem) IsPublication() bool {
	return p.ExternalGroups != nil
}

// LinkAction selects the control rendered for a LinkSpec.
// Any value other than video and infoModal renders as an outbound link.
type LinkAction string

const (
	ActionURL       LinkAction = ""
	ActionVideo     LinkAction = "video"
	ActionInfoModal LinkAction = "infoModal"
)

// LinkSpec is a declarative descriptor for one rendered call-to-action
type LinkSpec struct {
	Action  LinkAction `json:"action,omitempty"`
	Href    string     `json:"href,omitempty"`
	VideoID string     `json:"videoId,omitempty" validate:"required_if=Action video"`
	Icon    string     `json:"icon"`
	Label   string     `json:"label,omitempty"`
	Title   string     `json:"title,omitempty"`
	Style   string     `json:"style,omitempty"`
}

// IconOnly reports whether the link has no label.
func (l LinkSpec) IconOnly() bool {
	return l.Label == ""
}

// LinkGroup is a block of plain outbound links on a publication card
type LinkGroup struct {
	Links []GroupLink `json:"links" validate:"dive"`
}

// GroupLink is an outbound link inside a LinkGroup
type GroupLink struct {
	Href  string `json:"href" validate:"required"`
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

// Contact holds the contact section
type Contact struct {
	SectionTitle string      `json:"sectionTitle"`
	InfoTitle    string      `json:"infoTitle"`
	InfoText     string      `json:"infoText"`
	Form         ContactForm `json:"form"`
}

// ContactForm holds form labels, placeholders and the subject options
type ContactForm struct {
	LabelName          string         `json:"labelName"`
	LabelEmail         string         `json:"labelEmail"`
	LabelSubject       string         `json:"labelSubject"`
	LabelMessage       string         `json:"labelMessage"`
	PlaceholderName    string         `json:"placeholderName"`
	PlaceholderEmail   string         `json:"placeholderEmail"`
	PlaceholderMessage string         `json:"placeholderMessage"`
	Options            []SelectOption `json:"options" validate:"dive"`
	CaptchaLang        string         `json:"captchaLang"`
	BtnSubmit          string         `json:"btnSubmit"`
}

// SelectOption is one entry of the subject dropdown
type SelectOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Footer holds the footer text. Copyright is a trusted HTML fragment.
type Footer struct {
	Copyright string `json:"copyright"`
	Version   string `json:"version"`
}

// InfoModal holds the info modal body text
type InfoModal struct {
	Text string `json:"text"`
}

// Validate checks the cross-field rules of the document that the JSON schema cannot express.
func (d *ContentDocument) Validate() error {
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return err
	}
	return nil
}
