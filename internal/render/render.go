// Package render maps a content document onto the page skeleton.
//
// Every region step looks its targets up through the dom package and
// silently skips the ones the skeleton does not have. Dynamic lists are
// cleared and rebuilt on every pass, so applying the same document twice
// yields the same markup.
package render

import (
	"fmt"
	"strings"

	"github.com/jonathan/portfolio/internal/dom"
	"github.com/jonathan/portfolio/internal/types"
	"go.uber.org/zap"
)

// Actions receives activations of rendered link controls.
type Actions interface {
	OpenVideo(videoID string)
	OpenInfoModal()
}

// SelectEnhancer (re)initializes the widget attached to a select element.
// It runs inside Document.Update.
type SelectEnhancer interface {
	Enhance(sel dom.Element) error
}

// Subsection containers, in render order.
var subsections = []struct {
	id  string
	get func(types.Projects) types.Subsection
}{
	{"mobile", func(p types.Projects) types.Subsection { return p.Mobile }},
	{"web", func(p types.Projects) types.Subsection { return p.Web }},
	{"other-projects", func(p types.Projects) types.Subsection { return p.Other }},
	{"articles", func(p types.Projects) types.Subsection { return p.Articles }},
	{"videos", func(p types.Projects) types.Subsection { return p.Videos }},
}

// Renderer applies content documents to one page. It holds no content state.
type Renderer struct {
	doc      *dom.Document
	actions  Actions
	enhancer SelectEnhancer
	logger   *zap.Logger
}

// New creates a Renderer. actions and enhancer may be nil.
func New(doc *dom.Document, actions Actions, enhancer SelectEnhancer, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{doc: doc, actions: actions, enhancer: enhancer, logger: logger}
}

// ApplyAll renders every region of data under the document lock.
func (r *Renderer) ApplyAll(data *types.ContentDocument) error {
	var err error
	r.doc.Update(func() {
		err = r.Render(data)
	})
	return err
}

// Render renders every region of data in page order. It must run inside
// Document.Update.
func (r *Renderer) Render(data *types.ContentDocument) error {
	steps := []struct {
		region string
		fn     func(*types.ContentDocument) error
	}{
		{"meta", r.renderMeta},
		{"nav", r.renderNav},
		{"hero", r.renderHero},
		{"about", r.renderAbout},
		{"expertise", r.renderExpertise},
		{"projects", r.renderProjects},
		{"contact", r.renderContact},
		{"footer", r.renderFooter},
		{"infoModal", r.renderInfoModal},
	}
	for _, step := range steps {
		if err := step.fn(data); err != nil {
			return &RenderError{Region: step.region, Message: "failed to apply region", Cause: err}
		}
	}
	r.logger.Debug("Content applied", zap.String("lang", data.Meta.Lang))
	return nil
}

func (r *Renderer) setText(selector, text string) {
	if el, ok := r.doc.Query(selector); ok {
		el.SetText(text)
	}
}

func (r *Renderer) setAttr(selector, name, value string) {
	if el, ok := r.doc.Query(selector); ok {
		el.SetAttr(name, value)
	}
}

// setMarkup executes the named template into the first match of selector.
func (r *Renderer) setMarkup(selector, name string, data any) (dom.Element, bool, error) {
	el, ok := r.doc.Query(selector)
	if !ok {
		return dom.Element{}, false, nil
	}
	out, err := execute(name, data)
	if err != nil {
		return dom.Element{}, false, err
	}
	el.SetHTML(out)
	return el, true, nil
}

func (r *Renderer) renderMeta(data *types.ContentDocument) error {
	r.doc.Root().SetAttr("lang", data.Meta.Lang)
	r.setAttr(`meta[name="description"]`, "content", data.Meta.Description)
	r.setAttr("#favicon", "href", data.Meta.FlagIcon)
	return nil
}

func (r *Renderer) renderNav(data *types.ContentDocument) error {
	n := data.Nav
	r.setText("#nav-home", n.Home)
	r.setText("#nav-about", n.About)
	r.setText("#nav-expertise", n.Expertise)
	r.setText("#nav-projects", n.Projects)
	r.setText("#nav-contact", n.Contact)
	r.setAttr(".theme-switcher", "title", data.ThemeSwitcherTitle)

	_, _, err := r.setMarkup("#langToggle", "langToggle", langToggleView{
		Flag:  n.LangToggleFlag,
		Alt:   n.LangToggleAlt,
		Label: trusted(n.LangToggleLabel),
	})
	return err
}

func (r *Renderer) renderHero(data *types.ContentDocument) error {
	h := data.Hero
	r.setText(".hero-greeting", h.Greeting)
	if _, _, err := r.setMarkup(".hero-content h1", "heroTitle", heroTitleView{
		Title:    trusted(h.Title),
		Subtitle: trusted(h.Subtitle),
	}); err != nil {
		return err
	}
	r.setText(".hero-content > p", h.Description)
	r.setText("#btn-projects", h.BtnProjects)
	r.setText("#btn-github", h.BtnGitHub)
	r.setText("#btn-linkedin", h.BtnLinkedIn)
	r.setText("#btn-instagram", h.BtnInstagram)
	return nil
}

func (r *Renderer) renderAbout(data *types.ContentDocument) error {
	a := data.About
	r.setText("#about .section-title", a.SectionTitle)
	if _, _, err := r.setMarkup("#about .about-text", "paragraphs", trustedParagraphs(a.Paragraphs)); err != nil {
		return err
	}
	_, _, err := r.setMarkup("#about .stats-grid", "stats", a.Stats)
	return err
}

func (r *Renderer) renderExpertise(data *types.ContentDocument) error {
	e := data.Expertise
	r.setText("#expertise .section-title", e.SectionTitle)
	_, _, err := r.setMarkup("#expertise .services-grid", "services", e.Cards)
	return err
}

func (r *Renderer) renderProjects(data *types.ContentDocument) error {
	p := data.Projects
	r.setText("#projects > .container > .section-title", p.SectionTitle)
	r.setText("#projects .about-text p", p.Intro)

	for _, sub := range subsections {
		if err := r.renderSubsection(sub.get(p), sub.id); err != nil {
			return fmt.Errorf("subsection %s: %w", sub.id, err)
		}
	}
	return nil
}

func (r *Renderer) renderSubsection(sub types.Subsection, containerID string) error {
	r.setText(fmt.Sprintf("#%s .section-title", containerID), sub.Title)

	grid, ok := r.doc.Query(fmt.Sprintf("#%s .portfolio-grid", containerID))
	if !ok {
		return nil
	}

	var sb strings.Builder
	for _, item := range sub.Items {
		card, err := BuildProjectCard(item)
		if err != nil {
			return err
		}
		sb.WriteString(string(card))
	}
	grid.SetHTML(sb.String())
	r.BindActions(grid)
	return nil
}

// BindActions wires the link controls below container to the Actions.
// It must run inside Document.Update.
func (r *Renderer) BindActions(container dom.Element) {
	if r.actions == nil {
		return
	}
	for _, el := range container.FindAll("[data-action]") {
		switch el.AttrOr("data-action", "") {
		case "video":
			videoID := el.AttrOr("data-video-id", "")
			r.doc.On(el, dom.Click, func(ev *dom.Event) {
				ev.PreventDefault()
				r.actions.OpenVideo(videoID)
			})
		case "info-modal":
			r.doc.On(el, dom.Click, func(ev *dom.Event) {
				ev.PreventDefault()
				r.actions.OpenInfoModal()
			})
		}
	}
}

func (r *Renderer) renderContact(data *types.ContentDocument) error {
	c := data.Contact
	f := c.Form

	r.setText("#contact .section-title", c.SectionTitle)
	r.setText("#contact-info-title", c.InfoTitle)
	r.setText("#contact-info-text", c.InfoText)

	r.setText("#label-name", f.LabelName)
	r.setText("#label-email", f.LabelEmail)
	r.setText("#label-subject", f.LabelSubject)
	r.setText("#label-message", f.LabelMessage)

	r.setAttr("#name", "placeholder", f.PlaceholderName)
	r.setAttr("#email", "placeholder", f.PlaceholderEmail)
	r.setAttr("#message", "placeholder", f.PlaceholderMessage)

	if sel, ok := r.doc.ByID("subject"); ok {
		previous, hadSelection := SelectedValue(sel)
		out, err := execute("options", f.Options)
		if err != nil {
			return err
		}
		sel.SetHTML(out)
		if hadSelection {
			Select(sel, previous)
		}
		if r.enhancer != nil {
			if err := r.enhancer.Enhance(sel); err != nil {
				return err
			}
		}
	}

	r.setAttr(".h-captcha", "data-lang", f.CaptchaLang)
	_, _, err := r.setMarkup("#btn-submit", "submit", f.BtnSubmit)
	return err
}

func (r *Renderer) renderFooter(data *types.ContentDocument) error {
	if el, ok := r.doc.ByID("footer-copyright"); ok {
		el.SetHTML(data.Footer.Copyright)
	}
	r.setText("#footer-version", data.Footer.Version)
	return nil
}

func (r *Renderer) renderInfoModal(data *types.ContentDocument) error {
	r.setText("#infoModalText", data.InfoModal.Text)
	return nil
}
