package render

import (
	"github.com/jonathan/portfolio/internal/dom"
)

// DefaultDropdownClass is the dropdown class of the searchable select.
const DefaultDropdownClass = "dark-dropdown"

// SelectedValue returns the value of the explicitly selected option.
func SelectedValue(sel dom.Element) (string, bool) {
	opt, ok := sel.Find("option[selected]")
	if !ok {
		return "", false
	}
	return optionValue(opt), true
}

// Select marks the option with value as selected. It reports false, and
// leaves the select untouched, when no option carries value.
func Select(sel dom.Element, value string) bool {
	options := sel.FindAll("option")
	found := false
	for _, opt := range options {
		if optionValue(opt) == value {
			found = true
			break
		}
	}
	if !found {
		return false
	}
	for _, opt := range options {
		opt.SetFlag("selected", optionValue(opt) == value)
	}
	return true
}

// displayedLabel returns the label shown by a select: the selected option,
// else the first one.
func displayedLabel(sel dom.Element) string {
	if opt, ok := sel.Find("option[selected]"); ok {
		return opt.Text()
	}
	if opt, ok := sel.Find("option"); ok {
		return opt.Text()
	}
	return ""
}

func optionValue(opt dom.Element) string {
	if v, ok := opt.Attr("value"); ok {
		return v
	}
	return opt.Text()
}

// SearchableSelect is the searchable dropdown widget. Enhancing a select
// hides the native control and places the widget container right after
// it, replacing a previous container so that repeated calls converge.
type SearchableSelect struct {
	DropdownClass string
}

const (
	enhancedAttr   = "data-select2-id"
	hiddenClass    = "select2-hidden-accessible"
	containerMatch = "span.select2-container"
)

type containerView struct {
	DropdownClass string
	LabelID       string
	Selected      string
}

// Enhance (re)initializes the widget on sel.
func (s SearchableSelect) Enhance(sel dom.Element) error {
	if stale, ok := sel.Next(containerMatch); ok {
		stale.Remove()
	}

	dropdown := s.DropdownClass
	if dropdown == "" {
		dropdown = DefaultDropdownClass
	}
	out, err := execute("selectContainer", containerView{
		DropdownClass: dropdown,
		LabelID:       "select2-" + sel.ID() + "-container",
		Selected:      displayedLabel(sel),
	})
	if err != nil {
		return err
	}

	sel.AddClass(hiddenClass)
	sel.SetAttr(enhancedAttr, sel.ID())
	sel.SetAttr("aria-hidden", "true")
	sel.After(out)
	return nil
}

// Enhanced reports whether sel carries a live widget.
func Enhanced(sel dom.Element) bool {
	if !sel.HasClass(hiddenClass) {
		return false
	}
	_, ok := sel.Next(containerMatch)
	return ok
}
