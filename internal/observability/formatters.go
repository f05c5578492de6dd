// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/portfolio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintContentDocument outputs a summary of a loaded language bundle.
func (p *Printer) PrintContentDocument(doc *types.ContentDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Language: %s\n", doc.Meta.Lang))
	sb.WriteString(fmt.Sprintf("Title:    %s\n", doc.Hero.Title))
	if doc.Footer.Version != "" {
		sb.WriteString(fmt.Sprintf("Version:  %s\n", doc.Footer.Version))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("About:     %d paragraphs, %d stats\n", len(doc.About.Paragraphs), len(doc.About.Stats)))
	sb.WriteString(fmt.Sprintf("Expertise: %d cards\n", len(doc.Expertise.Cards)))
	sb.WriteString(fmt.Sprintf("Contact:   %d subject options\n", len(doc.Contact.Form.Options)))
	sb.WriteString("\n")

	sb.WriteString("Projects:\n")
	for _, sub := range []types.Subsection{
		doc.Projects.Mobile, doc.Projects.Web, doc.Projects.Other, doc.Projects.Articles, doc.Projects.Videos,
	} {
		title := sub.Title
		if title == "" {
			title = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("  • %s: %d items\n", title, len(sub.Items)))
		count := min(len(sub.Items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("      - %s\n", sub.Items[i].Title))
		}
		if len(sub.Items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("      ... and %d more\n", len(sub.Items)-maxItemsToShow))
		}
	}

	p.printBox("CONTENT BUNDLE", sb.String())
}

// BundleStatus is the validation outcome of one language bundle.
type BundleStatus struct {
	Lang types.Lang
	Err  error
}

// PrintValidation outputs one line per validated bundle.
func (p *Printer) PrintValidation(statuses []BundleStatus) {
	if len(statuses) == 0 {
		return
	}

	var sb strings.Builder
	failed := 0
	for _, s := range statuses {
		if s.Err != nil {
			failed++
			sb.WriteString(fmt.Sprintf("✗ %s: %v\n", s.Lang, s.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("✓ %s\n", s.Lang))
	}
	sb.WriteString(fmt.Sprintf("\n%d of %d bundles valid\n", len(statuses)-failed, len(statuses)))

	p.printBox("CONTENT VALIDATION", sb.String())
}
