package menu

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Page is the scrollable body behind the menu: one section per link.
type Page struct {
	Lines    []string
	sections map[string]int
}

const sectionPadding = 6

// BuildPage lays out a heading, the summary, and filler rows for each item so
// every section occupies several lines.
func BuildPage(items []Item) Page {
	p := Page{sections: make(map[string]int, len(items))}
	for _, item := range items {
		if _, ok := p.sections[item.Target]; !ok {
			p.sections[item.Target] = len(p.Lines)
		}
		p.Lines = append(p.Lines, "# "+item.Label)
		if item.Summary != "" {
			p.Lines = append(p.Lines, wrap(item.Summary, 60)...)
		}
		for i := 0; i < sectionPadding; i++ {
			p.Lines = append(p.Lines, "")
		}
	}
	return p
}

// Section returns the first line of the section for target.
func (p Page) Section(target string) (int, bool) {
	line, ok := p.sections[target]
	return line, ok
}

// wrap reflows text to width display cells. Runs of whitespace, including
// newlines from the links file, collapse to single spaces first.
func wrap(text string, width int) []string {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}
	return strings.Split(wordwrap.String(text, width), "\n")
}
