package menu

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Item is a link shown inside the navigation menu.
type Item struct {
	ID      string `yaml:"id"`
	Label   string `yaml:"label"`
	Target  string `yaml:"target"`
	Summary string `yaml:"summary"`
}

var ErrNoItems = errors.New("menu: no links defined")

// DefaultItems returns the links used when no links file is configured.
func DefaultItems() []Item {
	return []Item{
		{ID: "home", Label: "Home", Target: "home", Summary: "Welcome. Open the menu to jump between sections of this page."},
		{ID: "about", Label: "About", Target: "about", Summary: "A short introduction: who we are and what we build."},
		{ID: "services", Label: "Services", Target: "services", Summary: "Design, development and maintenance for small teams."},
		{ID: "portfolio", Label: "Portfolio", Target: "portfolio", Summary: "Selected projects from the last few years."},
		{ID: "contact", Label: "Contact", Target: "contact", Summary: "Send us a message and we will get back to you."},
	}
}

// Normalize fills in missing identifiers and targets and validates the list.
// IDs default to a slug of the label and targets default to the ID.
func Normalize(items []Item) ([]Item, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	out := make([]Item, len(items))
	seen := make(map[string]int, len(items))
	for i, item := range items {
		item.Label = strings.TrimSpace(item.Label)
		if item.Label == "" {
			return nil, fmt.Errorf("link %d: label is required", i+1)
		}
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			item.ID = slug(item.Label)
		}
		if prev, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("link %d: duplicate id %q (first used by link %d)", i+1, item.ID, prev+1)
		}
		seen[item.ID] = i
		item.Target = strings.TrimSpace(item.Target)
		if item.Target == "" {
			item.Target = item.ID
		}
		out[i] = item
	}
	return out, nil
}

// CloneItems returns a shallow copy of the provided items slice.
func CloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// slug lowercases label, folds diacritics (é -> e) and joins the remaining
// letter and digit runs with single dashes.
func slug(label string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if folded, _, err := transform.String(fold, label); err == nil {
		label = folded
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(label) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
