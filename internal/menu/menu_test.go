package menu

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	items, err := Normalize([]Item{
		{Label: "  Our Work & Clients "},
		{ID: "mail", Label: "Contact"},
		{Label: "Blog", Target: "https://example.com/blog"},
	})
	require.NoError(t, err)
	assert.Equal(t, "our-work-clients", items[0].ID)
	assert.Equal(t, "Our Work & Clients", items[0].Label)
	assert.Equal(t, "our-work-clients", items[0].Target)
	assert.Equal(t, "mail", items[1].Target)
	assert.Equal(t, "https://example.com/blog", items[2].Target)
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"About Us":        "about-us",
		"  Café Société ": "cafe-societe",
		"Q&A / FAQ!":      "q-a-faq",
		"Año 2024":        "ano-2024",
		"---":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug(in), "slug(%q)", in)
	}
}

func TestNormalizeRejectsInvalid(t *testing.T) {
	_, err := Normalize(nil)
	assert.ErrorIs(t, err, ErrNoItems)

	_, err = Normalize([]Item{{Label: "A"}, {Label: " "}})
	assert.ErrorContains(t, err, "link 2: label is required")

	_, err = Normalize([]Item{{Label: "About"}, {ID: "about", Label: "Again"}})
	assert.ErrorContains(t, err, `duplicate id "about"`)
}

func TestDefaultItemsAreValid(t *testing.T) {
	items, err := Normalize(DefaultItems())
	require.NoError(t, err)
	assert.Equal(t, DefaultItems(), items)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "links.yaml")
	doc := "links:\n  - label: Home\n  - label: Contact Us\n    summary: Write to us.\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	items, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "contact-us", items[1].ID)
	assert.Equal(t, "Write to us.", items[1].Summary)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "read links file")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("links:\n  - label: Home\n    colour: red\n"))
	assert.ErrorContains(t, err, "parse links file")
}

func TestBuildPageSections(t *testing.T) {
	items := DefaultItems()
	page := BuildPage(items)
	line, ok := page.Section("home")
	require.True(t, ok)
	assert.Equal(t, 0, line)

	line, ok = page.Section("services")
	require.True(t, ok)
	assert.Equal(t, "# Services", page.Lines[line])

	_, ok = page.Section("nowhere")
	assert.False(t, ok)
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrap("aaa bbb ccc", 7))
	assert.Nil(t, wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one\n  two\tthree", 8))
}

func TestWrapMeasuresCellsNotBytes(t *testing.T) {
	summary := strings.TrimSpace(strings.Repeat("été ", 15))
	require.Greater(t, len(summary), 60)

	assert.Equal(t, []string{summary}, wrap(summary, 60))

	page := BuildPage([]Item{{ID: "fr", Label: "Français", Target: "fr", Summary: summary}})
	require.Len(t, page.Lines, 1+1+sectionPadding)
	assert.Equal(t, summary, page.Lines[1])
}

func TestMatch(t *testing.T) {
	items := DefaultItems()
	assert.Equal(t, 3, Match(items, "port"))
	assert.Equal(t, 4, Match(items, "CNT"))
	assert.Equal(t, -1, Match(items, "zzz"))
	assert.Equal(t, -1, Match(items, ""))
	assert.Equal(t, -1, Match(nil, "home"))
}
