package state

import (
	"github.com/atomicstack/navmenu/internal/menu"
)

// List tracks the link entries, the highlighted link and the quick-jump query.
type List struct {
	Items  []menu.Item
	Cursor int
	Query  string
}

// NewList constructs a List with the cursor on the first item.
func NewList(items []menu.Item) *List {
	return &List{Items: menu.CloneItems(items)}
}

// Len returns the number of links.
func (l *List) Len() int {
	return len(l.Items)
}

// Current returns the highlighted link.
func (l *List) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// At returns the link at index i.
func (l *List) At(i int) (menu.Item, bool) {
	if i < 0 || i >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[i], true
}

// Replace swaps in a new set of links, keeping the cursor on the same link
// ID when it still exists.
func (l *List) Replace(items []menu.Item) {
	var keep string
	if cur, ok := l.Current(); ok {
		keep = cur.ID
	}
	l.Items = menu.CloneItems(items)
	l.Cursor = 0
	for i, item := range l.Items {
		if item.ID == keep {
			l.Cursor = i
			break
		}
	}
}

// SetCursor moves the cursor to i when it is in range.
func (l *List) SetCursor(i int) bool {
	if i < 0 || i >= len(l.Items) || i == l.Cursor {
		return false
	}
	l.Cursor = i
	return true
}

// MoveUp moves the cursor up, wrapping to the last link.
func (l *List) MoveUp() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	if l.Cursor > 0 {
		l.Cursor--
	} else {
		l.Cursor = n - 1
	}
	return old != l.Cursor
}

// MoveDown moves the cursor down, wrapping to the first link.
func (l *List) MoveDown() bool {
	n := len(l.Items)
	if n == 0 {
		return false
	}
	old := l.Cursor
	if l.Cursor < n-1 {
		l.Cursor++
	} else {
		l.Cursor = 0
	}
	return old != l.Cursor
}

// MoveHome moves the cursor to the first link.
func (l *List) MoveHome() bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = 0
	return old != l.Cursor
}

// MoveEnd moves the cursor to the last link.
func (l *List) MoveEnd() bool {
	n := len(l.Items)
	if n == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = n - 1
	return old != l.Cursor
}

// AppendQuery extends the quick-jump query and moves the cursor to the best
// match. It returns the matched index, or -1 when nothing matches.
func (l *List) AppendQuery(text string) int {
	l.Query += text
	return l.rematch()
}

// TrimQuery removes the last rune of the query. It reports false when the
// query was already empty.
func (l *List) TrimQuery() bool {
	if l.Query == "" {
		return false
	}
	runes := []rune(l.Query)
	l.Query = string(runes[:len(runes)-1])
	l.rematch()
	return true
}

// ClearQuery drops the quick-jump query.
func (l *List) ClearQuery() bool {
	if l.Query == "" {
		return false
	}
	l.Query = ""
	return true
}

func (l *List) rematch() int {
	idx := menu.Match(l.Items, l.Query)
	if idx >= 0 {
		l.Cursor = idx
	}
	return idx
}
