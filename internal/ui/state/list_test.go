package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/navmenu/internal/menu"
)

func newTestList(ids ...string) *List {
	items := make([]menu.Item, len(ids))
	for i, id := range ids {
		items[i] = menu.Item{ID: id, Label: id}
	}
	return NewList(items)
}

func TestMoveWraps(t *testing.T) {
	l := newTestList("a", "b", "c")
	assert.True(t, l.MoveUp())
	assert.Equal(t, 2, l.Cursor)
	assert.True(t, l.MoveDown())
	assert.Equal(t, 0, l.Cursor)

	single := newTestList("a")
	assert.False(t, single.MoveDown())
	assert.False(t, single.MoveUp())

	empty := newTestList()
	assert.False(t, empty.MoveDown())
	_, ok := empty.Current()
	assert.False(t, ok)
}

func TestHomeEnd(t *testing.T) {
	l := newTestList("a", "b", "c")
	assert.True(t, l.MoveEnd())
	assert.False(t, l.MoveEnd())
	assert.True(t, l.MoveHome())
	assert.False(t, l.MoveHome())

	empty := newTestList()
	empty.Cursor = 4
	assert.False(t, empty.MoveHome())
	assert.Equal(t, 0, empty.Cursor)
}

func TestSetCursorAndAt(t *testing.T) {
	l := newTestList("a", "b")
	assert.False(t, l.SetCursor(0))
	assert.True(t, l.SetCursor(1))
	assert.False(t, l.SetCursor(5))
	item, ok := l.At(1)
	require.True(t, ok)
	assert.Equal(t, "b", item.ID)
	_, ok = l.At(-1)
	assert.False(t, ok)
}

func TestReplaceKeepsCursorByID(t *testing.T) {
	l := newTestList("a", "b", "c")
	l.Cursor = 1
	l.Replace([]menu.Item{{ID: "z"}, {ID: "a"}, {ID: "b"}})
	assert.Equal(t, 2, l.Cursor)

	l.Replace([]menu.Item{{ID: "x"}})
	assert.Equal(t, 0, l.Cursor)
}

func TestQuery(t *testing.T) {
	l := NewList(menu.DefaultItems())
	assert.Equal(t, 3, l.AppendQuery("po"))
	assert.Equal(t, 3, l.Cursor)
	assert.Equal(t, -1, l.AppendQuery("qqq"))
	assert.Equal(t, 3, l.Cursor, "no match keeps cursor")

	for l.TrimQuery() {
	}
	assert.Equal(t, "", l.Query)
	assert.False(t, l.ClearQuery())

	l.AppendQuery("c")
	assert.True(t, l.ClearQuery())
	assert.Empty(t, l.Query)
}

func TestViewport(t *testing.T) {
	v := Viewport{}
	v.Resize(30, 10)
	assert.True(t, v.ScrollBy(5))
	assert.Equal(t, 5, v.Offset)
	assert.True(t, v.ScrollBy(100))
	assert.Equal(t, 20, v.Offset)
	assert.False(t, v.ScrollBy(1))
	assert.True(t, v.ScrollTo(-4))
	assert.Equal(t, 0, v.Offset)

	v.Offset = 20
	v.Resize(12, 10)
	assert.Equal(t, 2, v.Offset)

	short := Viewport{}
	short.Resize(3, 10)
	assert.False(t, short.ScrollBy(2))
}
