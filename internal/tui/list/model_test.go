package listview

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/vlist/internal/virtuallist"
)

func renderIndex(index, _ int) string {
	return fmt.Sprintf("item %d", index)
}

// newTestModel returns a model over n one-row items in a 40x11 terminal
// (ten list rows plus the status line).
func newTestModel(n int, opts ...Option) *Model {
	list := virtuallist.New().Items(n).FixedHeight(1).Overscan(0)
	m := New(list, renderIndex, opts...)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})
	return m
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(100)

	assert.Equal(t, 40, m.Width())
	assert.Equal(t, 11, m.Height())
	assert.InDelta(t, 10, m.List().Viewport(), 0.001)
	assert.Equal(t, virtuallist.NewVisibleRange(0, 11), m.List().VisibleRange())
}

func TestModel_CursorNavigation(t *testing.T) {
	m := newTestModel(100)

	for range 15 {
		m.Update(keyPress(tea.KeyDown))
	}
	assert.Equal(t, 15, m.Cursor())
	assert.InDelta(t, 6, m.List().ScrollOffset(), 0.001, "cursor row is kept at the bottom edge")

	m.Update(runeKey('k'))
	assert.Equal(t, 14, m.Cursor())

	m.Update(runeKey('j'))
	m.Update(runeKey('j'))
	assert.Equal(t, 16, m.Cursor())
	assert.InDelta(t, 7, m.List().ScrollOffset(), 0.001)

	m.Update(keyPress(tea.KeyEnd))
	assert.Equal(t, 99, m.Cursor())
	assert.True(t, m.List().IsAtBottom())

	m.Update(keyPress(tea.KeyDown))
	assert.Equal(t, 99, m.Cursor(), "cursor is clamped")

	m.Update(keyPress(tea.KeyHome))
	assert.Equal(t, 0, m.Cursor())
	assert.True(t, m.List().IsAtTop())
}

func TestModel_PageKeys(t *testing.T) {
	m := newTestModel(100)

	m.Update(keyPress(tea.KeyPgDown))
	assert.Equal(t, 9, m.Cursor())
	assert.InDelta(t, 9, m.List().ScrollOffset(), 0.001)

	m.Update(keyPress(tea.KeyPgUp))
	assert.Equal(t, 0, m.Cursor())
	assert.InDelta(t, 0, m.List().ScrollOffset(), 0.001)
}

func TestModel_MouseWheel(t *testing.T) {
	m := newTestModel(100)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.InDelta(t, 3, m.List().ScrollOffset(), 0.001)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.InDelta(t, 3, m.List().ScrollOffset(), 0.001)

	m.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelDown})
	assert.InDelta(t, 3, m.List().ScrollOffset(), 0.001, "releases are ignored")
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(10)

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_PullToRefresh(t *testing.T) {
	called := 0
	refresh := func() tea.Cmd {
		called++
		return func() tea.Msg { return RefreshDoneMsg{Added: 5} }
	}
	m := newTestModel(100, WithRefreshFunc(refresh))
	m.List().PullToRefresh(true)

	for i := range 3 {
		_, cmd := m.Update(keyPress(tea.KeyUp))
		assert.Nil(t, cmd)
		assert.InDelta(t, float32(i+1)*0.25, m.List().PullProgress(), 0.001)
	}
	assert.Contains(t, m.View(), "pull to refresh")

	_, cmd := m.Update(keyPress(tea.KeyUp))
	require.NotNil(t, cmd)
	assert.True(t, m.List().IsRefreshing())
	assert.Equal(t, 1, called)
	assert.Contains(t, m.View(), "refreshing")

	// Further pulls while refreshing are ignored.
	_, cmd = m.Update(keyPress(tea.KeyUp))
	assert.Nil(t, cmd)
	assert.Equal(t, 1, called)

	m.Update(RefreshDoneMsg{Added: 5})
	assert.False(t, m.List().IsRefreshing())
	assert.Equal(t, virtuallist.RefreshIdle, m.List().RefreshPhase())
	assert.Equal(t, 105, m.List().ItemCount())
}

func TestModel_PullCancelledByScroll(t *testing.T) {
	m := newTestModel(100)
	m.List().PullToRefresh(true)

	m.Update(keyPress(tea.KeyUp))
	m.Update(keyPress(tea.KeyUp))
	require.InDelta(t, 0.5, m.List().PullProgress(), 0.001)

	m.Update(keyPress(tea.KeyDown))

	assert.InDelta(t, 0, m.List().PullProgress(), 0.001)
	assert.Equal(t, 1, m.Cursor())
}

func TestModel_PullDisabled(t *testing.T) {
	m := newTestModel(100)

	for range 5 {
		_, cmd := m.Update(keyPress(tea.KeyUp))
		assert.Nil(t, cmd)
	}
	assert.InDelta(t, 0, m.List().PullProgress(), 0.001)
}

func TestModel_RefreshError(t *testing.T) {
	m := newTestModel(10)

	m.Update(RefreshDoneMsg{Err: errors.New("backend down")})

	assert.Contains(t, m.View(), "refresh failed: backend down")
	assert.Equal(t, 10, m.List().ItemCount())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(100)

	lines := strings.Split(m.View(), "\n")

	require.Len(t, lines, 11)
	assert.Contains(t, lines[0], "item 0")
	assert.Contains(t, lines[9], "item 9")
	assert.Contains(t, lines[10], "1/100")
	assert.Contains(t, lines[0], thumbGlyph)
	assert.Contains(t, lines[9], trackGlyph)
}

func TestModel_ViewWithoutScrollbar(t *testing.T) {
	m := newTestModel(100, WithScrollbar(false))

	view := m.View()

	assert.NotContains(t, view, thumbGlyph)
	assert.NotContains(t, view, trackGlyph)
}

func TestModel_ViewEmpty(t *testing.T) {
	m := New(virtuallist.New(), renderIndex)
	assert.Empty(t, m.View(), "no size yet")

	m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	view := m.View()
	assert.Contains(t, view, "0/0")
	assert.NotContains(t, view, "item")
}

func TestModel_StickyHeader(t *testing.T) {
	list := virtuallist.New().
		Items(20).
		FixedHeight(1).
		Overscan(0).
		Sections(virtuallist.NewSectionConfig(
			virtuallist.NewSectionHeader("a", "Fruits", 1).WithItems(0, 10),
			virtuallist.NewSectionHeader("b", "Vegetables", 1).WithItems(10, 10),
		))
	m := New(list, renderIndex)
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 6})

	assert.Contains(t, strings.Split(m.View(), "\n")[0], "Fruits")

	m.SetCursor(15)
	assert.Contains(t, strings.Split(m.View(), "\n")[0], "Vegetables")
}

func TestModel_Separator(t *testing.T) {
	list := virtuallist.New().
		Items(10).
		FixedHeight(1).
		Overscan(0).
		Separator(virtuallist.FullSeparator(1, virtuallist.Color{}))
	m := New(list, renderIndex, WithScrollbar(false))
	m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})

	lines := strings.Split(m.View(), "\n")

	assert.Contains(t, lines[0], "item 0")
	assert.Contains(t, lines[1], "──────────")
	assert.Contains(t, lines[2], "item 1")
}

func TestModel_MeasureVariableHeights(t *testing.T) {
	measure := func(index, _ int) int {
		if index%2 == 0 {
			return 2
		}
		return 1
	}
	render := func(index, _ int) string {
		if index%2 == 0 {
			return fmt.Sprintf("item %d\n  detail", index)
		}
		return fmt.Sprintf("item %d", index)
	}

	list := virtuallist.New().Items(50).VariableHeight(1).Overscan(0)
	m := New(list, render, WithMeasureFunc(measure), WithScrollbar(false))
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 7})

	assert.InDelta(t, 2, list.ItemHeightAt(0), 0.001)
	assert.InDelta(t, 1, list.ItemHeightAt(1), 0.001)
	assert.Positive(t, list.MeasuredCount())

	lines := strings.Split(m.View(), "\n")
	assert.Contains(t, lines[0], "item 0")
	assert.Contains(t, lines[1], "detail")
	assert.Contains(t, lines[2], "item 1")
	assert.Contains(t, lines[3], "item 2")
}

func TestThumb(t *testing.T) {
	tests := []struct {
		name                string
		track               int
		content, viewport   float32
		progress            float32
		wantStart, wantSize int
	}{
		{"no track", 0, 100, 10, 0, 0, 0},
		{"fits", 10, 5, 10, 0, 0, 10},
		{"top", 10, 100, 10, 0, 0, 1},
		{"bottom", 10, 100, 10, 1, 9, 1},
		{"middle", 10, 40, 10, 0.5, 4, 2},
		{"progress clamped", 10, 40, 10, 3, 8, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, size := thumb(tt.track, tt.content, tt.viewport, tt.progress)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc", fit("abcdef", 3))
	assert.Equal(t, "ab  ", fit("ab", 4))
	assert.Empty(t, fit("ab", 0))
}
