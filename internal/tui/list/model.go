package listview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/vlist/internal/virtuallist"
)

const (
	// wheelRows is how far one mouse wheel notch scrolls.
	wheelRows = 3

	// pullStep is the pull distance added by each up key or wheel notch at
	// the top; four steps arm a refresh.
	pullStep = virtuallist.PullDistance / 4

	// statusRows is the number of rows reserved below the list.
	statusRows = 1

	// measurePasses bounds the measurement loop; measuring can shift the
	// visible range, which can expose unmeasured rows.
	measurePasses = 3
)

// RenderFunc renders item index as plain text no wider than width. Items
// taller than one row return one line per row.
type RenderFunc func(index, width int) string

// MeasureFunc returns the height in rows of item index at the given width.
type MeasureFunc func(index, width int) int

// RefreshFunc starts a refresh. The returned command must eventually
// produce a RefreshDoneMsg.
type RefreshFunc func() tea.Cmd

// RefreshDoneMsg ends a refresh. Added items are appended to the list.
type RefreshDoneMsg struct {
	Added int
	Err   error
}

// Option configures a Model.
type Option func(*Model)

// WithMeasureFunc measures rows of variable-height lists.
func WithMeasureFunc(fn MeasureFunc) Option {
	return func(m *Model) { m.measure = fn }
}

// WithRefreshFunc is called when a pull-to-refresh gesture completes.
func WithRefreshFunc(fn RefreshFunc) Option {
	return func(m *Model) { m.refresh = fn }
}

// WithKeyMap replaces the default keybindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithScrollbar shows or hides the scrollbar column.
func WithScrollbar(show bool) Option {
	return func(m *Model) { m.showScrollbar = show }
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) { m.styles = styles }
}

// WithLogger sets the logger for model events.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is a Bubble Tea model rendering a VirtualList.
type Model struct {
	list    *virtuallist.VirtualList
	render  RenderFunc
	measure MeasureFunc
	refresh RefreshFunc

	keys          KeyMap
	styles        Styles
	spinner       spinner.Model
	showScrollbar bool
	logger        zerolog.Logger

	width  int
	height int
	cursor int

	// pull is the accumulated pull distance past the top.
	pull    float32
	lastErr error
}

// New creates a model around list. The model takes ownership of the list.
func New(list *virtuallist.VirtualList, render RenderFunc, opts ...Option) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		list:          list,
		render:        render,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		spinner:       sp,
		showScrollbar: true,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.spinner.Style = m.styles.Spinner
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles keyboard, mouse, resize and refresh messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.ViewportHeight(float32(m.viewportRows()))

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case spinner.TickMsg:
		if !m.list.IsRefreshing() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RefreshDoneMsg:
		m.finishRefresh(msg)
	}

	m.measureVisible()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := m.list.ItemCount()
	page := max(m.viewportRows()-1, 1)

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor == 0 && m.list.IsAtTop() {
			return m.pullDown()
		}
		m.moveCursor(m.cursor - 1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(m.cursor + 1)

	case key.Matches(msg, m.keys.PageUp):
		m.list.ScrollBy(-float32(page))
		m.moveCursor(m.cursor - page)

	case key.Matches(msg, m.keys.PageDown):
		m.list.ScrollBy(float32(page))
		m.moveCursor(m.cursor + page)

	case key.Matches(msg, m.keys.Home):
		m.list.ScrollToTop()
		m.moveCursor(0)

	case key.Matches(msg, m.keys.End):
		m.list.ScrollToBottom()
		m.moveCursor(n - 1)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.list.IsAtTop() {
			return m.pullDown()
		}
		m.list.ScrollBy(-wheelRows)
	case tea.MouseButtonWheelDown:
		m.cancelPull()
		m.list.ScrollBy(wheelRows)
	}
	return nil
}

// moveCursor clamps the cursor and scrolls it into view.
func (m *Model) moveCursor(index int) {
	m.cancelPull()

	n := m.list.ItemCount()
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(index, 0), n-1)
	_ = m.list.EnsureVisible(m.cursor)
}

// pullDown feeds one pull step to the list and starts a refresh once the
// gesture is complete.
func (m *Model) pullDown() tea.Cmd {
	if m.list.IsRefreshing() || !m.list.Config().PullToRefresh {
		return nil
	}

	m.pull += pullStep
	m.list.HandlePull(-m.pull)

	if !m.list.StartRefresh() {
		return nil
	}

	m.logger.Debug().Int("items", m.list.ItemCount()).Msg("pull to refresh triggered")
	m.pull = 0
	m.lastErr = nil

	cmds := []tea.Cmd{m.spinner.Tick}
	if m.refresh != nil {
		cmds = append(cmds, m.refresh())
	} else {
		cmds = append(cmds, func() tea.Msg { return RefreshDoneMsg{} })
	}
	return tea.Batch(cmds...)
}

// cancelPull drops a partial pull.
func (m *Model) cancelPull() {
	if m.pull == 0 || m.list.IsRefreshing() {
		return
	}
	m.pull = 0
	m.list.EndRefresh()
}

func (m *Model) finishRefresh(msg RefreshDoneMsg) {
	m.list.EndRefresh()
	m.pull = 0
	m.lastErr = msg.Err

	if msg.Err != nil {
		m.logger.Warn().Err(msg.Err).Msg("refresh failed")
		return
	}
	if msg.Added > 0 {
		m.list.SetItemCount(m.list.ItemCount() + msg.Added)
	}
	m.logger.Debug().Int("added", msg.Added).Int("items", m.list.ItemCount()).Msg("refresh finished")
}

// measureVisible records the height of every visible row whose measured
// height differs from the list's current value.
func (m *Model) measureVisible() {
	if m.measure == nil || !m.list.Config().ItemHeight.IsVariable() {
		return
	}

	width := m.itemWidth()
	for range measurePasses {
		changed := false
		for i := range m.list.VisibleRange().All() {
			h := float32(m.measure(i, width))
			if h != m.list.ItemHeightAt(i) {
				m.list.SetItemHeight(i, h)
				changed = true
			}
		}
		if !changed {
			return
		}
	}
}

// View renders the visible rows, sticky header, scrollbar and status line.
func (m *Model) View() string {
	rows := m.viewportRows()
	if rows <= 0 || m.width <= 0 {
		return ""
	}

	width := m.itemWidth()
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}

	sep := m.list.Config().Separator
	for item := range m.list.VisibleItems(float32(width)) {
		m.drawItem(lines, item, width)
		if r, ok := sep.Bounds(item.Bounds); ok && r.H >= 1 {
			row := int(r.Y)
			if row >= 0 && row < rows {
				lines[row] = fit(strings.Repeat(" ", int(r.X))+m.styles.Separator.Render(hline(int(r.W))), width)
			}
		}
	}

	if h, ok := m.list.CurrentStickyHeader(); ok {
		lines[0] = m.styles.Header.Render(fit(h.Title, width))
	}

	if m.showScrollbar && m.list.IsScrollable() {
		bar := m.scrollbar(rows)
		for i := range lines {
			lines[i] += bar[i]
		}
	}

	return strings.Join(lines, "\n") + "\n" + m.statusLine()
}

// drawItem copies the rows of item that fall inside the viewport into lines.
func (m *Model) drawItem(lines []string, item virtuallist.ListItem, width int) {
	top := int(item.Bounds.Y)
	height := int(item.Bounds.H)
	indent := strings.Repeat(" ", int(item.Bounds.X))
	text := strings.Split(m.render(item.Index, int(item.Bounds.W)), "\n")

	style := m.styles.Item
	if item.Index == m.cursor {
		style = m.styles.Cursor
	}

	for k := range height {
		row := top + k
		if row < 0 || row >= len(lines) {
			continue
		}
		var s string
		if k < len(text) {
			s = text[k]
		}
		lines[row] = fit(indent+style.Render(fit(s, int(item.Bounds.W))), width)
	}
}

func (m *Model) statusLine() string {
	var s string
	switch {
	case m.list.IsRefreshing():
		s = m.spinner.View() + " refreshing..."
	case m.list.RefreshPhase() == virtuallist.RefreshPulling:
		s = fmt.Sprintf("pull to refresh %3.0f%%", m.list.PullProgress()*100)
	case m.lastErr != nil:
		s = "refresh failed: " + m.lastErr.Error()
	default:
		pos := 0
		if m.list.ItemCount() > 0 {
			pos = m.cursor + 1
		}
		s = fmt.Sprintf("%d/%d  %3.0f%%", pos, m.list.ItemCount(), m.list.ScrollProgress()*100)
	}
	return m.styles.Status.Render(fit(s, m.width))
}

// fit truncates or pads s to exactly width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = lipgloss.NewStyle().MaxWidth(width).Render(s)
	if w := lipgloss.Width(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}

func (m *Model) viewportRows() int {
	return max(m.height-statusRows, 0)
}

func (m *Model) itemWidth() int {
	if m.showScrollbar {
		return max(m.width-1, 0)
	}
	return m.width
}

// List returns the underlying list.
func (m *Model) List() *virtuallist.VirtualList {
	return m.list
}

// Cursor returns the selected item index.
func (m *Model) Cursor() int {
	return m.cursor
}

// SetCursor moves the cursor, clamping to valid bounds, and scrolls it into view.
func (m *Model) SetCursor(index int) {
	m.moveCursor(index)
}

// Height returns the terminal height.
func (m *Model) Height() int {
	return m.height
}

// Width returns the terminal width.
func (m *Model) Width() int {
	return m.width
}
