package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/navmenu/internal/format/table"
	"github.com/atomicstack/navmenu/internal/nav"
)

const (
	toggleLabel       = "[☰ Menu]"
	defaultBodyHeight = 12
	minBodyHeight     = 3
	infoTTL           = 5 * time.Second
)

type styledLine struct {
	text          string
	style         *lipgloss.Style
	prefixStyle   *lipgloss.Style
	highlightFrom int
	raw           bool // text contains ANSI escapes; skip style wrapping, use ANSI-aware truncation
}

// View implements tea.Model.
func (m *Model) View() string {
	m.syncViewport()
	lines := make([]styledLine, 0, 32)
	lines = append(lines, m.toggleLine())
	if m.visuallyOpen {
		lines = append(lines, m.menuLines()...)
	}
	lines = append(lines, styledLine{})
	lines = append(lines, m.bodyLines()...)
	lines = append(lines, styledLine{})
	lines = append(lines, m.statusLine())
	lines = append(lines, m.messageLine())
	if m.showFooter {
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) toggleLine() styledLine {
	style := styles.Toggle
	if m.focus == focusToggle {
		style = styles.ToggleFocused
	}
	attr := fmt.Sprintf(" aria-expanded=%q", fmt.Sprint(m.expanded))
	return styledLine{
		text:          toggleLabel + attr,
		prefixStyle:   style,
		style:         styles.Attribute,
		highlightFrom: len([]rune(toggleLabel)),
	}
}

// menuLines renders the link list, the transition marker and the jump query.
// The marker row is always present while the list is drawn so the layout
// does not shift between states.
func (m *Model) menuLines() []styledLine {
	lines := make([]styledLine, 0, m.links.Len()+2)
	rows := make([][]string, m.links.Len())
	for i, item := range m.links.Items {
		number := ""
		if i < 9 {
			number = strconv.Itoa(i + 1)
		}
		rows[i] = []string{number, item.Label, "#" + item.Target}
	}
	for i, text := range table.Format(rows, []table.Alignment{table.AlignRight}) {
		lines = append(lines, m.buildItemLine(i, text))
	}
	lines = append(lines, styledLine{text: m.transitionMarker(), style: styles.Transition})
	if m.links.Query != "" {
		lines = append(lines, styledLine{text: "jump: " + m.links.Query, style: styles.Jump})
	}
	return lines
}

func (m *Model) transitionMarker() string {
	if m.ctrl == nil {
		return ""
	}
	switch m.ctrl.State() {
	case nav.Opening:
		return "  opening…"
	case nav.Closing:
		return "  closing…"
	}
	return ""
}

func (m *Model) buildItemLine(idx int, text string) styledLine {
	indicator := "▌"
	lineStyle := styles.Item
	indicatorStyle := styles.ItemIndicator
	if idx == m.links.Cursor && m.focus == focusLinks {
		indicatorStyle = styles.SelectedItemIndicator
		lineStyle = styles.SelectedItem
	}
	return styledLine{
		text:          indicator + " " + text,
		style:         lineStyle,
		prefixStyle:   indicatorStyle,
		highlightFrom: 1,
	}
}

func (m *Model) bodyLines() []styledLine {
	lines := make([]styledLine, 0, m.viewport.Height)
	for i := 0; i < m.viewport.Height; i++ {
		idx := m.viewport.Offset + i
		if idx >= len(m.page.Lines) {
			lines = append(lines, styledLine{})
			continue
		}
		text := m.page.Lines[idx]
		style := styles.Body
		if strings.HasPrefix(text, "# ") {
			style = styles.Heading
		}
		lines = append(lines, styledLine{text: text, style: style})
	}
	return lines
}

func (m *Model) statusLine() styledLine {
	state := nav.Closed
	if m.ctrl != nil {
		state = m.ctrl.State()
	}
	scroll := "free"
	if m.scrollLocked {
		scroll = "locked"
	}
	esc := "off"
	if m.escapeListener {
		esc = "on"
	}
	style := styles.Status
	if state != nav.Closed {
		style = styles.StatusActive
	}
	return styledLine{
		text:  fmt.Sprintf("state: %s  scroll: %s  esc: %s  line %d/%d", state, scroll, esc, m.viewport.Offset+1, m.viewport.Total),
		style: style,
	}
}

func (m *Model) messageLine() styledLine {
	if m.errMsg != "" {
		return styledLine{text: fmt.Sprintf("Error: %s", m.errMsg), style: styles.Error}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: styles.Info}
	}
	return styledLine{}
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	m.syncViewport()
	return nil
}

// chromeHeight counts every row View draws besides the page body.
func (m *Model) chromeHeight() int {
	used := 1 // toggle
	if m.visuallyOpen {
		used += m.links.Len() + 1
		if m.links.Query != "" {
			used++
		}
	}
	used += 2 // blank separators around the body
	used += 2 // status + message
	if m.showFooter {
		used++
	}
	return used
}

func (m *Model) bodyHeight() int {
	if m.height <= 0 {
		return defaultBodyHeight
	}
	remain := m.height - m.chromeHeight()
	if remain < minBodyHeight {
		return minBodyHeight
	}
	return remain
}

func (m *Model) syncViewport() {
	if m.links == nil {
		return
	}
	m.viewport.Resize(len(m.page.Lines), m.bodyHeight())
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(infoTTL)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			if lipgloss.Width(text) > width {
				text = truncate.StringWithTail(text, uint(width-1), "…")
			}
		} else {
			text = truncateText(text, width)
		}
		line.text = text
		result[i] = line
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if line.raw {
			out[i] = text
			continue
		}
		runes := []rune(text)
		if line.highlightFrom > 0 && line.highlightFrom < len(runes) {
			head := string(runes[:line.highlightFrom])
			tail := string(runes[line.highlightFrom:])
			if line.prefixStyle != nil {
				head = line.prefixStyle.Render(head)
			}
			if line.style != nil {
				tail = line.style.Render(tail)
			}
			text = head + tail
		} else if line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= width {
		return text
	}
	if width == 1 {
		return string(runes[:1])
	}
	return string(runes[:width-1]) + "…"
}
