package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TextOptions configure a Text widget. The zero value draws the content
// top-left, unframed.
type TextOptions struct {
	// Centered draws the content on a single line centered in the area
	// instead of filling it from the top-left.
	Centered bool
	// Bordered frames the complete allotted area. The frame is independent
	// of Centered; both may be set.
	Bordered bool
	// BorderTitle is drawn in the top edge of the frame. Ignored unless
	// Bordered is set.
	BorderTitle string
}

// Text is the leaf widget: a string plus options.
type Text struct {
	Content string
	Options TextOptions
}

// NewText creates a text widget.
func NewText(content string, opts TextOptions) Text {
	return Text{Content: content, Options: opts}
}

// Render draws the text into area. A bordered text frames the whole area and
// lays the content out inside the frame.
func (t Text) Render(area Rect) string {
	if area.Width <= 0 || area.Height <= 0 {
		return ""
	}

	bordered := t.Options.Bordered
	if bordered && (area.Width < 2 || area.Height < 2) {
		// No room for a frame.
		bordered = false
	}

	inner := area
	if bordered {
		inner = Rect{Width: area.Width - 2, Height: area.Height - 2}
	}

	// Lay the content out horizontally first so every line is padded to the
	// full inner width, then place the block vertically; PlaceVertical fills
	// the remaining rows with spaces, which keeps a frame straight.
	style := lipgloss.NewStyle().Width(inner.Width)
	vpos := lipgloss.Top
	if t.Options.Centered {
		style = style.Align(lipgloss.Center)
		vpos = lipgloss.Center
	}
	body := lipgloss.PlaceVertical(inner.Height, vpos, style.Render(t.Content))

	if !bordered {
		return body
	}

	framed := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Render(body)
	if t.Options.BorderTitle != "" {
		framed = withBorderTitle(framed, t.Options.BorderTitle)
	}
	return framed
}

// withBorderTitle splices the title into the top edge of a framed block,
// right after the corner, truncating it to the edge length.
func withBorderTitle(framed, title string) string {
	nl := strings.IndexByte(framed, '\n')
	if nl < 0 {
		return framed
	}
	top := []rune(framed[:nl])
	if len(top) < 3 {
		return framed
	}
	t := []rune(title)
	if room := len(top) - 2; len(t) > room {
		t = t[:room]
	}
	copy(top[1:], t)
	return string(top) + framed[nl:]
}
