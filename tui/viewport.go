// viewport.go provides a scrollable transcript area for the ask loop.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Viewport is a vertically scrollable text area.
type Viewport struct {
	width   int
	height  int
	content []string // lines of content
	scrollY int      // vertical scroll offset (line index)
}

// NewViewport creates a viewport with the given dimensions.
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// SetContentLines replaces the viewport content with pre-split lines.
func (v *Viewport) SetContentLines(lines []string) {
	v.content = lines
	v.clampScroll()
}

// SetSize updates viewport dimensions.
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.clampScroll()
}

// ScrollUp moves the viewport up by n lines.
func (v *Viewport) ScrollUp(n int) {
	v.scrollY -= n
	v.clampScroll()
}

// ScrollDown moves the viewport down by n lines.
func (v *Viewport) ScrollDown(n int) {
	v.scrollY += n
	v.clampScroll()
}

// PageUp scrolls up by one page.
func (v *Viewport) PageUp() {
	v.ScrollUp(v.height)
}

// PageDown scrolls down by one page.
func (v *Viewport) PageDown() {
	v.ScrollDown(v.height)
}

// End scrolls to the bottom.
func (v *Viewport) End() {
	v.scrollY = v.maxScrollY()
}

// Render returns the visible portion of the content.
func (v *Viewport) Render() string {
	if len(v.content) == 0 {
		return strings.Repeat("\n", v.height)
	}

	end := v.scrollY + v.height
	if end > len(v.content) {
		end = len(v.content)
	}

	visible := make([]string, 0, v.height+1)
	for i := v.scrollY; i < end; i++ {
		line := v.content[i]
		if len(line) > v.width && v.width > 0 {
			line = line[:v.width]
		}
		visible = append(visible, line)
	}

	// Pad to fill viewport height
	for len(visible) < v.height {
		visible = append(visible, "")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(visible, "\n"), v.scrollIndicator())
}

func (v *Viewport) clampScroll() {
	if max := v.maxScrollY(); v.scrollY > max {
		v.scrollY = max
	}
	if v.scrollY < 0 {
		v.scrollY = 0
	}
}

func (v *Viewport) maxScrollY() int {
	max := len(v.content) - v.height
	if max < 0 {
		return 0
	}
	return max
}

func (v *Viewport) scrollIndicator() string {
	if len(v.content) <= v.height {
		return ""
	}
	return StyleDimmed.Render(fmt.Sprintf("(%d/%d)", v.scrollY+1, len(v.content)))
}
