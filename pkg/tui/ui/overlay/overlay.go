package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Bounds is the rectangle a centered overlay occupied, for click hit-testing.
type Bounds struct {
	X, Y, Width, Height int
}

// Contains reports whether the point falls inside the bounds.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// ComposeCentered overlays the foreground panel centered atop the background
// while preserving background content outside the panel, and reports the
// panel's bounds.
func ComposeCentered(background string, width, height int, foreground string) (string, Bounds) {
	bgLines := normalizeBackground(background, width, height)
	if foreground == "" {
		return strings.Join(bgLines, "\n"), Bounds{}
	}

	fgLines := strings.Split(foreground, "\n")
	overlayWidth := 0
	for _, line := range fgLines {
		if w := lipgloss.Width(line); w > overlayWidth {
			overlayWidth = w
		}
	}
	if overlayWidth == 0 {
		return strings.Join(bgLines, "\n"), Bounds{}
	}
	if overlayWidth > width {
		overlayWidth = width
	}
	overlayHeight := len(fgLines)
	if overlayHeight > height {
		overlayHeight = height
	}

	offsetX := (width - overlayWidth) / 2
	offsetY := (height - overlayHeight) / 2

	for row := 0; row < overlayHeight; row++ {
		destY := offsetY + row
		if destY < 0 || destY >= len(bgLines) {
			continue
		}
		fgLine := padToWidth(fgLines[row], overlayWidth)
		baseLine := bgLines[destY]
		prefix := sliceWidth(baseLine, 0, offsetX)
		suffix := sliceWidth(baseLine, offsetX+overlayWidth, width)
		bgLines[destY] = prefix + fgLine + suffix
	}

	return strings.Join(bgLines, "\n"), Bounds{X: offsetX, Y: offsetY, Width: overlayWidth, Height: overlayHeight}
}

func normalizeBackground(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padToWidth(lines[i], width)
	}
	return lines
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	currWidth := lipgloss.Width(s)
	if currWidth >= width {
		return lipgloss.NewStyle().Width(width).Render(s)
	}
	return s + strings.Repeat(" ", width-currWidth)
}

func sliceWidth(s string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	if end > lipgloss.Width(s) {
		end = lipgloss.Width(s)
	}
	if start >= end {
		return ""
	}

	result := strings.Builder{}
	widthSeen := 0
	for _, r := range []rune(s) {
		rw := lipgloss.Width(string(r))
		next := widthSeen + rw
		if next <= start {
			widthSeen = next
			continue
		}
		if widthSeen >= end || next > end {
			break
		}
		result.WriteRune(r)
		widthSeen = next
	}
	return result.String()
}
