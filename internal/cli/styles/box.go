package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// TitledBox draws a rounded border of exactly width x height cells with title
// embedded in the top edge. Content lines are cut or padded to the inner
// width; content row i lands on screen row y+1+i.
func (t *Theme) TitledBox(title, content string, width, height int, focused bool) string {
	if width < 2 || height < 2 {
		return ""
	}
	innerW := width - 2
	innerH := height - 2

	b := lipgloss.RoundedBorder()
	border := lipgloss.NewStyle().Foreground(t.frameColor(focused))

	title = xansi.Truncate(title, innerW, "…")
	titleW := xansi.StringWidth(title)

	var sb strings.Builder
	sb.WriteString(border.Render(b.TopLeft))
	sb.WriteString(t.BoxTitle.Render(title))
	sb.WriteString(border.Render(strings.Repeat(b.Top, innerW-titleW) + b.TopRight))

	lines := strings.Split(content, "\n")
	for i := 0; i < innerH; i++ {
		line := ""
		if i < len(lines) {
			line = fitLine(lines[i], innerW)
		} else {
			line = strings.Repeat(" ", innerW)
		}
		sb.WriteString("\n")
		sb.WriteString(border.Render(b.Left))
		sb.WriteString(line)
		sb.WriteString(border.Render(b.Right))
	}

	sb.WriteString("\n")
	sb.WriteString(border.Render(b.BottomLeft + strings.Repeat(b.Bottom, innerW) + b.BottomRight))
	return sb.String()
}

// frameColor is the border color of Box, or of BoxFocused when focused.
func (t *Theme) frameColor(focused bool) lipgloss.TerminalColor {
	if focused {
		return t.BoxFocused.GetBorderTopForeground()
	}
	return t.Box.GetBorderTopForeground()
}

// fitLine cuts or right-pads s to exactly w cells.
func fitLine(s string, w int) string {
	n := xansi.StringWidth(s)
	switch {
	case n > w:
		return xansi.Truncate(s, w, "")
	case n < w:
		return s + strings.Repeat(" ", w-n)
	default:
		return s
	}
}

// Overlay draws fg on top of bg with its top-left corner at (x, y).
// bg is treated as a canvas of w columns.
func Overlay(bg, fg string, w, x, y int) string {
	bgLines := strings.Split(bg, "\n")
	fgLines := strings.Split(fg, "\n")
	fgW := 0
	for _, ln := range fgLines {
		fgW = max(fgW, xansi.StringWidth(ln))
	}
	if fgW == 0 {
		return bg
	}
	x = max(x, 0)
	y = max(y, 0)

	for i := 0; i < len(fgLines) && y+i < len(bgLines); i++ {
		bgLine := fitLine(bgLines[y+i], w)
		left := xansi.Cut(bgLine, 0, x)
		right := xansi.Cut(bgLine, x+fgW, w)
		bgLines[y+i] = left + fitLine(fgLines[i], fgW) + right
	}
	return strings.Join(bgLines, "\n")
}
