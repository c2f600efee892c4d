package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 6
	overlayMaxWidth  = 56
	overlayMaxHeight = 16
)

// OverlayModel renders an opaque dialog box centered over base content.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// box is a placed rectangle in screen coordinates.
type box struct {
	top, left, w, h int
}

// Render draws the dialog over the base frame. The dialog box grows
// to fit its content, stays inside the screen, and is spliced into
// each base line with ANSI-aware cuts so styling on either side
// survives.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	lines := o.contentLines(content)
	contentW, contentH := o.contentSize(lines)

	b := o.placeBox(width, height, contentW, contentH)
	if b.w <= 0 || b.h <= 0 {
		return base
	}

	baseLines := o.normalizeBase(base, width, height)
	dialog := o.paintDialog(b, lines, contentW, contentH)

	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < b.top || row >= b.top+b.h {
			out = append(out, baseLines[row])
			continue
		}
		line := baseLines[row]
		out = append(out, ansi.Cut(line, 0, b.left)+dialog[row-b.top]+ansi.Cut(line, b.left+b.w, width))
	}

	return strings.Join(out, "\n")
}

// placeBox sizes the dialog from the screen, expands it to the
// content, clamps it to the screen, and centers it.
func (o OverlayModel) placeBox(width, height, contentW, contentH int) box {
	w := clamp(width/2, overlayMinWidth, overlayMaxWidth)
	h := clamp(height/3, overlayMinHeight, overlayMaxHeight)
	if contentW > w {
		w = contentW
	}
	if contentH > h {
		h = contentH
	}
	if w > width {
		w = width
	}
	if h > height {
		h = height
	}

	b := box{w: w, h: h}
	b.top = (height - h) / 2
	b.left = (width - w) / 2
	if b.top < 0 {
		b.top = 0
	}
	if b.left < 0 {
		b.left = 0
	}
	return b
}

// paintDialog fills the box with the backdrop color and centers the
// content lines inside it.
func (o OverlayModel) paintDialog(b box, content []string, contentW, contentH int) []string {
	bgSeq := o.backgroundSeq()
	blank := bgSeq + strings.Repeat(" ", b.w) + ansi.ResetStyle

	dialog := make([]string, b.h)
	for i := range dialog {
		dialog[i] = blank
	}
	if contentW == 0 || contentH == 0 {
		return dialog
	}

	if contentW > b.w {
		contentW = b.w
	}
	if contentH > b.h {
		contentH = b.h
	}
	top := (b.h - contentH) / 2
	left := (b.w - contentW) / 2

	for i := 0; i < contentH; i++ {
		row := top + i
		if row >= len(dialog) {
			break
		}
		line := content[i]
		if w := lipgloss.Width(line); w > contentW {
			line = ansi.Cut(line, 0, contentW)
		} else if w < contentW {
			line += strings.Repeat(" ", contentW-w)
		}
		line = o.reapplyBackground(line, bgSeq)

		right := b.w - left - contentW
		if right < 0 {
			right = 0
		}
		dialog[row] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", right) + ansi.ResetStyle
	}

	return dialog
}

func (o OverlayModel) backgroundSeq() string {
	return ansi.Style{}.BackgroundColor(ansi.XParseColor(string(o.bgColor))).String()
}

// reapplyBackground re-asserts the backdrop color after any reset
// sequence inside a content line, so styled content does not punch
// holes in the dialog.
func (o OverlayModel) reapplyBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	for _, reset := range []string{ansi.ResetStyle, "\x1b[0m", "\x1b[49m"} {
		line = strings.ReplaceAll(line, reset, reset+bgSeq)
	}
	return line
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

// normalizeBase squares the base frame off to exactly width x height.
func (o OverlayModel) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}

	for i, line := range lines {
		switch w := lipgloss.Width(line); {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
