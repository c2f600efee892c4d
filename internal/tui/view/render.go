// Package view provides view composition helpers for the TUI.
package view

// OverlayRenderer renders modal overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ViewState contains pre-rendered content and overlay metadata.
type ViewState struct {
	Width            int
	Height           int
	BaseContent      string
	ModalContent     string
	ShowModal        bool
	Overlay          OverlayRenderer
	EmptyPlaceholder string
}

// Render composes the final frame: the grid alone, or the grid with a
// workflow dialog spliced over it. Before the first WindowSizeMsg the
// dimensions are zero and only the placeholder can be shown.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		if state.EmptyPlaceholder == "" {
			return "Loading..."
		}
		return state.EmptyPlaceholder
	}

	if !state.ShowModal || state.Overlay == nil {
		return state.BaseContent
	}

	return state.Overlay.Render(state.BaseContent, state.Width, state.Height, state.ModalContent)
}
