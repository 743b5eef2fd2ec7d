package render

import (
	"github.com/charmbracelet/glamour"
)

type TerminalOptions struct {
	// Style is a glamour style name such as "dark", "light" or "notty".
	// Empty selects the style from the terminal background.
	Style    string
	WordWrap int
}

// Terminal renders markdown for display in a terminal.
func Terminal(markdown string, opts TerminalOptions) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if opts.Style != "" {
		styleOpt = glamour.WithStandardStyle(opts.Style)
	}
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 120
	}
	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(wrap))
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
