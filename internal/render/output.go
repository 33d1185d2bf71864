// Package render formats outlines and diagnostics for the terminal.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/itsmostafa/mdbook-summary-generate/internal/outline"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// warningStyle for the warning label
	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	// partStyle for category group titles
	partStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	// numberStyle for position numbers
	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81"))

	// boxStyle for the summary box with rounded border
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

// FormatVersionWarning tells the user the host version differs from the
// one the preprocessor was built against.
func FormatVersionWarning(w io.Writer, name, builtAgainst, hostVersion string) {
	fmt.Fprintf(w, "%s The %s plugin was built against version %s of mdbook, but we're being called from version %s\n",
		warningStyle.Render("Warning:"), name, builtAgainst, hostVersion)
}

// Stats counts the entries of an outline.
type Stats struct {
	Chapters int
	Parts    int
	MaxDepth int
}

// CountItems walks items and collects Stats.
func CountItems(items []outline.Item) Stats {
	var s Stats
	var walk func([]outline.Item, int)
	walk = func(items []outline.Item, depth int) {
		for _, it := range items {
			switch it.Kind {
			case outline.KindPartTitle:
				s.Parts++
			case outline.KindNode:
				if it.Node == nil {
					continue
				}
				s.Chapters++
				s.MaxDepth = max(s.MaxDepth, depth)
				walk(it.Node.Children, depth+1)
			}
		}
	}
	walk(items, 1)
	return s
}

// FormatSummary renders the outline summary box.
func FormatSummary(w io.Writer, source string, items []outline.Item) {
	s := CountItems(items)
	line := fmt.Sprintf("%s %d  %s %d  %s %d",
		dimStyle.Render("Chapters:"), s.Chapters,
		dimStyle.Render("Parts:"), s.Parts,
		dimStyle.Render("Depth:"), s.MaxDepth,
	)
	content := titleStyle.Render("Outline") + "\n" +
		dimStyle.Render("Source:") + " " + source + "\n" + line
	fmt.Fprintln(w, boxStyle.Render(content))
}
