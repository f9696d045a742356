package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bastiangx/righte/pkg/lookup"
)

var (
	strokeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
	wordStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	residueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"})
	passStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
)

// RenderSegments lists the segments of res, one per line.
func RenderSegments(res lookup.Result, sep string) string {
	var b strings.Builder
	for i, seg := range res.Segments {
		strokes := strokeStyle.Render(fmt.Sprintf("%-24s", strings.Join(seg.Strokes, sep)))
		switch seg.Kind {
		case lookup.SegmentWord:
			fmt.Fprintf(&b, "%2d. %s %s (rank: %d)\n", i+1, strokes, wordStyle.Render(seg.Text), seg.Rank+1)
		case lookup.SegmentResidue:
			fmt.Fprintf(&b, "%2d. %s %s\n", i+1, strokes, residueStyle.Render("no word"))
		default:
			fmt.Fprintf(&b, "%2d. %s %s\n", i+1, strokes, passStyle.Render(seg.Text))
		}
	}
	return b.String()
}
