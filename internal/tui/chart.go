package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yourusername/phonafind/internal/phoneme"
)

// renderChart draws the assigned-number chart, consonants and vowels
// side by side, so users can find codes without leaving the session.
func renderChart() string {
	consonants := chartColumn("CONSONANTS", phoneme.Consonant)
	vowels := chartColumn("VOWELS", phoneme.Vowel)
	return lipgloss.JoinHorizontal(lipgloss.Top, consonants, "  ", vowels)
}

func chartColumn(title string, class phoneme.Class) string {
	var b strings.Builder
	b.WriteString(screenStyle.Render(title))
	b.WriteString("\n")
	for code := phoneme.Code(1); code <= class.MaxCode(); code++ {
		fmt.Fprintf(&b, "%2d: %s\n", code, phoneme.Symbol(class, code))
	}
	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}
