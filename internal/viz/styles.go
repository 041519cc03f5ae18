package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles of the text panel and key hints, derived
// from a Theme.
type Styles struct {
	Panel  lipgloss.Style
	Title  lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Vector lipgloss.Style
	Info   lipgloss.Style
	Note   lipgloss.Style
	Muted  lipgloss.Style
	Key    lipgloss.Style
	Hint   lipgloss.Style
	Error  lipgloss.Style
	Header lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Label:  lipgloss.NewStyle().Foreground(t.Muted),
		Value:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Vector: lipgloss.NewStyle().Foreground(t.Arrow).Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Secondary).
			PaddingLeft(1),
		Note: lipgloss.NewStyle().
			Foreground(t.Success).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Success).
			PaddingLeft(1),
		Muted: lipgloss.NewStyle().Foreground(t.Muted),
		Key:   lipgloss.NewStyle().Foreground(t.Accent).Bold(true),
		Hint:  lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Error: lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
	}
}

// KeyHints renders "key action" pairs on one line.
func (s Styles) KeyHints(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, s.Key.Render(pairs[i])+s.Muted.Render(" "+pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}

// Legend renders the surface color ramp with its height range.
func (t Theme) Legend(lo, hi string) string {
	var b strings.Builder
	b.WriteString(lo + " ")
	for _, c := range t.Ramp {
		b.WriteString(lipgloss.NewStyle().Foreground(c).Render("█"))
	}
	b.WriteString(" " + hi)
	return b.String()
}
