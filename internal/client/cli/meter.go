package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrijs2005/gophauth/internal/client/forms"
)

var (
	weakStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")).Bold(true)
	strongStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80"))
)

func levelStyle(l forms.Level) lipgloss.Style {
	switch l {
	case forms.LevelWeak:
		return weakStyle
	case forms.LevelGood:
		return goodStyle
	case forms.LevelStrong:
		return strongStyle
	}
	return dimStyle
}

// renderStrength draws the meter bar, the label and the per-check list for
// password. An empty password renders nothing.
//
//	Strength: ■■■□□ Good
//	  ✓ At least 8 characters
//	  ✗ Uppercase letter
func renderStrength(password string) string {
	if password == "" {
		return ""
	}

	checks := forms.Strength(password)
	score := checks.Score()
	style := levelStyle(forms.LevelOf(score))

	var b strings.Builder
	b.WriteString("Strength: ")
	b.WriteString(style.Render(strings.Repeat("■", score)))
	b.WriteString(dimStyle.Render(strings.Repeat("□", forms.MaxScore-score)))
	b.WriteString(" ")
	b.WriteString(style.Render(forms.Label(score)))

	for _, c := range checks.List() {
		b.WriteString("\n  ")
		if c.OK {
			b.WriteString(okStyle.Render("✓ " + c.Label))
		} else {
			b.WriteString(dimStyle.Render("✗ " + c.Label))
		}
	}
	return b.String()
}
