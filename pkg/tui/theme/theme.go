package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Page   PageTheme
	Sheet  SheetTheme
}

// FooterTheme groups styles for the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Support lipgloss.Style
}

// PageTheme styles page headings and body text.
type PageTheme struct {
	Title  lipgloss.Style
	Body   lipgloss.Style
	Faint  lipgloss.Style
	Error  lipgloss.Style
	Active lipgloss.Style
}

// SheetTheme styles the centered safety sheet overlay.
type SheetTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Section lipgloss.Style
	Body    lipgloss.Style
	Faint   lipgloss.Style
	Error   lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	faint := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	return Theme{
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  faint,
			Support: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
		Page: PageTheme{
			Title:  lipgloss.NewStyle().Bold(true),
			Body:   lipgloss.NewStyle(),
			Faint:  faint,
			Error:  errStyle,
			Active: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		},
		Sheet: SheetTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title:   lipgloss.NewStyle().Bold(true),
			Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Body:    lipgloss.NewStyle(),
			Faint:   faint,
			Error:   errStyle,
		},
	}
}
