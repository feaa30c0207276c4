package tui

import "github.com/charmbracelet/lipgloss"

// Palette holds the colors used by the console and picker.
type Palette struct {
	Title    lipgloss.Color
	Selected lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warn     lipgloss.Color
	Info     lipgloss.Color
	Dim      lipgloss.Color
}

var palettes = map[string]Palette{
	"dark": {
		Title:    lipgloss.Color("205"),
		Selected: lipgloss.Color("170"),
		Success:  lipgloss.Color("42"),
		Error:    lipgloss.Color("196"),
		Warn:     lipgloss.Color("214"),
		Info:     lipgloss.Color("39"),
		Dim:      lipgloss.Color("241"),
	},
	"light": {
		Title:    lipgloss.Color("125"),
		Selected: lipgloss.Color("90"),
		Success:  lipgloss.Color("28"),
		Error:    lipgloss.Color("124"),
		Warn:     lipgloss.Color("130"),
		Info:     lipgloss.Color("25"),
		Dim:      lipgloss.Color("245"),
	},
}

// ApplyTheme switches the shared styles to the named palette. Unknown
// names keep the current styles.
func ApplyTheme(name string) {
	p, ok := palettes[name]
	if !ok {
		return
	}
	titleStyle = titleStyle.Foreground(p.Title)
	selectedStyle = selectedStyle.Foreground(p.Selected)
	dimStyle = dimStyle.Foreground(p.Dim)
	successStyle = successStyle.Foreground(p.Success)
	errorStyle = errorStyle.Foreground(p.Error)
	warnStyle = warnStyle.Foreground(p.Warn)
	infoStyle = infoStyle.Foreground(p.Info)
}

// Themes lists the available theme names.
func Themes() []string {
	return []string{"dark", "light"}
}
