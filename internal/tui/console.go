package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	sepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
)

// Console renders styled status messages and results.
type Console struct {
	w io.Writer
}

// NewConsole creates a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// width returns the terminal width, falling back to a fixed default.
func (c *Console) width() int {
	if f, ok := c.w.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			if w > defaultWidth {
				return defaultWidth
			}
			return w
		}
	}
	return defaultWidth
}

func (c *Console) separator() string {
	return sepStyle.Render(strings.Repeat("-", c.width()))
}

// Success prints a success status line.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.w, successStyle.Render("✅ "+fmt.Sprintf(format, args...)))
}

// Error prints an error status line.
func (c *Console) Error(format string, args ...any) {
	fmt.Fprintln(c.w, errorStyle.Render("❌ "+fmt.Sprintf(format, args...)))
}

// Warn prints a warning status line.
func (c *Console) Warn(format string, args ...any) {
	fmt.Fprintln(c.w, warnStyle.Render("⚠️  "+fmt.Sprintf(format, args...)))
}

// Info prints an informational status line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.w, infoStyle.Render("ℹ️  "+fmt.Sprintf(format, args...)))
}

// Section prints a titled separator block.
func (c *Console) Section(title string) {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, c.separator())
	fmt.Fprintln(c.w, headerStyle.Render("--- "+title+" ---"))
	fmt.Fprintln(c.w, c.separator())
}

// Result displays a processing result between separators.
func (c *Console) Result(title, result string) {
	c.Section(title)
	fmt.Fprintln(c.w, result)
	fmt.Fprintln(c.w, c.separator())
}

// Welcome prints the application banner.
func (c *Console) Welcome() {
	c.Section("Welcome to AIRefiner")
	fmt.Fprintln(c.w, "Your AI-powered text processing tool")
}

// Goodbye prints the exit banner.
func (c *Console) Goodbye() {
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, "👋 Thank you for using AIRefiner. Goodbye!")
}
