// Package tui provides the interactive console surfaces: a filterable
// picker for models and tasks, multiline text capture, and styled
// status output.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrAborted is returned when the user cancels a picker.
var ErrAborted = errors.New("selection aborted")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// pickerKeys defines the key bindings for the picker.
type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var defaultPickerKeys = pickerKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

// pickerModel is a filterable single-select list.
type pickerModel struct {
	title   string
	items   []string
	cursor  int
	filter  textinput.Model
	keys    pickerKeys
	choice  string
	aborted bool
}

func newPicker(title string, items []string) pickerModel {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Prompt = "/ "
	filter.Focus()

	return pickerModel{
		title:  title,
		items:  items,
		filter: filter,
		keys:   defaultPickerKeys,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// visible returns the items matching the current filter.
func (m pickerModel) visible() []string {
	f := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if f == "" {
		return m.items
	}
	var out []string
	for _, item := range m.items {
		if strings.Contains(strings.ToLower(item), f) {
			out = append(out, item)
		}
	}
	return out
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		return m, cmd
	}

	items := m.visible()
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(items)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Select):
		if len(items) > 0 {
			if m.cursor >= len(items) {
				m.cursor = len(items) - 1
			}
			m.choice = items[m.cursor]
			return m, tea.Quit
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	// The visible set changed; keep the cursor in range.
	if n := len(m.visible()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(m.title))
	sb.WriteString("\n")
	sb.WriteString(m.filter.View())
	sb.WriteString("\n\n")

	items := m.visible()
	if len(items) == 0 {
		sb.WriteString(dimStyle.Render("  no matches"))
		sb.WriteString("\n")
	}
	for i, item := range items {
		if i == m.cursor {
			sb.WriteString(selectedStyle.Render("> " + item))
		} else {
			sb.WriteString("  " + item)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("↑/↓ move · enter select · esc cancel"))
	return sb.String()
}

// Pick runs an interactive picker over items and returns the selection.
// Returns ErrAborted if the user cancels.
func Pick(title string, items []string) (string, error) {
	final, err := tea.NewProgram(newPicker(title, items)).Run()
	if err != nil {
		return "", err
	}
	m := final.(pickerModel)
	if m.aborted || m.choice == "" {
		return "", ErrAborted
	}
	return m.choice, nil
}
