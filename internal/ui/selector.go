package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
)

var (
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cursorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	activeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// EnvChoice is one selectable environment.
type EnvChoice struct {
	Path   string
	Name   string // folder name of the environment
	Named  bool   // matched a conventional name
	Active bool   // currently activated (VIRTUAL_ENV)
}

// SelectorResult contains the result of the selection.
type SelectorResult struct {
	Choice    EnvChoice
	Selected  bool
	Cancelled bool
}

// choiceSource adapts choices to fuzzy matching over "name path".
type choiceSource []EnvChoice

func (s choiceSource) String(i int) string { return s[i].Name + " " + s[i].Path }
func (s choiceSource) Len() int            { return len(s) }

// selectorModel is the bubbletea model for environment selection.
type selectorModel struct {
	choices   []EnvChoice
	filtered  []EnvChoice
	textInput textinput.Model
	cursor    int
	selected  *EnvChoice
	cancelled bool
	maxHeight int
}

func newSelectorModel(choices []EnvChoice) selectorModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.PromptStyle = cursorStyle

	return selectorModel{
		choices:   choices,
		filtered:  choices,
		textInput: ti,
		maxHeight: 10,
	}
}

func (m selectorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
				m.selected = &m.filtered[m.cursor]
			}
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)

	m.filtered = filterChoices(m.choices, m.textInput.Value())

	if m.cursor >= len(m.filtered) {
		m.cursor = max(0, len(m.filtered)-1)
	}

	return m, cmd
}

// filterChoices ranks choices against the query.
func filterChoices(choices []EnvChoice, query string) []EnvChoice {
	if query == "" {
		return choices
	}

	matches := fuzzy.FindFrom(query, choiceSource(choices))
	filtered := make([]EnvChoice, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, choices[match.Index])
	}
	return filtered
}

func (m selectorModel) View() string {
	var sb strings.Builder

	sb.WriteString("Select environment:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(dimStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		start := 0
		end := len(m.filtered)
		if end > m.maxHeight {
			halfHeight := m.maxHeight / 2
			start = m.cursor - halfHeight
			if start < 0 {
				start = 0
			}
			end = start + m.maxHeight
			if end > len(m.filtered) {
				end = len(m.filtered)
				start = max(0, end-m.maxHeight)
			}
		}

		for i := start; i < end; i++ {
			choice := m.filtered[i]
			line := fmt.Sprintf("%s (%s)", choice.Name, choice.Path)

			if i == m.cursor {
				sb.WriteString(cursorStyle.Render("> "))
				sb.WriteString(selectedStyle.Render(line))
			} else {
				sb.WriteString("  ")
				sb.WriteString(unselectedStyle.Render(line))
			}
			if choice.Active {
				sb.WriteString(activeStyle.Render(" ●"))
			}
			sb.WriteString("\n")
		}

		if len(m.filtered) > m.maxHeight {
			sb.WriteString(dimStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("↑/↓ navigate • enter select • esc cancel"))

	return sb.String()
}

// RunSelector shows an interactive fuzzy search selector for environments.
func RunSelector(choices []EnvChoice) (*SelectorResult, error) {
	if len(choices) == 0 {
		return &SelectorResult{Cancelled: true}, nil
	}

	model := newSelectorModel(choices)
	p := tea.NewProgram(model)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m := finalModel.(selectorModel)
	if m.cancelled {
		return &SelectorResult{Cancelled: true}, nil
	}
	if m.selected != nil {
		return &SelectorResult{Choice: *m.selected, Selected: true}, nil
	}
	return &SelectorResult{Cancelled: true}, nil
}
