package main

// Startup prompt asking which file to edit.

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var errPromptCancelled = errors.New("cancelled")

var (
	promptTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("254"))
	promptHint  = lipgloss.NewStyle().Faint(true)
)

type pathPrompt struct {
	input       textinput.Model
	defaultPath string
	value       string
	done        bool
	cancelled   bool
}

func newPathPrompt(defaultPath string) pathPrompt {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = defaultPath
	ti.CharLimit = 4096
	ti.Focus()
	return pathPrompt{input: ti, defaultPath: defaultPath}
}

func (m pathPrompt) Init() tea.Cmd { return textinput.Blink }

func (m pathPrompt) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.value = trimCommand(m.input.Value())
			m.done = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m pathPrompt) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return promptTitle.Render("vi file path") + " " +
		promptHint.Render("(default "+m.defaultPath+")") + "\n" +
		m.input.View() + "\n"
}

// path returns the chosen path, substituting the default for an empty answer.
func (m pathPrompt) path() string {
	if m.value == "" {
		return m.defaultPath
	}
	return m.value
}

// PromptPath asks the user for a file path on the terminal.
func PromptPath(defaultPath string) (string, error) {
	p := tea.NewProgram(newPathPrompt(defaultPath))
	final, err := p.Run()
	if err != nil {
		return "", err
	}
	m := final.(pathPrompt)
	if m.cancelled {
		return "", errPromptCancelled
	}
	return m.path(), nil
}
