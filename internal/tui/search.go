package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// searchField wraps the text input used to filter the trend listing.
type searchField struct {
	input  textinput.Model
	active bool
}

func newSearchField() searchField {
	input := textinput.New()
	input.Placeholder = "Search products..."
	input.CharLimit = 64
	input.Width = 32
	input.Prompt = "/ "

	return searchField{input: input}
}

func (s *searchField) IsActive() bool {
	return s.active
}

func (s *searchField) SetActive(active bool) {
	s.active = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

func (s *searchField) Value() string {
	return s.input.Value()
}

// UpdateInput forwards msg to the text input and returns its command.
func (s *searchField) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *searchField) Clear() {
	s.input.SetValue("")
	s.active = false
	s.input.Blur()
}

func (s *searchField) View() string {
	return s.input.View()
}
