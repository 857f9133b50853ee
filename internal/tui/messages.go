package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/buffbites/internal/menu"
)

type menuLoadedMsg struct {
	restaurants []menu.Restaurant
}

type errMsg struct{ err error }

type StatusMsg struct {
	Text  string
	IsErr bool
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}
