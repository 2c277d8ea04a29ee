package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"
)

// NoticeModel is a blocking modal notice. Any of enter, esc, or space
// dismisses it.
type NoticeModel struct {
	message string
	width   int
}

func NewNoticeModel(message string) *NoticeModel {
	return &NoticeModel{message: message, width: 60}
}

func (m *NoticeModel) Init() tea.Cmd {
	return nil
}

func (m *NoticeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", " ", "space", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *NoticeModel) View() string {
	boxWidth := m.width - 8
	if boxWidth > 60 {
		boxWidth = 60
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	var content strings.Builder
	content.WriteString(wordwrap.String(m.message, boxWidth))
	content.WriteString("\n\n")
	content.WriteString(commentStyle.Render("press enter to continue"))

	return contentStyle.Render(noticeBorderStyle.Render(content.String()))
}
