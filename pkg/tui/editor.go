package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/zettelsite/zettelsite-settings/pkg/models"
	"github.com/zettelsite/zettelsite-settings/pkg/session"
)

// generalOrder is the display order of the general tab. The color tab
// uses schema order.
var generalOrder = []string{
	"site title",
	"copyright text",
	"site subfolder name",
	"site path",
	"zettelkasten path",
	"hide tags",
	"hide chrono index dates",
}

// EditorModel is the settings form: one control per schema field,
// grouped into a general tab and a color tab. Focus moves through all
// fields; the visible tab follows the focused field's group.
type EditorModel struct {
	fields     []models.Field
	focusIndex int

	inputs map[string]textinput.Model
	bools  map[string]bool

	picking   bool
	picker    filepicker.Model
	pickerKey string

	viewport viewport.Model
	width    int
	height   int

	event session.Event
}

// NewEditorModel builds the form seeded with the given values. Keys the
// mapping lacks show as empty controls.
func NewEditorModel(values models.Values) *EditorModel {
	m := &EditorModel{
		fields:   orderedFields(),
		inputs:   make(map[string]textinput.Model),
		bools:    make(map[string]bool),
		viewport: viewport.New(80, 20),
		event:    session.EventClosed,
	}

	for _, f := range m.fields {
		switch f.Kind {
		case models.KindBool:
			m.bools[f.Key] = values.Bool(f.Key)
		default:
			input := textinput.New()
			input.CharLimit = 255
			input.Width = 40
			switch f.Kind {
			case models.KindColor:
				input.Placeholder = "#rrggbb"
				input.CharLimit = 7
				input.Width = 12
			case models.KindFolder:
				input.Placeholder = "/absolute/path"
			default:
				if s, ok := f.Default.(string); ok && s != "" {
					input.Placeholder = s
				}
			}
			input.SetValue(values.Text(f.Key))
			m.inputs[f.Key] = input
		}
	}

	m.updateFocus()
	return m
}

func orderedFields() []models.Field {
	var fields []models.Field
	for _, key := range generalOrder {
		if f, ok := models.FieldFor(key); ok {
			fields = append(fields, f)
		}
	}
	for _, f := range models.Schema() {
		if f.Group == models.GroupColor {
			fields = append(fields, f)
		}
	}
	return fields
}

func (m *EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Event reports what ended the form: save, cancel, or a window close.
func (m *EditorModel) Event() session.Event {
	return m.event
}

// RawValues returns every control value keyed by control name, plus the
// editor's internal bookkeeping entries. Bookkeeping keys are
// capitalized so the result filter can strip them.
func (m *EditorModel) RawValues() models.Values {
	raw := make(models.Values, len(m.fields)+2)
	for _, f := range m.fields {
		if f.Kind == models.KindBool {
			raw[f.Key] = m.bools[f.Key]
		} else {
			raw[f.Key] = m.inputs[f.Key].Value()
		}
	}
	raw["ActiveTab"] = string(m.activeGroup())
	raw["FocusIndex"] = strconv.Itoa(m.focusIndex)
	return raw
}

func (m *EditorModel) focusedField() models.Field {
	return m.fields[m.focusIndex]
}

func (m *EditorModel) activeGroup() models.FieldGroup {
	return m.focusedField().Group
}

func (m *EditorModel) focusedValue() string {
	f := m.focusedField()
	if f.Kind == models.KindBool {
		return strconv.FormatBool(m.bools[f.Key])
	}
	return m.inputs[f.Key].Value()
}

func (m *EditorModel) updateFocus() {
	for key, input := range m.inputs {
		input.Blur()
		m.inputs[key] = input
	}
	f := m.focusedField()
	if f.Kind != models.KindBool {
		input := m.inputs[f.Key]
		input.Focus()
		m.inputs[f.Key] = input
	}
}

func (m *EditorModel) moveFocus(delta int) {
	m.focusIndex += delta
	if m.focusIndex < 0 {
		m.focusIndex = len(m.fields) - 1
	} else if m.focusIndex >= len(m.fields) {
		m.focusIndex = 0
	}
	m.updateFocus()
}

// jumpToGroup moves focus to the first field of the given group.
func (m *EditorModel) jumpToGroup(group models.FieldGroup) {
	for i, f := range m.fields {
		if f.Group == group {
			m.focusIndex = i
			m.updateFocus()
			return
		}
	}
}

func (m *EditorModel) openFolderPicker(key string) tea.Cmd {
	picker := filepicker.New()
	picker.DirAllowed = true
	picker.FileAllowed = false
	picker.Height = m.viewport.Height
	if dir := m.inputs[key].Value(); dir != "" {
		picker.CurrentDirectory = dir
	} else if home, err := os.UserHomeDir(); err == nil {
		picker.CurrentDirectory = home
	}
	m.picker = picker
	m.pickerKey = key
	m.picking = true
	return m.picker.Init()
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportSize()

	case tea.KeyMsg:
		if m.picking {
			switch msg.String() {
			case "esc":
				m.picking = false
				return m, nil
			case "ctrl+c":
				m.event = session.EventClosed
				return m, tea.Quit
			}
			m.picker, cmd = m.picker.Update(msg)
			if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
				input := m.inputs[m.pickerKey]
				input.SetValue(path)
				m.inputs[m.pickerKey] = input
				m.picking = false
			}
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c":
			m.event = session.EventClosed
			return m, tea.Quit

		case "esc":
			m.event = session.EventCancel
			return m, tea.Quit

		case "ctrl+s":
			m.event = session.EventSave
			return m, tea.Quit

		case "tab", "down":
			m.moveFocus(1)
			m.updateViewportContent()
			return m, nil

		case "shift+tab", "up":
			m.moveFocus(-1)
			m.updateViewportContent()
			return m, nil

		case "ctrl+g":
			m.jumpToGroup(models.GroupGeneral)
			m.updateViewportContent()
			return m, nil

		case "ctrl+r":
			m.jumpToGroup(models.GroupColor)
			m.updateViewportContent()
			return m, nil

		case " ", "space":
			if f := m.focusedField(); f.Kind == models.KindBool {
				m.bools[f.Key] = !m.bools[f.Key]
				m.updateViewportContent()
				return m, nil
			}

		case "enter":
			if f := m.focusedField(); f.Kind == models.KindFolder {
				return m, m.openFolderPicker(f.Key)
			}
			return m, nil

		case "ctrl+y":
			// Best effort; clipboard access is unavailable on some
			// terminals and that should not break editing.
			_ = clipboard.WriteAll(m.focusedValue())
			return m, nil

		case "pgup", "pgdown":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	// Route everything else to the focused text input.
	if f := m.focusedField(); f.Kind != models.KindBool {
		input := m.inputs[f.Key]
		input, cmd = input.Update(msg)
		m.inputs[f.Key] = input
		cmds = append(cmds, cmd)
		m.updateViewportContent()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *EditorModel) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	var content strings.Builder

	heading := "ZETTELSITE SETTINGS"
	remainingWidth := width - 4 - len(heading) - 5
	if remainingWidth < 0 {
		remainingWidth = 0
	}
	content.WriteString(contentStyle.Render(headerStyle.Render(heading) + " " + headerStyle.Render(strings.Repeat(":", remainingWidth))))
	content.WriteString("\n\n")

	content.WriteString(contentStyle.Render(m.renderTabs()))
	content.WriteString("\n\n")

	m.updateViewportContent()
	content.WriteString(contentStyle.Render(m.viewport.View()))

	borderStyle := activeBorderStyle.Width(width - 4)
	if m.height > 0 {
		borderStyle = borderStyle.Height(m.height - 5)
	}

	var s strings.Builder
	s.WriteString(contentStyle.Render(borderStyle.Render(content.String())))

	help := []string{
		"tab/↑↓ navigate",
		"^g general",
		"^r colors",
		"space toggle",
		"enter browse",
		"^y copy",
		"^s save",
		"esc cancel",
		"^c quit",
	}
	helpContent := lipgloss.NewStyle().
		Width(width - 8).
		Align(lipgloss.Right).
		Render(strings.Join(help, " • "))
	s.WriteString("\n")
	s.WriteString(contentStyle.Render(helpBorderStyle.Width(width - 4).Render(helpContent)))

	return s.String()
}

func (m *EditorModel) renderTabs() string {
	var tabs []string
	for _, group := range []models.FieldGroup{models.GroupGeneral, models.GroupColor} {
		label := string(group)
		if group == m.activeGroup() {
			tabs = append(tabs, tabActiveStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, tabInactiveStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(tabs, " ")
}

func (m *EditorModel) updateViewportContent() {
	if m.picking {
		m.viewport.SetContent(m.picker.View())
		return
	}

	active := m.activeGroup()
	var content strings.Builder

	for i, f := range m.fields {
		if f.Group != active {
			continue
		}

		var control string
		switch f.Kind {
		case models.KindBool:
			checkbox := "[ ]"
			if m.bools[f.Key] {
				checkbox = "[✓]"
			}
			control = checkbox
		case models.KindColor:
			input := m.inputs[f.Key]
			control = input.View() + " " + colorSwatch(input.Value())
		default:
			control = m.inputs[f.Key].View()
		}

		line := labelStyle.Render(f.Label+":") + " " + control
		if i == m.focusIndex {
			content.WriteString(focusedStyle.Render("▸ ") + line)
		} else {
			content.WriteString(normalStyle.Render("  ") + line)
		}
		content.WriteString("\n\n")

		if f.Kind == models.KindFolder && i == m.focusIndex {
			content.WriteString(commentStyle.Render("  # press enter to browse for a folder"))
			content.WriteString("\n\n")
		}
	}

	m.viewport.SetContent(content.String())
}

// colorSwatch renders a block of the given hex color, or a marker when
// the text is not a valid #rrggbb color yet.
func colorSwatch(hex string) string {
	if _, err := colorful.Hex(hex); err != nil {
		return badSwatchStyle.Render("✗")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func (m *EditorModel) updateViewportSize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	m.viewport.Width = m.width - 10
	m.viewport.Height = m.height - 10
}
